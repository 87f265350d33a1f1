package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/engagement/feedbacks/controller"
)

func FeedbackAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)
	r.Get("/feedbacks/batch/:id", ctl.ByBatch)
}

func FeedbackStudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)
	r.Post("/feedbacks", ctl.Submit)
	r.Get("/feedbacks/my", ctl.MyStudent)
}

func FeedbackTutorRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)
	r.Get("/feedbacks/received", ctl.MyTutor)
}
