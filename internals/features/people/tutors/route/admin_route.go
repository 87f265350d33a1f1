package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/people/tutors/controller"
)

func TutorAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	tutors := r.Group("/tutors")
	tutors.Post("/", ctl.Create)
	tutors.Get("/", ctl.List)
	tutors.Put("/:id", ctl.Update)
	tutors.Delete("/:id", ctl.Delete)
}
