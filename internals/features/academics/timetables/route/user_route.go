package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/academics/timetables/controller"
)

// TimetableTutorRoutes mounts the tutor's own-schedule read.
func TimetableTutorRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)
	r.Get("/timetables/my", ctl.MyTutor)
}

// TimetableStudentRoutes mounts the student's batch-schedule read.
func TimetableStudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)
	r.Get("/timetables/my-batch", ctl.MyStudent)
}
