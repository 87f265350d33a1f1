package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/academics/attendances/controller"
)

// AttendanceAdminRoutes mounts the register write + reads for staff.
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	attendances := r.Group("/attendances")
	attendances.Post("/", ctl.Mark)
	attendances.Get("/", ctl.GetByDate)
	attendances.Get("/batch/:id", ctl.GetByBatch)
}

// AttendanceStudentRoutes mounts the student's own history.
func AttendanceStudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)
	r.Get("/attendances/my", ctl.MyStudent)
}
