package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/people/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	students := r.Group("/students")
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Put("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
	students.Patch("/:id/restore", ctl.Restore)
}

func StudentSelfRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)
	r.Get("/students/me", ctl.Me)
}
