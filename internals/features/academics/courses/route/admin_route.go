package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/academics/courses/controller"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	courses := r.Group("/courses")
	courses.Post("/", ctl.Create)
	courses.Get("/", ctl.List)
	courses.Get("/:id", ctl.GetByID)
	courses.Put("/:id", ctl.Update)
	courses.Delete("/:id", ctl.Delete)
	courses.Patch("/:id/restore", ctl.Restore)
}
