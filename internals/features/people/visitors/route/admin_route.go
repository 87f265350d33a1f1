package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/people/visitors/controller"
)

func VisitorAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	visitors := r.Group("/visitors")
	visitors.Post("/", ctl.Create)
	visitors.Get("/", ctl.List)
	visitors.Get("/:id", ctl.GetByID)
	visitors.Put("/:id", ctl.Update)
	visitors.Delete("/:id", ctl.Delete)
	visitors.Patch("/:id/restore", ctl.Restore)
	visitors.Post("/:id/convert", ctl.Convert)
}
