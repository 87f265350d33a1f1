package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/academics/batches/controller"
)

func BatchAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	batches := r.Group("/batches")
	batches.Post("/", ctl.Create)
	batches.Get("/", ctl.List)
	batches.Put("/:id", ctl.Update)
	batches.Delete("/:id", ctl.Delete)
	batches.Patch("/:id/restore", ctl.Restore)
}
