package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/academics/batch_mappings/controller"
)

func BatchMappingAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	mappings := r.Group("/batch-mappings")
	mappings.Post("/", ctl.Create)
	mappings.Get("/", ctl.List)
	mappings.Get("/:id", ctl.GetByID)
	mappings.Put("/:id", ctl.Update)
	mappings.Delete("/:id", ctl.Delete)
}
