package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/academics/skills/controller"
)

func SkillAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	skills := r.Group("/skills")
	skills.Post("/", ctl.Create)
	skills.Get("/", ctl.List)
	skills.Put("/:id", ctl.Update)
	skills.Delete("/:id", ctl.Delete)
}
