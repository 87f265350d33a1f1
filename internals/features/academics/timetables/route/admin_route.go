package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/academics/timetables/controller"
)

func TimetableAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	timetables := r.Group("/timetables")
	timetables.Post("/", ctl.Create)
	timetables.Get("/", ctl.List)
	timetables.Put("/:id", ctl.Update)
	timetables.Delete("/:id", ctl.Delete)
}
