package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coachku_backend/internals/features/finance/fees/controller"
)

func FeeAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	fees := r.Group("/fees")
	fees.Post("/", ctl.Create)
	fees.Get("/", ctl.List)
	fees.Get("/student/:id", ctl.GetByStudent)
	fees.Put("/:id", ctl.UpdateTotal)
	fees.Delete("/:id", ctl.Delete)
	fees.Post("/:id/installments", ctl.AddInstallment)
	fees.Delete("/:id/installments/:instId", ctl.RemoveInstallment)
}

// FeeStudentRoutes mounts the student's own ledger read.
func FeeStudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)
	r.Get("/fees/my", ctl.My)
}
