package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachku_backend/internals/configs"
	"coachku_backend/internals/constants"
	controller "coachku_backend/internals/features/users/controller"
	authmw "coachku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.New(db, v)

	auth := api.Group("/auth")
	auth.Post("/login", ctl.Login)
	auth.Post("/google", ctl.LoginGoogle)

	guarded := auth.Group("",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
	)
	guarded.Get("/me", ctl.Me)
	guarded.Post("/register",
		authmw.RequireRoles(constants.RoleAdmin),
		ctl.Register,
	)
}
