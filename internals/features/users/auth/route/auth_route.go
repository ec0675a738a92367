package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "monitorias_backend/internals/features/users/auth/controller"
	"monitorias_backend/internals/middlewares"
	authMw "monitorias_backend/internals/middlewares/auth"
)

// AuthRoutes registra /api/auth (login público, perfil con JWT).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	perfil := grp.Group("", authMw.AuthMiddleware())
	perfil.Get("/profile", ctl.GetProfile)
	perfil.Put("/profile", ctl.UpdateProfile)
}
