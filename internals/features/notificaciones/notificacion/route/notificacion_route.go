package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtl "monitorias_backend/internals/features/notificaciones/notificacion/controller"
	authMw "monitorias_backend/internals/middlewares/auth"
)

// NotificacionRoutes registra /api/notificaciones (todas autenticadas).
func NotificacionRoutes(app *fiber.App, db *gorm.DB) {
	ctl := notifCtl.NewNotificacionController(db)

	grp := app.Group("/api/notificaciones", authMw.AuthMiddleware())

	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Post("/:id/leer", ctl.MarcarLeida)
	grp.Post("/marcar-todas", ctl.MarcarTodas)
}
