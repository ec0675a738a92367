package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inscCtl "monitorias_backend/internals/features/convocatorias/inscripcion/controller"
	authMw "monitorias_backend/internals/middlewares/auth"
)

// InscripcionRoutes registra /api/convocatorias/:convocatoria_id/inscripciones.
func InscripcionRoutes(app *fiber.App, db *gorm.DB) {
	ctl := inscCtl.NewInscripcionController(db)

	grp := app.Group("/api/convocatorias/:convocatoria_id/inscripciones", authMw.AuthMiddleware())
	grp.Post("/", ctl.Inscribirse)
	grp.Get("/", ctl.Listar)
}
