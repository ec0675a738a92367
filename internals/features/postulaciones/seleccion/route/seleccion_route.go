package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monitorias_backend/internals/constants"
	selCtl "monitorias_backend/internals/features/postulaciones/seleccion/controller"
	authMw "monitorias_backend/internals/middlewares/auth"
)

// SeleccionRoutes registra /api/seleccion: configuración de umbrales/pesos y
// consulta de reportes de descartes. Todo exige rol gestor.
func SeleccionRoutes(app *fiber.App, db *gorm.DB) {
	ctl := selCtl.NewSeleccionController(db)

	grp := app.Group("/api/seleccion",
		authMw.AuthMiddleware(),
		authMw.RoleMiddleware(constants.Gestores, constants.RoleErrorGestor("selección")),
	)

	grp.Get("/configuracion", ctl.GetConfiguracion)
	grp.Patch("/configuracion", ctl.UpdateConfiguracion)
	grp.Get("/reportes/:convocatoria_id", ctl.GetReporte)
}
