package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monitorias_backend/internals/constants"
	convCtl "monitorias_backend/internals/features/convocatorias/convocatoria/controller"
	authMw "monitorias_backend/internals/middlewares/auth"
)

// ConvocatoriaRoutes registra /api/convocatorias.
// Los listados son públicos; crear/editar exige rol gestor.
func ConvocatoriaRoutes(app *fiber.App, db *gorm.DB) {
	ctl := convCtl.NewConvocatoriaController(db)

	grp := app.Group("/api/convocatorias")

	grp.Get("/", ctl.List)
	grp.Get("/activas", ctl.ListActivas)
	grp.Get("/:id", ctl.Detail)

	gestor := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.RoleMiddleware(constants.Gestores, constants.RoleErrorGestor("convocatorias")),
	)
	gestor.Post("/", ctl.Create)
	gestor.Patch("/:id", ctl.Editar)
	gestor.Patch("/:id/fechas", ctl.AsignarFechas)
}
