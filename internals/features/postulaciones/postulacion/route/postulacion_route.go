package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postCtl "monitorias_backend/internals/features/postulaciones/postulacion/controller"
	authMw "monitorias_backend/internals/middlewares/auth"
)

// PostulacionRoutes registra el flujo de postulación anidado bajo su
// convocatoria y la gestión de preasignadas. Los roles se verifican en el
// controller porque el subárbol mezcla estudiantes y gestores.
func PostulacionRoutes(app *fiber.App, db *gorm.DB) {
	ctl := postCtl.NewPostulacionController(db)

	anidadas := app.Group("/api/convocatorias/:convocatoria_id/postulaciones", authMw.AuthMiddleware())
	anidadas.Post("/", ctl.Submit)
	anidadas.Get("/", ctl.Listar)
	anidadas.Patch("/:postulacion_id/decision", ctl.Decidir)

	preasignadas := app.Group("/api/postulaciones/preasignadas", authMw.AuthMiddleware())
	preasignadas.Get("/", ctl.ListarPreasignadas)
	preasignadas.Get("/opciones", ctl.OpcionesPreasignadas)
	preasignadas.Post("/", ctl.CrearPreasignada)
	preasignadas.Patch("/:id", ctl.ActualizarPreasignada)
	preasignadas.Delete("/:id", ctl.EliminarPreasignada)
}
