// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	convocatoriaRoute "monitorias_backend/internals/features/convocatorias/convocatoria/route"
	inscripcionRoute "monitorias_backend/internals/features/convocatorias/inscripcion/route"
	notificacionRoute "monitorias_backend/internals/features/notificaciones/notificacion/route"
	postulacionRoute "monitorias_backend/internals/features/postulaciones/postulacion/route"
	seleccionRoute "monitorias_backend/internals/features/postulaciones/seleccion/route"
	authRoute "monitorias_backend/internals/features/users/auth/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH / PERFIL =====================
	log.Println("[INFO] Montando rutas de auth...")
	authRoute.AuthRoutes(app, db)

	// ===================== CONVOCATORIAS =====================
	log.Println("[INFO] Montando rutas de convocatorias...")
	convocatoriaRoute.ConvocatoriaRoutes(app, db)
	inscripcionRoute.InscripcionRoutes(app, db)

	// ===================== POSTULACIONES / SELECCIÓN =====================
	log.Println("[INFO] Montando rutas de postulaciones...")
	postulacionRoute.PostulacionRoutes(app, db)
	seleccionRoute.SeleccionRoutes(app, db)

	// ===================== NOTIFICACIONES =====================
	log.Println("[INFO] Montando rutas de notificaciones...")
	notificacionRoute.NotificacionRoutes(app, db)
}
