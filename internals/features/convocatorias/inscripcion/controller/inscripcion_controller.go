// internals/features/convocatorias/inscripcion/controller/inscripcion_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	convModel "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	convService "monitorias_backend/internals/features/convocatorias/convocatoria/service"
	inscModel "monitorias_backend/internals/features/convocatorias/inscripcion/model"
	notifModel "monitorias_backend/internals/features/notificaciones/notificacion/model"
	notifService "monitorias_backend/internals/features/notificaciones/notificacion/service"
	userModel "monitorias_backend/internals/features/users/user/model"
	helper "monitorias_backend/internals/helpers"
	"monitorias_backend/internals/helpers/timeutil"
)

type InscripcionController struct{ DB *gorm.DB }

func NewInscripcionController(db *gorm.DB) *InscripcionController {
	return &InscripcionController{DB: db}
}

type crearInscripcionRequest struct {
	Comentario       string `json:"comentario"`
	HorarioPreferido string `json:"horario_preferido"`
}

// ===================== CREATE =====================
// POST /api/convocatorias/:convocatoria_id/inscripciones  (estudiantes)
// Se admite mientras la convocatoria esté activa o programada.
func (h *InscripcionController) Inscribirse(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var estudiante userModel.UsuarioModel
	if err := h.DB.First(&estudiante, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	if !estudiante.IsStudent() {
		return helper.JsonError(c, fiber.StatusForbidden, "Solo los estudiantes pueden inscribirse")
	}

	convID, err := strconv.ParseUint(c.Params("convocatoria_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "convocatoria_id inválido")
	}
	var conv convModel.ConvocatoriaModel
	if err := h.DB.First(&conv, uint(convID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Convocatoria no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := timeutil.NowUTC()
	if err := convService.AutoArchivar(h.DB, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	convService.RecalcularEstado(&conv, now)
	if conv.ConvocatoriaArchivada ||
		(conv.ConvocatoriaEstado != convModel.EstadoActiva && conv.ConvocatoriaEstado != convModel.EstadoProgramada) {
		return helper.JsonError(c, fiber.StatusBadRequest, "La convocatoria no admite nuevas inscripciones")
	}

	var existente inscModel.InscripcionModel
	err = h.DB.
		Where("inscripcion_estudiante_id = ? AND inscripcion_convocatoria_id = ?", estudiante.UsuarioID, conv.ConvocatoriaID).
		First(&existente).Error
	if err == nil {
		return helper.JsonErrorData(c, fiber.StatusConflict,
			"Ya tienes una inscripción en esta convocatoria",
			fiber.Map{"inscripcion": existente})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// el cuerpo es opcional
	var req crearInscripcionRequest
	_ = c.BodyParser(&req)

	insc := inscModel.InscripcionModel{
		InscripcionEstudianteID:   estudiante.UsuarioID,
		InscripcionConvocatoriaID: conv.ConvocatoriaID,
	}
	if comentario := strings.TrimSpace(req.Comentario); comentario != "" {
		insc.InscripcionComentario = &comentario
	}
	if horario := strings.TrimSpace(req.HorarioPreferido); horario != "" {
		insc.InscripcionHorarioPreferido = &horario
	}

	if err := h.DB.Create(&insc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if _, err := notifService.Crear(h.DB, notifService.Nueva{
		UsuarioID: estudiante.UsuarioID,
		Titulo:    fmt.Sprintf("Inscripción registrada en %s", conv.ConvocatoriaCurso),
		Mensaje:   "Te has inscrito exitosamente a la monitoría. Recibirás novedades por este medio.",
		Tipo:      notifModel.TipoSuccess,
	}); err != nil {
		log.Printf("[ERROR] notificación de inscripción %d: %v", insc.InscripcionID, err)
	}

	return helper.JsonCreated(c, "inscripción registrada", fiber.Map{"inscripcion": insc})
}

// ===================== LIST =====================
// GET /api/convocatorias/:convocatoria_id/inscripciones
// Estudiantes ven solo la propia; gestores todas.
func (h *InscripcionController) Listar(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var usuario userModel.UsuarioModel
	if err := h.DB.First(&usuario, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	convID, err := strconv.ParseUint(c.Params("convocatoria_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "convocatoria_id inválido")
	}

	q := h.DB.Where("inscripcion_convocatoria_id = ?", uint(convID))
	if usuario.IsStudent() {
		q = q.Where("inscripcion_estudiante_id = ?", usuario.UsuarioID)
	}

	var inscripciones []inscModel.InscripcionModel
	if err := q.Order("inscripcion_created_at ASC").Find(&inscripciones).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", inscripciones, nil)
}
