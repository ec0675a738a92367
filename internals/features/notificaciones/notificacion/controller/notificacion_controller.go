// internals/features/notificaciones/notificacion/controller/notificacion_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monitorias_backend/internals/constants"
	notifDTO "monitorias_backend/internals/features/notificaciones/notificacion/dto"
	notifService "monitorias_backend/internals/features/notificaciones/notificacion/service"
	helper "monitorias_backend/internals/helpers"
)

type NotificacionController struct{ DB *gorm.DB }

func NewNotificacionController(db *gorm.DB) *NotificacionController {
	return &NotificacionController{DB: db}
}

var validateNotificacion = validator.New()

// ===================== LIST =====================
// GET /api/notificaciones?estado=unread&limit=N
func (h *NotificacionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	limite := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limite, err = strconv.Atoi(raw)
		if err != nil || limite < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parámetro 'limit' inválido")
		}
	}

	estado := strings.ToLower(strings.TrimSpace(c.Query("estado")))
	soloNoLeidas := estado == "unread" || estado == "no_leidas" || estado == "pendientes"

	notifs, err := notifService.Listar(h.DB, userID, soloNoLeidas, limite)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", notifDTO.FromModels(notifs), nil)
}

// ===================== CREATE =====================
// POST /api/notificaciones
// Un usuario solo puede notificarse a sí mismo; los gestores a cualquiera.
func (h *NotificacionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req notifDTO.CrearNotificacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Titulo = strings.TrimSpace(req.Titulo)
	req.Mensaje = strings.TrimSpace(req.Mensaje)
	if err := validateNotificacion.Struct(req); err != nil {
		return helper.JsonValidationError(c, erroresPorCampoNotificacion(err))
	}

	destino := req.UsuarioID
	if destino == 0 {
		destino = userID
	}
	if destino != userID {
		rol := helper.GetRolFromToken(c)
		if rol != constants.RoleCoordinator && rol != constants.RoleProfessor {
			return helper.JsonError(c, fiber.StatusForbidden, "No tiene permisos para enviar notificaciones a otros usuarios")
		}
	}

	notif, err := notifService.Crear(h.DB, notifService.Nueva{
		UsuarioID: destino,
		Titulo:    req.Titulo,
		Mensaje:   req.Mensaje,
		Tipo:      req.Tipo,
		Payload:   req.Metadata,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "notificación creada", notifDTO.FromModel(notif))
}

// ===================== MARK READ =====================
// POST /api/notificaciones/:id/leer
func (h *NotificacionController) MarcarLeida(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "notificacion_id inválido")
	}

	notif, err := notifService.MarcarLeidaPorID(h.DB, uint(id), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if notif == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Notificación no encontrada")
	}
	return helper.JsonUpdated(c, "notificación leída", notifDTO.FromModel(notif))
}

// POST /api/notificaciones/marcar-todas
func (h *NotificacionController) MarcarTodas(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	total, err := notifService.MarcarTodasLeidas(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", fiber.Map{"total_actualizadas": total})
}

func erroresPorCampoNotificacion(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			campo := strings.ToLower(fe.Field())
			out[campo] = append(out[campo], "regla incumplida: "+fe.Tag())
		}
	}
	return out
}
