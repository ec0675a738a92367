// internals/features/postulaciones/postulacion/controller/preasignada_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monitorias_backend/internals/constants"
	convDTO "monitorias_backend/internals/features/convocatorias/convocatoria/dto"
	convModel "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	notifModel "monitorias_backend/internals/features/notificaciones/notificacion/model"
	notifService "monitorias_backend/internals/features/notificaciones/notificacion/service"
	postDTO "monitorias_backend/internals/features/postulaciones/postulacion/dto"
	postModel "monitorias_backend/internals/features/postulaciones/postulacion/model"
	postService "monitorias_backend/internals/features/postulaciones/postulacion/service"
	userDTO "monitorias_backend/internals/features/users/user/dto"
	userModel "monitorias_backend/internals/features/users/user/model"
	helper "monitorias_backend/internals/helpers"
)

// Preasignadas: registros que un gestor carga directamente con estado
// terminal, sin pasar por requisitos ni puntaje automático.

// ===================== LIST =====================
// GET /api/postulaciones/preasignadas?convocatoria_id=N
func (h *PostulacionController) ListarPreasignadas(c *fiber.Ctx) error {
	usuario, err := h.usuarioActual(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := h.DB.Preload("Estudiante").Preload("Convocatoria").Preload("Creador").
		Where("postulacion_preasignada = ?", true)

	if raw := strings.TrimSpace(c.Query("convocatoria_id")); raw != "" {
		convID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "convocatoria_id inválido")
		}
		q = q.Where("postulacion_convocatoria_id = ?", convID)
	}
	if usuario.IsStudent() {
		q = q.Where("postulacion_estudiante_id = ?", usuario.UsuarioID)
	}

	var postulaciones []postModel.PostulacionModel
	if err := q.Order("postulacion_created_at DESC").Find(&postulaciones).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", postDTO.FromModels(postulaciones, c.Query("lang")), nil)
}

// ===================== CREATE =====================
// POST /api/postulaciones/preasignadas  (gestores)
func (h *PostulacionController) CrearPreasignada(c *fiber.Ctx) error {
	gestor, err := h.usuarioActual(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !gestor.EsGestor() {
		return helper.JsonError(c, fiber.StatusForbidden, "Solo coordinadores o profesores pueden gestionar postulaciones")
	}

	var req postDTO.CrearPreasignadaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validatePostulacion.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "convocatoria_id y estudiante_id son obligatorios")
	}

	var conv convModel.ConvocatoriaModel
	if err := h.DB.First(&conv, req.ConvocatoriaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Convocatoria no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var estudiante userModel.UsuarioModel
	if err := h.DB.First(&estudiante, req.EstudianteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	soportes, err := postService.ValidarSoportes(req.Soportes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	estado := postModel.EstadoSeleccionado
	if req.Estado != "" {
		estado = postDTO.NormalizarEstadoPostulacion(req.Estado)
		if estado == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Estado inválido")
		}
	}
	comentario := strings.TrimSpace(req.Comentario)

	post := postModel.PostulacionModel{
		PostulacionEstudianteID:   estudiante.UsuarioID,
		PostulacionConvocatoriaID: conv.ConvocatoriaID,
	}
	post.MarcarPreasignada(gestor.UsuarioID)
	post.CompletarFormulario(req.Formulario)
	post.AdjuntarSoportes(soportes)
	if req.Puntaje != nil {
		post.PostulacionPuntaje = req.Puntaje
	}
	aplicarEstadoManual(&post, estado, comentario, post.PostulacionPuntaje)

	if err := h.DB.Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	post.Estudiante = &estudiante
	post.Convocatoria = &conv
	post.Creador = gestor

	metadata := map[string]interface{}{
		"preasignada":     true,
		"convocatoria_id": conv.ConvocatoriaID,
		"postulacion_id":  post.PostulacionID,
		"estado":          post.PostulacionEstado,
	}
	if comentario != "" {
		metadata["comentario"] = comentario
	}
	tipo := notifModel.TipoInfo
	if estado == postModel.EstadoSeleccionado || estado == postModel.EstadoElegible {
		tipo = notifModel.TipoSuccess
	}
	mensaje := fmt.Sprintf("Se ha registrado una preasignación en %s.", conv.ConvocatoriaCurso)
	if estado == postModel.EstadoSeleccionado {
		mensaje = fmt.Sprintf("Has sido preasignado como monitor para %s.", conv.ConvocatoriaCurso)
	}
	if comentario != "" {
		mensaje += " Observaciones: " + comentario
	}
	if _, err := notifService.Crear(h.DB, notifService.Nueva{
		UsuarioID: estudiante.UsuarioID,
		Titulo:    fmt.Sprintf("Preasignación registrada - %s", conv.ConvocatoriaCurso),
		Mensaje:   mensaje,
		Tipo:      tipo,
		Payload:   metadata,
	}); err != nil {
		log.Printf("[ERROR] notificación de preasignación %d: %v", post.PostulacionID, err)
	}

	return helper.JsonCreated(c, "preasignación registrada", postDTO.FromModel(&post, c.Query("lang")))
}

// ===================== UPDATE =====================
// PATCH /api/postulaciones/preasignadas/:id  (gestores)
func (h *PostulacionController) ActualizarPreasignada(c *fiber.Ctx) error {
	gestor, err := h.usuarioActual(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !gestor.EsGestor() {
		return helper.JsonError(c, fiber.StatusForbidden, "Solo coordinadores o profesores pueden gestionar postulaciones")
	}

	post, ferr := h.buscarPreasignada(c)
	if ferr != nil {
		return ferr
	}

	var req postDTO.ActualizarPreasignadaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}

	var conv *convModel.ConvocatoriaModel
	if req.ConvocatoriaID != nil {
		var nueva convModel.ConvocatoriaModel
		if err := h.DB.First(&nueva, *req.ConvocatoriaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Convocatoria no encontrada")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		post.PostulacionConvocatoriaID = nueva.ConvocatoriaID
		post.Convocatoria = &nueva
		conv = &nueva
	} else {
		conv = post.Convocatoria
	}

	if req.Puntaje != nil {
		post.PostulacionPuntaje = req.Puntaje
	}

	var comentario string
	if req.Comentario != nil {
		comentario = strings.TrimSpace(*req.Comentario)
	}

	estadoAnterior := post.PostulacionEstado
	if req.Estado != nil && strings.TrimSpace(*req.Estado) != "" {
		estadoNuevo := postDTO.NormalizarEstadoPostulacion(*req.Estado)
		if estadoNuevo == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Estado inválido")
		}
		aplicarEstadoManual(post, estadoNuevo, comentario, post.PostulacionPuntaje)
	} else if req.Comentario != nil {
		post.PostulacionRazonesRechazo = &comentario
	}

	if req.Formulario != nil {
		post.CompletarFormulario(req.Formulario)
	}

	if err := h.DB.Save(post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if estadoAnterior != post.PostulacionEstado {
		curso := "monitoría"
		if conv != nil {
			curso = conv.ConvocatoriaCurso
		}
		metadata := map[string]interface{}{
			"preasignada":     true,
			"convocatoria_id": post.PostulacionConvocatoriaID,
			"postulacion_id":  post.PostulacionID,
			"estado":          post.PostulacionEstado,
		}
		if comentario != "" {
			metadata["comentario"] = comentario
		}
		tipo := notifModel.TipoInfo
		if post.PostulacionEstado == postModel.EstadoSeleccionado || post.PostulacionEstado == postModel.EstadoElegible {
			tipo = notifModel.TipoSuccess
		}
		mensaje := fmt.Sprintf("Tu estado en la preasignación de %s ahora es %s.", curso, post.PostulacionEstado)
		if comentario != "" {
			mensaje += " Observaciones: " + comentario
		}
		if _, err := notifService.Crear(h.DB, notifService.Nueva{
			UsuarioID: post.PostulacionEstudianteID,
			Titulo:    "Actualización de preasignación",
			Mensaje:   mensaje,
			Tipo:      tipo,
			Payload:   metadata,
		}); err != nil {
			log.Printf("[ERROR] notificación de preasignación %d: %v", post.PostulacionID, err)
		}
	}

	return helper.JsonUpdated(c, "preasignación actualizada", postDTO.FromModel(post, c.Query("lang")))
}

// ===================== DELETE =====================
// DELETE /api/postulaciones/preasignadas/:id  (gestores)
func (h *PostulacionController) EliminarPreasignada(c *fiber.Ctx) error {
	gestor, err := h.usuarioActual(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !gestor.EsGestor() {
		return helper.JsonError(c, fiber.StatusForbidden, "Solo coordinadores o profesores pueden gestionar postulaciones")
	}

	post, ferr := h.buscarPreasignada(c)
	if ferr != nil {
		return ferr
	}

	if err := h.DB.Delete(post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Postulación preasignada eliminada", fiber.Map{"postulacion_id": post.PostulacionID})
}

// ===================== OPCIONES =====================
// GET /api/postulaciones/preasignadas/opciones  (gestores)
// Listas para armar el formulario: estudiantes y convocatorias disponibles.
func (h *PostulacionController) OpcionesPreasignadas(c *fiber.Ctx) error {
	gestor, err := h.usuarioActual(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !gestor.EsGestor() {
		return helper.JsonError(c, fiber.StatusForbidden, "Solo coordinadores o profesores pueden gestionar postulaciones")
	}

	var estudiantes []userModel.UsuarioModel
	if err := h.DB.Where("usuario_rol = ?", constants.RoleStudent).
		Order("usuario_nombre ASC").Find(&estudiantes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var convocatorias []convModel.ConvocatoriaModel
	if err := h.DB.Order("convocatoria_created_at DESC").Find(&convocatorias).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"estudiantes":   userDTO.FromModels(estudiantes),
		"convocatorias": convDTO.FromModels(convocatorias, c.Query("lang")),
	})
}

/* ===================== helpers ===================== */

func (h *PostulacionController) buscarPreasignada(c *fiber.Ctx) (*postModel.PostulacionModel, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "postulacion_id inválido")
	}
	var post postModel.PostulacionModel
	err = h.DB.Preload("Estudiante").Preload("Convocatoria").Preload("Creador").
		Where("postulacion_id = ? AND postulacion_preasignada = ?", id, true).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Postulación preasignada no encontrada")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &post, nil
}

// aplicarEstadoManual replica las transiciones que un gestor puede forzar
// sobre una preasignación.
func aplicarEstadoManual(post *postModel.PostulacionModel, estado, comentario string, puntaje *float64) {
	switch estado {
	case postModel.EstadoSeleccionado:
		post.MarcarSeleccionado(comentario)
		if puntaje != nil {
			post.PostulacionPuntaje = puntaje
		}
	case postModel.EstadoNoSeleccionado:
		post.MarcarNoSeleccionado(comentario)
	case postModel.EstadoNoElegible:
		if comentario == "" {
			comentario = "No cumple con los requisitos definidos"
		}
		post.MarcarIneligible(comentario)
	case postModel.EstadoElegible:
		valor := 0.0
		if puntaje != nil {
			valor = *puntaje
		}
		resultado := comentario
		if resultado == "" {
			resultado = "preseleccionado"
		}
		post.MarcarElegible(valor, resultado)
	case postModel.EstadoArchivado:
		resultado := "archivada"
		post.PostulacionEstado = postModel.EstadoArchivado
		post.PostulacionResultado = &resultado
		if comentario != "" {
			post.PostulacionRazonesRechazo = &comentario
		} else {
			post.PostulacionRazonesRechazo = nil
		}
	default:
		post.EsperarValidacion()
		if comentario != "" {
			post.PostulacionRazonesRechazo = &comentario
		}
	}
}
