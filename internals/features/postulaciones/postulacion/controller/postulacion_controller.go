// internals/features/postulaciones/postulacion/controller/postulacion_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"monitorias_backend/internals/configs"
	convDTO "monitorias_backend/internals/features/convocatorias/convocatoria/dto"
	convModel "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	convService "monitorias_backend/internals/features/convocatorias/convocatoria/service"
	notifModel "monitorias_backend/internals/features/notificaciones/notificacion/model"
	notifService "monitorias_backend/internals/features/notificaciones/notificacion/service"
	postDTO "monitorias_backend/internals/features/postulaciones/postulacion/dto"
	postModel "monitorias_backend/internals/features/postulaciones/postulacion/model"
	postService "monitorias_backend/internals/features/postulaciones/postulacion/service"
	selService "monitorias_backend/internals/features/postulaciones/seleccion/service"
	userModel "monitorias_backend/internals/features/users/user/model"
	helper "monitorias_backend/internals/helpers"
	"monitorias_backend/internals/helpers/timeutil"
)

type PostulacionController struct{ DB *gorm.DB }

func NewPostulacionController(db *gorm.DB) *PostulacionController {
	return &PostulacionController{DB: db}
}

var validatePostulacion = validator.New()

// ===================== SUBMIT =====================
// POST /api/convocatorias/:convocatoria_id/postulaciones  (estudiantes)
//
// Pipeline completo: gate de convocatoria, duplicado, soportes, creación en
// pending, requisitos del texto de la convocatoria, filtro/puntaje global,
// evaluación, reporte de descartes y exactamente una notificación.
// 201 si quedó elegible, 202 si quedó descartada.
func (h *PostulacionController) Submit(c *fiber.Ctx) error {
	estudiante, err := h.usuarioActual(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !estudiante.IsStudent() {
		return helper.JsonError(c, fiber.StatusForbidden, "Solo los estudiantes pueden postularse")
	}

	conv, ferr := h.buscarConvocatoria(c, "convocatoria_id")
	if ferr != nil {
		return ferr
	}

	now := timeutil.NowUTC()
	if err := convService.AutoArchivar(h.DB, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	convService.RecalcularEstado(conv, now)
	if conv.ConvocatoriaArchivada ||
		conv.ConvocatoriaEstado == convModel.EstadoCerrada ||
		conv.ConvocatoriaEstado == convModel.EstadoArchivada {
		return helper.JsonError(c, fiber.StatusBadRequest, "La convocatoria no admite nuevas postulaciones")
	}

	var existente postModel.PostulacionModel
	err = h.DB.
		Where("postulacion_estudiante_id = ? AND postulacion_convocatoria_id = ? AND postulacion_estado <> ?",
			estudiante.UsuarioID, conv.ConvocatoriaID, postModel.EstadoArchivado).
		First(&existente).Error
	if err == nil {
		return helper.JsonErrorData(c, fiber.StatusConflict,
			"Ya existe una postulación para esta convocatoria",
			fiber.Map{"postulacion": postDTO.FromModel(&existente, c.Query("lang"))})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req postDTO.CrearPostulacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	soportes, err := postService.ValidarSoportes(req.Soportes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	post := postModel.PostulacionModel{
		PostulacionEstudianteID:   estudiante.UsuarioID,
		PostulacionConvocatoriaID: conv.ConvocatoriaID,
	}
	post.CompletarFormulario(req.Formulario)
	post.AdjuntarSoportes(soportes)
	post.EsperarValidacion()

	var (
		evaluacion *postModel.EvaluacionModel
		descartes  []selService.Descarte
		reporte    interface{}
	)

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		// el filtro y el puntaje leen el perfil del estudiante
		post.Estudiante = estudiante

		esValido, razones := convService.ValidarRequisitos(conv, estudiante)
		if !esValido {
			motivo := strings.Join(razones, "; ")
			if motivo == "" {
				motivo = "No cumple requisitos"
			}
			post.MarcarIneligible(motivo)
			if len(razones) == 0 {
				razones = []string{"No cumple requisitos de la convocatoria"}
			}
			descartes = append(descartes, selService.Descarte{
				PostulacionID:  post.PostulacionID,
				EstudianteID:   estudiante.UsuarioID,
				ConvocatoriaID: conv.ConvocatoriaID,
				Razones:        pq.StringArray(razones),
			})
		} else {
			config, err := selService.ConfiguracionVigente(tx)
			if err != nil {
				return err
			}
			sel := selService.NewSeleccionador(config)

			elegibles, descartados := sel.Filtrar([]*postModel.PostulacionModel{&post})
			descartes = append(descartes, descartados...)

			if len(elegibles) > 0 {
				ranking := sel.Clasificar(elegibles)
				detalles := map[string]float64{}
				if len(ranking) > 0 {
					detalles = ranking[0].Detalles
				}
				ev := postModel.EvaluacionModel{EvaluacionPostulacionID: post.PostulacionID}
				puntaje := 0.0
				if post.PostulacionPuntaje != nil {
					puntaje = *post.PostulacionPuntaje
				}
				resultado := "pre-seleccionado"
				if post.PostulacionResultado != nil {
					resultado = *post.PostulacionResultado
				}
				ev.RegistrarResultado(puntaje, resultado, detalles)
				if err := tx.Create(&ev).Error; err != nil {
					return err
				}
				evaluacion = &ev
			} else {
				motivos := []string{"No supera filtros automáticos"}
				if len(descartados) > 0 && len(descartados[0].Razones) > 0 {
					motivos = []string(descartados[0].Razones)
				}
				post.MarcarIneligible(strings.Join(motivos, "; "))
			}
		}

		if err := tx.Save(&post).Error; err != nil {
			return err
		}

		rep, err := selService.RegistrarDescartes(tx, conv.ConvocatoriaID, descartes, now)
		if err != nil {
			return err
		}
		if rep != nil {
			reporte = rep
		}
		return nil
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	h.notificarResultadoPostulacion(&post, conv, evaluacion)

	lang := c.Query("lang")
	respuesta := fiber.Map{
		"postulacion":  postDTO.FromModel(&post, lang),
		"convocatoria": convDTO.FromModel(conv, lang),
	}
	if evaluacion != nil {
		respuesta["evaluacion"] = postDTO.EvaluacionFromModel(evaluacion)
	}
	if len(descartes) > 0 {
		respuesta["descartados"] = descartes
	}
	if reporte != nil {
		respuesta["reporte"] = reporte
	}

	if post.PostulacionEstado == postModel.EstadoElegible {
		return helper.JsonCreated(c, "postulación registrada", respuesta)
	}
	return helper.JsonAccepted(c, "postulación registrada sin avanzar", respuesta)
}

// notificarResultadoPostulacion emite la única notificación del envío.
// Un fallo aquí no afecta la postulación ya confirmada: solo se loguea.
func (h *PostulacionController) notificarResultadoPostulacion(post *postModel.PostulacionModel, conv *convModel.ConvocatoriaModel, evaluacion *postModel.EvaluacionModel) {
	metadata := map[string]interface{}{
		"convocatoria_id": conv.ConvocatoriaID,
		"postulacion_id":  post.PostulacionID,
		"estado":          post.PostulacionEstado,
	}

	var nueva notifService.Nueva
	switch post.PostulacionEstado {
	case postModel.EstadoElegible:
		puntaje := 0.0
		if post.PostulacionPuntaje != nil {
			puntaje = *post.PostulacionPuntaje
		}
		if evaluacion != nil {
			metadata["detalles"] = map[string]interface{}(evaluacion.EvaluacionDetalles)
		}
		nueva = notifService.Nueva{
			UsuarioID: post.PostulacionEstudianteID,
			Titulo:    fmt.Sprintf("Postulación aprobada - %s", conv.ConvocatoriaCurso),
			Mensaje:   fmt.Sprintf("Tu postulación a %s fue pre-seleccionada con puntaje %.1f.", conv.ConvocatoriaCurso, puntaje),
			Tipo:      notifModel.TipoSuccess,
			Payload:   metadata,
		}
	case postModel.EstadoNoElegible:
		motivos := "No supera los requisitos de la convocatoria."
		if post.PostulacionRazonesRechazo != nil && *post.PostulacionRazonesRechazo != "" {
			motivos = *post.PostulacionRazonesRechazo
		}
		metadata["motivos"] = motivos
		nueva = notifService.Nueva{
			UsuarioID: post.PostulacionEstudianteID,
			Titulo:    fmt.Sprintf("Postulación no elegible - %s", conv.ConvocatoriaCurso),
			Mensaje:   fmt.Sprintf("Tu postulación a %s no avanzó en el proceso. Motivos: %s.", conv.ConvocatoriaCurso, motivos),
			Tipo:      notifModel.TipoWarning,
			Payload:   metadata,
		}
	default:
		return
	}

	if _, err := notifService.Crear(h.DB, nueva); err != nil {
		log.Printf("[ERROR] notificación de postulación %d: %v", post.PostulacionID, err)
	}
}

// ===================== LIST =====================
// GET /api/convocatorias/:convocatoria_id/postulaciones
// Estudiantes ven solo las propias. ?estado=elegibles|descartadas filtra;
// ?view=ranking devuelve solo eligible/selected ordenadas por puntaje; para
// gestores se adjunta el reporte de descartes del periodo (?periodo=YYYY-MM).
func (h *PostulacionController) Listar(c *fiber.Ctx) error {
	usuario, err := h.usuarioActual(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	conv, ferr := h.buscarConvocatoria(c, "convocatoria_id")
	if ferr != nil {
		return ferr
	}

	now := timeutil.NowUTC()
	if err := convService.AutoArchivar(h.DB, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	convService.RecalcularEstado(conv, now)

	q := h.DB.Preload("Estudiante").
		Where("postulacion_convocatoria_id = ?", conv.ConvocatoriaID)
	if usuario.IsStudent() {
		q = q.Where("postulacion_estudiante_id = ?", usuario.UsuarioID)
	}

	var postulaciones []postModel.PostulacionModel
	if err := q.Order("postulacion_created_at ASC").Find(&postulaciones).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	switch strings.ToLower(c.Query("estado")) {
	case "descartadas":
		postulaciones = filtrarPorEstado(postulaciones, postModel.EstadoNoElegible)
	case "elegibles":
		postulaciones = filtrarPorEstado(postulaciones, postModel.EstadoElegible)
	}

	lang := c.Query("lang")

	if strings.ToLower(c.Query("view")) == "ranking" {
		ranking := make([]postDTO.RankingEntryResponse, 0, len(postulaciones))
		for i := range postulaciones {
			p := &postulaciones[i]
			if p.PostulacionEstado != postModel.EstadoElegible && p.PostulacionEstado != postModel.EstadoSeleccionado {
				continue
			}
			entry := postDTO.RankingEntryResponse{
				Postulacion: postDTO.FromModel(p, lang),
				Resultado:   p.PostulacionResultado,
			}
			if p.PostulacionPuntaje != nil {
				entry.Puntaje = *p.PostulacionPuntaje
			}
			entry.Estudiante = entry.Postulacion.Estudiante
			ranking = append(ranking, entry)
		}
		sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Puntaje > ranking[j].Puntaje })
		return helper.JsonOK(c, "", fiber.Map{
			"convocatoria": convDTO.FromModel(conv, lang),
			"ranking":      ranking,
		})
	}

	respuesta := fiber.Map{
		"convocatoria":  convDTO.FromModel(conv, lang),
		"postulaciones": postDTO.FromModels(postulaciones, lang),
	}
	if !usuario.IsStudent() {
		periodo := strings.TrimSpace(c.Query("periodo"))
		if periodo == "" {
			periodo = selService.PeriodoVigente(configs.PeriodoAcademico, now)
		}
		reporte, err := selService.BuscarReporte(h.DB, conv.ConvocatoriaID, periodo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if reporte != nil {
			respuesta["reporte_descartes"] = reporte
		}
	}
	return helper.JsonOK(c, "", respuesta)
}

// ===================== DECISION =====================
// PATCH /api/convocatorias/:convocatoria_id/postulaciones/:postulacion_id/decision  (gestores)
func (h *PostulacionController) Decidir(c *fiber.Ctx) error {
	gestor, err := h.usuarioActual(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !gestor.EsGestor() {
		return helper.JsonError(c, fiber.StatusForbidden, "Solo coordinadores y profesores pueden registrar decisiones")
	}

	conv, ferr := h.buscarConvocatoria(c, "convocatoria_id")
	if ferr != nil {
		return ferr
	}

	postID, err := strconv.ParseUint(c.Params("postulacion_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "postulacion_id inválido")
	}
	var post postModel.PostulacionModel
	err = h.DB.Preload("Estudiante").
		Where("postulacion_id = ? AND postulacion_convocatoria_id = ?", postID, conv.ConvocatoriaID).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Postulación no encontrada")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	switch post.PostulacionEstado {
	case postModel.EstadoElegible, postModel.EstadoSeleccionado, postModel.EstadoNoSeleccionado:
		// elegible para decidir, o corrección de una decisión previa
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "La postulación no está en un estado que admita decisión")
	}

	var req postDTO.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	req.Decision = strings.ToLower(strings.TrimSpace(req.Decision))
	req.Comentario = strings.TrimSpace(req.Comentario)
	if err := validatePostulacion.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Decisión inválida")
	}

	var titulo, mensaje, tipo string
	if req.Decision == "selected" {
		post.MarcarSeleccionado(req.Comentario)
		titulo = fmt.Sprintf("Has sido seleccionado(a) como monitor de %s", conv.ConvocatoriaCurso)
		mensaje = fmt.Sprintf("Felicitaciones, has sido asignado(a) como monitor de %s.", conv.ConvocatoriaCurso)
		if req.Comentario != "" {
			mensaje += " Observaciones: " + req.Comentario
		}
		tipo = notifModel.TipoSuccess
	} else {
		post.MarcarNoSeleccionado(req.Comentario)
		titulo = fmt.Sprintf("Resultado de la convocatoria %s", conv.ConvocatoriaCurso)
		mensaje = "Gracias por participar. En esta ocasión no fuiste seleccionado(a)."
		if req.Comentario != "" {
			mensaje += " Motivo: " + req.Comentario
		}
		tipo = notifModel.TipoWarning
	}

	if err := h.DB.Save(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	metadata := map[string]interface{}{
		"convocatoria_id": conv.ConvocatoriaID,
		"postulacion_id":  post.PostulacionID,
		"decision":        req.Decision,
	}
	if req.Comentario != "" {
		metadata["comentario"] = req.Comentario
	}

	// La decisión ya quedó persistida; un fallo al notificar solo genera una
	// alerta al gestor, y si esa también falla se registra y se sigue.
	if _, err := notifService.Crear(h.DB, notifService.Nueva{
		UsuarioID: post.PostulacionEstudianteID,
		Titulo:    titulo,
		Mensaje:   mensaje,
		Tipo:      tipo,
		Payload:   metadata,
	}); err != nil {
		log.Printf("[ERROR] notificación de decisión (postulación %d): %v", post.PostulacionID, err)
		nombre := "el estudiante"
		if post.Estudiante != nil {
			nombre = post.Estudiante.UsuarioNombre
		}
		metadata["error"] = err.Error()
		if _, errAlerta := notifService.Crear(h.DB, notifService.Nueva{
			UsuarioID: gestor.UsuarioID,
			Titulo:    "Fallo en notificación",
			Mensaje:   fmt.Sprintf("No fue posible notificar a %s sobre la decisión.", nombre),
			Tipo:      notifModel.TipoError,
			Payload:   metadata,
		}); errAlerta != nil {
			log.Printf("[ERROR] alerta de fallo de notificación: %v", errAlerta)
		}
	}

	return helper.JsonUpdated(c, "decisión registrada", fiber.Map{
		"postulacion": postDTO.FromModel(&post, c.Query("lang")),
	})
}

/* ===================== helpers ===================== */

func (h *PostulacionController) usuarioActual(c *fiber.Ctx) (*userModel.UsuarioModel, error) {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var usuario userModel.UsuarioModel
	if err := h.DB.First(&usuario, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &usuario, nil
}

func (h *PostulacionController) buscarConvocatoria(c *fiber.Ctx, param string) (*convModel.ConvocatoriaModel, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "convocatoria_id inválido")
	}
	var conv convModel.ConvocatoriaModel
	if err := h.DB.First(&conv, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Convocatoria no encontrada")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &conv, nil
}

func filtrarPorEstado(postulaciones []postModel.PostulacionModel, estado string) []postModel.PostulacionModel {
	out := postulaciones[:0]
	for _, p := range postulaciones {
		if p.PostulacionEstado == estado {
			out = append(out, p)
		}
	}
	return out
}
