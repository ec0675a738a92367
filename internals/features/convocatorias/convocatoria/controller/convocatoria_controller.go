// internals/features/convocatorias/convocatoria/controller/convocatoria_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	convDTO "monitorias_backend/internals/features/convocatorias/convocatoria/dto"
	convModel "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	convService "monitorias_backend/internals/features/convocatorias/convocatoria/service"
	helper "monitorias_backend/internals/helpers"
	"monitorias_backend/internals/helpers/timeutil"
)

type ConvocatoriaController struct{ DB *gorm.DB }

func NewConvocatoriaController(db *gorm.DB) *ConvocatoriaController {
	return &ConvocatoriaController{DB: db}
}

var validateConvocatoria = validator.New()

// ===================== CREATE =====================
// POST /api/convocatorias  (gestores)
func (h *ConvocatoriaController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUsuarioIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req convDTO.CreateConvocatoriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateConvocatoria.Struct(req); err != nil {
		return helper.JsonValidationError(c, erroresPorCampo(err))
	}

	conv := convModel.ConvocatoriaModel{
		ConvocatoriaCurso:       strings.TrimSpace(req.Curso),
		ConvocatoriaSemestre:    strings.TrimSpace(req.Semestre),
		ConvocatoriaRequisitos:  strings.TrimSpace(req.Requisitos),
		ConvocatoriaEstado:      convModel.EstadoBorrador,
		ConvocatoriaCreadoPorID: userID,
	}

	now := timeutil.NowUTC()
	if fe := h.aplicarFechas(&conv, req.FechaApertura, req.FechaCierre, now); fe != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fe.Error())
	}

	convService.RecalcularEstado(&conv, now)

	if err := h.DB.Create(&conv).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "convocatoria creada", convDTO.FromModel(&conv, c.Query("lang")))
}

// ===================== ASIGNAR FECHAS =====================
// PATCH /api/convocatorias/:id/fechas  (gestores)
func (h *ConvocatoriaController) AsignarFechas(c *fiber.Ctx) error {
	conv, ferr := h.buscarConvocatoria(c)
	if ferr != nil {
		return ferr
	}

	now := timeutil.NowUTC()
	convService.RecalcularEstado(conv, now)
	if conv.ConvocatoriaEstado == convModel.EstadoCerrada || conv.ConvocatoriaEstado == convModel.EstadoArchivada {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pueden modificar convocatorias cerradas")
	}

	var req convDTO.AsignarFechasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}

	if fe := h.aplicarFechas(conv, req.FechaApertura, req.FechaCierre, now); fe != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fe.Error())
	}

	convService.RecalcularEstado(conv, now)

	if err := h.DB.Save(conv).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fechas asignadas", convDTO.FromModel(conv, c.Query("lang")))
}

// ===================== EDITAR =====================
// PATCH /api/convocatorias/:id  (gestores)
func (h *ConvocatoriaController) Editar(c *fiber.Ctx) error {
	conv, ferr := h.buscarConvocatoria(c)
	if ferr != nil {
		return ferr
	}

	now := timeutil.NowUTC()
	convService.RecalcularEstado(conv, now)
	if conv.ConvocatoriaEstado == convModel.EstadoCerrada || conv.ConvocatoriaEstado == convModel.EstadoArchivada {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se puede editar una convocatoria cerrada")
	}

	var req convDTO.EditarConvocatoriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateConvocatoria.Struct(req); err != nil {
		return helper.JsonValidationError(c, erroresPorCampo(err))
	}

	cambios := 0
	if req.Curso != nil && strings.TrimSpace(*req.Curso) != "" {
		conv.ConvocatoriaCurso = strings.TrimSpace(*req.Curso)
		cambios++
	}
	if req.Semestre != nil && strings.TrimSpace(*req.Semestre) != "" {
		conv.ConvocatoriaSemestre = strings.TrimSpace(*req.Semestre)
		cambios++
	}
	if req.Requisitos != nil && strings.TrimSpace(*req.Requisitos) != "" {
		conv.ConvocatoriaRequisitos = strings.TrimSpace(*req.Requisitos)
		cambios++
	}
	if cambios == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se proporcionaron cambios válidos")
	}

	convService.RecalcularEstado(conv, now)
	if err := h.DB.Save(conv).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "convocatoria actualizada", convDTO.FromModel(conv, c.Query("lang")))
}

// ===================== LIST =====================
// GET /api/convocatorias
func (h *ConvocatoriaController) List(c *fiber.Ctx) error {
	var q convDTO.ListConvocatoriaQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválido")
	}

	now := timeutil.NowUTC()
	if err := convService.AutoArchivar(h.DB, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tx := h.DB.Model(&convModel.ConvocatoriaModel{})
	switch strings.ToLower(strings.TrimSpace(q.Archivadas)) {
	case "solo", "only", "true", "1", "yes":
		tx = tx.Where("convocatoria_archivada = ?", true)
	case "todas", "all":
		// sin filtro
	default:
		tx = tx.Where("convocatoria_archivada = ?", false)
	}

	var convs []convModel.ConvocatoriaModel
	if err := tx.Order("convocatoria_created_at DESC").Find(&convs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := convService.RecalcularYGuardar(h.DB, convs, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if q.Estado != "" {
		if estado, ok := convDTO.NormalizarEstado(q.Estado); ok {
			filtradas := convs[:0]
			for _, conv := range convs {
				if conv.ConvocatoriaEstado == estado {
					filtradas = append(filtradas, conv)
				}
			}
			convs = filtradas
		}
	}

	// el estado se recalcula en memoria, así que la página se corta después
	// de filtrar
	paging := helper.ResolvePaging(c, 20, 100)
	inicio := paging.Offset
	if inicio > len(convs) {
		inicio = len(convs)
	}
	fin := inicio + paging.Limit
	if fin > len(convs) {
		fin = len(convs)
	}
	pagina := convs[inicio:fin]

	pagination := helper.BuildPaginationFromPage(int64(len(convs)), paging.Page, paging.PerPage)
	pagination.Count = len(pagina)
	return helper.JsonList(c, "", convDTO.FromModels(pagina, q.Lang), &pagination)
}

// GET /api/convocatorias/activas
func (h *ConvocatoriaController) ListActivas(c *fiber.Ctx) error {
	now := timeutil.NowUTC()
	if err := convService.AutoArchivar(h.DB, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var convs []convModel.ConvocatoriaModel
	if err := h.DB.Where("convocatoria_archivada = ?", false).
		Order("convocatoria_created_at DESC").Find(&convs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := convService.RecalcularYGuardar(h.DB, convs, now); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	activas := convs[:0]
	for _, conv := range convs {
		if conv.ConvocatoriaEstado == convModel.EstadoActiva {
			activas = append(activas, conv)
		}
	}
	return helper.JsonList(c, "", convDTO.FromModels(activas, c.Query("lang")), nil)
}

// GET /api/convocatorias/:id
func (h *ConvocatoriaController) Detail(c *fiber.Ctx) error {
	conv, ferr := h.buscarConvocatoria(c)
	if ferr != nil {
		return ferr
	}
	convService.RecalcularEstado(conv, timeutil.NowUTC())
	return helper.JsonOK(c, "", convDTO.FromModel(conv, c.Query("lang")))
}

/* ===================== helpers ===================== */

func (h *ConvocatoriaController) buscarConvocatoria(c *fiber.Ctx) (*convModel.ConvocatoriaModel, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "convocatoria_id inválido")
	}
	var conv convModel.ConvocatoriaModel
	if err := h.DB.First(&conv, "convocatoria_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Convocatoria no encontrada")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &conv, nil
}

// aplicarFechas parsea y valida las fechas entrantes contra "now":
// rechaza fechas en el pasado y cierre <= apertura.
func (h *ConvocatoriaController) aplicarFechas(conv *convModel.ConvocatoriaModel, apertura, cierre *string, now time.Time) error {
	if apertura != nil && strings.TrimSpace(*apertura) != "" {
		fa, err := timeutil.ParseFecha(*apertura, "fecha_apertura")
		if err != nil {
			return err
		}
		if fa.Before(now) {
			return errors.New("fecha_apertura no puede estar en el pasado")
		}
		conv.ConvocatoriaFechaApertura = fa
	}
	if cierre != nil && strings.TrimSpace(*cierre) != "" {
		fc, err := timeutil.ParseFecha(*cierre, "fecha_cierre")
		if err != nil {
			return err
		}
		if fc.Before(now) {
			return errors.New("fecha_cierre no puede estar en el pasado")
		}
		conv.ConvocatoriaFechaCierre = fc
	}
	if conv.ConvocatoriaFechaApertura != nil && conv.ConvocatoriaFechaCierre != nil {
		if !conv.ConvocatoriaFechaCierre.After(*conv.ConvocatoriaFechaApertura) {
			return errors.New("fecha_cierre debe ser posterior a fecha_apertura")
		}
	}
	return nil
}

// erroresPorCampo mapea validator.ValidationErrors → {campo: [mensajes]}
func erroresPorCampo(err error) map[string][]string {
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
