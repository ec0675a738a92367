// internals/features/postulaciones/seleccion/controller/seleccion_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"monitorias_backend/internals/configs"
	selDTO "monitorias_backend/internals/features/postulaciones/seleccion/dto"
	selService "monitorias_backend/internals/features/postulaciones/seleccion/service"
	helper "monitorias_backend/internals/helpers"
	"monitorias_backend/internals/helpers/timeutil"
)

type SeleccionController struct{ DB *gorm.DB }

func NewSeleccionController(db *gorm.DB) *SeleccionController {
	return &SeleccionController{DB: db}
}

var validateSeleccion = validator.New()

// ===================== CONFIGURACIÓN =====================
// GET /api/seleccion/configuracion  (gestores)
func (h *SeleccionController) GetConfiguracion(c *fiber.Ctx) error {
	config, err := selService.ConfiguracionVigente(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", selDTO.ConfiguracionFromModel(config))
}

// PATCH /api/seleccion/configuracion  (gestores)
// Solo ajusta los campos presentes; los pesos son independientes entre sí.
func (h *SeleccionController) UpdateConfiguracion(c *fiber.Ctx) error {
	var req selDTO.ActualizarConfiguracionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateSeleccion.Struct(req); err != nil {
		return helper.JsonValidationError(c, erroresPorCampoSeleccion(err))
	}

	config, err := selService.ConfiguracionVigente(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	cambios := 0
	if req.MinSemestre != nil {
		config.ConfiguracionMinSemestre = *req.MinSemestre
		cambios++
	}
	if req.MinPromedio != nil {
		config.ConfiguracionMinPromedio = *req.MinPromedio
		cambios++
	}
	if req.PesoSemestre != nil {
		config.ConfiguracionPesoSemestre = *req.PesoSemestre
		cambios++
	}
	if req.PesoPromedio != nil {
		config.ConfiguracionPesoPromedio = *req.PesoPromedio
		cambios++
	}
	if req.PesoHoras != nil {
		config.ConfiguracionPesoHoras = *req.PesoHoras
		cambios++
	}
	if cambios == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se proporcionaron cambios válidos")
	}

	if err := h.DB.Save(&config).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "configuración actualizada", selDTO.ConfiguracionFromModel(config))
}

// ===================== REPORTE DE DESCARTES =====================
// GET /api/seleccion/reportes/:convocatoria_id?periodo=YYYY-MM  (gestores)
// Sin periodo explícito se usa el del mes en curso.
func (h *SeleccionController) GetReporte(c *fiber.Ctx) error {
	convocatoriaID, err := strconv.ParseUint(c.Params("convocatoria_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "convocatoria_id inválido")
	}

	periodo := strings.TrimSpace(c.Query("periodo"))
	if periodo == "" {
		periodo = selService.PeriodoVigente(configs.PeriodoAcademico, timeutil.NowUTC())
	}

	reporte, err := selService.BuscarReporte(h.DB, uint(convocatoriaID), periodo)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if reporte == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No hay reporte de descartes para ese periodo")
	}
	return helper.JsonOK(c, "", selDTO.ReporteFromModel(reporte))
}

func erroresPorCampoSeleccion(err error) map[string][]string {
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
