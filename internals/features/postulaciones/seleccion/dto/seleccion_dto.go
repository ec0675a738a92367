package dto

import (
	selModel "monitorias_backend/internals/features/postulaciones/seleccion/model"
	"monitorias_backend/internals/helpers/timeutil"
)

type ActualizarConfiguracionRequest struct {
	MinSemestre  *int     `json:"min_semestre" validate:"omitempty,min=1,max=10"`
	MinPromedio  *float64 `json:"min_promedio" validate:"omitempty,gte=0,lte=5"`
	PesoSemestre *float64 `json:"peso_semestre" validate:"omitempty,gte=0,lte=1"`
	PesoPromedio *float64 `json:"peso_promedio" validate:"omitempty,gte=0,lte=1"`
	PesoHoras    *float64 `json:"peso_horas" validate:"omitempty,gte=0,lte=1"`
}

type ConfiguracionResponse struct {
	ConfiguracionID uint    `json:"configuracion_id"`
	MinSemestre     int     `json:"min_semestre"`
	MinPromedio     float64 `json:"min_promedio"`
	PesoSemestre    float64 `json:"peso_semestre"`
	PesoPromedio    float64 `json:"peso_promedio"`
	PesoHoras       float64 `json:"peso_horas"`
}

func ConfiguracionFromModel(m selModel.ConfiguracionSeleccionModel) ConfiguracionResponse {
	return ConfiguracionResponse{
		ConfiguracionID: m.ConfiguracionID,
		MinSemestre:     m.ConfiguracionMinSemestre,
		MinPromedio:     m.ConfiguracionMinPromedio,
		PesoSemestre:    m.ConfiguracionPesoSemestre,
		PesoPromedio:    m.ConfiguracionPesoPromedio,
		PesoHoras:       m.ConfiguracionPesoHoras,
	}
}

type ReporteResponse struct {
	ReporteID      uint                   `json:"reporte_id"`
	ConvocatoriaID uint                   `json:"convocatoria_id"`
	Periodo        string                 `json:"periodo"`
	Contenido      map[string]interface{} `json:"contenido"`
	ActualizadoEn  *timeutil.FechaDual    `json:"actualizado_en"`
}

func ReporteFromModel(m *selModel.ReporteDescartesModel) ReporteResponse {
	return ReporteResponse{
		ReporteID:      m.ReporteID,
		ConvocatoriaID: m.ReporteConvocatoriaID,
		Periodo:        m.ReportePeriodo,
		Contenido:      m.ReporteContenido,
		ActualizadoEn:  timeutil.Dual(&m.ReporteUpdatedAt),
	}
}
