package model

import (
	"time"

	"gorm.io/datatypes"

	convModel "monitorias_backend/internals/features/convocatorias/convocatoria/model"
)

/* ===================== Configuración de selección ===================== */

// ConfiguracionSeleccionModel es un registro único: umbrales mínimos y pesos
// del puntaje. Los gestores lo ajustan vía API; si no existe se crea con los
// valores por defecto.
type ConfiguracionSeleccionModel struct {
	ConfiguracionID uint `gorm:"column:configuracion_id;primaryKey;autoIncrement" json:"configuracion_id"`

	ConfiguracionMinSemestre int     `gorm:"column:configuracion_min_semestre;not null;default:3" json:"configuracion_min_semestre"`
	ConfiguracionMinPromedio float64 `gorm:"column:configuracion_min_promedio;not null;default:3.5" json:"configuracion_min_promedio"`

	ConfiguracionPesoSemestre float64 `gorm:"column:configuracion_peso_semestre;not null;default:0.4" json:"configuracion_peso_semestre"`
	ConfiguracionPesoPromedio float64 `gorm:"column:configuracion_peso_promedio;not null;default:0.4" json:"configuracion_peso_promedio"`
	ConfiguracionPesoHoras    float64 `gorm:"column:configuracion_peso_horas;not null;default:0.2" json:"configuracion_peso_horas"`

	ConfiguracionUpdatedAt time.Time `gorm:"column:configuracion_updated_at;autoUpdateTime" json:"configuracion_updated_at"`
}

func (ConfiguracionSeleccionModel) TableName() string {
	return "configuraciones_seleccion"
}

// ConfiguracionPorDefecto replica los valores default de las columnas para
// poder sembrar el registro sin rondar por la base.
func ConfiguracionPorDefecto() ConfiguracionSeleccionModel {
	return ConfiguracionSeleccionModel{
		ConfiguracionMinSemestre:  3,
		ConfiguracionMinPromedio:  3.5,
		ConfiguracionPesoSemestre: 0.4,
		ConfiguracionPesoPromedio: 0.4,
		ConfiguracionPesoHoras:    0.2,
	}
}

/* ===================== Reporte de descartes ===================== */

// ReporteDescartesModel acumula los descartes de una convocatoria por periodo
// académico (formato "YYYY-MM"). El contenido se reemplaza completo en cada
// corrida de selección.
type ReporteDescartesModel struct {
	ReporteID uint `gorm:"column:reporte_id;primaryKey;autoIncrement" json:"reporte_id"`

	ReporteConvocatoriaID uint                         `gorm:"column:reporte_convocatoria_id;not null;index:idx_reporte_conv_periodo,unique" json:"reporte_convocatoria_id"`
	Convocatoria          *convModel.ConvocatoriaModel `gorm:"foreignKey:ReporteConvocatoriaID;references:ConvocatoriaID;constraint:OnDelete:CASCADE" json:"-"`

	ReportePeriodo   string            `gorm:"column:reporte_periodo;type:varchar(7);not null;index:idx_reporte_conv_periodo,unique" json:"reporte_periodo"`
	ReporteContenido datatypes.JSONMap `gorm:"column:reporte_contenido;type:jsonb" json:"reporte_contenido"`

	ReporteCreatedAt time.Time `gorm:"column:reporte_created_at;autoCreateTime" json:"reporte_created_at"`
	ReporteUpdatedAt time.Time `gorm:"column:reporte_updated_at;autoUpdateTime" json:"reporte_updated_at"`
}

func (ReporteDescartesModel) TableName() string {
	return "reportes_descartes"
}
