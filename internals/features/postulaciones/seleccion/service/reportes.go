package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	selModel "monitorias_backend/internals/features/postulaciones/seleccion/model"
	"monitorias_backend/internals/helpers/timeutil"
)

// PeriodoVigente resuelve el periodo para consultas de reportes: el periodo
// académico configurado en el entorno (PERIODO_ACADEMICO) o, en su defecto,
// el mes en curso.
func PeriodoVigente(configurado string, now time.Time) string {
	if p := strings.TrimSpace(configurado); p != "" {
		return p
	}
	return timeutil.Periodo(now)
}

// RegistrarDescartes persiste el reporte de descartes de una convocatoria para
// el periodo de la fecha dada. Si ya existe un reporte para el par
// (convocatoria, periodo) su contenido se reemplaza completo. Sin descartes no
// se crea ni se toca nada.
func RegistrarDescartes(db *gorm.DB, convocatoriaID uint, descartes []Descarte, now time.Time) (*selModel.ReporteDescartesModel, error) {
	if len(descartes) == 0 {
		return nil, nil
	}

	periodo := timeutil.Periodo(now)
	contenido := ReporteDescartados(descartes)

	var reporte selModel.ReporteDescartesModel
	err := db.
		Where("reporte_convocatoria_id = ? AND reporte_periodo = ?", convocatoriaID, periodo).
		First(&reporte).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		reporte = selModel.ReporteDescartesModel{
			ReporteConvocatoriaID: convocatoriaID,
			ReportePeriodo:        periodo,
		}
	}

	reporte.ReporteContenido = contenido
	if err := db.Save(&reporte).Error; err != nil {
		return nil, err
	}
	return &reporte, nil
}

// BuscarReporte devuelve el reporte del periodo dado, o nil si no existe.
func BuscarReporte(db *gorm.DB, convocatoriaID uint, periodo string) (*selModel.ReporteDescartesModel, error) {
	var reporte selModel.ReporteDescartesModel
	err := db.
		Where("reporte_convocatoria_id = ? AND reporte_periodo = ?", convocatoriaID, periodo).
		First(&reporte).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reporte, nil
}

// ConfiguracionVigente devuelve la configuración de selección, creándola con
// los valores por defecto la primera vez.
func ConfiguracionVigente(db *gorm.DB) (selModel.ConfiguracionSeleccionModel, error) {
	var config selModel.ConfiguracionSeleccionModel
	err := db.Order("configuracion_id ASC").First(&config).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return config, err
		}
		config = selModel.ConfiguracionPorDefecto()
		if err := db.Create(&config).Error; err != nil {
			return config, err
		}
	}
	return config, nil
}
