package service

import (
	"time"

	"gorm.io/gorm"

	model "monitorias_backend/internals/features/convocatorias/convocatoria/model"
)

// RecalcularEstado deriva el estado de una convocatoria a partir de sus
// fechas, el flag de archivado y "now". Es una función pura de esos tres
// insumos: llamarla dos veces con lo mismo da lo mismo.
//
// Orden de las reglas (importa):
//  1. archivada → ARCHIVADA, corto circuito.
//  2. apertura pasada y cierre futuro/ausente → ACTIVA.
//  3. apertura futura → PROGRAMADA.
//  4. cierre pasado → CERRADA. Se evalúa de última para que un cierre
//     vencido siempre gane sobre lo que digan las reglas 2-3.
//  5. sin fechas → conserva el estado persistido (queda en borrador).
func RecalcularEstado(conv *model.ConvocatoriaModel, now time.Time) string {
	if conv.ConvocatoriaArchivada {
		conv.ConvocatoriaEstado = model.EstadoArchivada
		return conv.ConvocatoriaEstado
	}

	fa := conv.ConvocatoriaFechaApertura
	fc := conv.ConvocatoriaFechaCierre

	if fa != nil && !fa.After(now) && (fc == nil || fc.After(now)) {
		conv.ConvocatoriaEstado = model.EstadoActiva
	} else if fa != nil && fa.After(now) {
		conv.ConvocatoriaEstado = model.EstadoProgramada
	}
	if fc != nil && !fc.After(now) {
		conv.ConvocatoriaEstado = model.EstadoCerrada
	}
	return conv.ConvocatoriaEstado
}

// AutoArchivar recorre las convocatorias no archivadas, recalcula su estado
// y archiva las que quedaron cerradas con fecha de cierre vencida.
// Idempotente: una segunda pasada no toca registros ya archivados.
func AutoArchivar(db *gorm.DB, now time.Time) error {
	var convs []model.ConvocatoriaModel
	if err := db.Where("convocatoria_archivada = ?", false).Find(&convs).Error; err != nil {
		return err
	}

	for i := range convs {
		conv := &convs[i]
		RecalcularEstado(conv, now)
		if conv.ConvocatoriaEstado == model.EstadoCerrada &&
			conv.ConvocatoriaFechaCierre != nil &&
			!conv.ConvocatoriaFechaCierre.After(now) {
			conv.Archivar(now)
			if err := db.Save(conv).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// RecalcularYGuardar recalcula el estado de un lote y persiste los que
// cambiaron. Se usa en los listados para que el estado mostrado nunca
// esté desfasado de las fechas.
func RecalcularYGuardar(db *gorm.DB, convs []model.ConvocatoriaModel, now time.Time) error {
	for i := range convs {
		conv := &convs[i]
		anterior := conv.ConvocatoriaEstado
		RecalcularEstado(conv, now)
		if conv.ConvocatoriaEstado != anterior {
			if err := db.Model(&model.ConvocatoriaModel{}).
				Where("convocatoria_id = ?", conv.ConvocatoriaID).
				Update("convocatoria_estado", conv.ConvocatoriaEstado).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
