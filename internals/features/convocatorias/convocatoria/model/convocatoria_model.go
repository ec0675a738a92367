package model

import (
	"time"

	userModel "monitorias_backend/internals/features/users/user/model"
)

// Estados del ciclo de vida. Se derivan siempre de las fechas + el flag de
// archivado; nunca se asignan a mano por fuera de service.RecalcularEstado.
const (
	EstadoBorrador   = "borrador"
	EstadoProgramada = "programada"
	EstadoActiva     = "activa"
	EstadoCerrada    = "cerrada"
	EstadoArchivada  = "archivada"
)

type ConvocatoriaModel struct {
	ConvocatoriaID            uint       `gorm:"column:convocatoria_id;primaryKey;autoIncrement" json:"convocatoria_id"`
	ConvocatoriaCurso         string     `gorm:"column:convocatoria_curso;type:varchar(200);not null" json:"convocatoria_curso"`
	ConvocatoriaSemestre      string     `gorm:"column:convocatoria_semestre;type:varchar(50);not null" json:"convocatoria_semestre"` // etiqueta: "2025-2"
	ConvocatoriaRequisitos    string     `gorm:"column:convocatoria_requisitos;type:text;not null" json:"convocatoria_requisitos"`
	ConvocatoriaFechaApertura *time.Time `gorm:"column:convocatoria_fecha_apertura" json:"convocatoria_fecha_apertura,omitempty"`
	ConvocatoriaFechaCierre   *time.Time `gorm:"column:convocatoria_fecha_cierre" json:"convocatoria_fecha_cierre,omitempty"`
	ConvocatoriaEstado        string     `gorm:"column:convocatoria_estado;type:varchar(20);not null;default:borrador" json:"convocatoria_estado"`
	ConvocatoriaArchivada     bool       `gorm:"column:convocatoria_archivada;not null;default:false" json:"convocatoria_archivada"`
	ConvocatoriaArchivadaAt   *time.Time `gorm:"column:convocatoria_archivada_at" json:"convocatoria_archivada_at,omitempty"`

	ConvocatoriaCreadoPorID uint                    `gorm:"column:convocatoria_creado_por_id;not null;index" json:"convocatoria_creado_por_id"`
	CreadoPor               *userModel.UsuarioModel `gorm:"foreignKey:ConvocatoriaCreadoPorID;references:UsuarioID" json:"-"`

	ConvocatoriaCreatedAt time.Time `gorm:"column:convocatoria_created_at;autoCreateTime" json:"convocatoria_created_at"`
	ConvocatoriaUpdatedAt time.Time `gorm:"column:convocatoria_updated_at;autoUpdateTime" json:"convocatoria_updated_at"`
}

func (ConvocatoriaModel) TableName() string {
	return "convocatorias"
}

// Archivar marca la convocatoria como archivada. Transición monótona:
// nunca se des-archiva.
func (m *ConvocatoriaModel) Archivar(now time.Time) {
	m.ConvocatoriaArchivada = true
	m.ConvocatoriaArchivadaAt = &now
	m.ConvocatoriaEstado = EstadoArchivada
}
