package model

import (
	"time"

	convModel "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	userModel "monitorias_backend/internals/features/users/user/model"
)

// InscripcionModel registra el interés de un estudiante en una monitoría.
// A diferencia de la postulación no pasa por evaluación: es una sola fila
// por (estudiante, convocatoria).
type InscripcionModel struct {
	InscripcionID uint `gorm:"column:inscripcion_id;primaryKey;autoIncrement" json:"inscripcion_id"`

	InscripcionEstudianteID   uint `gorm:"column:inscripcion_estudiante_id;not null;uniqueIndex:idx_inscripcion_par" json:"inscripcion_estudiante_id"`
	InscripcionConvocatoriaID uint `gorm:"column:inscripcion_convocatoria_id;not null;uniqueIndex:idx_inscripcion_par" json:"inscripcion_convocatoria_id"`

	Estudiante   *userModel.UsuarioModel      `gorm:"foreignKey:InscripcionEstudianteID;references:UsuarioID" json:"-"`
	Convocatoria *convModel.ConvocatoriaModel `gorm:"foreignKey:InscripcionConvocatoriaID;references:ConvocatoriaID;constraint:OnDelete:CASCADE" json:"-"`

	InscripcionComentario       *string `gorm:"column:inscripcion_comentario;type:text" json:"inscripcion_comentario,omitempty"`
	InscripcionHorarioPreferido *string `gorm:"column:inscripcion_horario_preferido;type:varchar(100)" json:"inscripcion_horario_preferido,omitempty"`

	InscripcionCreatedAt time.Time `gorm:"column:inscripcion_created_at;autoCreateTime" json:"inscripcion_created_at"`
}

func (InscripcionModel) TableName() string {
	return "inscripciones_monitoria"
}
