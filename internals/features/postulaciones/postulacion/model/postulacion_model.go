package model

import (
	"time"

	"gorm.io/datatypes"

	convModel "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	userModel "monitorias_backend/internals/features/users/user/model"
)

// Estados de una postulación. Puntaje y resultado solo tienen sentido en
// eligible / selected / not_selected.
const (
	EstadoPendiente      = "pending"
	EstadoElegible       = "eligible"
	EstadoNoElegible     = "ineligible"
	EstadoSeleccionado   = "selected"
	EstadoNoSeleccionado = "not_selected"
	EstadoArchivado      = "archived"
)

type PostulacionModel struct {
	PostulacionID uint `gorm:"column:postulacion_id;primaryKey;autoIncrement" json:"postulacion_id"`

	// Máximo una postulación no archivada por (estudiante, convocatoria);
	// el índice parcial es la última línea de defensa contra envíos concurrentes.
	PostulacionEstudianteID   uint `gorm:"column:postulacion_estudiante_id;not null;index:idx_postulacion_par,unique,where:postulacion_estado <> 'archived'" json:"postulacion_estudiante_id"`
	PostulacionConvocatoriaID uint `gorm:"column:postulacion_convocatoria_id;not null;index:idx_postulacion_par,unique,where:postulacion_estado <> 'archived'" json:"postulacion_convocatoria_id"`

	Estudiante   *userModel.UsuarioModel         `gorm:"foreignKey:PostulacionEstudianteID;references:UsuarioID" json:"-"`
	Convocatoria *convModel.ConvocatoriaModel    `gorm:"foreignKey:PostulacionConvocatoriaID;references:ConvocatoriaID;constraint:OnDelete:CASCADE" json:"-"`

	// creado_por se usa en registros ingresados por staff (preasignadas)
	PostulacionCreadoPorID *uint                   `gorm:"column:postulacion_creado_por_id" json:"postulacion_creado_por_id,omitempty"`
	Creador                *userModel.UsuarioModel `gorm:"foreignKey:PostulacionCreadoPorID;references:UsuarioID" json:"-"`

	PostulacionEstado         string   `gorm:"column:postulacion_estado;type:varchar(20);not null;default:pending" json:"postulacion_estado"`
	PostulacionPuntaje        *float64 `gorm:"column:postulacion_puntaje" json:"postulacion_puntaje,omitempty"`
	PostulacionResultado      *string  `gorm:"column:postulacion_resultado;type:varchar(50)" json:"postulacion_resultado,omitempty"`
	PostulacionRazonesRechazo *string  `gorm:"column:postulacion_razones_rechazo;type:text" json:"postulacion_razones_rechazo,omitempty"`

	PostulacionFormulario datatypes.JSONMap `gorm:"column:postulacion_formulario;type:jsonb" json:"postulacion_formulario,omitempty"`
	PostulacionSoportes   datatypes.JSONMap `gorm:"column:postulacion_soportes;type:jsonb" json:"postulacion_soportes,omitempty"`

	PostulacionPreasignada bool `gorm:"column:postulacion_preasignada;not null;default:false" json:"postulacion_preasignada"`

	PostulacionCreatedAt time.Time `gorm:"column:postulacion_created_at;autoCreateTime" json:"postulacion_created_at"`
	PostulacionUpdatedAt time.Time `gorm:"column:postulacion_updated_at;autoUpdateTime" json:"postulacion_updated_at"`
}

func (PostulacionModel) TableName() string {
	return "postulaciones"
}

func (m *PostulacionModel) EsperarValidacion() {
	m.PostulacionEstado = EstadoPendiente
}

func (m *PostulacionModel) MarcarElegible(puntaje float64, resultado string) {
	m.PostulacionEstado = EstadoElegible
	m.PostulacionPuntaje = &puntaje
	m.PostulacionResultado = &resultado
}

func (m *PostulacionModel) MarcarIneligible(razones string) {
	resultado := "descartado"
	m.PostulacionEstado = EstadoNoElegible
	m.PostulacionResultado = &resultado
	m.PostulacionRazonesRechazo = &razones
}

func (m *PostulacionModel) MarcarSeleccionado(comentario string) {
	resultado := "seleccionado"
	m.PostulacionEstado = EstadoSeleccionado
	m.PostulacionResultado = &resultado
	if comentario != "" {
		m.PostulacionRazonesRechazo = &comentario
	}
}

func (m *PostulacionModel) MarcarNoSeleccionado(comentario string) {
	resultado := "no_seleccionado"
	m.PostulacionEstado = EstadoNoSeleccionado
	m.PostulacionResultado = &resultado
	if comentario != "" {
		m.PostulacionRazonesRechazo = &comentario
	}
}

func (m *PostulacionModel) MarcarPreasignada(creadorID uint) {
	m.PostulacionPreasignada = true
	m.PostulacionCreadoPorID = &creadorID
}

func (m *PostulacionModel) CompletarFormulario(formulario map[string]interface{}) {
	if formulario == nil {
		formulario = map[string]interface{}{}
	}
	m.PostulacionFormulario = formulario
}

func (m *PostulacionModel) AdjuntarSoportes(soportes map[string]interface{}) {
	if soportes == nil {
		soportes = map[string]interface{}{}
	}
	m.PostulacionSoportes = soportes
}

type EvaluacionModel struct {
	EvaluacionID            uint              `gorm:"column:evaluacion_id;primaryKey;autoIncrement" json:"evaluacion_id"`
	EvaluacionPostulacionID uint              `gorm:"column:evaluacion_postulacion_id;not null;uniqueIndex" json:"evaluacion_postulacion_id"`
	Postulacion             *PostulacionModel `gorm:"foreignKey:EvaluacionPostulacionID;references:PostulacionID;constraint:OnDelete:CASCADE" json:"-"`

	EvaluacionPuntaje   float64           `gorm:"column:evaluacion_puntaje;not null" json:"evaluacion_puntaje"`
	EvaluacionResultado string            `gorm:"column:evaluacion_resultado;type:varchar(50);not null" json:"evaluacion_resultado"`
	EvaluacionDetalles  datatypes.JSONMap `gorm:"column:evaluacion_detalles;type:jsonb" json:"evaluacion_detalles,omitempty"`

	EvaluacionCreatedAt time.Time `gorm:"column:evaluacion_created_at;autoCreateTime" json:"evaluacion_created_at"`
	EvaluacionUpdatedAt time.Time `gorm:"column:evaluacion_updated_at;autoUpdateTime" json:"evaluacion_updated_at"`
}

func (EvaluacionModel) TableName() string {
	return "evaluaciones"
}

// RegistrarResultado guarda el puntaje con su desglose por componente
// (auditable desde el ranking).
func (m *EvaluacionModel) RegistrarResultado(puntaje float64, resultado string, detalles map[string]float64) {
	m.EvaluacionPuntaje = puntaje
	m.EvaluacionResultado = resultado
	contenido := make(datatypes.JSONMap, len(detalles))
	for k, v := range detalles {
		contenido[k] = v
	}
	m.EvaluacionDetalles = contenido
}
