package dto

import (
	"strings"

	convDTO "monitorias_backend/internals/features/convocatorias/convocatoria/dto"
	postModel "monitorias_backend/internals/features/postulaciones/postulacion/model"
	userDTO "monitorias_backend/internals/features/users/user/dto"
	"monitorias_backend/internals/helpers/timeutil"
)

/* ===================== Requests ===================== */

type CrearPostulacionRequest struct {
	Formulario map[string]interface{} `json:"formulario"`
	Soportes   map[string]interface{} `json:"soportes"`
}

type DecisionRequest struct {
	Decision   string `json:"decision" validate:"required,oneof=selected not_selected"`
	Comentario string `json:"comentario"`
}

type CrearPreasignadaRequest struct {
	ConvocatoriaID uint                   `json:"convocatoria_id" validate:"required"`
	EstudianteID   uint                   `json:"estudiante_id" validate:"required"`
	Estado         string                 `json:"estado"`
	Comentario     string                 `json:"comentario"`
	Puntaje        *float64               `json:"puntaje"`
	Formulario     map[string]interface{} `json:"formulario"`
	Soportes       map[string]interface{} `json:"soportes"`
}

type ActualizarPreasignadaRequest struct {
	ConvocatoriaID *uint                  `json:"convocatoria_id"`
	Estado         *string                `json:"estado"`
	Comentario     *string                `json:"comentario"`
	Puntaje        *float64               `json:"puntaje"`
	Formulario     map[string]interface{} `json:"formulario"`
}

// aliasesEstadoPostulacion acepta tanto los valores canónicos como los
// equivalentes en español que manejan los clientes antiguos.
var aliasesEstadoPostulacion = map[string]string{
	"pending":         postModel.EstadoPendiente,
	"espera":          postModel.EstadoPendiente,
	"eligible":        postModel.EstadoElegible,
	"preseleccionado": postModel.EstadoElegible,
	"ineligible":      postModel.EstadoNoElegible,
	"rechazado":       postModel.EstadoNoElegible,
	"selected":        postModel.EstadoSeleccionado,
	"seleccionado":    postModel.EstadoSeleccionado,
	"not_selected":    postModel.EstadoNoSeleccionado,
	"no_seleccionado": postModel.EstadoNoSeleccionado,
	"archived":        postModel.EstadoArchivado,
	"archivada":       postModel.EstadoArchivado,
}

// NormalizarEstadoPostulacion devuelve el estado canónico o "" si no se
// reconoce el valor.
func NormalizarEstadoPostulacion(raw string) string {
	return aliasesEstadoPostulacion[strings.ToLower(strings.TrimSpace(raw))]
}

/* ===================== Responses ===================== */

type PostulacionResponse struct {
	PostulacionID  uint   `json:"postulacion_id"`
	EstudianteID   uint   `json:"estudiante_id"`
	ConvocatoriaID uint   `json:"convocatoria_id"`
	CreadoPorID    *uint  `json:"creado_por_id,omitempty"`
	Estado         string `json:"estado"`

	Puntaje        *float64 `json:"puntaje,omitempty"`
	Resultado      *string  `json:"resultado,omitempty"`
	RazonesRechazo *string  `json:"razones_rechazo,omitempty"`

	Formulario map[string]interface{} `json:"formulario,omitempty"`
	Soportes   map[string]interface{} `json:"soportes,omitempty"`

	Preasignada bool `json:"preasignada"`

	CreadaEn      *timeutil.FechaDual `json:"creada_en"`
	ActualizadaEn *timeutil.FechaDual `json:"actualizada_en"`

	Estudiante   *userDTO.UsuarioResponse      `json:"estudiante,omitempty"`
	Convocatoria *convDTO.ConvocatoriaResponse `json:"convocatoria,omitempty"`
	Creador      *userDTO.UsuarioResponse      `json:"creador,omitempty"`
}

type RankingEntryResponse struct {
	Postulacion PostulacionResponse      `json:"postulacion"`
	Estudiante  *userDTO.UsuarioResponse `json:"estudiante,omitempty"`
	Puntaje     float64                  `json:"puntaje"`
	Resultado   *string                  `json:"resultado,omitempty"`
}

type EvaluacionResponse struct {
	EvaluacionID  uint                   `json:"evaluacion_id"`
	PostulacionID uint                   `json:"postulacion_id"`
	Puntaje       float64                `json:"puntaje"`
	Resultado     string                 `json:"resultado"`
	Detalles      map[string]interface{} `json:"detalles,omitempty"`
}

// FromModel serializa una postulación. El contenido base64 de los soportes
// nunca sale en las respuestas; solo nombre y tamaño.
func FromModel(m *postModel.PostulacionModel, lang string) PostulacionResponse {
	createdAt := m.PostulacionCreatedAt
	updatedAt := m.PostulacionUpdatedAt

	resp := PostulacionResponse{
		PostulacionID:  m.PostulacionID,
		EstudianteID:   m.PostulacionEstudianteID,
		ConvocatoriaID: m.PostulacionConvocatoriaID,
		CreadoPorID:    m.PostulacionCreadoPorID,
		Estado:         m.PostulacionEstado,
		Puntaje:        m.PostulacionPuntaje,
		Resultado:      m.PostulacionResultado,
		RazonesRechazo: m.PostulacionRazonesRechazo,
		Formulario:     m.PostulacionFormulario,
		Soportes:       resumenSoportes(m.PostulacionSoportes),
		Preasignada:    m.PostulacionPreasignada,
		CreadaEn:       timeutil.Dual(&createdAt),
		ActualizadaEn:  timeutil.Dual(&updatedAt),
	}
	if m.Estudiante != nil {
		est := userDTO.FromModel(m.Estudiante)
		resp.Estudiante = &est
	}
	if m.Convocatoria != nil {
		conv := convDTO.FromModel(m.Convocatoria, lang)
		resp.Convocatoria = &conv
	}
	if m.Creador != nil {
		creador := userDTO.FromModel(m.Creador)
		resp.Creador = &creador
	}
	return resp
}

func FromModels(ms []postModel.PostulacionModel, lang string) []PostulacionResponse {
	out := make([]PostulacionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i], lang))
	}
	return out
}

func EvaluacionFromModel(m *postModel.EvaluacionModel) EvaluacionResponse {
	return EvaluacionResponse{
		EvaluacionID:  m.EvaluacionID,
		PostulacionID: m.EvaluacionPostulacionID,
		Puntaje:       m.EvaluacionPuntaje,
		Resultado:     m.EvaluacionResultado,
		Detalles:      m.EvaluacionDetalles,
	}
}

func resumenSoportes(soportes map[string]interface{}) map[string]interface{} {
	if len(soportes) == 0 {
		return nil
	}
	out := map[string]interface{}{}
	if nombre, ok := soportes["cvNombre"]; ok {
		out["cvNombre"] = nombre
	}
	if size, ok := soportes["cvSize"]; ok {
		out["cvSize"] = size
	}
	return out
}
