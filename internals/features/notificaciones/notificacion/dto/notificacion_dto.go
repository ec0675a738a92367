package dto

import (
	notifModel "monitorias_backend/internals/features/notificaciones/notificacion/model"
	"monitorias_backend/internals/helpers/timeutil"
)

type CrearNotificacionRequest struct {
	UsuarioID uint                   `json:"usuario_id"`
	Titulo    string                 `json:"titulo" validate:"required,max=200"`
	Mensaje   string                 `json:"mensaje" validate:"required"`
	Tipo      string                 `json:"tipo" validate:"omitempty,oneof=info success warning error"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type NotificacionResponse struct {
	NotificacionID uint                   `json:"notificacion_id"`
	UsuarioID      uint                   `json:"usuario_id"`
	Titulo         string                 `json:"titulo"`
	Mensaje        string                 `json:"mensaje"`
	Tipo           string                 `json:"tipo"`
	Leida          bool                   `json:"leida"`
	LeidaEn        *timeutil.FechaDual    `json:"leida_en,omitempty"`
	Payload        map[string]interface{} `json:"payload,omitempty"`
	CreadaEn       *timeutil.FechaDual    `json:"creada_en"`
}

func FromModel(m *notifModel.NotificacionModel) NotificacionResponse {
	createdAt := m.NotificacionCreatedAt
	return NotificacionResponse{
		NotificacionID: m.NotificacionID,
		UsuarioID:      m.NotificacionUsuarioID,
		Titulo:         m.NotificacionTitulo,
		Mensaje:        m.NotificacionMensaje,
		Tipo:           m.NotificacionTipo,
		Leida:          m.NotificacionLeida,
		LeidaEn:        timeutil.Dual(m.NotificacionLeidaAt),
		Payload:        m.NotificacionPayload,
		CreadaEn:       timeutil.Dual(&createdAt),
	}
}

func FromModels(ms []notifModel.NotificacionModel) []NotificacionResponse {
	out := make([]NotificacionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
