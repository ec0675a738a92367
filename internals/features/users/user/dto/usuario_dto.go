package dto

import (
	"time"

	model "monitorias_backend/internals/features/users/user/model"
)

/* ===================== RESPONSES ===================== */

type UsuarioResponse struct {
	UsuarioID        uint      `json:"usuario_id"`
	UsuarioNombre    string    `json:"usuario_nombre"`
	UsuarioCorreo    string    `json:"usuario_correo"`
	UsuarioRol       string    `json:"usuario_rol"`
	UsuarioCodigo    *string   `json:"usuario_codigo,omitempty"`
	UsuarioSemestre  *string   `json:"usuario_semestre,omitempty"`
	UsuarioPromedio  *float64  `json:"usuario_promedio,omitempty"`
	UsuarioHorasDisp *int      `json:"usuario_horas_disponibles,omitempty"`
	UsuarioCreatedAt time.Time `json:"usuario_created_at"`
}

func FromModel(m *model.UsuarioModel) UsuarioResponse {
	resp := UsuarioResponse{
		UsuarioID:        m.UsuarioID,
		UsuarioNombre:    m.UsuarioNombre,
		UsuarioCorreo:    m.UsuarioCorreo,
		UsuarioRol:       m.UsuarioRol,
		UsuarioCodigo:    m.UsuarioCodigo,
		UsuarioPromedio:  m.UsuarioPromedio,
		UsuarioHorasDisp: m.UsuarioHorasDisp,
		UsuarioCreatedAt: m.UsuarioCreatedAt,
	}
	// el semestre solo aplica a estudiantes
	if m.IsStudent() {
		resp.UsuarioSemestre = m.UsuarioSemestre
	}
	return resp
}

func FromModels(ms []model.UsuarioModel) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
