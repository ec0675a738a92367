package dto

import (
	userDTO "monitorias_backend/internals/features/users/user/dto"
)

/* ===================== REQUESTS ===================== */

type LoginRequest struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=3,max=150"`
	Semestre *string `json:"semestre" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type LoginResponse struct {
	AccessToken string                  `json:"access_token"`
	Rol         string                  `json:"rol"`
	User        userDTO.UsuarioResponse `json:"user"`
}
