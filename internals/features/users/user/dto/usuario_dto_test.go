package dto

import (
	"testing"

	"monitorias_backend/internals/constants"
	model "monitorias_backend/internals/features/users/user/model"
)

func puntero[T any](v T) *T { return &v }

func TestFromModelsConservaOrdenYSemestre(t *testing.T) {
	usuarios := []model.UsuarioModel{
		{
			UsuarioID:       1,
			UsuarioNombre:   "Ana López",
			UsuarioCorreo:   "ana@udem.edu.co",
			UsuarioRol:      constants.RoleStudent,
			UsuarioSemestre: puntero("4"),
		},
		{
			UsuarioID:       2,
			UsuarioNombre:   "Dr. Pedro Martínez",
			UsuarioCorreo:   "profesor@udem.edu.co",
			UsuarioRol:      constants.RoleProfessor,
			UsuarioSemestre: puntero("9"), // dato residual, no debe exponerse
		},
	}

	got := FromModels(usuarios)
	if len(got) != 2 {
		t.Fatalf("FromModels devolvió %d elementos, se esperaban 2", len(got))
	}
	if got[0].UsuarioID != 1 || got[1].UsuarioID != 2 {
		t.Errorf("el orden de entrada no se conservó: %v, %v", got[0].UsuarioID, got[1].UsuarioID)
	}
	if got[0].UsuarioSemestre == nil || *got[0].UsuarioSemestre != "4" {
		t.Errorf("el semestre del estudiante no se expuso: %v", got[0].UsuarioSemestre)
	}
	if got[1].UsuarioSemestre != nil {
		t.Errorf("el semestre solo aplica a estudiantes, se expuso %q", *got[1].UsuarioSemestre)
	}
}
