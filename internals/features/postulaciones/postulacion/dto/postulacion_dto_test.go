package dto

import (
	"testing"

	postModel "monitorias_backend/internals/features/postulaciones/postulacion/model"
)

func TestNormalizarEstadoPostulacion(t *testing.T) {
	casos := []struct {
		entrada string
		quiere  string
	}{
		{"selected", postModel.EstadoSeleccionado},
		{"seleccionado", postModel.EstadoSeleccionado},
		{"  SELECCIONADO ", postModel.EstadoSeleccionado},
		{"no_seleccionado", postModel.EstadoNoSeleccionado},
		{"preseleccionado", postModel.EstadoElegible},
		{"rechazado", postModel.EstadoNoElegible},
		{"archivada", postModel.EstadoArchivado},
		{"espera", postModel.EstadoPendiente},
		{"cualquier_cosa", ""},
		{"", ""},
	}

	for _, tc := range casos {
		if got := NormalizarEstadoPostulacion(tc.entrada); got != tc.quiere {
			t.Errorf("NormalizarEstadoPostulacion(%q) = %q, se esperaba %q", tc.entrada, got, tc.quiere)
		}
	}
}
