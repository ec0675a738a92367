package service

import (
	"testing"
	"time"
)

func TestPeriodoVigente(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	casos := []struct {
		nombre      string
		configurado string
		quiere      string
	}{
		{"periodo configurado manda", "2026-02", "2026-02"},
		{"configurado con espacios se limpia", "  2026-02  ", "2026-02"},
		{"sin configuración cae al mes en curso", "", "2026-09"},
		{"solo espacios equivale a vacío", "   ", "2026-09"},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			if got := PeriodoVigente(tc.configurado, now); got != tc.quiere {
				t.Errorf("PeriodoVigente(%q) = %q, se esperaba %q", tc.configurado, got, tc.quiere)
			}
		})
	}
}
