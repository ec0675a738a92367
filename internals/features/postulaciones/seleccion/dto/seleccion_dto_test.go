package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func puntero[T any](v T) *T { return &v }

// Los pesos son valores independientes en [0,1]; no tienen que sumar 1.
func TestActualizarConfiguracionPesosIndependientes(t *testing.T) {
	validate := validator.New()

	casos := []struct {
		nombre  string
		req     ActualizarConfiguracionRequest
		esperaE bool
	}{
		{
			nombre: "pesos que no suman 1 son válidos",
			req: ActualizarConfiguracionRequest{
				PesoSemestre: puntero(0.5),
				PesoPromedio: puntero(0.5),
				PesoHoras:    puntero(0.5),
			},
		},
		{
			nombre: "un solo peso presente",
			req:    ActualizarConfiguracionRequest{PesoHoras: puntero(0.9)},
		},
		{
			nombre:  "peso fuera de rango",
			req:     ActualizarConfiguracionRequest{PesoSemestre: puntero(1.5)},
			esperaE: true,
		},
		{
			nombre:  "promedio mínimo fuera de escala",
			req:     ActualizarConfiguracionRequest{MinPromedio: puntero(6.0)},
			esperaE: true,
		},
		{
			nombre: "mínimos dentro de rango",
			req: ActualizarConfiguracionRequest{
				MinSemestre: puntero(4),
				MinPromedio: puntero(4.2),
			},
		},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			err := validate.Struct(tc.req)
			if tc.esperaE && err == nil {
				t.Fatal("se esperaba error de validación y no hubo")
			}
			if !tc.esperaE && err != nil {
				t.Fatalf("validación inesperada: %v", err)
			}
		})
	}
}
