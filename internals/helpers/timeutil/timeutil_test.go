package timeutil

import (
	"testing"
	"time"
)

func TestParseFecha(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string // RFC3339 en UTC; "" = nil esperado
		wantErr bool
	}{
		{name: "rfc3339 con Z", raw: "2025-10-02T15:30:00Z", want: "2025-10-02T15:30:00Z"},
		{name: "rfc3339 con offset", raw: "2025-10-02T10:30:00-05:00", want: "2025-10-02T15:30:00Z"},
		{name: "sin offset se asume UTC", raw: "2025-10-02T15:30:00", want: "2025-10-02T15:30:00Z"},
		{name: "fecha sola", raw: "2025-10-02", want: "2025-10-02T00:00:00Z"},
		{name: "espacio como separador", raw: "2025-10-02 15:30:00", want: "2025-10-02T15:30:00Z"},
		{name: "vacio", raw: "", want: ""},
		{name: "solo espacios", raw: "   ", want: ""},
		{name: "basura", raw: "mañana a las 3", wantErr: true},
		{name: "numeros sueltos", raw: "20251002", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFecha(tt.raw, "fecha_apertura")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFecha(%q) esperaba error, obtuvo %v", tt.raw, got)
				}
				fe, ok := err.(*ErrorFecha)
				if !ok {
					t.Fatalf("error esperado *ErrorFecha, obtuvo %T", err)
				}
				if fe.Campo != "fecha_apertura" {
					t.Errorf("Campo = %q, esperaba fecha_apertura", fe.Campo)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFecha(%q) error inesperado: %v", tt.raw, err)
			}
			if tt.want == "" {
				if got != nil {
					t.Fatalf("ParseFecha(%q) = %v, esperaba nil", tt.raw, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseFecha(%q) = nil, esperaba %s", tt.raw, tt.want)
			}
			if got.Format(time.RFC3339) != tt.want {
				t.Errorf("ParseFecha(%q) = %s, esperaba %s", tt.raw, got.Format(time.RFC3339), tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseFecha(%q) no quedó en UTC", tt.raw)
			}
		})
	}
}

func TestErrorFechaMensaje(t *testing.T) {
	_, err := ParseFecha("xx", "fecha_cierre")
	if err == nil {
		t.Fatal("esperaba error")
	}
	msg := err.Error()
	if msg != "Formato de fecha_cierre inválido: 'xx' (usar ISO 8601, ej: 2025-10-02T15:30:00Z)" {
		t.Errorf("mensaje inesperado: %s", msg)
	}
}

func TestDual(t *testing.T) {
	utc := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	d := Dual(&utc)
	if d.UTC != "2025-03-10T15:00:00Z" {
		t.Errorf("UTC = %s", d.UTC)
	}
	if d.Local != "2025-03-10T10:00:00-05:00" {
		t.Errorf("Local = %s", d.Local)
	}
	if Dual(nil) != nil {
		t.Error("Dual(nil) debe ser nil")
	}
}

func TestPeriodo(t *testing.T) {
	now := time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)
	if got := Periodo(now); got != "2025-03" {
		t.Errorf("Periodo = %s, esperaba 2025-03", got)
	}
	// un instante con offset se normaliza a UTC antes de etiquetar
	bogota := time.Date(2025, 3, 31, 20, 0, 0, 0, ZonaColombia) // 2025-04-01T01:00Z
	if got := Periodo(bogota); got != "2025-04" {
		t.Errorf("Periodo = %s, esperaba 2025-04", got)
	}
}
