package service

import (
	"testing"
	"time"

	model "monitorias_backend/internals/features/convocatorias/convocatoria/model"
)

func fecha(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	u := t.UTC()
	return &u
}

func TestRecalcularEstado(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		apertura  *time.Time
		cierre    *time.Time
		archivada bool
		previo    string
		want      string
	}{
		{
			name:   "sin fechas conserva borrador",
			previo: model.EstadoBorrador,
			want:   model.EstadoBorrador,
		},
		{
			name:     "apertura pasada sin cierre",
			apertura: fecha("2025-06-01T00:00:00Z"),
			previo:   model.EstadoBorrador,
			want:     model.EstadoActiva,
		},
		{
			name:     "apertura pasada y cierre futuro",
			apertura: fecha("2025-06-01T00:00:00Z"),
			cierre:   fecha("2025-07-01T00:00:00Z"),
			previo:   model.EstadoBorrador,
			want:     model.EstadoActiva,
		},
		{
			name:     "apertura futura",
			apertura: fecha("2025-07-01T00:00:00Z"),
			previo:   model.EstadoBorrador,
			want:     model.EstadoProgramada,
		},
		{
			name:     "cierre vencido gana sobre activa",
			apertura: fecha("2025-06-01T00:00:00Z"),
			cierre:   fecha("2025-06-10T00:00:00Z"),
			previo:   model.EstadoActiva,
			want:     model.EstadoCerrada,
		},
		{
			name:     "cierre vencido gana incluso con apertura futura",
			apertura: fecha("2025-07-01T00:00:00Z"),
			cierre:   fecha("2025-06-10T00:00:00Z"),
			previo:   model.EstadoBorrador,
			want:     model.EstadoCerrada,
		},
		{
			name:   "cierre exactamente en now cuenta como cerrada",
			cierre: &now,
			previo: model.EstadoBorrador,
			want:   model.EstadoCerrada,
		},
		{
			name:     "apertura exactamente en now cuenta como activa",
			apertura: &now,
			previo:   model.EstadoBorrador,
			want:     model.EstadoActiva,
		},
		{
			name:      "archivada ignora las fechas",
			apertura:  fecha("2025-06-01T00:00:00Z"),
			cierre:    fecha("2025-07-01T00:00:00Z"),
			archivada: true,
			previo:    model.EstadoActiva,
			want:      model.EstadoArchivada,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := model.ConvocatoriaModel{
				ConvocatoriaFechaApertura: tt.apertura,
				ConvocatoriaFechaCierre:   tt.cierre,
				ConvocatoriaArchivada:     tt.archivada,
				ConvocatoriaEstado:        tt.previo,
			}
			got := RecalcularEstado(&conv, now)
			if got != tt.want {
				t.Errorf("RecalcularEstado = %q, esperaba %q", got, tt.want)
			}
			// idempotencia: recalcular de nuevo no cambia nada
			if again := RecalcularEstado(&conv, now); again != got {
				t.Errorf("segunda pasada = %q, la primera fue %q", again, got)
			}
		})
	}
}

func TestRecalcularEstadoNoMutaFechas(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	apertura := fecha("2025-06-01T00:00:00Z")
	conv := model.ConvocatoriaModel{
		ConvocatoriaFechaApertura: apertura,
		ConvocatoriaEstado:        model.EstadoBorrador,
	}
	RecalcularEstado(&conv, now)
	if !conv.ConvocatoriaFechaApertura.Equal(*apertura) {
		t.Error("RecalcularEstado no debe tocar las fechas")
	}
	if conv.ConvocatoriaArchivada {
		t.Error("RecalcularEstado nunca archiva por sí solo")
	}
}

func TestArchivarEsMonotona(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	conv := model.ConvocatoriaModel{
		ConvocatoriaFechaCierre: fecha("2025-06-10T00:00:00Z"),
		ConvocatoriaEstado:      model.EstadoCerrada,
	}
	conv.Archivar(now)

	if !conv.ConvocatoriaArchivada {
		t.Fatal("Archivar debe dejar archivada=true")
	}
	if conv.ConvocatoriaArchivadaAt == nil || !conv.ConvocatoriaArchivadaAt.Equal(now) {
		t.Error("Archivar debe registrar el instante de archivado")
	}
	if conv.ConvocatoriaEstado != model.EstadoArchivada {
		t.Errorf("estado = %q, esperaba archivada", conv.ConvocatoriaEstado)
	}

	// un recalculo posterior respeta el archivado (no regresa a cerrada)
	if got := RecalcularEstado(&conv, now.Add(24*time.Hour)); got != model.EstadoArchivada {
		t.Errorf("estado tras recalcular = %q, esperaba archivada", got)
	}
}
