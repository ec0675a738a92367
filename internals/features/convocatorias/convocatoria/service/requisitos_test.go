package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	model "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	userModel "monitorias_backend/internals/features/users/user/model"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestExtraerRequisitos(t *testing.T) {
	tests := []struct {
		name  string
		texto string
		want  Requisitos
	}{
		{
			name:  "semestre y promedio con minimo",
			texto: "Semestre mínimo 4, promedio mínimo 3.5",
			want:  Requisitos{SemestreMinimo: intPtr(4), PromedioMinimo: floatPtr(3.5)},
		},
		{
			name:  "sin tilde",
			texto: "semestre minimo 5 y promedio minimo 4",
			want:  Requisitos{SemestreMinimo: intPtr(5), PromedioMinimo: floatPtr(4)},
		},
		{
			name:  "mayor a",
			texto: "Semestre mayor a 6. Promedio mayor a 4,2",
			want:  Requisitos{SemestreMinimo: intPtr(6), PromedioMinimo: floatPtr(4.2)},
		},
		{
			name:  "sin calificador",
			texto: "Requiere semestre 3 con promedio 3.8",
			want:  Requisitos{SemestreMinimo: intPtr(3), PromedioMinimo: floatPtr(3.8)},
		},
		{
			name:  "coma decimal normalizada",
			texto: "promedio mínimo 3,75",
			want:  Requisitos{PromedioMinimo: floatPtr(3.75)},
		},
		{
			name:  "solo semestre en plural",
			texto: "Haber cursado 4 semestres mínimo 4",
			want:  Requisitos{SemestreMinimo: intPtr(4)},
		},
		{
			name:  "redaccion no reconocida no impone minimos",
			texto: "Debe haber aprobado cálculo y tener buen rendimiento",
			want:  Requisitos{},
		},
		{
			name:  "texto vacio",
			texto: "",
			want:  Requisitos{},
		},
		{
			name:  "solo el primer match por categoria",
			texto: "semestre mínimo 4 o semestre mínimo 8",
			want:  Requisitos{SemestreMinimo: intPtr(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtraerRequisitos(tt.texto)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtraerRequisitos(%q) mismatch (-want +got):\n%s", tt.texto, diff)
			}
		})
	}
}

func TestValidarRequisitos(t *testing.T) {
	conv := &model.ConvocatoriaModel{
		ConvocatoriaRequisitos: "Semestre mínimo 4, promedio mínimo 3.5",
	}

	t.Run("estudiante por debajo del semestre", func(t *testing.T) {
		est := &userModel.UsuarioModel{UsuarioSemestre: strPtr("3"), UsuarioPromedio: floatPtr(4.0)}
		ok, razones := ValidarRequisitos(conv, est)
		if ok {
			t.Fatal("esperaba rechazo")
		}
		if len(razones) != 1 || razones[0] != "Semestre requerido: 4, estudiante: 3" {
			t.Errorf("razones = %v", razones)
		}
	})

	t.Run("estudiante que cumple", func(t *testing.T) {
		est := &userModel.UsuarioModel{UsuarioSemestre: strPtr("5"), UsuarioPromedio: floatPtr(4.0)}
		ok, razones := ValidarRequisitos(conv, est)
		if !ok || len(razones) != 0 {
			t.Errorf("esperaba ok, razones = %v", razones)
		}
	})

	t.Run("pueden fallar ambos criterios", func(t *testing.T) {
		est := &userModel.UsuarioModel{UsuarioSemestre: strPtr("2"), UsuarioPromedio: floatPtr(3.0)}
		ok, razones := ValidarRequisitos(conv, est)
		if ok || len(razones) != 2 {
			t.Fatalf("esperaba dos razones, got %v", razones)
		}
		if razones[1] != "Promedio requerido: 3.5, estudiante: 3" {
			t.Errorf("razon promedio = %q", razones[1])
		}
	})

	t.Run("semestre no parseable cuenta como 0", func(t *testing.T) {
		est := &userModel.UsuarioModel{UsuarioSemestre: strPtr("octavo"), UsuarioPromedio: floatPtr(4.5)}
		ok, razones := ValidarRequisitos(conv, est)
		if ok {
			t.Fatal("esperaba rechazo")
		}
		if razones[0] != "Semestre requerido: 4, estudiante: 0" {
			t.Errorf("razon = %q", razones[0])
		}
	})

	t.Run("sin umbrales extraidos todo pasa", func(t *testing.T) {
		libre := &model.ConvocatoriaModel{ConvocatoriaRequisitos: "Ganas de enseñar"}
		est := &userModel.UsuarioModel{}
		ok, razones := ValidarRequisitos(libre, est)
		if !ok || razones != nil {
			t.Errorf("esperaba ok sin razones, got %v", razones)
		}
	})
}
