package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	model "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	userModel "monitorias_backend/internals/features/users/user/model"
)

// Reglas de extracción sobre el texto libre de requisitos. Son heurísticas:
// una redacción que no matchea simplemente no impone mínimo (falso negativo
// aceptado). Para soportar nuevas redacciones se agrega una regla acá, sin
// tocar los call sites.
var (
	reglaSemestre = regexp.MustCompile(`(?i)semestres?\s*(?:m[ií]nimo|mayor a)?\s*(\d+)`)
	reglaPromedio = regexp.MustCompile(`(?i)promedio\s*(?:m[ií]nimo|mayor a)?\s*(\d+(?:[.,]\d+)?)`)
)

// Requisitos: umbrales estructurados extraídos del texto libre.
// Ambos son independientes y opcionales.
type Requisitos struct {
	SemestreMinimo *int
	PromedioMinimo *float64
}

// ExtraerRequisitos parsea el texto de requisitos. Solo usa el primer
// match de cada categoría.
func ExtraerRequisitos(texto string) Requisitos {
	var req Requisitos

	if m := reglaSemestre.FindStringSubmatch(texto); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			req.SemestreMinimo = &n
		}
	}
	if m := reglaPromedio.FindStringSubmatch(texto); m != nil {
		normalizado := strings.ReplaceAll(m[1], ",", ".")
		if f, err := strconv.ParseFloat(normalizado, 64); err == nil {
			req.PromedioMinimo = &f
		}
	}
	return req
}

// ValidarRequisitos compara al estudiante contra los umbrales extraídos de
// la convocatoria. Devuelve ok + las razones de rechazo (una por criterio
// incumplido; pueden ser ambas).
func ValidarRequisitos(conv *model.ConvocatoriaModel, estudiante *userModel.UsuarioModel) (bool, []string) {
	req := ExtraerRequisitos(conv.ConvocatoriaRequisitos)
	var razones []string

	if req.SemestreMinimo != nil {
		semestre := SemestreDe(estudiante)
		if semestre < *req.SemestreMinimo {
			razones = append(razones, fmt.Sprintf("Semestre requerido: %d, estudiante: %d", *req.SemestreMinimo, semestre))
		}
	}

	if req.PromedioMinimo != nil {
		promedio := 0.0
		if estudiante.UsuarioPromedio != nil {
			promedio = *estudiante.UsuarioPromedio
		}
		if promedio < *req.PromedioMinimo {
			razones = append(razones, fmt.Sprintf("Promedio requerido: %s, estudiante: %s",
				formatoNumero(*req.PromedioMinimo), formatoNumero(promedio)))
		}
	}

	return len(razones) == 0, razones
}

// SemestreDe parsea el semestre (campo string) del estudiante.
// No parseable o ausente → 0.
func SemestreDe(u *userModel.UsuarioModel) int {
	if u.UsuarioSemestre == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(*u.UsuarioSemestre))
	if err != nil {
		return 0
	}
	return n
}

func formatoNumero(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
