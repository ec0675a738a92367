package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lib/pq"

	postModel "monitorias_backend/internals/features/postulaciones/postulacion/model"
	selModel "monitorias_backend/internals/features/postulaciones/seleccion/model"
	userModel "monitorias_backend/internals/features/users/user/model"
)

// Seleccionador aplica los umbrales y pesos de la configuración vigente sobre
// un lote de postulaciones pendientes.
type Seleccionador struct {
	Config selModel.ConfiguracionSeleccionModel
}

func NewSeleccionador(config selModel.ConfiguracionSeleccionModel) *Seleccionador {
	return &Seleccionador{Config: config}
}

// Descarte es la fila que termina en el detalle del reporte por periodo.
type Descarte struct {
	PostulacionID  uint           `json:"postulacion_id"`
	EstudianteID   uint           `json:"estudiante_id"`
	ConvocatoriaID uint           `json:"convocatoria_id"`
	Razones        pq.StringArray `json:"razones"`
}

// ResultadoRanking lleva el puntaje y su desglose por componente.
type ResultadoRanking struct {
	Postulacion *postModel.PostulacionModel `json:"postulacion"`
	Puntaje     float64                     `json:"puntaje"`
	Detalles    map[string]float64          `json:"detalles"`
}

// Filtrar separa las postulaciones que cumplen los umbrales mínimos. Las que
// no cumplen quedan marcadas ineligible con las razones concatenadas.
func (s *Seleccionador) Filtrar(postulaciones []*postModel.PostulacionModel) ([]*postModel.PostulacionModel, []Descarte) {
	elegibles := make([]*postModel.PostulacionModel, 0, len(postulaciones))
	var descartes []Descarte

	for _, p := range postulaciones {
		if p.Estudiante == nil {
			continue
		}
		var razones []string

		semestre := 0
		if sem := semestreOpcional(p.Estudiante); sem != nil {
			semestre = *sem
		}
		if semestre < s.Config.ConfiguracionMinSemestre {
			razones = append(razones, fmt.Sprintf("Semestre mínimo requerido: %d, estudiante: %d",
				s.Config.ConfiguracionMinSemestre, semestre))
		}

		promedio := 0.0
		if p.Estudiante.UsuarioPromedio != nil {
			promedio = *p.Estudiante.UsuarioPromedio
		}
		if promedio < s.Config.ConfiguracionMinPromedio {
			razones = append(razones, fmt.Sprintf("Promedio mínimo requerido: %s, estudiante: %s",
				formatoNumero(s.Config.ConfiguracionMinPromedio), formatoNumero(promedio)))
		}

		if len(razones) == 0 {
			elegibles = append(elegibles, p)
			continue
		}

		p.MarcarIneligible(strings.Join(razones, "; "))
		descartes = append(descartes, Descarte{
			PostulacionID:  p.PostulacionID,
			EstudianteID:   p.PostulacionEstudianteID,
			ConvocatoriaID: p.PostulacionConvocatoriaID,
			Razones:        pq.StringArray(razones),
		})
	}
	return elegibles, descartes
}

// Calificar calcula el puntaje ponderado de un estudiante. Cada componente se
// normaliza (semestre/10, promedio/5, horas/20), se satura en 1 y se escala a
// 0..100 por su peso. Los componentes sin dato se omiten del desglose.
func (s *Seleccionador) Calificar(estudiante *userModel.UsuarioModel) (float64, map[string]float64) {
	detalles := map[string]float64{}
	total := 0.0

	if sem := semestreOpcional(estudiante); sem != nil {
		pts := redondear(saturar(float64(*sem)/10.0) * s.Config.ConfiguracionPesoSemestre * 100.0)
		detalles["puntaje_semestre"] = pts
		total += pts
	}
	if estudiante.UsuarioPromedio != nil {
		pts := redondear(saturar(*estudiante.UsuarioPromedio/5.0) * s.Config.ConfiguracionPesoPromedio * 100.0)
		detalles["puntaje_promedio"] = pts
		total += pts
	}
	if estudiante.UsuarioHorasDisp != nil {
		pts := redondear(saturar(float64(*estudiante.UsuarioHorasDisp)/20.0) * s.Config.ConfiguracionPesoHoras * 100.0)
		detalles["puntaje_horas"] = pts
		total += pts
	}

	total = redondear(total)
	detalles["puntaje_total"] = total
	return total, detalles
}

// Clasificar puntúa las postulaciones elegibles y las devuelve ordenadas de
// mayor a menor puntaje. El orden de llegada se preserva entre empates.
func (s *Seleccionador) Clasificar(postulaciones []*postModel.PostulacionModel) []ResultadoRanking {
	ranking := make([]ResultadoRanking, 0, len(postulaciones))
	for _, p := range postulaciones {
		if p.Estudiante == nil {
			continue
		}
		puntaje, detalles := s.Calificar(p.Estudiante)
		p.MarcarElegible(puntaje, "pre-seleccionado")
		ranking = append(ranking, ResultadoRanking{Postulacion: p, Puntaje: puntaje, Detalles: detalles})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Puntaje > ranking[j].Puntaje
	})
	return ranking
}

// ReporteDescartados arma el contenido JSON del reporte por periodo.
func ReporteDescartados(descartes []Descarte) map[string]interface{} {
	detalle := make([]interface{}, 0, len(descartes))
	for _, d := range descartes {
		detalle = append(detalle, map[string]interface{}{
			"postulacion_id":  d.PostulacionID,
			"estudiante_id":   d.EstudianteID,
			"convocatoria_id": d.ConvocatoriaID,
			"razones":         d.Razones,
		})
	}
	return map[string]interface{}{
		"total_descartados": len(descartes),
		"detalle":           detalle,
	}
}

func saturar(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func redondear(v float64) float64 {
	return math.Round(v*100) / 100
}

// semestreOpcional extrae el semestre del texto libre del perfil. Devuelve nil
// cuando el campo está vacío o no es numérico.
func semestreOpcional(u *userModel.UsuarioModel) *int {
	if u == nil || u.UsuarioSemestre == nil {
		return nil
	}
	valor := strings.TrimSpace(*u.UsuarioSemestre)
	if valor == "" {
		return nil
	}
	n, err := strconv.Atoi(valor)
	if err != nil {
		return nil
	}
	return &n
}

func formatoNumero(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
