package service

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"

	postModel "monitorias_backend/internals/features/postulaciones/postulacion/model"
	selModel "monitorias_backend/internals/features/postulaciones/seleccion/model"
	userModel "monitorias_backend/internals/features/users/user/model"
)

func puntero[T any](v T) *T { return &v }

func estudiante(id uint, semestre string, promedio float64, horas int) *userModel.UsuarioModel {
	u := &userModel.UsuarioModel{
		UsuarioID:        id,
		UsuarioRol:       "estudiante",
		UsuarioPromedio:  puntero(promedio),
		UsuarioHorasDisp: puntero(horas),
	}
	if semestre != "" {
		u.UsuarioSemestre = puntero(semestre)
	}
	return u
}

func postulacion(id uint, est *userModel.UsuarioModel) *postModel.PostulacionModel {
	return &postModel.PostulacionModel{
		PostulacionID:             id,
		PostulacionEstudianteID:   est.UsuarioID,
		PostulacionConvocatoriaID: 1,
		PostulacionEstado:         postModel.EstadoPendiente,
		Estudiante:                est,
	}
}

func TestFiltrar(t *testing.T) {
	sel := NewSeleccionador(selModel.ConfiguracionPorDefecto())

	cumple := postulacion(1, estudiante(10, "5", 4.0, 10))
	sinSemestre := postulacion(2, estudiante(11, "", 4.2, 10))
	bajoPromedio := postulacion(3, estudiante(12, "6", 3.0, 10))

	elegibles, descartes := sel.Filtrar([]*postModel.PostulacionModel{cumple, sinSemestre, bajoPromedio})

	if len(elegibles) != 1 || elegibles[0].PostulacionID != 1 {
		t.Fatalf("elegibles = %+v, se esperaba solo la postulación 1", elegibles)
	}
	if len(descartes) != 2 {
		t.Fatalf("descartes = %d, se esperaban 2", len(descartes))
	}

	// sin semestre cuenta como 0 frente al umbral
	quiere := []string{"Semestre mínimo requerido: 3, estudiante: 0"}
	if diff := cmp.Diff(quiere, []string(descartes[0].Razones)); diff != "" {
		t.Errorf("razones sin semestre (-quiere +tiene):\n%s", diff)
	}
	quiere = []string{"Promedio mínimo requerido: 3.5, estudiante: 3"}
	if diff := cmp.Diff(quiere, []string(descartes[1].Razones)); diff != "" {
		t.Errorf("razones bajo promedio (-quiere +tiene):\n%s", diff)
	}

	if sinSemestre.PostulacionEstado != postModel.EstadoNoElegible {
		t.Errorf("estado = %q, se esperaba %q", sinSemestre.PostulacionEstado, postModel.EstadoNoElegible)
	}
	if sinSemestre.PostulacionRazonesRechazo == nil ||
		!strings.Contains(*sinSemestre.PostulacionRazonesRechazo, "Semestre mínimo requerido") {
		t.Errorf("razones_rechazo = %v", sinSemestre.PostulacionRazonesRechazo)
	}
	if cumple.PostulacionEstado != postModel.EstadoPendiente {
		t.Errorf("la postulación elegible no debe cambiar de estado en el filtro, estado = %q", cumple.PostulacionEstado)
	}
}

func TestFiltrarAmbosCriterios(t *testing.T) {
	sel := NewSeleccionador(selModel.ConfiguracionPorDefecto())

	p := postulacion(1, estudiante(10, "2", 2.8, 10))
	_, descartes := sel.Filtrar([]*postModel.PostulacionModel{p})

	if len(descartes) != 1 {
		t.Fatalf("descartes = %d, se esperaba 1", len(descartes))
	}
	quiere := []string{
		"Semestre mínimo requerido: 3, estudiante: 2",
		"Promedio mínimo requerido: 3.5, estudiante: 2.8",
	}
	if diff := cmp.Diff(quiere, []string(descartes[0].Razones)); diff != "" {
		t.Errorf("razones (-quiere +tiene):\n%s", diff)
	}
	if p.PostulacionRazonesRechazo == nil || *p.PostulacionRazonesRechazo != strings.Join(quiere, "; ") {
		t.Errorf("razones_rechazo = %v", p.PostulacionRazonesRechazo)
	}
}

func TestCalificar(t *testing.T) {
	sel := NewSeleccionador(selModel.ConfiguracionPorDefecto())

	casos := []struct {
		nombre   string
		est      *userModel.UsuarioModel
		puntaje  float64
		detalles map[string]float64
	}{
		{
			nombre:  "valores intermedios",
			est:     estudiante(1, "5", 4.0, 10),
			puntaje: 62,
			detalles: map[string]float64{
				"puntaje_semestre": 20,
				"puntaje_promedio": 32,
				"puntaje_horas":    10,
				"puntaje_total":    62,
			},
		},
		{
			nombre:  "saturación en el máximo",
			est:     estudiante(2, "12", 5.0, 40),
			puntaje: 100,
			detalles: map[string]float64{
				"puntaje_semestre": 40,
				"puntaje_promedio": 40,
				"puntaje_horas":    20,
				"puntaje_total":    100,
			},
		},
		{
			nombre: "sin semestre se omite el componente",
			est: &userModel.UsuarioModel{
				UsuarioID:        3,
				UsuarioPromedio:  puntero(4.0),
				UsuarioHorasDisp: puntero(10),
			},
			puntaje: 42,
			detalles: map[string]float64{
				"puntaje_promedio": 32,
				"puntaje_horas":    10,
				"puntaje_total":    42,
			},
		},
		{
			nombre: "semestre no numérico se omite",
			est: &userModel.UsuarioModel{
				UsuarioID:       4,
				UsuarioSemestre: puntero("quinto"),
				UsuarioPromedio: puntero(5.0),
			},
			puntaje: 40,
			detalles: map[string]float64{
				"puntaje_promedio": 40,
				"puntaje_total":    40,
			},
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			puntaje, detalles := sel.Calificar(c.est)
			if puntaje != c.puntaje {
				t.Errorf("puntaje = %v, se esperaba %v", puntaje, c.puntaje)
			}
			if diff := cmp.Diff(c.detalles, detalles); diff != "" {
				t.Errorf("detalles (-quiere +tiene):\n%s", diff)
			}
		})
	}
}

func TestClasificar(t *testing.T) {
	sel := NewSeleccionador(selModel.ConfiguracionPorDefecto())

	bajo := postulacion(1, estudiante(10, "4", 3.6, 5))
	alto := postulacion(2, estudiante(11, "10", 5.0, 20))
	empate := postulacion(3, estudiante(12, "4", 3.6, 5))

	ranking := sel.Clasificar([]*postModel.PostulacionModel{bajo, alto, empate})

	if len(ranking) != 3 {
		t.Fatalf("ranking = %d entradas, se esperaban 3", len(ranking))
	}
	if ranking[0].Postulacion.PostulacionID != 2 {
		t.Errorf("primer puesto = postulación %d, se esperaba la 2", ranking[0].Postulacion.PostulacionID)
	}
	// los empates conservan el orden de llegada
	if ranking[1].Postulacion.PostulacionID != 1 || ranking[2].Postulacion.PostulacionID != 3 {
		t.Errorf("orden de empates = %d, %d; se esperaba 1, 3",
			ranking[1].Postulacion.PostulacionID, ranking[2].Postulacion.PostulacionID)
	}

	for _, r := range ranking {
		if r.Postulacion.PostulacionEstado != postModel.EstadoElegible {
			t.Errorf("postulación %d: estado = %q, se esperaba %q",
				r.Postulacion.PostulacionID, r.Postulacion.PostulacionEstado, postModel.EstadoElegible)
		}
		if r.Postulacion.PostulacionResultado == nil || *r.Postulacion.PostulacionResultado != "pre-seleccionado" {
			t.Errorf("postulación %d: resultado = %v", r.Postulacion.PostulacionID, r.Postulacion.PostulacionResultado)
		}
		if r.Postulacion.PostulacionPuntaje == nil || *r.Postulacion.PostulacionPuntaje != r.Puntaje {
			t.Errorf("postulación %d: puntaje persistido = %v, ranking = %v",
				r.Postulacion.PostulacionID, r.Postulacion.PostulacionPuntaje, r.Puntaje)
		}
	}
}

func TestReporteDescartados(t *testing.T) {
	contenido := ReporteDescartados([]Descarte{
		{PostulacionID: 7, EstudianteID: 3, ConvocatoriaID: 1, Razones: pq.StringArray{"Promedio mínimo requerido: 3.5, estudiante: 3"}},
	})

	if contenido["total_descartados"] != 1 {
		t.Errorf("total_descartados = %v, se esperaba 1", contenido["total_descartados"])
	}
	detalle, ok := contenido["detalle"].([]interface{})
	if !ok || len(detalle) != 1 {
		t.Fatalf("detalle = %v", contenido["detalle"])
	}

	vacio := ReporteDescartados(nil)
	if vacio["total_descartados"] != 0 {
		t.Errorf("total_descartados sin descartes = %v", vacio["total_descartados"])
	}
}
