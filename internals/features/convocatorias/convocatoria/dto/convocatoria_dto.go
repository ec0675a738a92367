// internals/features/convocatorias/convocatoria/dto/convocatoria_dto.go
package dto

import (
	"strings"
	"time"

	model "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	"monitorias_backend/internals/helpers/timeutil"
)

/* ===================== REQUESTS ===================== */

// Create: creado_por se toma del token, no del body
type CreateConvocatoriaRequest struct {
	Curso         string  `json:"curso" validate:"required,min=3,max=200"`
	Semestre      string  `json:"semestre" validate:"required,min=1,max=50"`
	Requisitos    string  `json:"requisitos" validate:"required,min=3"`
	FechaApertura *string `json:"fecha_apertura" validate:"omitempty"`
	FechaCierre   *string `json:"fecha_cierre" validate:"omitempty"`
}

type AsignarFechasRequest struct {
	FechaApertura *string `json:"fecha_apertura" validate:"omitempty"`
	FechaCierre   *string `json:"fecha_cierre" validate:"omitempty"`
}

// Update parcial de los campos de texto (las fechas van por AsignarFechas)
type EditarConvocatoriaRequest struct {
	Curso      *string `json:"curso" validate:"omitempty,min=3,max=200"`
	Semestre   *string `json:"semestre" validate:"omitempty,min=1,max=50"`
	Requisitos *string `json:"requisitos" validate:"omitempty,min=3"`
}

/* ===================== QUERIES (list) ===================== */

type ListConvocatoriaQuery struct {
	Estado     string `query:"estado"`
	Archivadas string `query:"archivadas"` // solo|only|true|1|yes → solo archivadas; todas|all → todo; default: no archivadas
	Lang       string `query:"lang"`
}

/* ===================== RESPONSES ===================== */

type ConvocatoriaResponse struct {
	ConvocatoriaID uint   `json:"convocatoria_id"`
	Curso          string `json:"curso"`
	Semestre       string `json:"semestre"`
	Requisitos     string `json:"requisitos"`

	FechaApertura *timeutil.FechaDual `json:"fecha_apertura,omitempty"`
	FechaCierre   *timeutil.FechaDual `json:"fecha_cierre,omitempty"`

	Estado      string     `json:"estado"`
	Archivada   bool       `json:"archivada"`
	ArchivadaAt *time.Time `json:"archivada_at,omitempty"`
	CreadoPorID uint       `json:"creado_por_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// estadoEN traduce las etiquetas al inglés cuando el cliente pide ?lang=en.
var estadoEN = map[string]string{
	model.EstadoBorrador:   "draft",
	model.EstadoProgramada: "scheduled",
	model.EstadoActiva:     "active",
	model.EstadoCerrada:    "closed",
	model.EstadoArchivada:  "archived",
}

// aliasesEstado acepta el filtro ?estado= en ambos idiomas.
var aliasesEstado = map[string]string{
	"borrador":   model.EstadoBorrador,
	"draft":      model.EstadoBorrador,
	"programada": model.EstadoProgramada,
	"scheduled":  model.EstadoProgramada,
	"activa":     model.EstadoActiva,
	"active":     model.EstadoActiva,
	"cerrada":    model.EstadoCerrada,
	"closed":     model.EstadoCerrada,
	"archivada":  model.EstadoArchivada,
	"archived":   model.EstadoArchivada,
}

func NormalizarEstado(raw string) (string, bool) {
	estado, ok := aliasesEstado[strings.ToLower(strings.TrimSpace(raw))]
	return estado, ok
}

func FromModel(m *model.ConvocatoriaModel, lang string) ConvocatoriaResponse {
	estado := m.ConvocatoriaEstado
	if lang == "en" {
		if en, ok := estadoEN[estado]; ok {
			estado = en
		}
	}
	return ConvocatoriaResponse{
		ConvocatoriaID: m.ConvocatoriaID,
		Curso:          m.ConvocatoriaCurso,
		Semestre:       m.ConvocatoriaSemestre,
		Requisitos:     m.ConvocatoriaRequisitos,
		FechaApertura:  timeutil.Dual(m.ConvocatoriaFechaApertura),
		FechaCierre:    timeutil.Dual(m.ConvocatoriaFechaCierre),
		Estado:         estado,
		Archivada:      m.ConvocatoriaArchivada,
		ArchivadaAt:    m.ConvocatoriaArchivadaAt,
		CreadoPorID:    m.ConvocatoriaCreadoPorID,
		CreatedAt:      m.ConvocatoriaCreatedAt,
		UpdatedAt:      m.ConvocatoriaUpdatedAt,
	}
}

func FromModels(ms []model.ConvocatoriaModel, lang string) []ConvocatoriaResponse {
	out := make([]ConvocatoriaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i], lang))
	}
	return out
}
