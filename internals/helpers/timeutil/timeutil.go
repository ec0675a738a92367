// file: internals/helpers/timeutil/timeutil.go
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Zona fija de Colombia (UTC-5, sin horario de verano).
var ZonaColombia = time.FixedZone("America/Bogota", -5*60*60)

// Layouts tolerantes que se intentan después del ISO 8601 estricto.
var layoutsFlexibles = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ErrorFecha: fecha/hora que no se pudo interpretar. Conserva el campo y el
// valor crudo para que el caller pueda corregir sin adivinar.
type ErrorFecha struct {
	Campo string
	Valor string
}

func (e *ErrorFecha) Error() string {
	return fmt.Sprintf("Formato de %s inválido: '%s' (usar ISO 8601, ej: 2025-10-02T15:30:00Z)", e.Campo, e.Valor)
}

// NowUTC devuelve el instante actual normalizado a UTC.
// Todo el dominio compara y persiste fechas en esta representación.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseFecha interpreta un timestamp externo: primero ISO 8601 estricto
// (RFC3339), luego layouts tolerantes. Valores sin offset se asumen UTC;
// valores con offset se convierten a UTC. Cadena vacía → nil.
func ParseFecha(raw, campo string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		u := t.UTC()
		return &u, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		u := t.UTC()
		return &u, nil
	}
	for _, layout := range layoutsFlexibles {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			u := t.UTC()
			return &u, nil
		}
	}
	return nil, &ErrorFecha{Campo: campo, Valor: value}
}

// ToColombia convierte un instante (UTC en DB) a la zona fija de Colombia.
func ToColombia(t time.Time) time.Time {
	return t.In(ZonaColombia)
}

// FechaDual: representación canónica UTC + local para las respuestas.
type FechaDual struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`
}

func Dual(t *time.Time) *FechaDual {
	if t == nil {
		return nil
	}
	return &FechaDual{
		UTC:   t.UTC().Format(time.RFC3339),
		Local: ToColombia(*t).Format(time.RFC3339),
	}
}

// Periodo devuelve la etiqueta año-mes ("2025-03") usada para agrupar
// los reportes de descartes.
func Periodo(now time.Time) string {
	return now.UTC().Format("2006-01")
}
