package balance

import (
	"time"

	"heladero/internal/core/apperror"
)

// Modo selects how a window is derived from an anchor date.
type Modo string

const (
	// Dia covers the anchor's calendar day.
	Dia Modo = "dia"
	// Semana covers the Sunday-start week containing the anchor.
	Semana Modo = "semana"
)

// Valido reports whether the mode is a known value.
func (m Modo) Valido() bool {
	return m == Dia || m == Semana
}

// DerivarPeriodo derives the inclusive window for a mode and anchor:
// day mode spans [00:00:00, 23:59:59.999999999] of the anchor's day;
// week mode spans the preceding (or same) Sunday 00:00:00 through the
// following Saturday end of day. Sunday is weekday index 0.
func DerivarPeriodo(modo Modo, ancla time.Time) (Periodo, error) {
	if !modo.Valido() {
		return Periodo{}, apperror.NewValidation("modo must be dia or semana").
			WithDetail("modo", string(modo))
	}

	inicio := inicioDelDia(ancla)
	if modo == Semana {
		inicio = inicio.AddDate(0, 0, -int(inicio.Weekday()))
	}

	dias := 1
	if modo == Semana {
		dias = 7
	}

	// End of the last day, one nanosecond before the next midnight, so
	// the window stays inclusive on both ends.
	fin := inicio.AddDate(0, 0, dias).Add(-time.Nanosecond)

	return Periodo{Desde: inicio, Hasta: fin}, nil
}

func inicioDelDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
