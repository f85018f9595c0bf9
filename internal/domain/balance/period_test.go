package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heladero/internal/core/apperror"
)

func TestDerivarPeriodo_Dia(t *testing.T) {
	ancla := time.Date(2025, 3, 12, 16, 45, 12, 0, time.UTC)

	p, err := DerivarPeriodo(Dia, ancla)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), p.Desde)
	assert.Equal(t, time.Date(2025, 3, 12, 23, 59, 59, 999999999, time.UTC), p.Hasta)
}

func TestDerivarPeriodo_SemanaStartsOnSunday(t *testing.T) {
	// 2025-03-12 is a Wednesday; its week runs Sunday the 9th through
	// Saturday the 15th.
	ancla := time.Date(2025, 3, 12, 16, 45, 12, 0, time.UTC)

	p, err := DerivarPeriodo(Semana, ancla)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), p.Desde)
	assert.Equal(t, time.Sunday, p.Desde.Weekday())
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999999999, time.UTC), p.Hasta)
	assert.Equal(t, time.Saturday, p.Hasta.Weekday())
}

func TestDerivarPeriodo_SundayAnchorIsItsOwnWeekStart(t *testing.T) {
	ancla := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)

	p, err := DerivarPeriodo(Semana, ancla)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), p.Desde)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999999999, time.UTC), p.Hasta)
}

func TestDerivarPeriodo_SaturdayAnchorEndsSameWeek(t *testing.T) {
	ancla := time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC)

	p, err := DerivarPeriodo(Semana, ancla)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), p.Desde)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999999999, time.UTC), p.Hasta)
}

func TestDerivarPeriodo_PreservesAnchorLocation(t *testing.T) {
	zona := time.FixedZone("ART", -3*60*60)
	ancla := time.Date(2025, 3, 12, 1, 0, 0, 0, zona)

	p, err := DerivarPeriodo(Dia, ancla)
	require.NoError(t, err)

	assert.Equal(t, zona, p.Desde.Location())
	assert.Equal(t, 0, p.Desde.Hour())
}

func TestDerivarPeriodo_UnknownModeRejected(t *testing.T) {
	_, err := DerivarPeriodo(Modo("mes"), time.Now())
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}
