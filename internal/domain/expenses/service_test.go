package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/core/types"
	"heladero/pkg/logger"
)

type mockRepo struct {
	gastos map[id.ID]*Gasto
}

func newMockRepo() *mockRepo {
	return &mockRepo{gastos: make(map[id.ID]*Gasto)}
}

func (m *mockRepo) Crear(ctx context.Context, g *Gasto) error {
	copia := *g
	m.gastos[g.ID] = &copia
	return nil
}

func (m *mockRepo) Desactivar(ctx context.Context, gastoID id.ID) error {
	g, ok := m.gastos[gastoID]
	if !ok {
		return apperror.NewNotFound("gasto", gastoID)
	}
	g.Activo = false
	return nil
}

func (m *mockRepo) ActivosEnPeriodo(ctx context.Context, desde, hasta time.Time) ([]Gasto, error) {
	var out []Gasto
	for _, g := range m.gastos {
		if g.Activo && !g.CreatedAt.Before(desde) && !g.CreatedAt.After(hasta) {
			out = append(out, *g)
		}
	}
	return out, nil
}

func TestIngresar_CreatesActiveGasto(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, logger.Default())

	g, err := svc.Ingresar(context.Background(), types.MustMoney("250"))
	require.NoError(t, err)

	assert.True(t, g.Activo)
	assert.False(t, id.IsNil(g.ID))
	assert.True(t, types.MustMoney("250").Equal(g.Monto))
}

func TestIngresar_RejectsNonPositiveMonto(t *testing.T) {
	svc := NewService(newMockRepo(), logger.Default())
	ctx := context.Background()

	_, err := svc.Ingresar(ctx, types.Zero())
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))

	_, err = svc.Ingresar(ctx, types.MustMoney("-10"))
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestEliminar_SoftDeleteDropsGastoFromPeriodQueries(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, logger.Default())
	ctx := context.Background()

	g, err := svc.Ingresar(ctx, types.MustMoney("100"))
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, g.ID))

	desde := g.CreatedAt.Add(-time.Hour)
	hasta := g.CreatedAt.Add(time.Hour)
	activos, err := svc.EnPeriodo(ctx, desde, hasta)
	require.NoError(t, err)
	assert.Empty(t, activos)

	// The row itself survives, only deactivated.
	assert.Contains(t, repo.gastos, g.ID)
	assert.False(t, repo.gastos[g.ID].Activo)
}

func TestEliminar_UnknownGasto(t *testing.T) {
	svc := NewService(newMockRepo(), logger.Default())

	err := svc.Eliminar(context.Background(), id.New())
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
}
