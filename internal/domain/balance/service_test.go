package balance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/core/types"
	"heladero/internal/domain/expenses"
	"heladero/internal/domain/orders"
	"heladero/pkg/logger"
)

// fakePedidos serves a fixed slice filtered by creation time, the way
// the real repository window query does.
type fakePedidos struct {
	pedidos []orders.Pedido
	err     error
}

func (f *fakePedidos) EnPeriodo(ctx context.Context, desde, hasta time.Time) ([]orders.Pedido, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []orders.Pedido
	for _, p := range f.pedidos {
		if !p.CreatedAt.Before(desde) && !p.CreatedAt.After(hasta) {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeGastos filters by window and by the active flag, matching the
// soft-delete semantics of the real query.
type fakeGastos struct {
	gastos []expenses.Gasto
	err    error
}

func (f *fakeGastos) ActivosEnPeriodo(ctx context.Context, desde, hasta time.Time) ([]expenses.Gasto, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []expenses.Gasto
	for _, g := range f.gastos {
		if g.Activo && !g.CreatedAt.Before(desde) && !g.CreatedAt.After(hasta) {
			out = append(out, g)
		}
	}
	return out, nil
}

var dentro = time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

func pedido(agua, crema int, totalAgua, totalCrema, envio string, metodo orders.MetodoPago) orders.Pedido {
	return orders.Pedido{
		ID:              id.New(),
		Direccion:       "Av. Corrientes 1234",
		CantidadAgua:    agua,
		CantidadCrema:   crema,
		MontoTotalAgua:  types.MustMoney(totalAgua),
		MontoTotalCrema: types.MustMoney(totalCrema),
		CostoEnvio:      types.MustMoney(envio),
		MetodoPago:      metodo,
		Estado:          orders.Pendiente,
		CreatedAt:       dentro,
	}
}

func gasto(monto string, activo bool) expenses.Gasto {
	return expenses.Gasto{
		ID:        id.New(),
		Monto:     types.MustMoney(monto),
		Activo:    activo,
		CreatedAt: dentro,
	}
}

func ventana() (time.Time, time.Time) {
	return time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 23, 59, 59, 999999999, time.UTC)
}

func montoEq(t *testing.T, esperado string, got types.Money, campo string) {
	t.Helper()
	assert.True(t, types.MustMoney(esperado).Equal(got),
		"%s: want %s, got %s", campo, esperado, got.String())
}

func TestCalcular_BalanceIdentity(t *testing.T) {
	pedidos := &fakePedidos{pedidos: []orders.Pedido{
		pedido(10, 0, "1000", "0", "200", orders.Efectivo),
		pedido(0, 5, "0", "500", "0", orders.Transferencia),
	}}
	gastos := &fakeGastos{gastos: []expenses.Gasto{gasto("100", true)}}
	svc := NewService(pedidos, gastos, logger.Default())

	desde, hasta := ventana()
	b, err := svc.Calcular(context.Background(), desde, hasta)
	require.NoError(t, err)

	assert.Equal(t, 10, b.TotalAgua)
	assert.Equal(t, 5, b.TotalCrema)
	montoEq(t, "1000", b.PlataEfectivo, "plata_efectivo")
	montoEq(t, "500", b.PlataTransferencia, "plata_transferencia")
	montoEq(t, "200", b.CostoEnvioTotal, "costo_envio_total")
	assert.Equal(t, 1, b.CantidadEnvios)
	montoEq(t, "100", b.TotalGastos, "total_gastos")
	assert.Equal(t, 1, b.CantidadGastos)
	// efectivo_final = efectivo - envios - gastos; ingreso_total ignores both.
	montoEq(t, "700", b.EfectivoFinal, "efectivo_final")
	montoEq(t, "1500", b.IngresoTotal, "ingreso_total")
}

func TestCalcular_EfectivoFinalMayGoNegative(t *testing.T) {
	pedidos := &fakePedidos{pedidos: []orders.Pedido{
		pedido(2, 0, "100", "0", "500", orders.Efectivo),
	}}
	svc := NewService(pedidos, &fakeGastos{}, logger.Default())

	desde, hasta := ventana()
	b, err := svc.Calcular(context.Background(), desde, hasta)
	require.NoError(t, err)

	montoEq(t, "-400", b.EfectivoFinal, "efectivo_final")
	assert.True(t, b.EfectivoFinal.IsNegative())
}

func TestCalcular_SoftDeletedGastosExcluded(t *testing.T) {
	gastos := &fakeGastos{gastos: []expenses.Gasto{
		gasto("100", true),
		gasto("9999", false),
	}}
	svc := NewService(&fakePedidos{}, gastos, logger.Default())

	desde, hasta := ventana()
	b, err := svc.Calcular(context.Background(), desde, hasta)
	require.NoError(t, err)

	montoEq(t, "100", b.TotalGastos, "total_gastos")
	assert.Equal(t, 1, b.CantidadGastos)
}

func TestCalcular_WindowIsInclusiveOnBothEnds(t *testing.T) {
	desde, hasta := ventana()

	enElBorde := pedido(1, 0, "10", "0", "0", orders.Efectivo)
	enElBorde.CreatedAt = desde
	enElOtroBorde := pedido(1, 0, "10", "0", "0", orders.Efectivo)
	enElOtroBorde.CreatedAt = hasta
	afuera := pedido(1, 0, "10", "0", "0", orders.Efectivo)
	afuera.CreatedAt = hasta.Add(time.Nanosecond)

	pedidos := &fakePedidos{pedidos: []orders.Pedido{enElBorde, enElOtroBorde, afuera}}
	svc := NewService(pedidos, &fakeGastos{}, logger.Default())

	b, err := svc.Calcular(context.Background(), desde, hasta)
	require.NoError(t, err)
	assert.Equal(t, 2, b.TotalAgua)
}

func TestCalcular_ZeroEnvioDoesNotCount(t *testing.T) {
	pedidos := &fakePedidos{pedidos: []orders.Pedido{
		pedido(1, 0, "10", "0", "0", orders.Efectivo),
		pedido(1, 0, "10", "0", "150", orders.Efectivo),
		pedido(1, 0, "10", "0", "150", orders.Transferencia),
	}}
	svc := NewService(pedidos, &fakeGastos{}, logger.Default())

	desde, hasta := ventana()
	b, err := svc.Calcular(context.Background(), desde, hasta)
	require.NoError(t, err)

	assert.Equal(t, 2, b.CantidadEnvios)
	montoEq(t, "300", b.CostoEnvioTotal, "costo_envio_total")
}

func TestCalcular_QueryFailureNeverReturnsPartialBalance(t *testing.T) {
	desde, hasta := ventana()
	boom := errors.New("connection reset")

	svc := NewService(&fakePedidos{err: boom}, &fakeGastos{}, logger.Default())
	b, err := svc.Calcular(context.Background(), desde, hasta)
	assert.Nil(t, b)
	assert.True(t, apperror.IsCode(err, apperror.CodeBalanceQuery))

	svc = NewService(&fakePedidos{}, &fakeGastos{err: boom}, logger.Default())
	b, err = svc.Calcular(context.Background(), desde, hasta)
	assert.Nil(t, b)
	assert.True(t, apperror.IsCode(err, apperror.CodeBalanceQuery))
}

func TestCalcular_InvertedWindowRejected(t *testing.T) {
	svc := NewService(&fakePedidos{}, &fakeGastos{}, logger.Default())
	desde, hasta := ventana()

	_, err := svc.Calcular(context.Background(), hasta, desde)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestCalcularPeriodo_ReturnsDerivedWindow(t *testing.T) {
	svc := NewService(&fakePedidos{}, &fakeGastos{}, logger.Default())

	b, periodo, err := svc.CalcularPeriodo(context.Background(), Dia, dentro)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), periodo.Desde)
	assert.Equal(t, time.Date(2025, 3, 12, 23, 59, 59, 999999999, time.UTC), periodo.Hasta)
}
