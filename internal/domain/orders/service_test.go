package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/core/types"
	"heladero/internal/domain/pricing"
	"heladero/pkg/logger"
)

// mockRepo is a hand-rolled orders.Repository backed by a map.
type mockRepo struct {
	pedidos map[id.ID]*Pedido

	bulkCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{pedidos: make(map[id.ID]*Pedido)}
}

func (m *mockRepo) Crear(ctx context.Context, p *Pedido) error {
	copia := *p
	m.pedidos[p.ID] = &copia
	return nil
}

func (m *mockRepo) Obtener(ctx context.Context, pedidoID id.ID) (*Pedido, error) {
	p, ok := m.pedidos[pedidoID]
	if !ok {
		return nil, apperror.NewNotFound("pedido", pedidoID)
	}
	copia := *p
	return &copia, nil
}

func (m *mockRepo) Actualizar(ctx context.Context, p *Pedido) error {
	copia := *p
	m.pedidos[p.ID] = &copia
	return nil
}

func (m *mockRepo) ActualizarEstado(ctx context.Context, pedidoID id.ID, estado Estado) error {
	m.pedidos[pedidoID].Estado = estado
	return nil
}

func (m *mockRepo) ActualizarPagado(ctx context.Context, pedidoID id.ID, pagado bool) error {
	m.pedidos[pedidoID].Pagado = pagado
	return nil
}

func (m *mockRepo) ActualizarEnviado(ctx context.Context, pedidoID id.ID, enviado bool) error {
	m.pedidos[pedidoID].Enviado = enviado
	return nil
}

func (m *mockRepo) ActualizarCostoEnvio(ctx context.Context, pedidoID id.ID, costo types.Money) error {
	m.pedidos[pedidoID].CostoEnvio = costo
	return nil
}

func (m *mockRepo) ActualizarEstadoMasivo(ctx context.Context, ids []id.ID, estado Estado) error {
	m.bulkCalls++
	for _, pid := range ids {
		m.pedidos[pid].Estado = estado
	}
	return nil
}

func (m *mockRepo) ActualizarPagadoMasivo(ctx context.Context, ids []id.ID, pagado bool) error {
	m.bulkCalls++
	for _, pid := range ids {
		m.pedidos[pid].Pagado = pagado
	}
	return nil
}

func (m *mockRepo) ActualizarEnviadoMasivo(ctx context.Context, ids []id.ID, enviado bool) error {
	m.bulkCalls++
	for _, pid := range ids {
		m.pedidos[pid].Enviado = enviado
	}
	return nil
}

func (m *mockRepo) Buscar(ctx context.Context, filtro Filtro) ([]Pedido, error) {
	var out []Pedido
	for _, p := range m.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockRepo) EnPeriodo(ctx context.Context, desde, hasta time.Time) ([]Pedido, error) {
	return m.Buscar(ctx, Filtro{})
}

// mockResolver resolves fixed unit prices, or fails.
type mockResolver struct {
	precios pricing.PreciosUnitarios
	err     error
	calls   int
}

func (m *mockResolver) ResolverPrecios(ctx context.Context, cantidadAgua, cantidadCrema int) (pricing.PreciosUnitarios, error) {
	m.calls++
	if m.err != nil {
		return pricing.PreciosUnitarios{}, m.err
	}
	return m.precios, nil
}

func preciosFijos(agua, crema string) *mockResolver {
	return &mockResolver{precios: pricing.PreciosUnitarios{
		PrecioAgua:  types.MustMoney(agua),
		PrecioCrema: types.MustMoney(crema),
	}}
}

func entradaBase() CrearPedidoInput {
	return CrearPedidoInput{
		Direccion:     "Av. Siempreviva 742",
		Telefono:      "11-5555-0001",
		CantidadAgua:  10,
		CantidadCrema: 5,
		MetodoPago:    Efectivo,
		CostoEnvio:    types.MustMoney("200"),
	}
}

func TestCrear_ComputesTotalsFromResolvedPrices(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, preciosFijos("10", "15"), logger.Default())

	pedido, err := svc.Crear(context.Background(), entradaBase())
	require.NoError(t, err)

	assert.Equal(t, Pendiente, pedido.Estado)
	assert.True(t, types.MustMoney("100").Equal(pedido.MontoTotalAgua))
	assert.False(t, pedido.MontoAguaManual)
	assert.True(t, types.MustMoney("75").Equal(pedido.MontoTotalCrema))
	assert.False(t, pedido.MontoCremaManual)
}

func TestCrear_ManualTotalIsAuthoritative(t *testing.T) {
	repo := newMockRepo()
	resolver := preciosFijos("10", "15")
	svc := NewService(repo, resolver, logger.Default())

	manual := types.MustMoney("85")
	input := entradaBase()
	input.MontoTotalAgua = &manual

	pedido, err := svc.Crear(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, manual.Equal(pedido.MontoTotalAgua))
	assert.True(t, pedido.MontoAguaManual)
	// Crema still computed.
	assert.True(t, types.MustMoney("75").Equal(pedido.MontoTotalCrema))
	assert.False(t, pedido.MontoCremaManual)
}

func TestCrear_BothManualSkipsResolver(t *testing.T) {
	repo := newMockRepo()
	resolver := &mockResolver{err: apperror.NewNoActivePriceList()}
	svc := NewService(repo, resolver, logger.Default())

	agua := types.MustMoney("100")
	crema := types.MustMoney("75")
	input := entradaBase()
	input.MontoTotalAgua = &agua
	input.MontoTotalCrema = &crema

	_, err := svc.Crear(context.Background(), input)
	require.NoError(t, err)
	assert.Zero(t, resolver.calls, "fully manual totals need no price list")
}

func TestCrear_PricingFailureBlocksWrite(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &mockResolver{err: apperror.NewNoActivePriceList()}, logger.Default())

	_, err := svc.Crear(context.Background(), entradaBase())
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNoActivePriceList))
	assert.Empty(t, repo.pedidos, "no pedido may be persisted with an unresolved price")
}

func TestCrear_Validation(t *testing.T) {
	svc := NewService(newMockRepo(), preciosFijos("10", "15"), logger.Default())
	ctx := context.Background()

	input := entradaBase()
	input.CantidadAgua = 0
	input.CantidadCrema = 0
	_, err := svc.Crear(ctx, input)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation), "empty order")

	input = entradaBase()
	input.MetodoPago = "cheque"
	_, err = svc.Crear(ctx, input)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation), "unknown payment method")
}

func editDesde(p *Pedido) EditarPedidoInput {
	return EditarPedidoInput{
		Direccion:     p.Direccion,
		Telefono:      p.Telefono,
		CantidadAgua:  p.CantidadAgua,
		CantidadCrema: p.CantidadCrema,
		MetodoPago:    p.MetodoPago,
		Estado:        p.Estado,
		Pagado:        p.Pagado,
		CostoEnvio:    p.CostoEnvio,
		Aclaracion:    p.Aclaracion,
		Observaciones: p.Observaciones,
	}
}

func TestEditar_QuantityChangeClearsOverrideAndRecomputes(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, preciosFijos("10", "15"), logger.Default())
	ctx := context.Background()

	manual := types.MustMoney("999")
	input := entradaBase()
	input.MontoTotalAgua = &manual
	pedido, err := svc.Crear(ctx, input)
	require.NoError(t, err)
	require.True(t, pedido.MontoAguaManual)

	edit := editDesde(pedido)
	edit.CantidadAgua = 60

	editado, err := svc.Editar(ctx, pedido.ID, edit)
	require.NoError(t, err)

	assert.False(t, editado.MontoAguaManual, "quantity change reverts to computed")
	assert.True(t, types.MustMoney("600").Equal(editado.MontoTotalAgua))
}

func TestEditar_NonQuantityChangePreservesOverride(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, preciosFijos("10", "15"), logger.Default())
	ctx := context.Background()

	manual := types.MustMoney("999")
	input := entradaBase()
	input.MontoTotalAgua = &manual
	pedido, err := svc.Crear(ctx, input)
	require.NoError(t, err)

	edit := editDesde(pedido)
	edit.Direccion = "Calle Falsa 123"
	edit.Pagado = true

	editado, err := svc.Editar(ctx, pedido.ID, edit)
	require.NoError(t, err)

	assert.True(t, editado.MontoAguaManual, "manual total stays authoritative")
	assert.True(t, manual.Equal(editado.MontoTotalAgua))
	assert.Equal(t, "Calle Falsa 123", editado.Direccion)
	assert.True(t, editado.Pagado)
}

func TestEditar_ManualTotalInEditOverridesComputed(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, preciosFijos("10", "15"), logger.Default())
	ctx := context.Background()

	pedido, err := svc.Crear(ctx, entradaBase())
	require.NoError(t, err)
	require.False(t, pedido.MontoCremaManual)

	manual := types.MustMoney("70")
	edit := editDesde(pedido)
	edit.MontoTotalCrema = &manual

	editado, err := svc.Editar(ctx, pedido.ID, edit)
	require.NoError(t, err)

	assert.True(t, editado.MontoCremaManual)
	assert.True(t, manual.Equal(editado.MontoTotalCrema))
}

func TestBulkUpdates_EmptyIDListIsNoOp(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, preciosFijos("10", "15"), logger.Default())
	ctx := context.Background()

	require.NoError(t, svc.ActualizarEstadoMasivo(ctx, nil, Enviado))
	require.NoError(t, svc.ActualizarPagadoMasivo(ctx, nil, true))
	require.NoError(t, svc.ActualizarEnviadoMasivo(ctx, nil, true))
	assert.Zero(t, repo.bulkCalls)
}

func TestBulkUpdates_ApplyToAllGivenIDs(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, preciosFijos("10", "15"), logger.Default())
	ctx := context.Background()

	p1, err := svc.Crear(ctx, entradaBase())
	require.NoError(t, err)
	p2, err := svc.Crear(ctx, entradaBase())
	require.NoError(t, err)

	require.NoError(t, svc.ActualizarEstadoMasivo(ctx, []id.ID{p1.ID, p2.ID}, Enviado))
	assert.Equal(t, Enviado, repo.pedidos[p1.ID].Estado)
	assert.Equal(t, Enviado, repo.pedidos[p2.ID].Estado)
}

func TestActualizarCostoEnvio_RejectsNegative(t *testing.T) {
	svc := NewService(newMockRepo(), preciosFijos("10", "15"), logger.Default())

	err := svc.ActualizarCostoEnvio(context.Background(), id.New(), types.MustMoney("-5"))
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}
