package orders

import (
	"context"
	"time"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/core/types"
	"heladero/internal/domain/pricing"
	"heladero/pkg/logger"
)

// PriceResolver resolves unit prices against the active price list.
// Implemented by pricing.Service.
type PriceResolver interface {
	ResolverPrecios(ctx context.Context, cantidadAgua, cantidadCrema int) (pricing.PreciosUnitarios, error)
}

// Service provides business logic for pedidos.
type Service struct {
	repo    Repository
	precios PriceResolver
	log     *logger.Logger
}

// NewService creates a new orders service.
func NewService(repo Repository, precios PriceResolver, log *logger.Logger) *Service {
	return &Service{repo: repo, precios: precios, log: log.WithComponent("orders")}
}

// CrearPedidoInput carries operator input for a new order. A non-nil
// MontoTotal means the operator typed the total by hand instead of
// accepting the computed one.
type CrearPedidoInput struct {
	Direccion       string
	Telefono        string
	CantidadAgua    int
	CantidadCrema   int
	MetodoPago      MetodoPago
	CostoEnvio      types.Money
	Aclaracion      *string
	Observaciones   *string
	MontoTotalAgua  *types.Money
	MontoTotalCrema *types.Money
}

// EditarPedidoInput carries a full order edit. MontoTotal semantics
// match CrearPedidoInput; a nil MontoTotal keeps whatever provenance
// the stored total already has, unless its quantity changed.
type EditarPedidoInput struct {
	Direccion       string
	Telefono        string
	CantidadAgua    int
	CantidadCrema   int
	MetodoPago      MetodoPago
	Estado          Estado
	Pagado          bool
	CostoEnvio      types.Money
	Aclaracion      *string
	Observaciones   *string
	MontoTotalAgua  *types.Money
	MontoTotalCrema *types.Money
}

// Crear creates a pedido, resolving totals from the active price list
// unless the operator supplied them. Pricing failures block the write;
// a pedido is never persisted with a silent $0 total.
func (s *Service) Crear(ctx context.Context, input CrearPedidoInput) (*Pedido, error) {
	now := time.Now().UTC()
	pedido := &Pedido{
		ID:            id.New(),
		Direccion:     input.Direccion,
		Telefono:      input.Telefono,
		CantidadAgua:  input.CantidadAgua,
		CantidadCrema: input.CantidadCrema,
		MetodoPago:    input.MetodoPago,
		Estado:        Pendiente,
		CostoEnvio:    input.CostoEnvio,
		Aclaracion:    input.Aclaracion,
		Observaciones: input.Observaciones,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := pedido.Validate(); err != nil {
		return nil, err
	}

	montoAgua, montoCrema, err := s.resolverMontos(ctx,
		input.CantidadAgua, input.CantidadCrema,
		input.MontoTotalAgua, input.MontoTotalCrema)
	if err != nil {
		return nil, err
	}
	pedido.SetMontoAgua(montoAgua)
	pedido.SetMontoCrema(montoCrema)

	if err := s.repo.Crear(ctx, pedido); err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Infow("pedido created",
		"pedido_id", pedido.ID,
		"cantidad_agua", pedido.CantidadAgua,
		"cantidad_crema", pedido.CantidadCrema,
		"metodo_pago", pedido.MetodoPago)

	return pedido, nil
}

// Editar applies a full edit to a pedido with per-field override
// semantics on the totals:
//   - an operator-entered total becomes authoritative (Manual);
//   - a changed quantity reverts its total to computed and recomputes
//     it from the active price list;
//   - otherwise the stored total and its provenance are preserved.
func (s *Service) Editar(ctx context.Context, pedidoID id.ID, input EditarPedidoInput) (*Pedido, error) {
	pedido, err := s.repo.Obtener(ctx, pedidoID)
	if err != nil {
		return nil, err
	}

	aguaCambio := input.CantidadAgua != pedido.CantidadAgua
	cremaCambio := input.CantidadCrema != pedido.CantidadCrema

	pedido.Direccion = input.Direccion
	pedido.Telefono = input.Telefono
	pedido.CantidadAgua = input.CantidadAgua
	pedido.CantidadCrema = input.CantidadCrema
	pedido.MetodoPago = input.MetodoPago
	pedido.Estado = input.Estado
	pedido.Pagado = input.Pagado
	pedido.CostoEnvio = input.CostoEnvio
	pedido.Aclaracion = input.Aclaracion
	pedido.Observaciones = input.Observaciones
	pedido.UpdatedAt = time.Now().UTC()

	if err := pedido.Validate(); err != nil {
		return nil, err
	}

	necesitaAgua := input.MontoTotalAgua == nil && aguaCambio
	necesitaCrema := input.MontoTotalCrema == nil && cremaCambio

	var precios pricing.PreciosUnitarios
	if necesitaAgua || necesitaCrema {
		precios, err = s.precios.ResolverPrecios(ctx, input.CantidadAgua, input.CantidadCrema)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case input.MontoTotalAgua != nil:
		pedido.SetMontoAgua(Ingresado(*input.MontoTotalAgua))
	case aguaCambio:
		pedido.SetMontoAgua(Calculado(precios.PrecioAgua.Mul(types.NewMoneyFromInt(int64(input.CantidadAgua)))))
	}

	switch {
	case input.MontoTotalCrema != nil:
		pedido.SetMontoCrema(Ingresado(*input.MontoTotalCrema))
	case cremaCambio:
		pedido.SetMontoCrema(Calculado(precios.PrecioCrema.Mul(types.NewMoneyFromInt(int64(input.CantidadCrema)))))
	}

	if err := s.repo.Actualizar(ctx, pedido); err != nil {
		return nil, err
	}

	return pedido, nil
}

// resolverMontos builds both totals for the given quantities, calling
// the resolver only when at least one total must be computed.
func (s *Service) resolverMontos(ctx context.Context, cantidadAgua, cantidadCrema int, manualAgua, manualCrema *types.Money) (Monto, Monto, error) {
	necesitaAgua := manualAgua == nil && cantidadAgua > 0
	necesitaCrema := manualCrema == nil && cantidadCrema > 0

	var precios pricing.PreciosUnitarios
	if necesitaAgua || necesitaCrema {
		var err error
		precios, err = s.precios.ResolverPrecios(ctx, cantidadAgua, cantidadCrema)
		if err != nil {
			return Monto{}, Monto{}, err
		}
	}

	montoAgua := Calculado(types.Zero())
	switch {
	case manualAgua != nil:
		montoAgua = Ingresado(*manualAgua)
	case necesitaAgua:
		montoAgua = Calculado(precios.PrecioAgua.Mul(types.NewMoneyFromInt(int64(cantidadAgua))))
	}

	montoCrema := Calculado(types.Zero())
	switch {
	case manualCrema != nil:
		montoCrema = Ingresado(*manualCrema)
	case necesitaCrema:
		montoCrema = Calculado(precios.PrecioCrema.Mul(types.NewMoneyFromInt(int64(cantidadCrema))))
	}

	return montoAgua, montoCrema, nil
}

// Obtener returns one pedido by id.
func (s *Service) Obtener(ctx context.Context, pedidoID id.ID) (*Pedido, error) {
	return s.repo.Obtener(ctx, pedidoID)
}

// Buscar lists pedidos matching a filter.
func (s *Service) Buscar(ctx context.Context, filtro Filtro) ([]Pedido, error) {
	if filtro.Desde != nil && filtro.Hasta != nil && filtro.Desde.After(*filtro.Hasta) {
		return nil, apperror.NewValidation("desde must not be after hasta")
	}
	return s.repo.Buscar(ctx, filtro)
}

// ActualizarEstado transitions one pedido's fulfillment state.
func (s *Service) ActualizarEstado(ctx context.Context, pedidoID id.ID, estado Estado) error {
	if !estado.Valido() {
		return apperror.NewValidation("estado must be pendiente, enviado or cancelado").
			WithDetail("estado", string(estado))
	}
	return s.repo.ActualizarEstado(ctx, pedidoID, estado)
}

// ActualizarPagado flips one pedido's payment flag.
func (s *Service) ActualizarPagado(ctx context.Context, pedidoID id.ID, pagado bool) error {
	return s.repo.ActualizarPagado(ctx, pedidoID, pagado)
}

// ActualizarEnviado flips one pedido's message-sent flag.
func (s *Service) ActualizarEnviado(ctx context.Context, pedidoID id.ID, enviado bool) error {
	return s.repo.ActualizarEnviado(ctx, pedidoID, enviado)
}

// ActualizarCostoEnvio sets one pedido's shipping cost.
func (s *Service) ActualizarCostoEnvio(ctx context.Context, pedidoID id.ID, costo types.Money) error {
	if costo.IsNegative() {
		return apperror.NewValidation("costo_envio must not be negative")
	}
	return s.repo.ActualizarCostoEnvio(ctx, pedidoID, costo)
}

// ActualizarEstadoMasivo transitions many pedidos at once.
// An empty id list is a no-op, not an error.
func (s *Service) ActualizarEstadoMasivo(ctx context.Context, ids []id.ID, estado Estado) error {
	if len(ids) == 0 {
		return nil
	}
	if !estado.Valido() {
		return apperror.NewValidation("estado must be pendiente, enviado or cancelado").
			WithDetail("estado", string(estado))
	}
	return s.repo.ActualizarEstadoMasivo(ctx, ids, estado)
}

// ActualizarPagadoMasivo flips the payment flag on many pedidos.
func (s *Service) ActualizarPagadoMasivo(ctx context.Context, ids []id.ID, pagado bool) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.ActualizarPagadoMasivo(ctx, ids, pagado)
}

// ActualizarEnviadoMasivo flips the message-sent flag on many pedidos.
func (s *Service) ActualizarEnviadoMasivo(ctx context.Context, ids []id.ID, enviado bool) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.ActualizarEnviadoMasivo(ctx, ids, enviado)
}
