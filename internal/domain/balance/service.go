package balance

import (
	"context"
	"time"

	"heladero/internal/core/apperror"
	"heladero/internal/domain/expenses"
	"heladero/internal/domain/orders"
	"heladero/pkg/logger"
)

// PedidosFuente is the order read side the aggregator consumes.
type PedidosFuente interface {
	EnPeriodo(ctx context.Context, desde, hasta time.Time) ([]orders.Pedido, error)
}

// GastosFuente is the expense read side the aggregator consumes.
type GastosFuente interface {
	ActivosEnPeriodo(ctx context.Context, desde, hasta time.Time) ([]expenses.Gasto, error)
}

// Service computes balances over pedidos and gastos.
type Service struct {
	pedidos PedidosFuente
	gastos  GastosFuente
	log     *logger.Logger
}

// NewService creates a new balance service.
func NewService(pedidos PedidosFuente, gastos GastosFuente, log *logger.Logger) *Service {
	return &Service{pedidos: pedidos, gastos: gastos, log: log.WithComponent("balance")}
}

// Calcular folds every pedido and active gasto created within
// [desde, hasta] (both ends inclusive) into one Balance.
//
// The two reads are independent round trips with no cross-query
// snapshot; a concurrent write between them can make the result
// best-effort, and the remedy is recomputation. A failed read is a
// hard failure: a partial balance is silent financial misinformation,
// so none is ever returned.
func (s *Service) Calcular(ctx context.Context, desde, hasta time.Time) (*Balance, error) {
	if desde.After(hasta) {
		return nil, apperror.NewValidation("desde must not be after hasta")
	}

	pedidos, err := s.pedidos.EnPeriodo(ctx, desde, hasta)
	if err != nil {
		s.log.WithContext(ctx).Errorw("pedido query failed during balance", "error", err)
		return nil, apperror.NewBalanceQuery(err)
	}

	gastos, err := s.gastos.ActivosEnPeriodo(ctx, desde, hasta)
	if err != nil {
		s.log.WithContext(ctx).Errorw("gasto query failed during balance", "error", err)
		return nil, apperror.NewBalanceQuery(err)
	}

	b := &Balance{}

	for _, p := range pedidos {
		b.TotalAgua += p.CantidadAgua
		b.TotalCrema += p.CantidadCrema

		monto := p.MontoTotalAgua.Add(p.MontoTotalCrema)
		switch p.MetodoPago {
		case orders.Transferencia:
			b.PlataTransferencia = b.PlataTransferencia.Add(monto)
		case orders.Efectivo:
			b.PlataEfectivo = b.PlataEfectivo.Add(monto)
		}

		b.CostoEnvioTotal = b.CostoEnvioTotal.Add(p.CostoEnvio)
		if p.CostoEnvio.IsPositive() {
			b.CantidadEnvios++
		}
	}

	for _, g := range gastos {
		b.TotalGastos = b.TotalGastos.Add(g.Monto)
		b.CantidadGastos++
	}

	b.EfectivoFinal = b.PlataEfectivo.Sub(b.CostoEnvioTotal).Sub(b.TotalGastos)
	b.IngresoTotal = b.PlataEfectivo.Add(b.PlataTransferencia)

	return b, nil
}

// CalcularPeriodo derives the window for a mode and anchor date and
// computes the balance over it.
func (s *Service) CalcularPeriodo(ctx context.Context, modo Modo, ancla time.Time) (*Balance, Periodo, error) {
	periodo, err := DerivarPeriodo(modo, ancla)
	if err != nil {
		return nil, Periodo{}, err
	}
	b, err := s.Calcular(ctx, periodo.Desde, periodo.Hasta)
	if err != nil {
		return nil, Periodo{}, err
	}
	return b, periodo, nil
}
