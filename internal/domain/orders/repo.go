package orders

import (
	"context"
	"time"

	"heladero/internal/core/id"
	"heladero/internal/core/types"
)

// Repository defines persistence for pedidos.
// There is no Delete: pedidos are kept forever so historical balances
// stay recomputable.
type Repository interface {
	Crear(ctx context.Context, pedido *Pedido) error
	Obtener(ctx context.Context, pedidoID id.ID) (*Pedido, error)

	// Actualizar persists a full edit (last writer wins, no version check).
	Actualizar(ctx context.Context, pedido *Pedido) error

	// Targeted single-field updates.
	ActualizarEstado(ctx context.Context, pedidoID id.ID, estado Estado) error
	ActualizarPagado(ctx context.Context, pedidoID id.ID, pagado bool) error
	ActualizarEnviado(ctx context.Context, pedidoID id.ID, enviado bool) error
	ActualizarCostoEnvio(ctx context.Context, pedidoID id.ID, costo types.Money) error

	// Bulk updates over explicit id sets.
	ActualizarEstadoMasivo(ctx context.Context, ids []id.ID, estado Estado) error
	ActualizarPagadoMasivo(ctx context.Context, ids []id.ID, pagado bool) error
	ActualizarEnviadoMasivo(ctx context.Context, ids []id.ID, enviado bool) error

	Buscar(ctx context.Context, filtro Filtro) ([]Pedido, error)

	// EnPeriodo returns pedidos created within [desde, hasta], both
	// ends inclusive. Used by balance aggregation.
	EnPeriodo(ctx context.Context, desde, hasta time.Time) ([]Pedido, error)
}
