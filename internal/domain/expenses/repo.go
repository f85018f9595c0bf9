package expenses

import (
	"context"
	"time"

	"heladero/internal/core/id"
)

// Repository defines persistence for gastos. There is no physical
// delete; Desactivar sets the tombstone.
type Repository interface {
	Crear(ctx context.Context, gasto *Gasto) error
	Desactivar(ctx context.Context, gastoID id.ID) error

	// ActivosEnPeriodo returns active gastos created within
	// [desde, hasta], both ends inclusive.
	ActivosEnPeriodo(ctx context.Context, desde, hasta time.Time) ([]Gasto, error)
}
