// Package expenses manages gastos: miscellaneous cash outlays that
// reduce the period's net cash. Gastos are soft-deleted only; history
// stays intact so past balances recompute identically.
package expenses

import (
	"time"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/core/types"
)

// Gasto is one cash expense.
type Gasto struct {
	ID    id.ID       `db:"id" json:"id"`
	Monto types.Money `db:"monto" json:"monto"`

	// Activo marks the tombstone: only active gastos participate in
	// balance computation.
	Activo bool `db:"activo" json:"activo"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NuevoGasto creates an active gasto with a generated ID.
func NuevoGasto(monto types.Money) *Gasto {
	return &Gasto{
		ID:        id.New(),
		Monto:     monto,
		Activo:    true,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks gasto invariants.
func (g *Gasto) Validate() error {
	if !g.Monto.IsPositive() {
		return apperror.NewValidation("monto must be positive").
			WithDetail("monto", g.Monto)
	}
	return nil
}
