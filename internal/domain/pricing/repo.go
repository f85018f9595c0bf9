package pricing

import (
	"context"

	"heladero/internal/core/id"
)

// Repository defines persistence for price lists and their rules.
type Repository interface {
	// ListaActiva retrieves the single active list.
	// Returns apperror NOT_FOUND when no list is active.
	ListaActiva(ctx context.Context) (*Lista, error)

	// Reglas retrieves all rules belonging to a list.
	Reglas(ctx context.Context, listaID id.ID) ([]Regla, error)

	// CrearLista inserts a list header.
	CrearLista(ctx context.Context, lista *Lista) error

	// CrearReglas bulk-inserts rules for a list.
	CrearReglas(ctx context.Context, reglas []Regla) error

	// EliminarLista removes a list header (compensating rollback only;
	// established lists are never deleted).
	EliminarLista(ctx context.Context, listaID id.ID) error

	// DesactivarListas clears the activa flag on every list.
	DesactivarListas(ctx context.Context) error
}
