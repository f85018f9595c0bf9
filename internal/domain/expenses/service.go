package expenses

import (
	"context"
	"time"

	"heladero/internal/core/id"
	"heladero/internal/core/types"
	"heladero/pkg/logger"
)

// Service provides business logic for gastos.
type Service struct {
	repo Repository
	log  *logger.Logger
}

// NewService creates a new expenses service.
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log.WithComponent("expenses")}
}

// Ingresar records a new cash expense.
func (s *Service) Ingresar(ctx context.Context, monto types.Money) (*Gasto, error) {
	gasto := NuevoGasto(monto)
	if err := gasto.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Crear(ctx, gasto); err != nil {
		return nil, err
	}
	s.log.WithContext(ctx).Infow("gasto recorded", "gasto_id", gasto.ID, "monto", gasto.Monto)
	return gasto, nil
}

// Eliminar soft-deletes a gasto. The row stays behind with activo=false
// and stops participating in balances.
func (s *Service) Eliminar(ctx context.Context, gastoID id.ID) error {
	return s.repo.Desactivar(ctx, gastoID)
}

// EnPeriodo lists the active gastos created within [desde, hasta].
func (s *Service) EnPeriodo(ctx context.Context, desde, hasta time.Time) ([]Gasto, error) {
	return s.repo.ActivosEnPeriodo(ctx, desde, hasta)
}
