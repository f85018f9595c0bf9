package pricing

import (
	"context"
	"strings"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/pkg/logger"
)

// Service provides business logic for price lists and resolution.
type Service struct {
	repo Repository
	log  *logger.Logger
}

// NewService creates a new pricing service.
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log.WithComponent("pricing")}
}

// ListaActiva returns the currently active price list.
func (s *Service) ListaActiva(ctx context.Context) (*Lista, error) {
	lista, err := s.repo.ListaActiva(ctx)
	if err != nil {
		if apperror.IsCode(err, apperror.CodeNotFound) {
			return nil, apperror.NewNoActivePriceList()
		}
		return nil, err
	}
	return lista, nil
}

// ReglasActivas returns the rules of the active list.
func (s *Service) ReglasActivas(ctx context.Context) ([]Regla, error) {
	lista, err := s.ListaActiva(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.Reglas(ctx, lista.ID)
}

// ResolverPrecios resolves per-unit prices for an order's quantities
// against the active list. Fails when no list is active or when a
// requested product type has no rules, blocking $0 orders.
func (s *Service) ResolverPrecios(ctx context.Context, cantidadAgua, cantidadCrema int) (PreciosUnitarios, error) {
	if cantidadAgua <= 0 && cantidadCrema <= 0 {
		return PreciosUnitarios{}, nil
	}

	reglas, err := s.ReglasActivas(ctx)
	if err != nil {
		return PreciosUnitarios{}, err
	}

	return CalcularPrecios(cantidadAgua, cantidadCrema, reglas)
}

// CrearLista creates a new price list and activates it, deactivating
// every previous list first so at most one list is ever active.
//
// Header and rules are two independent writes; there is no cross-call
// transaction. On rule-insert failure the header is deleted as a
// compensating rollback. A failed rollback is surfaced as
// COMPENSATION_FAILED since it leaves a known-bad orphaned header.
func (s *Service) CrearLista(ctx context.Context, nombre string, reglas []NuevaRegla) (*Lista, error) {
	if strings.TrimSpace(nombre) == "" {
		return nil, apperror.NewValidation("nombre is required")
	}
	if err := ValidarReglas(reglas); err != nil {
		return nil, err
	}

	if err := s.repo.DesactivarListas(ctx); err != nil {
		return nil, err
	}

	lista := NuevaLista(nombre)
	if err := s.repo.CrearLista(ctx, lista); err != nil {
		return nil, err
	}

	filas := make([]Regla, 0, len(reglas))
	for _, r := range reglas {
		filas = append(filas, Regla{
			ID:             id.New(),
			ListaID:        lista.ID,
			TipoProducto:   r.TipoProducto,
			MinCantidad:    r.MinCantidad,
			PrecioUnitario: r.PrecioUnitario,
		})
	}

	if err := s.repo.CrearReglas(ctx, filas); err != nil {
		s.log.WithContext(ctx).Warnw("rule insert failed, rolling back list header",
			"lista_id", lista.ID, "error", err)
		if delErr := s.repo.EliminarLista(ctx, lista.ID); delErr != nil {
			compErr := apperror.NewCompensationFailed(lista.ID, delErr)
			s.log.WithContext(ctx).Errorw("price list rollback failed",
				"lista_id", lista.ID, "error", delErr)
			return nil, compErr
		}
		return nil, err
	}

	s.log.WithContext(ctx).Infow("price list created",
		"lista_id", lista.ID, "nombre", lista.Nombre, "reglas", len(filas))

	return lista, nil
}
