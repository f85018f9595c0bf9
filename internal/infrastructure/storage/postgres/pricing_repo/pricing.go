// Package pricing_repo provides the PostgreSQL implementation of the
// pricing repository.
package pricing_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/domain/pricing"
	"heladero/internal/infrastructure/storage/postgres"
)

const (
	listasTable = "listas_precios"
	reglasTable = "reglas_precios"
)

// Repo implements pricing.Repository.
type Repo struct {
	pool      *postgres.Pool
	listaCols []string
	reglaCols []string
}

var _ pricing.Repository = (*Repo)(nil)

// NewRepo creates a new pricing repository.
func NewRepo(pool *postgres.Pool) *Repo {
	return &Repo{
		pool:      pool,
		listaCols: postgres.ExtractDBColumns[pricing.Lista](),
		reglaCols: postgres.ExtractDBColumns[pricing.Regla](),
	}
}

func (r *Repo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ListaActiva retrieves the single active price list.
func (r *Repo) ListaActiva(ctx context.Context) (*pricing.Lista, error) {
	q := r.builder().
		Select(r.listaCols...).
		From(listasTable).
		Where(squirrel.Eq{"activa": true}).
		OrderBy("created_at DESC").
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lista pricing.Lista
	if err := pgxscan.Get(ctx, r.pool, &lista, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("lista_precios", "activa")
		}
		return nil, fmt.Errorf("get active lista: %w", err)
	}

	return &lista, nil
}

// Reglas retrieves all rules belonging to a list.
func (r *Repo) Reglas(ctx context.Context, listaID id.ID) ([]pricing.Regla, error) {
	q := r.builder().
		Select(r.reglaCols...).
		From(reglasTable).
		Where(squirrel.Eq{"lista_id": listaID}).
		OrderBy("tipo_producto", "min_cantidad")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var reglas []pricing.Regla
	if err := pgxscan.Select(ctx, r.pool, &reglas, sql, args...); err != nil {
		return nil, fmt.Errorf("select reglas: %w", err)
	}

	return reglas, nil
}

// CrearLista inserts a list header.
func (r *Repo) CrearLista(ctx context.Context, lista *pricing.Lista) error {
	q := r.builder().
		Insert(listasTable).
		SetMap(postgres.StructToMap(lista))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lista: %w", err)
	}

	return nil
}

// CrearReglas bulk-inserts rules in a single statement.
func (r *Repo) CrearReglas(ctx context.Context, reglas []pricing.Regla) error {
	if len(reglas) == 0 {
		return nil
	}

	q := r.builder().
		Insert(reglasTable).
		Columns(r.reglaCols...)
	for _, regla := range reglas {
		q = q.Values(regla.ID, regla.ListaID, regla.TipoProducto, regla.MinCantidad, regla.PrecioUnitario)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert reglas: %w", err)
	}

	return nil
}

// EliminarLista removes a list header (compensating rollback only).
func (r *Repo) EliminarLista(ctx context.Context, listaID id.ID) error {
	q := r.builder().
		Delete(listasTable).
		Where(squirrel.Eq{"id": listaID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete lista: %w", err)
	}

	return nil
}

// DesactivarListas clears the activa flag on every list.
func (r *Repo) DesactivarListas(ctx context.Context) error {
	q := r.builder().
		Update(listasTable).
		Set("activa", false).
		Where(squirrel.Eq{"activa": true})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("deactivate listas: %w", err)
	}

	return nil
}
