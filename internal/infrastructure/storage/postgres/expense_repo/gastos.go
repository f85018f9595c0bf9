// Package expense_repo provides the PostgreSQL implementation of the
// expenses repository.
package expense_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/domain/expenses"
	"heladero/internal/infrastructure/storage/postgres"
)

const gastosTable = "gastos"

// Repo implements expenses.Repository.
type Repo struct {
	pool *postgres.Pool
	cols []string
}

var _ expenses.Repository = (*Repo)(nil)

// NewRepo creates a new expenses repository.
func NewRepo(pool *postgres.Pool) *Repo {
	return &Repo{
		pool: pool,
		cols: postgres.ExtractDBColumns[expenses.Gasto](),
	}
}

func (r *Repo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Crear inserts a new gasto.
func (r *Repo) Crear(ctx context.Context, gasto *expenses.Gasto) error {
	q := r.builder().
		Insert(gastosTable).
		SetMap(postgres.StructToMap(gasto))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}

	return nil
}

// Desactivar sets the soft-delete tombstone on a gasto.
func (r *Repo) Desactivar(ctx context.Context, gastoID id.ID) error {
	q := r.builder().
		Update(gastosTable).
		Set("activo", false).
		Where(squirrel.Eq{"id": gastoID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("deactivate gasto: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("gasto", gastoID)
	}

	return nil
}

// ActivosEnPeriodo returns active gastos created within [desde, hasta],
// inclusive on both ends per the balance contract.
func (r *Repo) ActivosEnPeriodo(ctx context.Context, desde, hasta time.Time) ([]expenses.Gasto, error) {
	q := r.builder().
		Select(r.cols...).
		From(gastosTable).
		Where(squirrel.Eq{"activo": true}).
		Where(squirrel.GtOrEq{"created_at": desde}).
		Where(squirrel.LtOrEq{"created_at": hasta}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var gastos []expenses.Gasto
	if err := pgxscan.Select(ctx, r.pool, &gastos, sql, args...); err != nil {
		return nil, fmt.Errorf("select gastos: %w", err)
	}

	return gastos, nil
}
