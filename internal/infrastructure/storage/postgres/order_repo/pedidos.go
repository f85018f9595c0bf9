// Package order_repo provides the PostgreSQL implementation of the
// orders repository.
package order_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/core/types"
	"heladero/internal/domain/orders"
	"heladero/internal/infrastructure/storage/postgres"
)

const pedidosTable = "pedidos"

// Repo implements orders.Repository.
type Repo struct {
	pool *postgres.Pool
	cols []string
}

var _ orders.Repository = (*Repo)(nil)

// NewRepo creates a new orders repository.
func NewRepo(pool *postgres.Pool) *Repo {
	return &Repo{
		pool: pool,
		cols: postgres.ExtractDBColumns[orders.Pedido](),
	}
}

func (r *Repo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *Repo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(r.cols...).From(pedidosTable)
}

// Crear inserts a new pedido.
func (r *Repo) Crear(ctx context.Context, pedido *orders.Pedido) error {
	q := r.builder().
		Insert(pedidosTable).
		SetMap(postgres.StructToMap(pedido))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}

	return nil
}

// Obtener retrieves one pedido by id.
func (r *Repo) Obtener(ctx context.Context, pedidoID id.ID) (*orders.Pedido, error) {
	q := r.baseSelect().Where(squirrel.Eq{"id": pedidoID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var pedido orders.Pedido
	if err := pgxscan.Get(ctx, r.pool, &pedido, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("pedido", pedidoID)
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}

	return &pedido, nil
}

// Actualizar persists a full edit. Last writer wins; there is no
// version column on pedidos.
func (r *Repo) Actualizar(ctx context.Context, pedido *orders.Pedido) error {
	data := postgres.StructToMap(pedido)
	delete(data, "id")
	delete(data, "created_at")

	q := r.builder().
		Update(pedidosTable).
		SetMap(data).
		Where(squirrel.Eq{"id": pedido.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("pedido", pedido.ID)
	}

	return nil
}

// ActualizarEstado transitions one pedido's fulfillment state.
func (r *Repo) ActualizarEstado(ctx context.Context, pedidoID id.ID, estado orders.Estado) error {
	return r.actualizarCampo(ctx, pedidoID, "estado", estado)
}

// ActualizarPagado flips one pedido's payment flag.
func (r *Repo) ActualizarPagado(ctx context.Context, pedidoID id.ID, pagado bool) error {
	return r.actualizarCampo(ctx, pedidoID, "pagado", pagado)
}

// ActualizarEnviado flips one pedido's message-sent flag.
func (r *Repo) ActualizarEnviado(ctx context.Context, pedidoID id.ID, enviado bool) error {
	return r.actualizarCampo(ctx, pedidoID, "enviado", enviado)
}

// ActualizarCostoEnvio sets one pedido's shipping cost.
func (r *Repo) ActualizarCostoEnvio(ctx context.Context, pedidoID id.ID, costo types.Money) error {
	return r.actualizarCampo(ctx, pedidoID, "costo_envio", costo)
}

func (r *Repo) actualizarCampo(ctx context.Context, pedidoID id.ID, col string, val any) error {
	q := r.builder().
		Update(pedidosTable).
		Set(col, val).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pedidoID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", col, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("pedido", pedidoID)
	}

	return nil
}

// ActualizarEstadoMasivo transitions many pedidos at once.
func (r *Repo) ActualizarEstadoMasivo(ctx context.Context, ids []id.ID, estado orders.Estado) error {
	return r.actualizarCampoMasivo(ctx, ids, "estado", estado)
}

// ActualizarPagadoMasivo flips the payment flag on many pedidos.
func (r *Repo) ActualizarPagadoMasivo(ctx context.Context, ids []id.ID, pagado bool) error {
	return r.actualizarCampoMasivo(ctx, ids, "pagado", pagado)
}

// ActualizarEnviadoMasivo flips the message-sent flag on many pedidos.
func (r *Repo) ActualizarEnviadoMasivo(ctx context.Context, ids []id.ID, enviado bool) error {
	return r.actualizarCampoMasivo(ctx, ids, "enviado", enviado)
}

func (r *Repo) actualizarCampoMasivo(ctx context.Context, ids []id.ID, col string, val any) error {
	if len(ids) == 0 {
		return nil
	}

	q := r.builder().
		Update(pedidosTable).
		Set(col, val).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("bulk update %s: %w", col, err)
	}

	return nil
}

// Buscar lists pedidos matching a filter, newest first.
func (r *Repo) Buscar(ctx context.Context, filtro orders.Filtro) ([]orders.Pedido, error) {
	q := r.baseSelect().OrderBy("created_at DESC")

	if filtro.Desde != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *filtro.Desde})
	}
	if filtro.Hasta != nil {
		q = q.Where(squirrel.LtOrEq{"created_at": *filtro.Hasta})
	}
	if filtro.Estado != nil {
		q = q.Where(squirrel.Eq{"estado": *filtro.Estado})
	}
	if filtro.Pagado != nil {
		q = q.Where(squirrel.Eq{"pagado": *filtro.Pagado})
	}
	if filtro.MetodoPago != nil {
		q = q.Where(squirrel.Eq{"metodo_pago": *filtro.MetodoPago})
	}
	if filtro.Texto != "" {
		patron := "%" + filtro.Texto + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"direccion": patron},
			squirrel.ILike{"telefono": patron},
		})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var pedidos []orders.Pedido
	if err := pgxscan.Select(ctx, r.pool, &pedidos, sql, args...); err != nil {
		return nil, fmt.Errorf("select pedidos: %w", err)
	}

	return pedidos, nil
}

// EnPeriodo returns pedidos created within [desde, hasta], inclusive
// on both ends per the balance contract.
func (r *Repo) EnPeriodo(ctx context.Context, desde, hasta time.Time) ([]orders.Pedido, error) {
	q := r.baseSelect().
		Where(squirrel.GtOrEq{"created_at": desde}).
		Where(squirrel.LtOrEq{"created_at": hasta}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var pedidos []orders.Pedido
	if err := pgxscan.Select(ctx, r.pool, &pedidos, sql, args...); err != nil {
		return nil, fmt.Errorf("select pedidos en periodo: %w", err)
	}

	return pedidos, nil
}
