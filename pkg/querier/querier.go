package querier

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier routes statements to the ambient transaction when one is open,
// and to the pool otherwise. Every call gets a bounded timeout so a stuck
// store surfaces as a transient failure instead of hanging the caller.
type Querier struct {
	pool    *pgxpool.Pool
	getter  *pgxv5.CtxGetter
	timeout time.Duration
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter, timeout time.Duration) *Querier {
	return &Querier{
		pool:    pool,
		getter:  getter,
		timeout: timeout,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	// No deferred cancel: rows are consumed by the caller after return.
	ctx, _ = q.withTimeout(ctx)
	return q.get(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	// No deferred cancel: the row is scanned by the caller after return.
	// The timer lives until the timeout fires; timeouts are short enough
	// that the leak stays bounded.
	ctx, _ = q.withTimeout(ctx)
	return q.get(ctx).QueryRow(ctx, sql, args...)
}

func (q *Querier) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, q.timeout)
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}
