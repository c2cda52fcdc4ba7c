package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the read interface shared by *pgxpool.Pool, pgx.Tx and
// pgxmock pools, so repositories can be unit-tested without a database.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
