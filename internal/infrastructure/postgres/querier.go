package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier subconjunto de pgx que usan los repositorios de lectura.
// Lo implementan *pgxpool.Pool, *pgxpool.Conn, pgx.Tx y los mocks de pgxmock.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
