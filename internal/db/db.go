package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// Store is the backend database facade used by the composition root.
type Store interface {
	Querier
	Pinger
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Querier runs read queries. Satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
