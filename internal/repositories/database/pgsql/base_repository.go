package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the shared connection pool for pgx-backed repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
