package pgsql

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// appendDateRange extends a WHERE clause with optional date bounds. A zero
// time means unbounded on that side. The upper bound is exclusive, so callers
// pass the day after the last included date.
func appendDateRange(query string, args []any, column string, from, to time.Time) (string, []any) {
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND %s >= $%d", column, len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND %s < $%d", column, len(args))
	}
	return query, args
}
