package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes raised by the constraints in schema.sql.
const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
)

// PgError returns the PostgreSQL error wrapped by err with the given code.
func PgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}

func IsUniqueViolation(err error) bool {
	_, ok := PgError(err, UniqueViolation)
	return ok
}

func IsForeignKeyViolation(err error) bool {
	_, ok := PgError(err, ForeignKeyViolation)
	return ok
}
