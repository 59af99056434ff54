package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlStateUniqueViolation código SQLSTATE de violación de constraint único.
const sqlStateUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateUniqueViolation
	}
	return false
}
