package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// exclusion_violation: a constraint appointments_no_overlap barrou a escrita.
	pgExclusionViolation = "23P01"
	// unique_violation: índice único rejeitou o insert.
	pgUniqueViolation = "23505"
)

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
