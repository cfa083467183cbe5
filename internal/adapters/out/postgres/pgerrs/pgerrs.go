// Package pgerrs classifies PostgreSQL failures into workflow errors so the
// coordinator can tell a retryable conflict from a real failure.
package pgerrs

import (
	"errors"

	"careshare/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that mean "another transaction got there first".
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
	lockNotAvailable     = "55P03"
	uniqueViolation      = "23505"
)

// Classify maps err to a StoreConflictError or DuplicateRequestError where the
// SQLSTATE allows it and returns every other error unchanged. paramName and id
// describe the row being written.
func Classify(err error, paramName string, id any) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case serializationFailure, deadlockDetected, lockNotAvailable:
		return errs.NewStoreConflictErrorWithCause(paramName, err)
	case uniqueViolation:
		return errs.NewDuplicateRequestError(paramName, id)
	default:
		return err
	}
}
