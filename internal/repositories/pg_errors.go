package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "freight-admin/pkg/errors"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// violatedConstraint returns the constraint or index name of a unique
// violation, or "" for any other error.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}

// writeErr maps a failed INSERT/UPDATE: unique violations become a
// DuplicateError on the given field, everything else is wrapped with op.
func writeErr(err error, op, field, value string) error {
	if isUniqueViolation(err) {
		return apperrors.NewDuplicateError(field, value)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// readErr maps pgx.ErrNoRows to ErrNotFound.
func readErr(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
