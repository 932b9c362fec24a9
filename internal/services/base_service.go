package services

import (
	"errors"

	apperrors "freight-admin/pkg/errors"
)

// ensureUnique turns the result of a lookup by a unique column into a
// DuplicateError when a row was found.
func ensureUnique(lookupErr error, field, value string) error {
	if lookupErr == nil {
		return apperrors.NewDuplicateError(field, value)
	}
	if errors.Is(lookupErr, apperrors.ErrNotFound) {
		return nil
	}
	return lookupErr
}

// ensureReference reports a missing parent row as bad input rather than 404.
func ensureReference(lookupErr error, field string, id uint64) error {
	if errors.Is(lookupErr, apperrors.ErrNotFound) {
		return apperrors.NewInvalidInputError("%s %d does not exist", field, id)
	}
	return lookupErr
}
