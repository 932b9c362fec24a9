package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "freight-admin/pkg/errors"
)

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

// bindAndValidate decodes the body into payload and runs the validator.
// Validation errors are returned as-is so the envelope can list each field.
func bindAndValidate(c echo.Context, payload interface{}) error {
	if err := c.Bind(payload); err != nil {
		return apperrors.NewBadRequestError("malformed request body")
	}
	return c.Validate(payload)
}
