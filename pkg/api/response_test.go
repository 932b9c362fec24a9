package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "freight-admin/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessList_EmptyPageBeyondEnd(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessList[string](c, "ok", nil, 12, 5, 10))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{}, body["data"])

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(12), pagination["total"])
	assert.Equal(t, float64(5), pagination["page"])
	assert.Equal(t, float64(10), pagination["pageSize"])
	assert.Equal(t, float64(2), pagination["totalPages"])
}

func TestErrorResponse_HidesInternalCause(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, ErrorResponse(c, fmt.Errorf("dial tcp 10.0.0.5:5432: refused"), zap.NewNop()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, apperrors.CodeInternal, body.Error)
}

func TestErrorResponse_Validation(t *testing.T) {
	type payload struct {
		CustomerName string `validate:"required"`
	}
	verr := validator.New().Struct(payload{})
	c, rec := newContext()

	require.NoError(t, ErrorResponse(c, verr, zap.NewNop()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeValidation, body.Error)
	assert.Equal(t, "required", body.Details["CustomerName"])
}

func TestErrorResponse_Duplicate(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, ErrorResponse(c, apperrors.NewDuplicateError("rmAccountNumber", "ACME001"), nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apperrors.CodeDuplicate)
	assert.Contains(t, rec.Body.String(), "ACME001")
}
