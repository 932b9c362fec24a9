package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

type ListResponse[T any] struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Data       []T              `json:"data"`
	Pagination types.Pagination `json:"pagination"`
}

type ErrorBody struct {
	Success bool                   `json:"success"`
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SuccessOne returns a single object.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, total uint64, page, pageSize int) error {
	if list == nil {
		list = make([]T, 0)
	}

	return c.JSON(http.StatusOK, ListResponse[T]{
		Success:    true,
		Message:    message,
		Data:       list,
		Pagination: types.NewPagination(total, page, pageSize),
	})
}

// ErrorResponse writes the uniform error body. The raw cause is logged, the
// client only sees the public code and message.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string]interface{}, len(validationErrs))
		for _, fe := range validationErrs {
			details[fe.Field()] = fe.Tag()
		}
		return c.JSON(http.StatusBadRequest, ErrorBody{
			Error:   apperrors.CodeValidation,
			Message: "request validation failed",
			Details: details,
		})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		msg, _ := echoErr.Message.(string)
		if msg == "" {
			msg = http.StatusText(echoErr.Code)
		}
		err = apperrors.NewHttpError(echoErr.Code, msg, echoErr.Internal, nil)
	}

	status, code, message := apperrors.Resolve(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("status", status),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Debug("request rejected", fields...)
		}
	}

	body := ErrorBody{Error: code, Message: message}
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		body.Details = httpErr.Details
	}
	return c.JSON(status, body)
}
