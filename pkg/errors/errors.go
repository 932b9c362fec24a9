package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("unexpected token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")
	ErrTokenRevoked         = fmt.Errorf("token has been revoked")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")

	// Authentication
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("authorization header must be 'Bearer <token>'")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrAccountLocked      = fmt.Errorf("too many failed login attempts, try again later")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrForbidden          = fmt.Errorf("access denied")

	// Request context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")

	// General
	ErrNotFound       = fmt.Errorf("record not found")
	ErrBadRequest     = fmt.Errorf("bad request")
	ErrDuplicate      = fmt.Errorf("record already exists")
	ErrInternalServer = fmt.Errorf("internal server error")
)

// Public error codes. They are part of the API contract.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeBadRequest   = "BAD_REQUEST"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeDuplicate    = "DUPLICATE_KEY"
	CodeInternal     = "INTERNAL_ERROR"
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateError names the unique field that collided.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Field, e.Value)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

func NewDuplicateError(field, value string) error {
	return &DuplicateError{Field: field, Value: value}
}

// HttpError carries an explicit status and a public message. Err is the
// internal cause and is only logged.
type HttpError struct {
	Code    int                    `json:"-"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil, nil)
}

// Resolve maps any error to a status, a public code and a public message.
func Resolve(err error) (status int, code string, message string) {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code, codeForStatus(httpErr.Code), httpErr.Message
	}

	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest, CodeValidation, invalid.Message
	}

	var dup *DuplicateError
	if errors.As(err, &dup) {
		return http.StatusBadRequest, CodeDuplicate, dup.Error()
	}

	switch {
	case errors.Is(err, ErrDuplicate):
		return http.StatusBadRequest, CodeDuplicate, ErrDuplicate.Error()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, CodeNotFound, ErrNotFound.Error()
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, CodeBadRequest, ErrBadRequest.Error()
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, CodeForbidden, ErrForbidden.Error()
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountLocked),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrEmptyAuthHeader),
		errors.Is(err, ErrInvalidAuthHeader),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidSigningMethod),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenNotYetValid),
		errors.Is(err, ErrTokenRevoked),
		errors.Is(err, ErrTokenIsNotRefresh),
		errors.Is(err, ErrTokenIsNotAccess),
		errors.Is(err, ErrUserIDNotFoundInContext):
		return http.StatusUnauthorized, CodeUnauthorized, rootMessage(err)
	}

	return http.StatusInternalServerError, CodeInternal, ErrInternalServer.Error()
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeDuplicate
	}
	if status >= 500 {
		return CodeInternal
	}
	return CodeBadRequest
}

// rootMessage returns the message of the sentinel at the bottom of the chain
// so that wrapped token errors do not leak parser details.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
