package errors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeCartOrderMismatch = "CART_ORDER_MISMATCH"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeExternalSystem    = "EXTERNAL_SYSTEM_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

// OwnershipMismatchError guards anonymous order reads. The message must stay
// generic: it must not reveal whether the order exists at all.
func OwnershipMismatchError(message string) *AppError {
	return NewAppError(ErrCodeCartOrderMismatch, message, http.StatusBadRequest)
}

// ConflictError surfaces an optimistic-concurrency rejection from the commerce
// backend. The layer never retries; callers may refetch the cart and reissue.
func ConflictError(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, http.StatusConflict)
}

// ExternalSystemError wraps a failure of the commerce backend or the
// notification provider. Detail carries the upstream response verbatim.
func ExternalSystemError(message string) *AppError {
	return NewAppError(ErrCodeExternalSystem, message, http.StatusBadGateway)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
