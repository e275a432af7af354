// Package apperror defines the error taxonomy every handler maps its failures
// into. Handlers never leak raw store or gateway errors to clients; the
// underlying cause travels in Err for logging only.
package apperror

import (
	"errors"
	"net/http"
)

type ErrorType int

const (
	BadRequestError ErrorType = iota
	UnauthorizedError
	ForbiddenError
	NotFoundError
	ConflictError
	GatewayError
	InternalError
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to the HTTP status the handler responds with.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case BadRequestError:
		return http.StatusBadRequest
	case UnauthorizedError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ConflictError:
		return http.StatusConflict
	default:
		// GatewayError and InternalError both surface as 500; the distinction
		// exists for logging.
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

func NewBadRequest(message string, underlying error) *AppError {
	return New(BadRequestError, message, underlying)
}

func NewUnauthorized(message string, underlying error) *AppError {
	return New(UnauthorizedError, message, underlying)
}

func NewForbidden(message string, underlying error) *AppError {
	return New(ForbiddenError, message, underlying)
}

func NewNotFound(message string, underlying error) *AppError {
	return New(NotFoundError, message, underlying)
}

func NewConflict(message string, underlying error) *AppError {
	return New(ConflictError, message, underlying)
}

func NewGateway(message string, underlying error) *AppError {
	return New(GatewayError, message, underlying)
}

func NewInternal(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// From converts any error into an *AppError, wrapping unknown errors as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("internal server error", err)
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

func IsBadRequest(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == BadRequestError
}
