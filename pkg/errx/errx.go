package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "Erro interno"
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// BadRequest is a 400 with the given message.
func BadRequest(message string) *AppError {
	return New(nil, http.StatusBadRequest, message)
}

// Unauthorized is a 401 with the given message.
func Unauthorized(message string) *AppError {
	return New(nil, http.StatusUnauthorized, message)
}

// NotFound is a 404 with the given message.
func NotFound(message string) *AppError {
	return New(nil, http.StatusNotFound, message)
}

// Conflict is a 409 with the given message.
func Conflict(message string) *AppError {
	return New(nil, http.StatusConflict, message)
}

// Internal wraps err as a 500 carrying the given safe message.
func Internal(err error, message string) *AppError {
	return New(err, http.StatusInternalServerError, message)
}

// StatusOf returns the HTTP status carried by err, 500 when it carries none.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the safe message carried by err. Errors that are not an
// AppError never leak their text.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return SystemErrorMessage
}
