package apperr

import (
	"errors"
	"net/http"
)

// Error codes for the POS failure taxonomy
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeEmptyCart  = "EMPTY_CART"
	CodeSubmission = "SUBMISSION_FAILED"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError is an operation-level error surfaced to the caller as a message.
// No AppError is fatal; handlers map it to an HTTP status and move on.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError attaches the underlying cause
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// Validation signals an invalid product or coupon draft
func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, StatusCode: http.StatusBadRequest}
}

// EmptyCart signals a checkout attempted with no lines
func EmptyCart() *AppError {
	return &AppError{Code: CodeEmptyCart, Message: "cart is empty", StatusCode: http.StatusBadRequest}
}

// Submission signals a failed call to the active data source; local state is
// left exactly as it was before the call, so the caller may retry.
func Submission(message string) *AppError {
	return &AppError{Code: CodeSubmission, Message: message, StatusCode: http.StatusBadGateway}
}

// NotFound signals a lookup by identifier that matched nothing
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// Internal signals an unexpected failure
func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, StatusCode: http.StatusInternalServerError}
}

// From extracts an AppError from an error chain
func From(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err is an AppError with the given code
func Is(err error, code string) bool {
	appErr, ok := From(err)
	return ok && appErr.Code == code
}
