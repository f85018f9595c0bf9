// Package apperror provides structured error handling for the API.
// All business errors must use AppError for consistent responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure errors (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeDatabase = "DATABASE_ERROR"

	// Validation errors (400)
	CodeValidation = "VALIDATION_ERROR"

	// Business rule violations (422)
	CodeNoActivePriceList = "NO_ACTIVE_PRICE_LIST"
	CodeNoRulesForProduct = "NO_RULES_FOR_PRODUCT"
	CodeBalanceQuery      = "BALANCE_QUERY_FAILED"
	CodeCompensation      = "COMPENSATION_FAILED"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"

	// Conflict (409)
	CodeConflict = "CONFLICT"
)

// AppError is the standard error type for the service.
// It implements the error interface and provides structured details
// for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, ids, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given application error code.
func IsCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// --- Factory functions for common errors ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewConflict creates a conflict error (409)
func NewConflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewNoActivePriceList signals that no price list is currently active.
// Order creation and edits must refuse to proceed, never price at $0.
func NewNoActivePriceList() *AppError {
	return &AppError{
		Code:       CodeNoActivePriceList,
		Message:    "no active price list",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NewNoRulesForProduct signals that the active list has no rules for a
// product type that was requested with quantity > 0.
func NewNoRulesForProduct(tipoProducto string) *AppError {
	return &AppError{
		Code:       CodeNoRulesForProduct,
		Message:    "active price list has no rules for product type",
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"tipo_producto": tipoProducto},
	}
}

// NewBalanceQuery wraps a repository failure during balance
// aggregation. A partial balance is never returned in its place.
func NewBalanceQuery(err error) *AppError {
	return &AppError{
		Code:       CodeBalanceQuery,
		Message:    "balance could not be computed",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewCompensationFailed reports that the rollback delete after a failed
// rule insert itself failed, leaving an orphaned price list header.
// Not auto-retried; surfaced for manual cleanup.
func NewCompensationFailed(listaID any, err error) *AppError {
	return &AppError{
		Code:       CodeCompensation,
		Message:    "price list rollback failed, orphaned header left behind",
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"lista_id": listaID},
		Err:        err,
	}
}
