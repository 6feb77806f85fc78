// Package errors provides custom error types for the Wealth Wallet API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Transaction type must be INCOME or EXPENSE", StatusCode: http.StatusBadRequest}
)

// Smart capture errors.
var (
	ErrCaptureEmpty = &AppError{Code: "CAPTURE_EMPTY", Message: "Provide text or an image to capture", StatusCode: http.StatusBadRequest}
	ErrParseFailed  = &AppError{Code: "PARSE_FAILED", Message: "Could not extract a transaction from the input", StatusCode: http.StatusUnprocessableEntity}
)

// Insight errors.
var (
	ErrInsightUnavailable = &AppError{Code: "INSIGHT_UNAVAILABLE", Message: "Insight could not be generated", StatusCode: http.StatusBadGateway}
	ErrInsightNoData      = &AppError{Code: "INSIGHT_NO_DATA", Message: "No transactions to analyze yet", StatusCode: http.StatusNotFound}
)
