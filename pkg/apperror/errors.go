package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups error codes into the categories callers branch on.
type Kind string

const (
	KindValidation          Kind = "VALIDATION"
	KindNotFound            Kind = "NOT_FOUND"
	KindInsufficientBalance Kind = "INSUFFICIENT_BALANCE"
	KindStateConflict       Kind = "STATE_CONFLICT"
	KindAuth                Kind = "AUTH"
	KindRateLimit           Kind = "RATE_LIMIT"
	KindInternal            Kind = "INTERNAL"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"-"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the Kind of err, or KindInternal for errors that are not AppErrors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// CodeOf returns the stable code of err, or an empty string for foreign errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrDateOutsideMonth() *AppError {
	return New(KindValidation, "VAL_002", "Date must fall within the current month", http.StatusBadRequest)
}

func ErrAttachmentRequired() *AppError {
	return New(KindValidation, "VAL_003", "Attachment is required to approve a receipt", http.StatusBadRequest)
}

func ErrStatementTooShort() *AppError {
	return New(KindValidation, "VAL_004", "Expense statement must be at least 2 characters", http.StatusBadRequest)
}

// Validation returns a generic VAL_005 validation error.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_005", message, http.StatusBadRequest)
}

// ---- Not Found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Wallet (WAL) ----

func ErrInsufficientBalance() *AppError {
	return New(KindInsufficientBalance, "WAL_001", "Insufficient balance in wallet", http.StatusUnprocessableEntity)
}

// ---- State Conflicts (STATE) ----

func ErrNotDraft() *AppError {
	return New(KindStateConflict, "STATE_001", "Only draft records can change status", http.StatusConflict)
}

func ErrExceedsOutstandingDue() *AppError {
	return New(KindStateConflict, "STATE_002", "Amount exceeds outstanding due", http.StatusConflict)
}

func ErrHandoverMismatch() *AppError {
	return New(KindStateConflict, "STATE_003", "Wallet balance changed since the handover snapshot", http.StatusConflict)
}

func ErrRequestInFlight() *AppError {
	return New(KindStateConflict, "STATE_004", "A request with this Idempotency-Key is still being processed", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(KindAuth, "AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimit, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
