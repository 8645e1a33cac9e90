package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New(KindInsufficientBalance, "WAL_001", "Insufficient balance", http.StatusUnprocessableEntity),
			expected: "[WAL_001] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap(KindInternal, "SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(KindInternal, "SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New(KindValidation, "VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		kind       Kind
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "VAL_001", KindValidation, 400},
		{"DateOutsideMonth", ErrDateOutsideMonth(), "VAL_002", KindValidation, 400},
		{"AttachmentRequired", ErrAttachmentRequired(), "VAL_003", KindValidation, 400},
		{"StatementTooShort", ErrStatementTooShort(), "VAL_004", KindValidation, 400},
		{"Validation", Validation("bad"), "VAL_005", KindValidation, 400},
		{"NotFound", ErrNotFound("Employment"), "NF_001", KindNotFound, 404},
		{"InsufficientBalance", ErrInsufficientBalance(), "WAL_001", KindInsufficientBalance, 422},
		{"NotDraft", ErrNotDraft(), "STATE_001", KindStateConflict, 409},
		{"ExceedsOutstandingDue", ErrExceedsOutstandingDue(), "STATE_002", KindStateConflict, 409},
		{"HandoverMismatch", ErrHandoverMismatch(), "STATE_003", KindStateConflict, 409},
		{"RequestInFlight", ErrRequestInFlight(), "STATE_004", KindStateConflict, 409},
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", KindAuth, 401},
		{"RateLimitExceeded", ErrRateLimitExceeded(), "RATE_001", KindRateLimit, 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	err := InternalError(inner)
	assert.Equal(t, "SYS_001", err.Code)
	assert.Equal(t, 500, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
	assert.NotContains(t, err.Message, "pg:")
}

func TestKindOfAndCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("approve: %w", ErrNotDraft())
	assert.Equal(t, KindStateConflict, KindOf(wrapped))
	assert.Equal(t, "STATE_001", CodeOf(wrapped))

	plain := errors.New("boom")
	assert.Equal(t, KindInternal, KindOf(plain))
	assert.Empty(t, CodeOf(plain))
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Transaction")
	assert.Contains(t, err.Message, "Transaction")
	assert.Equal(t, "NF_001", err.Code)
}
