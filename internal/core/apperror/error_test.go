package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{name: "validation", err: NewValidation("bad input"), wantCode: CodeValidation, wantStatus: http.StatusBadRequest},
		{name: "not found", err: NewNotFound("product", "P-001"), wantCode: CodeNotFound, wantStatus: http.StatusNotFound},
		{name: "insufficient stock", err: NewInsufficientStock("P-001", 5, 2), wantCode: CodeInsufficientStock, wantStatus: http.StatusUnprocessableEntity},
		{name: "over return", err: NewOverReturn("P-001", 3, 1), wantCode: CodeOverReturn, wantStatus: http.StatusUnprocessableEntity},
		{name: "concurrent modification", err: NewConcurrentModification("sale", "x"), wantCode: CodeConcurrentModification, wantStatus: http.StatusConflict},
		{name: "duplicate", err: NewDuplicate("customer", "phone", "123"), wantCode: CodeDuplicate, wantStatus: http.StatusConflict},
		{name: "internal", err: NewInternal(errors.New("boom")), wantCode: CodeInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInsufficientStockDetails(t *testing.T) {
	err := NewInsufficientStock("P-001", 5, 2)

	assert.Equal(t, "P-001", err.Details["product"])
	assert.Equal(t, int64(5), err.Details["requested"])
	assert.Equal(t, int64(2), err.Details["available"])
}

func TestWithDetailAndCause(t *testing.T) {
	cause := errors.New("pq: connection reset")
	err := NewValidation("bad").WithDetail("field", "rate").WithCause(cause)

	assert.Equal(t, "rate", err.Details["field"])
	assert.ErrorIs(t, err, cause)
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NewNotFound("sale", "abc")
	wrapped := fmt.Errorf("load sale: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.True(t, IsNotFound(wrapped))
}

func TestGetHTTPStatus_NonAppError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}
