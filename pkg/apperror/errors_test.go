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
			appErr:   New("VAL_003", "Amount must be a positive number", http.StatusBadRequest),
			expected: "[VAL_003] Amount must be a positive number",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("NET_001", "Network error", http.StatusBadGateway, fmt.Errorf("connection refused")),
			expected: "[NET_001] Network error: connection refused",
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
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("bad input"), "VAL_001", 400},
		{"MissingField", ErrMissingField("email"), "VAL_002", 400},
		{"InvalidAmount", ErrInvalidAmount(), "VAL_003", 400},
		{"VendorNotPayable", ErrVendorNotPayable(), "VAL_004", 400},
		{"NotFound", ErrNotFound("vendor"), "VAL_005", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestFlowErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"FlowState", ErrFlowState("no payment awaiting confirmation"), "FLOW_001", 409},
		{"RequestInFlight", ErrRequestInFlight(), "FLOW_002", 409},
		{"SecretConsumed", ErrSecretConsumed(), "FLOW_003", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestUpstreamError(t *testing.T) {
	err := Upstream("insufficient vendor setup")
	assert.Equal(t, "UPS_001", err.Code)
	assert.Equal(t, "insufficient vendor setup", err.Message)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)

	// Empty backend message falls back to a generic one.
	assert.Equal(t, "Request failed", Upstream("").Message)
}

func TestNetworkError(t *testing.T) {
	inner := fmt.Errorf("dial tcp: connection refused")
	err := Network(inner)
	assert.Equal(t, "NET_001", err.Code)
	assert.Equal(t, "Network error", err.Message)
	assert.True(t, errors.Is(err, inner))
}

func TestCardDeclined(t *testing.T) {
	err := CardDeclined("Your card was declined")
	assert.Equal(t, "CARD_001", err.Code)
	assert.Equal(t, "Your card was declined", err.Message)
	assert.Equal(t, http.StatusPaymentRequired, err.HTTPStatus)

	assert.Equal(t, "Payment failed", CardDeclined("").Message)
}

func TestSessionError(t *testing.T) {
	err := ErrInvalidSession()
	assert.Equal(t, "SES_001", err.Code)
	assert.Equal(t, 401, err.HTTPStatus)
}

func TestMissingFieldMessage(t *testing.T) {
	err := ErrMissingField("name")
	assert.Contains(t, err.Message, "name")
}
