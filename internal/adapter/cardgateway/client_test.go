package cardgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gigabyte00/flowpay-dashboard/config"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCard = domain.CardDetails{
	Number:     "4242424242424242",
	ExpMonth:   12,
	ExpYear:    2030,
	CVC:        "123",
	HolderName: "Ada Lovelace",
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.CardGatewayConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zerolog.Nop())
}

func TestClient_Confirm_Succeeded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents/pi_123/confirm", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pi_123_secret_456", body["client_secret"])
		card := body["card"].(map[string]any)
		assert.Equal(t, "4242424242424242", card["number"])
		json.NewEncoder(w).Encode(map[string]any{"status": "succeeded"})
	})

	err := client.Confirm(context.Background(), "pi_123_secret_456", testCard)
	assert.NoError(t, err)
}

func TestClient_Confirm_Declined(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "requires_payment_method",
			"error":  map[string]any{"message": "Your card was declined."},
		})
	})

	err := client.Confirm(context.Background(), "pi_123_secret_456", testCard)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CARD_001", appErr.Code)
	assert.Equal(t, "Your card was declined.", appErr.Message)
}

func TestClient_Confirm_DeclinedWithoutMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "canceled"})
	})

	err := client.Confirm(context.Background(), "pi_123_secret_456", testCard)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CARD_001", appErr.Code)
	assert.Equal(t, "Payment failed", appErr.Message)
}

func TestClient_Confirm_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	err := client.Confirm(context.Background(), "pi_123_secret_456", testCard)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NET_001", appErr.Code)
}

func TestClient_Confirm_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(config.CardGatewayConfig{BaseURL: srv.URL, Timeout: time.Second}, zerolog.Nop())
	err := client.Confirm(context.Background(), "pi_123_secret_456", testCard)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "NET_001", appErr.Code)
}

func TestIntentID(t *testing.T) {
	assert.Equal(t, "pi_123", intentID("pi_123_secret_456"))
	assert.Equal(t, "opaque-secret", intentID("opaque-secret"))
}
