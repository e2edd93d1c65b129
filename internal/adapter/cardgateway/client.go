// Package cardgateway implements the card-confirmation client. The client
// secret plus raw card details go to the gateway and nowhere else; this
// package never stores or logs card data.
package cardgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Gigabyte00/flowpay-dashboard/config"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/logger"

	"github.com/rs/zerolog"
)

const maxResponseBytes = 1 << 20

// Client implements ports.CardConfirmer over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a card gateway client.
func NewClient(cfg config.CardGatewayConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: logger.Component(log, "card_gateway"),
	}
}

type confirmRequest struct {
	ClientSecret string      `json:"client_secret"`
	Card         confirmCard `json:"card"`
}

type confirmCard struct {
	Number     string `json:"number"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
	CVC        string `json:"cvc"`
	HolderName string `json:"holder_name,omitempty"`
}

type confirmResponse struct {
	Status string `json:"status"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// intentID extracts the payment intent identifier from a client secret of
// the form "pi_123_secret_456".
func intentID(clientSecret string) string {
	if id, _, found := strings.Cut(clientSecret, "_secret"); found {
		return id
	}
	return clientSecret
}

// Confirm resolves one authorization attempt. nil means the gateway reported
// succeeded; an explicit rejection comes back as a CARD error with the
// gateway's message, transport or malformed-response trouble as a NET error.
func (c *Client) Confirm(ctx context.Context, clientSecret string, card domain.CardDetails) error {
	payload, err := json.Marshal(confirmRequest{
		ClientSecret: clientSecret,
		Card: confirmCard{
			Number:     card.Number,
			ExpMonth:   card.ExpMonth,
			ExpYear:    card.ExpYear,
			CVC:        card.CVC,
			HolderName: card.HolderName,
		},
	})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshaling confirmation: %w", err))
	}

	path := "/v1/payment_intents/" + url.PathEscape(intentID(clientSecret)) + "/confirm"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("card gateway request failed")
		return apperror.Network(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperror.Network(fmt.Errorf("reading response: %w", err))
	}

	var result confirmResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return apperror.Network(fmt.Errorf("malformed response: %w", err))
	}
	if result.Error != nil {
		return apperror.CardDeclined(result.Error.Message)
	}
	if result.Status != "succeeded" {
		return apperror.CardDeclined("")
	}
	return nil
}
