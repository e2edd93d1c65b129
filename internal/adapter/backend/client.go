// Package backend implements the typed HTTP client for the FlowPay backend
// API. Every response travels in the uniform {success, data, error} envelope;
// success:false is the only authoritative failure signal, whatever the HTTP
// status says.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Gigabyte00/flowpay-dashboard/config"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/envelope"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/logger"

	"github.com/rs/zerolog"
)

// maxResponseBytes caps how much of a backend response we will read.
const maxResponseBytes = 1 << 20

// Client implements ports.BackendClient over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a backend API client.
func NewClient(cfg config.BackendConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: logger.Component(log, "backend_client"),
	}
}

// do sends one authenticated request and returns the raw body. Transport
// failures come back as NET errors; envelope semantics are the caller's job.
func (c *Client) do(ctx context.Context, method, path, token string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshaling request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return nil, apperror.Network(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperror.Network(fmt.Errorf("reading response: %w", err))
	}
	return data, nil
}

type profileData struct {
	User ports.UserProfile `json:"user"`
}

// GetProfile fetches the signed-in user's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*ports.UserProfile, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/profile", token, nil)
	if err != nil {
		return nil, err
	}
	var data profileData
	if err := envelope.Decode(body, &data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

type statsData struct {
	Stats domain.DashboardStats `json:"stats"`
}

// DashboardStats fetches the backend-computed account aggregates.
func (c *Client) DashboardStats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	body, err := c.do(ctx, http.MethodGet, "/users/dashboard-stats", token, nil)
	if err != nil {
		return nil, err
	}
	var data statsData
	if err := envelope.Decode(body, &data); err != nil {
		return nil, err
	}
	return &data.Stats, nil
}

// UpdateProfile changes the user's display name.
func (c *Client) UpdateProfile(ctx context.Context, token, name string) error {
	body, err := c.do(ctx, http.MethodPatch, "/users/profile", token, map[string]string{"name": name})
	if err != nil {
		return err
	}
	return envelope.Decode(body, nil)
}

type vendorListData struct {
	Vendors []domain.Vendor `json:"vendors"`
}

// ListVendors fetches all vendor records for the account.
func (c *Client) ListVendors(ctx context.Context, token string) ([]domain.Vendor, error) {
	body, err := c.do(ctx, http.MethodGet, "/vendors", token, nil)
	if err != nil {
		return nil, err
	}
	var data vendorListData
	if err := envelope.Decode(body, &data); err != nil {
		return nil, err
	}
	return data.Vendors, nil
}

type vendorCreateData struct {
	Vendor        *domain.Vendor `json:"vendor"`
	OnboardingURL string         `json:"onboardingUrl"`
}

// CreateVendor registers a vendor and returns the record plus the external
// account-setup URL, which may be empty.
func (c *Client) CreateVendor(ctx context.Context, token string, req ports.CreateVendorRequest) (*domain.Vendor, string, error) {
	body, err := c.do(ctx, http.MethodPost, "/vendors", token, req)
	if err != nil {
		return nil, "", err
	}
	var data vendorCreateData
	if err := envelope.Decode(body, &data); err != nil {
		return nil, "", err
	}
	if data.Vendor == nil {
		return nil, "", apperror.Network(fmt.Errorf("missing vendor in response"))
	}
	return data.Vendor, data.OnboardingURL, nil
}

type vendorStatusData struct {
	Vendor *domain.Vendor `json:"vendor"`
}

// VendorStatus re-reads one vendor's current record.
func (c *Client) VendorStatus(ctx context.Context, token, vendorID string) (*domain.Vendor, error) {
	body, err := c.do(ctx, http.MethodGet, "/vendors/"+url.PathEscape(vendorID)+"/status", token, nil)
	if err != nil {
		return nil, err
	}
	var data vendorStatusData
	if err := envelope.Decode(body, &data); err != nil {
		return nil, err
	}
	if data.Vendor == nil {
		return nil, apperror.Network(fmt.Errorf("missing vendor in response"))
	}
	return data.Vendor, nil
}

type dashboardURLData struct {
	URL string `json:"url"`
}

// VendorDashboardURL requests a fresh single-use dashboard URL.
func (c *Client) VendorDashboardURL(ctx context.Context, token, vendorID string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/vendors/"+url.PathEscape(vendorID)+"/dashboard", token, nil)
	if err != nil {
		return "", err
	}
	var data dashboardURLData
	if err := envelope.Decode(body, &data); err != nil {
		return "", err
	}
	return data.URL, nil
}

type intentData struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent reserves a charge and returns the client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, token string, req ports.CreateIntentRequest) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/payments/create-intent", token, req)
	if err != nil {
		return "", err
	}
	var data intentData
	if err := envelope.Decode(body, &data); err != nil {
		return "", err
	}
	if data.ClientSecret == "" {
		return "", apperror.Network(fmt.Errorf("missing client secret in response"))
	}
	return data.ClientSecret, nil
}

type transactionListData struct {
	Transactions []domain.Transaction `json:"transactions"`
	Pagination   struct {
		Pages int `json:"pages"`
	} `json:"pagination"`
}

// ListTransactions fetches one ledger page and the total page count.
func (c *Client) ListTransactions(ctx context.Context, token string, params ports.TransactionListParams) ([]domain.Transaction, int, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("limit", strconv.Itoa(params.PageSize))
	if params.Status != nil {
		q.Set("status", string(*params.Status))
	}

	body, err := c.do(ctx, http.MethodGet, "/transactions?"+q.Encode(), token, nil)
	if err != nil {
		return nil, 0, err
	}
	var data transactionListData
	if err := envelope.Decode(body, &data); err != nil {
		return nil, 0, err
	}
	pages := data.Pagination.Pages
	if pages < 1 {
		pages = 1
	}
	return data.Transactions, pages, nil
}
