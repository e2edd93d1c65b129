package backend

import (
	"context"
	"net/http"
)

// HealthCheck reports backend reachability for /health. Any HTTP response
// counts as reachable; only transport failures are unhealthy.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a backend reachability checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.client.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := h.client.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (h *HealthCheck) Name() string {
	return "backend"
}
