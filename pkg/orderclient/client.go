// Package orderclient is the HTTP client for the order intake API. The form
// controller uses it to submit orders; it is also handy for smoke-testing a
// deployment from the command line.
package orderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/emel-water/emel-api/internal/models"
	"github.com/emel-water/emel-api/pkg/httpclient"
)

type Client struct {
	baseURL string
	hc      httpclient.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      httpclient.NewStandardClient(),
	}
}

// NewWithHTTPClient allows injecting a custom HTTP client, mainly for tests
func NewWithHTTPClient(baseURL string, hc httpclient.Client) *Client {
	return &Client{baseURL: baseURL, hc: hc}
}

// StatusError is returned for non-2xx responses. The decoded envelope, when
// the body was parseable, rides along for callers that want the field errors.
type StatusError struct {
	StatusCode int
	Response   *models.OrderResponse
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("order api: unexpected status %d", e.StatusCode)
}

// SubmitOrder posts one order. A nil error means the service accepted it.
func (c *Client) SubmitOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	var out models.OrderResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			statusErr.Response = &out
		}
		return statusErr.Response, statusErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return &out, nil
}

// HealthResponse mirrors the liveness probe payload
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Health calls the liveness probe
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.get(ctx, "/api/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PricesResponse mirrors the price table payload
type PricesResponse struct {
	Success bool           `json:"success"`
	Prices  map[string]int `json:"prices"`
}

// Prices fetches the product price table
func (c *Client) Prices(ctx context.Context) (*PricesResponse, error) {
	var out PricesResponse
	if err := c.get(ctx, "/api/prices", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
