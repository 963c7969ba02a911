package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"stagedai-backend/internal/config"
)

// Client talks to the PayPal Orders v2 REST API. Access tokens are fetched
// per call series and cached until shortly before expiry. One Client is
// shared across request handlers, so the token cache sits behind a mutex.
type Client struct {
	httpClient   *http.Client
	apiBase      string
	sdkBase      string
	clientID     string
	clientSecret string

	tokenMu     sync.Mutex
	token       string
	tokenExpiry time.Time
}

type Order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		apiBase:      strings.TrimSuffix(cfg.PayPalAPIBase, "/"),
		sdkBase:      cfg.PayPalSDKBase,
		clientID:     cfg.PayPalClientID,
		clientSecret: cfg.PayPalClientSecret,
	}
}

// WithHTTPClient overrides the HTTP client, used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// SDKURL is the script URL the web client loads for the checkout buttons.
func (c *Client) SDKURL() string {
	return fmt.Sprintf("%s?client-id=%s&currency=USD", c.sdkBase, url.QueryEscape(c.clientID))
}

// ProbeSDK checks that the hosted SDK script is reachable. The payment flow
// uses this to decide between real checkout and the demo fallback.
func (c *Client) ProbeSDK(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.SDKURL(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach checkout SDK: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("checkout SDK returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v1/oauth2/token", body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	c.token = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - time.Minute)
	return c.token, nil
}

// CreateOrder opens a CAPTURE-intent order for the given USD amount.
func (c *Client) CreateOrder(ctx context.Context, amount float64, description string) (Order, error) {
	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"description": description,
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         fmt.Sprintf("%.2f", amount),
				},
			},
		},
	}
	return c.postOrder(ctx, "/v2/checkout/orders", payload)
}

// CaptureOrder finalizes an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (Order, error) {
	return c.postOrder(ctx, "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", nil)
}

func (c *Client) postOrder(ctx context.Context, path string, payload any) (Order, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return Order{}, err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Order{}, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path, body)
	if err != nil {
		return Order{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Order{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return Order{}, fmt.Errorf("order request failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return Order{}, fmt.Errorf("failed to decode order response: %w", err)
	}
	return order, nil
}
