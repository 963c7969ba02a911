package paypal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"stagedai-backend/internal/config"
	"stagedai-backend/internal/paypal"
)

func newTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	tokenRequests := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "CAPTURE", body["intent"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "ORDER123", "status": "CREATED"})
	})
	mux.HandleFunc("/v2/checkout/orders/ORDER123/capture", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"id": "ORDER123", "status": "COMPLETED"})
	})

	return httptest.NewServer(mux), &tokenRequests
}

func testConfig(apiBase string) *config.Config {
	return &config.Config{
		PayPalClientID:     "client-id",
		PayPalClientSecret: "client-secret",
		PayPalAPIBase:      apiBase,
		PayPalSDKBase:      "https://www.paypal.com/sdk/js",
	}
}

func TestCreateAndCaptureOrder(t *testing.T) {
	server, tokenRequests := newTestServer(t)
	defer server.Close()

	client := paypal.NewClient(testConfig(server.URL))

	order, err := client.CreateOrder(context.Background(), 29, "StagedAI Starter plan")
	assert.NoError(t, err)
	assert.Equal(t, "ORDER123", order.ID)
	assert.Equal(t, "CREATED", order.Status)

	captured, err := client.CaptureOrder(context.Background(), "ORDER123")
	assert.NoError(t, err)
	assert.Equal(t, "COMPLETED", captured.Status)

	// The token is cached across calls.
	assert.Equal(t, 1, *tokenRequests)
}

func TestCreateOrder_Concurrent(t *testing.T) {
	server, tokenRequests := newTestServer(t)
	defer server.Close()

	client := paypal.NewClient(testConfig(server.URL))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := client.CreateOrder(context.Background(), 29, "StagedAI Starter plan")
			assert.NoError(t, err)
			assert.Equal(t, "ORDER123", order.ID)
		}()
	}
	wg.Wait()

	// The token cache is shared; concurrent callers fetch it once.
	assert.Equal(t, 1, *tokenRequests)
}

func TestCreateOrder_TokenFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := paypal.NewClient(testConfig(server.URL))

	_, err := client.CreateOrder(context.Background(), 29, "StagedAI Starter plan")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token request failed")
}

func TestSDKURL(t *testing.T) {
	client := paypal.NewClient(testConfig("https://api-m.paypal.com"))

	url := client.SDKURL()
	assert.Equal(t, "https://www.paypal.com/sdk/js?client-id=client-id&currency=USD", url)
}

func TestProbeSDK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testConfig("https://api-m.paypal.com")
	cfg.PayPalSDKBase = server.URL
	client := paypal.NewClient(cfg)

	assert.NoError(t, client.ProbeSDK(context.Background()))
}

func TestProbeSDK_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := testConfig("https://api-m.paypal.com")
	cfg.PayPalSDKBase = server.URL
	client := paypal.NewClient(cfg)

	assert.Error(t, client.ProbeSDK(context.Background()))
}
