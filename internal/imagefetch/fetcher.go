package imagefetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stagedai-backend/internal/models"
)

// ErrUnretrievable is the single user-facing failure once every strategy
// has been tried.
var ErrUnretrievable = fmt.Errorf("could not retrieve image from this URL")

const maxImageBytes = 20 << 20

// Strategy maps the user-supplied URL onto the URL actually requested.
type Strategy struct {
	Name  string
	Build func(raw string) string
}

// Fetcher retrieves a remote image by trying an ordered list of strategies.
// The default policy is a direct fetch followed by exactly one relay
// attempt — no backoff, no further retries.
type Fetcher struct {
	httpClient *http.Client
	strategies []Strategy
}

func New(relayBase string) *Fetcher {
	return &Fetcher{
		httpClient: newHTTPClient(30 * time.Second),
		strategies: []Strategy{
			{Name: "direct", Build: func(raw string) string { return raw }},
			{Name: "relay", Build: func(raw string) string {
				return strings.TrimSuffix(relayBase, "/") + "/?" + url.QueryEscape(raw)
			}},
		},
	}
}

// WithClient overrides the HTTP client, used by tests.
func (f *Fetcher) WithClient(c *http.Client) *Fetcher {
	f.httpClient = c
	return f
}

// Fetch downloads the image at rawURL and returns it as a self-describing
// payload. Each strategy is attempted once, in order; the aggregate failure
// is reported as ErrUnretrievable.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (models.ImagePayload, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return models.ImagePayload{}, fmt.Errorf("invalid image URL: %w", err)
	}

	var lastErr error
	for _, strategy := range f.strategies {
		payload, err := f.fetchOnce(ctx, strategy.Build(rawURL))
		if err == nil {
			return payload, nil
		}
		lastErr = err
		log.Printf("image fetch via %s failed: %v", strategy.Name, err)
	}

	return models.ImagePayload{}, fmt.Errorf("%w (last error: %v)", ErrUnretrievable, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, target string) (models.ImagePayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return models.ImagePayload{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return models.ImagePayload{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.ImagePayload{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return models.ImagePayload{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) == 0 {
		return models.ImagePayload{}, fmt.Errorf("empty response body")
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}
	if idx := strings.Index(mimeType, ";"); idx > 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	return models.ImagePayload{MimeType: mimeType, Data: data}, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   15 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
