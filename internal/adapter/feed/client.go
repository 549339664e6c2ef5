package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// maxBodyBytes bounds a single feed body; real feeds are a few kilobytes.
const maxBodyBytes = 4 << 20

var (
	// ErrNotFound reports a feed that does not exist (HTTP 404).
	ErrNotFound = errors.New("feed not found")

	// ErrUnexpectedStatus reports any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// BreakerSettings configures the circuit breaker in front of the feed host.
type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

// HTTPClient retrieves feed bodies over HTTP. Consecutive transport failures
// open a circuit breaker so a dead host fails fast; 404s count as successes.
type HTTPClient struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewHTTPClient creates a feed client. The only timeout is the client's own.
func NewHTTPClient(timeout time.Duration, bs BreakerSettings, logger *slog.Logger) *HTTPClient {
	return newHTTPClient(&http.Client{Timeout: timeout}, bs, logger)
}

func newHTTPClient(hc *http.Client, bs BreakerSettings, logger *slog.Logger) *HTTPClient {
	maxFailures := bs.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "stateair-feeds",
		Timeout: bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return &HTTPClient{httpClient: hc, breaker: cb, logger: logger}
}

// Get returns the body at url, or ErrNotFound for a 404.
func (c *HTTPClient) Get(ctx context.Context, url string) (string, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequest(ctx, url)
	})
	if err != nil {
		return "", err
	}
	body, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected result type %T", result)
	}
	return body, nil
}

func (c *HTTPClient) doRequest(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
