// Package upstream is the shared HTTP client used to reach third-party
// media APIs. Every provider gets its own rate limiter and circuit breaker.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"hobbiesapi/internal/logging"
	"hobbiesapi/internal/metrics"
)

const maxBodyBytes = 10 << 20

var (
	// ErrUnavailable is returned while the provider's circuit breaker is open.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrResponseTooLarge is returned when a body exceeds maxBodyBytes.
	ErrResponseTooLarge = errors.New("upstream response too large")

	// errCallerDone marks attempts aborted by the caller's own context.
	errCallerDone = errors.New("caller context done")
)

// StatusError is returned when a provider answers with a non-2xx status.
type StatusError struct {
	Provider   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d", e.Provider, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from a provider.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

func retryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

type Config struct {
	Provider          string
	Timeout           time.Duration
	RequestsPerSecond float64
	MaxRetries        int
	// RetryBaseDelay is doubled after every failed attempt.
	RetryBaseDelay  time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	UserAgent       string
}

type Client struct {
	provider   string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	maxRetries int
	baseDelay  time.Duration
}

func NewClient(cfg Config) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}

	return &Client{
		provider:   cfg.Provider,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(limit, 1),
		breaker:    newBreaker(cfg),
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.RetryBaseDelay,
	}
}

func newBreaker(cfg Config) *gobreaker.CircuitBreaker[[]byte] {
	metrics.UpstreamBreakerState.WithLabelValues(cfg.Provider).Set(0)
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cfg.Provider,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// A 404 or 400 is the provider working as intended.
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return !retryable(statusErr.StatusCode)
			}
			return err == nil
		},
		// An aborted caller says nothing about the provider's health.
		IsExcluded: func(err error) bool {
			return errors.Is(err, errCallerDone) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.UpstreamBreakerState.WithLabelValues(name).Set(float64(to))
			logging.Warn().
				Str("provider", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("upstream circuit breaker state changed")
		},
	})
}

// Provider returns the name the client reports in errors and metrics.
func (c *Client) Provider() string {
	return c.provider
}

// GetJSON fetches url and decodes the JSON body into target.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	body, err := c.GetBytes(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.provider, err)
	}
	return nil
}

// GetBytes fetches url and returns the raw body. Transport errors, 429 and
// 5xx responses are retried with exponential backoff.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := c.baseDelay * time.Duration(1<<uint(i-1))
			logging.Ctx(ctx).Warn().
				Str("provider", c.provider).
				Int("attempt", i+1).
				Dur("backoff", backoff).
				Err(lastErr).
				Msg("retrying upstream request")
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.do(ctx, url)
		})
		if err == nil {
			return body, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordUpstreamRequest(c.provider, "breaker_open", 0)
			return nil, fmt.Errorf("%s: %w", c.provider, ErrUnavailable)
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !retryable(statusErr.StatusCode) {
			return nil, err
		}
		if errors.Is(err, ErrResponseTooLarge) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			metrics.RecordUpstreamRequest(c.provider, "canceled", time.Since(start))
			return nil, fmt.Errorf("%s: %w: %w", c.provider, errCallerDone, ctx.Err())
		}
		metrics.RecordUpstreamRequest(c.provider, "transport", time.Since(start))
		return nil, fmt.Errorf("%s: %w", c.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome := "status_4xx"
		if resp.StatusCode >= 500 {
			outcome = "status_5xx"
		}
		metrics.RecordUpstreamRequest(c.provider, outcome, time.Since(start))
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{Provider: c.provider, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		if ctx.Err() != nil {
			metrics.RecordUpstreamRequest(c.provider, "canceled", time.Since(start))
			return nil, fmt.Errorf("%s: read body: %w: %w", c.provider, errCallerDone, ctx.Err())
		}
		metrics.RecordUpstreamRequest(c.provider, "transport", time.Since(start))
		return nil, fmt.Errorf("%s: read body: %w", c.provider, err)
	}
	if int64(len(body)) > maxBodyBytes {
		metrics.RecordUpstreamRequest(c.provider, "too_large", time.Since(start))
		return nil, fmt.Errorf("%s: %w: over %d bytes", c.provider, ErrResponseTooLarge, maxBodyBytes)
	}
	metrics.RecordUpstreamRequest(c.provider, "ok", time.Since(start))
	logging.Ctx(ctx).Debug().
		Str("provider", c.provider).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("upstream request completed")
	return body, nil
}
