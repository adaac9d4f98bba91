package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-chart/internal/common"
	"github.com/i474232898/weather-chart/internal/weather"
)

// ErrUnsupportedContent is returned when the input does not look like text.
var ErrUnsupportedContent = errors.New("unsupported content type")

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// HTTPClientConfig bundles HTTP client and resilience settings.
type HTTPClientConfig struct {
	Client  *http.Client
	Backoff BackoffConfig
}

var (
	errRateLimited   = errors.New("rate limited")
	errServerError   = errors.New("server error")
	errUnexpected    = errors.New("unexpected status code")
	errCircuitOpen   = errors.New("circuit breaker open")
	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

// New picks a Source for location: an HTTP source for http(s) URLs, a file source otherwise.
func New(location string, client *http.Client) weather.Source {
	if common.IsRemote(location) {
		return NewHTTPSource(client, location)
	}
	return NewFileSource(location)
}

// checkText sniffs the start of r and rejects anything that is not text (CSV included).
func checkText(r io.Reader) error {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return fmt.Errorf("detect content type: %w", err)
	}
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedContent, mt.String())
}

// fetchBody GETs a response body through cb. Transport errors, 429 and 5xx
// are retried with exponential backoff; other statuses fail at once.
func fetchBody(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	newRequest func(context.Context) (*http.Request, error),
) ([]byte, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}
	if cfg.Backoff.MaxRetries < 0 || cfg.Backoff.InitialInterval <= 0 {
		return nil, errInvalidConfig
	}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		req, err := newRequest(ctx)
		if err != nil {
			return nil, err
		}

		body, err := cb.Execute(func() (any, error) {
			return readBody(cfg.Client, req)
		})
		switch {
		case err == nil:
			return body.([]byte), nil
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		case errors.Is(err, errUnexpected), attempt >= cfg.Backoff.MaxRetries:
			return nil, err
		}

		wait := time.NewTimer(cfg.Backoff.delay(attempt))
		select {
		case <-ctx.Done():
			wait.Stop()
			return nil, ctx.Err()
		case <-wait.C:
		}
	}
}

func readBody(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch code := resp.StatusCode; {
	case code == http.StatusTooManyRequests:
		return nil, errRateLimited
	case code >= 500:
		return nil, fmt.Errorf("%w: %d", errServerError, code)
	case code < 200 || code >= 300:
		return nil, fmt.Errorf("%w: %d", errUnexpected, code)
	}
	return io.ReadAll(resp.Body)
}

// delay is InitialInterval doubled per attempt, capped at MaxInterval when set.
func (b BackoffConfig) delay(attempt int) time.Duration {
	d := b.InitialInterval << attempt
	if b.MaxInterval > 0 && (d > b.MaxInterval || d <= 0) {
		d = b.MaxInterval
	}
	return d
}
