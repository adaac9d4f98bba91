package sources

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-chart/internal/weather"
)

// HTTPSource downloads the CSV from a URL.
type HTTPSource struct {
	name    string
	url     string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewHTTPSource(client *http.Client, url string) *HTTPSource {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "records-http",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &HTTPSource{
		name: "http",
		url:  url,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

// WithBackoff replaces the retry policy.
func (s *HTTPSource) WithBackoff(b BackoffConfig) *HTTPSource {
	s.httpCfg.Backoff = b
	return s
}

func (s *HTTPSource) Name() string {
	return s.name
}

func (s *HTTPSource) Load(ctx context.Context) ([]weather.DailyRecord, error) {
	newRequest := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "text/csv, text/plain")
		return req, nil
	}

	body, err := fetchBody(ctx, s.httpCfg, s.circuit, newRequest)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}

	if err := checkText(bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("%s: %w", s.url, err)
	}

	records, err := ParseRecords(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.url, err)
	}

	log.Printf("INFO: loaded %d records from %s", len(records), s.url)
	return records, nil
}
