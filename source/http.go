package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTP loads the record list with a GET request to a fixed endpoint that
// responds with a JSON array.
type HTTP[T any] struct {
	client *http.Client
	url    string
}

type HTTPOption func(*httpOptions)

type httpOptions struct {
	client  *http.Client
	timeout time.Duration
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(o *httpOptions) {
		o.client = client
	}
}

// WithTimeout sets the timeout of the default client. Ignored with WithHTTPClient.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(o *httpOptions) {
		o.timeout = timeout
	}
}

func NewHTTP[T any](url string, opts ...HTTPOption) *HTTP[T] {
	o := httpOptions{timeout: defaultHTTPTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	client := o.client
	if client == nil {
		if o.timeout <= 0 {
			o.timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: o.timeout}
	}

	return &HTTP[T]{
		client: client,
		url:    url,
	}
}

// Load - implements Source. Any failure is returned as *FetchError.
func (s *HTTP[T]) Load(ctx context.Context) ([]T, error) {
	logger := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fetchError(s.url, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug().
		Str("method", http.MethodGet).
		Str("url", s.url).
		Msg("fetching records")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fetchError(s.url, fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fetchError(s.url, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
	}

	var records []T
	if err = json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fetchError(s.url, fmt.Errorf("failed to decode JSON array: %w", err))
	}
	if records == nil {
		records = []T{}
	}

	logger.Debug().
		Str("url", s.url).
		Int("status", resp.StatusCode).
		Int("records", len(records)).
		Msg("records fetched")

	return records, nil
}

var _ Source[struct{}] = (*HTTP[struct{}])(nil)
