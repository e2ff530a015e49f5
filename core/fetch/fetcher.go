// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests and decodes the body to UTF-8 using the
// response's declared or sniffed character set.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/gaurav-prasanna/paste2md/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "paste2md/1.0 (https://github.com/gaurav-prasanna/paste2md)"
)

// ErrStatus is returned, wrapped with the status code, for non-2xx responses.
var ErrStatus = errors.New("unexpected HTTP status")

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithClient replaces the default HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// New creates an HTTPFetcher with a sensible timeout.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the HTML content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w %d for %s", ErrStatus, resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return nil, fmt.Errorf("decoding %s body: %w", contentType, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		HTML:        string(data),
	}, nil
}
