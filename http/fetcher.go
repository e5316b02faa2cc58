// Package http provides an HTTP-based implementation of monsoon.Fetcher
// for news pages that render server side, plus sitemap-based article
// discovery for newspaper sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. News
// sites on shared regional hosting can be slow, so this is generous
// compared to a typical API client.
const DefaultFetchTimeout = 20 * time.Second

// DefaultUserAgent presents as a desktop Chrome browser. Many Indian
// news sites return stripped or blocked pages to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// defaultAcceptLanguage advertises English plus the major Indian
// languages so regional sites serve their local-language editions.
const defaultAcceptLanguage = "en-US,en;q=0.9,hi;q=0.8,ta;q=0.7,te;q=0.6,bn;q=0.5"

// Ensure Fetcher implements monsoon.Fetcher at compile time.
var _ monsoon.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is the final
// fetch strategy in the extraction chain.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the user agent presented to sites.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL with browser-like
// headers, following redirects. The returned FinalURL reflects where
// the redirects landed, which is how Google News article links resolve
// to publisher pages.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*monsoon.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", defaultAcceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, monsoon.Errorf(monsoon.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &monsoon.FetchResult{
		FinalURL: finalURL,
		HTML:     string(body),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
