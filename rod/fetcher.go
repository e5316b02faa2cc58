// Package rod provides a browser-automation implementation of
// monsoon.Fetcher for news pages that only render their article body
// through JavaScript.
package rod

import (
	"context"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultNavigationTimeout bounds a single page navigation.
const DefaultNavigationTimeout = 30 * time.Second

// DefaultSettleDelay is how long to wait after load for late-rendered
// article bodies.
const DefaultSettleDelay = 2 * time.Second

// DefaultUserAgent presents as a desktop Chrome; several Indian news
// sites serve stripped pages to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements monsoon.Fetcher at compile time.
var _ monsoon.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation, recycling the browser periodically via a BrowserManager.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager     *BrowserManager
	navTimeout  time.Duration
	settleDelay time.Duration
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNavigationTimeout bounds a single navigation.
// Defaults to DefaultNavigationTimeout (30s).
func WithNavigationTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.navTimeout = d }
}

// WithSettleDelay sets the post-load wait for dynamic content.
// Defaults to DefaultSettleDelay (2s).
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.settleDelay = d }
}

// WithUserAgent overrides the user agent presented to sites.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// NewFetcher creates a Fetcher backed by a managed headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		manager:     manager,
		navTimeout:  DefaultNavigationTimeout,
		settleDelay: DefaultSettleDelay,
		userAgent:   DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load and settle, and
// returns the rendered HTML along with the post-redirect URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*monsoon.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.manager.closed.Load() {
		return nil, monsoon.Errorf(monsoon.EINVALID, "fetcher is closed")
	}

	navCtx, cancel := context.WithTimeout(ctx, f.navTimeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(navCtx)

	if err := (proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}).Call(page); err != nil {
		return nil, err
	}

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	// News pages keep injecting the body after load.
	select {
	case <-time.After(f.settleDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}
	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	f.manager.IncrementPageCount()

	return &monsoon.FetchResult{
		FinalURL: info.URL,
		HTML:     html,
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
