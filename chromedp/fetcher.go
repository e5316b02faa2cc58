// Package chromedp provides a second browser-automation implementation
// of monsoon.Fetcher. It drives headless Chrome over the DevTools
// protocol directly and is used when the primary rod-based renderer
// hangs on a page: a hard watchdog interrupts loading with window.stop()
// and harvests whatever DOM has been built so far.
package chromedp

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// DefaultWatchdogTimeout is the hard ceiling on page loading. Pages
// still loading when it expires are stopped and harvested as-is.
const DefaultWatchdogTimeout = 60 * time.Second

// DefaultPollInterval is how often page readiness is probed.
const DefaultPollInterval = 500 * time.Millisecond

// stableBodyDelta is the maximum change in body length between polls
// for the page to be considered settled.
const stableBodyDelta = 100

// stablePolls is how many consecutive settled polls constitute a
// finished page when readyState never reaches "complete".
const stablePolls = 3

// Ensure Fetcher implements monsoon.Fetcher at compile time.
var _ monsoon.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using chromedp. A single browser
// process is shared via the allocator context; each Fetch runs in its
// own tab.
type Fetcher struct {
	allocator    context.Context
	allocCancel  context.CancelFunc
	watchdog     time.Duration
	pollInterval time.Duration
	userAgent    string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithWatchdogTimeout sets the hard ceiling on page loading.
// Defaults to DefaultWatchdogTimeout (60s).
func WithWatchdogTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.watchdog = d }
}

// WithPollInterval sets how often readiness is probed.
// Defaults to DefaultPollInterval (500ms).
func WithPollInterval(d time.Duration) Option {
	return func(f *Fetcher) { f.pollInterval = d }
}

// WithUserAgent overrides the user agent presented to sites.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// NewFetcher creates a chromedp-backed Fetcher. Close must be called
// when the Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		watchdog:     DefaultWatchdogTimeout,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(f)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.Flag("enable-automation", false),
	)
	f.allocator, f.allocCancel = chromedp.NewExecAllocator(context.Background(), allocOpts...)

	return f, nil
}

// Fetch navigates to the URL in a fresh tab and returns the rendered
// HTML. Loading is bounded by the watchdog: when it expires the page is
// stopped and the partial DOM is returned rather than an error, since a
// half-loaded news page usually still contains the article body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*monsoon.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	taskCtx, taskCancel := chromedp.NewContext(f.allocator)
	defer taskCancel()

	// Margin past the watchdog so window.stop() and the DOM snapshot
	// can still run after a stalled load.
	taskCtx, cancel := context.WithTimeout(taskCtx, f.watchdog+15*time.Second)
	defer cancel()

	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			taskCancel()
		case <-stop:
		}
	}()
	defer close(stop)

	var (
		html     string
		finalURL string
	)
	actions := []chromedp.Action{
		f.setupAction(),
		chromedp.Navigate(url),
		f.waitReadyAction(),
		chromedp.Location(&finalURL),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	}
	if err := chromedp.Run(taskCtx, actions...); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("chromedp run: %w", err)
	}

	if finalURL == "" {
		finalURL = url
	}
	return &monsoon.FetchResult{
		FinalURL: finalURL,
		HTML:     html,
	}, nil
}

func (f *Fetcher) setupAction() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if f.userAgent == "" {
			return nil
		}
		if err := emulation.SetUserAgentOverride(f.userAgent).Do(ctx); err != nil {
			return fmt.Errorf("set user-agent: %w", err)
		}
		return nil
	})
}

// waitReadyAction polls the document until it is usable: readyState
// "complete", or "interactive" with the body length stable across
// stablePolls consecutive probes. When the watchdog expires the page is
// stopped with window.stop() and the action returns success so the
// caller can harvest the partial DOM.
func (f *Fetcher) waitReadyAction() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		deadline := time.Now().Add(f.watchdog)
		prevLen := -1
		stable := 0

		for {
			if time.Now().After(deadline) {
				// Stop loading and take what we have.
				_ = chromedp.Evaluate(`window.stop()`, nil).Do(ctx)
				return nil
			}

			var state string
			if err := chromedp.Evaluate(`document.readyState`, &state).Do(ctx); err != nil {
				return err
			}
			if state == "complete" {
				return nil
			}
			if state == "interactive" {
				var bodyLen int
				if err := chromedp.Evaluate(`document.body ? document.body.innerHTML.length : 0`, &bodyLen).Do(ctx); err != nil {
					return err
				}
				if prevLen >= 0 && abs(bodyLen-prevLen) < stableBodyDelta {
					stable++
				} else {
					stable = 0
				}
				prevLen = bodyLen
				if stable >= stablePolls {
					return nil
				}
			}

			select {
			case <-time.After(f.pollInterval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})
}

// Close shuts down the shared browser process.
func (f *Fetcher) Close() error {
	f.allocCancel()
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
