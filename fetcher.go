package monsoon

import "context"

// FetchResult holds the outcome of retrieving a page.
type FetchResult struct {
	// FinalURL is the URL after following redirects. Google News feed
	// links always redirect to the publisher, so this usually differs
	// from the requested URL.
	FinalURL string

	// HTML is the page markup, rendered where the implementation
	// supports JavaScript.
	HTML string
}

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content, or plain HTTP for static pages.
type Fetcher interface {
	// Fetch navigates to the URL and returns the page markup along
	// with the post-redirect URL. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases browser or connection resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
