package monsoon

import "context"

// SearchEntry is a single item from a news search feed.
type SearchEntry struct {
	Title string
	Link  string

	// Published is the raw feed timestamp, typically RFC 822
	// ("Mon, 02 Jan 2006 15:04:05 GMT"). Parsing is the consumer's
	// concern; feeds are inconsistent enough that it can fail.
	Published string

	// Source is the publisher name when the feed exposes one.
	Source string

	// Summary is the feed-provided snippet, often HTML.
	Summary string
}

// SearchResults holds the entries returned for one query.
type SearchResults struct {
	Query   string
	Entries []SearchEntry
}

// SearchClient runs queries against a news search feed.
type SearchClient interface {
	// Search executes a query scoped to a recency window such as "7d"
	// and returns the feed entries. An empty when means no window.
	Search(ctx context.Context, query, when string) (*SearchResults, error)

	// RotateIdentity switches the client to a fresh browser identity
	// (user agent, headers). Used to shed per-identity throttling.
	RotateIdentity()

	// Close releases the underlying HTTP resources.
	Close() error
}

// SeenFilter tracks URLs already collected so repeat queries do not
// produce duplicate rows. Implementations may be probabilistic: Seen may
// rarely report true for a URL never added, but never the reverse.
type SeenFilter interface {
	Seen(url string) bool
	Add(url string)
}

// DomainLimiter enforces per-domain politeness delays so concurrent
// extraction never hammers a single publisher.
type DomainLimiter interface {
	// Wait blocks until the domain of url may be requested again.
	Wait(ctx context.Context, url string) error
}
