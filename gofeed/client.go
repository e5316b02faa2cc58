// Package gofeed implements the news-feed search client over the Google
// News RSS search endpoint.
package gofeed

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/mmcdole/gofeed"
)

// Ensure Client implements monsoon.SearchClient.
var _ monsoon.SearchClient = (*Client)(nil)

// DefaultBaseURL is the Google News feed host.
const DefaultBaseURL = "https://news.google.com"

// DefaultSearchTimeout bounds a single feed request.
const DefaultSearchTimeout = 30 * time.Second

// defaultUserAgents is the rotation pool for feed requests. All entries
// are current desktop browsers; the feed serves different rate limits to
// obvious bots.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// Client searches the Google News RSS endpoint for a single language and
// the India region. It holds one browser identity at a time;
// RotateIdentity switches to a fresh one when the caller suspects the
// current identity is being throttled.
//
// Not safe for concurrent use; the search executor serializes queries.
type Client struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	baseURL    string
	lang       string
	userAgents []string
	agent      string
	rnd        *rand.Rand
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithBaseURL overrides the feed host. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(cl *Client) { cl.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithUserAgents overrides the identity rotation pool.
func WithUserAgents(agents []string) Option {
	return func(cl *Client) { cl.userAgents = agents }
}

// NewClient creates a Client for the given feed language code ("en",
// "hi", "ta", ...).
func NewClient(lang string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultSearchTimeout},
		parser:     gofeed.NewParser(),
		baseURL:    DefaultBaseURL,
		lang:       lang,
		userAgents: defaultUserAgents,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.agent = c.userAgents[c.rnd.Intn(len(c.userAgents))]
	return c
}

// Search runs one query against the feed. A non-empty when value narrows
// the feed window with the `when:` operator ("1d", "7d", "1h").
func (c *Client) Search(ctx context.Context, query, when string) (*monsoon.SearchResults, error) {
	feedURL := c.searchURL(query, when)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")
	req.Header.Set("Accept-Language", fmt.Sprintf("%s,en;q=0.9", c.lang))
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, monsoon.Errorf(monsoon.ERATELIMIT, "feed returned HTTP 429 for %q", query)
	case resp.StatusCode == http.StatusForbidden:
		return nil, monsoon.Errorf(monsoon.EUNAVAILABLE, "feed returned HTTP 403 forbidden for %q", query)
	case resp.StatusCode != http.StatusOK:
		return nil, monsoon.Errorf(monsoon.EUNAVAILABLE, "feed returned HTTP %d for %q", resp.StatusCode, query)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	results := &monsoon.SearchResults{Query: query}
	for _, item := range feed.Items {
		results.Entries = append(results.Entries, entryFromItem(item))
	}
	return results, nil
}

// RotateIdentity switches to a different browser identity. The next
// Search uses the new agent.
func (c *Client) RotateIdentity() {
	if len(c.userAgents) < 2 {
		return
	}
	current := c.agent
	for c.agent == current {
		c.agent = c.userAgents[c.rnd.Intn(len(c.userAgents))]
	}
	c.httpClient.CloseIdleConnections()
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) searchURL(query, when string) string {
	q := query
	if when != "" {
		q += " when:" + when
	}
	params := url.Values{}
	params.Set("q", q)
	params.Set("hl", c.lang)
	params.Set("gl", "IN")
	params.Set("ceid", "IN:"+c.lang)
	return c.baseURL + "/rss/search?" + params.Encode()
}

// entryFromItem maps a feed item to a search entry. Feed titles carry a
// " - Publisher" suffix; it is split off into the source field.
func entryFromItem(item *gofeed.Item) monsoon.SearchEntry {
	entry := monsoon.SearchEntry{
		Title:     item.Title,
		Link:      item.Link,
		Published: item.Published,
		Summary:   item.Description,
	}
	if idx := strings.LastIndex(item.Title, " - "); idx > 0 {
		entry.Title = item.Title[:idx]
		entry.Source = item.Title[idx+3:]
	}
	return entry
}
