//go:build integration

package chromedp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/chromedp"
)

// Ensure Fetcher implements monsoon.Fetcher.
var _ monsoon.Fetcher = (*chromedp.Fetcher)(nil)

func TestFetcher_Fetch_ReturnsRenderedArticle(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Rain Alert</title></head>
<body>
<article id="story">Loading...</article>
<script>
document.getElementById('story').textContent = 'The district recorded 240mm of rainfall in twelve hours.';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher, err := chromedp.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	res, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, res.HTML, "240mm of rainfall")
	assert.NotContains(t, res.HTML, "Loading...")
}

func TestFetcher_Fetch_WatchdogStopsHungPage(t *testing.T) {
	t.Parallel()

	// The page body arrives immediately but a blocking subresource keeps
	// the document in "interactive" forever. The watchdog should stop
	// loading and return the partial DOM.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow.js" {
			select {}
		}
		w.Header().Set("Content-Type", "text/html")
		flusher := w.(http.Flusher)
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html><head><title>Hung</title></head>
<body><article><p>Embankment breach floods low lying areas near the river.</p></article>
<script src="/slow.js"></script>
</body></html>`))
		flusher.Flush()
		select {}
	}))
	defer srv.Close()

	fetcher, err := chromedp.NewFetcher(
		chromedp.WithWatchdogTimeout(3*time.Second),
		chromedp.WithPollInterval(200*time.Millisecond),
	)
	require.NoError(t, err)
	defer fetcher.Close()

	res, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, res.HTML, "Embankment breach")
}

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {}
	}))
	defer srv.Close()

	fetcher, err := chromedp.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
