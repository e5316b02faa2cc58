package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/AIDMI-DataHub/monsoon-news-extraction/goquery"
)

// Ensure Extractor implements monsoon.Extractor.
var _ monsoon.Extractor = (*goquery.Extractor)(nil)

func para(n int) string {
	return fmt.Sprintf("Paragraph %d reports sustained heavy rainfall across the district with rivers above danger mark.", n)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts paragraphs from article container", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Flood Update - Daily Example</title></head>
<body>
<nav><p>Home</p><p>Weather</p></nav>
<article>
<h1>Floods displace thousands in coastal districts</h1>
<p>%s</p>
<p>%s</p>
<p>short</p>
</article>
</body>
</html>`, para(1), para(2))

		res, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Floods displace thousands in coastal districts", res.Title)
		assert.Equal(t, para(1)+"\n"+para(2), res.Text)
	})

	t.Run("picks the densest of several containers", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<html><body>
<div class="content"><p>%s</p></div>
<div class="story"><p>%s</p><p>%s</p><p>%s</p></div>
</body></html>`, para(1), para(2), para(3), para(4))

		res, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, res.Text, "Paragraph 1")
		assert.Contains(t, res.Text, "Paragraph 2")
		assert.Contains(t, res.Text, "Paragraph 4")
	})

	t.Run("falls back to paragraph-rich divs when no container matches", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<html><body>
<div><p>one</p></div>
<div class="body-text"><p>%s</p><p>%s</p><p>%s</p></div>
</body></html>`, para(1), para(2), para(3))

		res, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{para(1), para(2), para(3)}, "\n"), res.Text)
	})

	t.Run("sweeps loose paragraphs when containers hold nothing", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<html><body>
<article><span>no paragraphs here</span></article>
<p>%s</p>
<p>tiny</p>
</body></html>`, para(1))

		res, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, para(1), res.Text)
	})

	t.Run("returns empty text for a page with no usable paragraphs", func(t *testing.T) {
		t.Parallel()

		res, err := goquery.NewExtractor().Extract(`<html><body><div>nav</div></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, res.Text)
	})
}

func TestExtractor_Titles(t *testing.T) {
	t.Parallel()

	t.Run("skips implausible h1 lengths", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<html><head><title>Cyclone warning issued | Example News</title></head>
<body><h1>Menu</h1><h1>%s</h1><article><p>%s</p></article></body></html>`,
			strings.Repeat("x", 250), para(1))

		res, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Cyclone warning issued", res.Title)
	})

	t.Run("trims site suffix from document title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Heavy rain lashes Mumbai - Example Times</title></head><body></body></html>`

		res, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Heavy rain lashes Mumbai", res.Title)
	})

	t.Run("falls back to open graph title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:title" content="Landslide blocks highway"></head><body></body></html>`

		res, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Landslide blocks highway", res.Title)
	})

	t.Run("empty title when nothing is available", func(t *testing.T) {
		t.Parallel()

		res, err := goquery.NewExtractor().Extract(`<html><body><p>body only</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, res.Title)
	})
}
