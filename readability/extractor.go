// Package readability implements article extraction with the
// go-readability port of Mozilla's Readability algorithm.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Ensure Extractor implements monsoon.Extractor at compile time.
var _ monsoon.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article body from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and plain
// text body.
func (e *Extractor) Extract(rawHTML string) (*monsoon.ExtractResult, error) {
	if rawHTML == "" {
		return nil, monsoon.Errorf(monsoon.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &monsoon.ExtractResult{
		Title: article.Title,
		Text:  strings.TrimSpace(article.TextContent),
	}, nil
}
