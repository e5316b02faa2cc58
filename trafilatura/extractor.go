// Package trafilatura implements article extraction backed by
// go-trafilatura, which handles non-Latin-script pages better than the
// readability algorithm.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Ensure Extractor implements monsoon.Extractor at compile time.
var _ monsoon.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the article body from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &monsoon.ExtractResult{
		Title: result.Metadata.Title,
		Text:  strings.TrimSpace(result.ContentText),
	}, nil
}
