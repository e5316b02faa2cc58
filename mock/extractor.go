package mock

import (
	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

var _ monsoon.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of monsoon.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*monsoon.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*monsoon.ExtractResult, error) {
	return e.ExtractFn(html)
}
