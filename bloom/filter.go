// Package bloom tracks collected article URLs with a Bloom filter so
// overlapping queries do not produce duplicate result rows. The filter
// is probabilistic: a URL never added may rarely read as seen, but a
// URL added always does, which is the safe direction for deduplication.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// Ensure Filter implements monsoon.SeenFilter.
var _ monsoon.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter over normalized URLs. It is not safe for
// concurrent use; the collector adds URLs from a single goroutine.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Bloom filter sized for n expected URLs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL. The URL is normalized first so tracking-parameter
// and case variants of the same page collapse to one entry.
func (f *Filter) Add(url string) {
	f.f.AddString(monsoon.NormalizeURL(url))
}

// Seen returns true if the URL might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(url string) bool {
	return f.f.TestString(monsoon.NormalizeURL(url))
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
