package monsoon

import (
	"regexp"
	"strconv"
	"time"
)

// IST is the zone all published dates are normalized to before date
// filtering.
var IST = time.FixedZone("IST", 5*3600+1800)

// urlDatePatterns match the date layouts news sites embed in URLs.
// Ordered most to least specific; the first hit wins.
var urlDatePatterns = []struct {
	re        *regexp.Regexp
	yearFirst bool
	compact   bool
}{
	{re: regexp.MustCompile(`/(\d{4})/(\d{1,2})/(\d{1,2})/`), yearFirst: true},
	{re: regexp.MustCompile(`/(\d{4})-(\d{1,2})-(\d{1,2})/`), yearFirst: true},
	{re: regexp.MustCompile(`/news/(\d{4})/(\d{1,2})/(\d{1,2})/`), yearFirst: true},
	{re: regexp.MustCompile(`article(\d{8})`), compact: true},
	{re: regexp.MustCompile(`-(\d{4})(\d{2})(\d{2})-`), yearFirst: true},
	{re: regexp.MustCompile(`/(\d{2})-(\d{2})-(\d{4})/`)},
	{re: regexp.MustCompile(`/(\d{2})(\d{2})(\d{4})/`)},
	{re: regexp.MustCompile(`(\d{1,2})_(\d{1,2})_(\d{4})`)},
	{re: regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`), yearFirst: true},
}

// DateFromURL extracts a publication date embedded in a news URL.
// Returns the zero time when no plausible date is found.
func DateFromURL(rawURL string) time.Time {
	for _, p := range urlDatePatterns {
		m := p.re.FindStringSubmatch(rawURL)
		if m == nil {
			continue
		}

		var year, month, day int
		if p.compact {
			s := m[1]
			year, _ = strconv.Atoi(s[:4])
			month, _ = strconv.Atoi(s[4:6])
			day, _ = strconv.Atoi(s[6:8])
		} else if p.yearFirst {
			year, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		} else {
			day, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			year, _ = strconv.Atoi(m[3])
		}

		if year < 2000 || year > 2030 || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, IST)
	}
	return time.Time{}
}

// feedTimeLayouts cover the RFC 822 variants news feeds actually emit.
var feedTimeLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	time.RFC3339,
}

// ParsePublished parses a feed timestamp and converts it to IST.
// Returns the zero time when no layout matches.
func ParsePublished(published string) time.Time {
	for _, layout := range feedTimeLayouts {
		if t, err := time.Parse(layout, published); err == nil {
			return t.In(IST)
		}
	}
	return time.Time{}
}

// SameDayIST reports whether t falls on a calendar day within
// [start, end] in IST. start and end are day-precision bounds.
func SameDayIST(t, start, end time.Time) bool {
	if t.IsZero() {
		return false
	}
	d := t.In(IST)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, IST)
	return !day.Before(start) && !day.After(end)
}
