package monsoon

import (
	"fmt"
	"strings"
)

// QueryMode controls how many queries BuildQueries emits per language.
type QueryMode int

const (
	// QueryConservative keeps only the highest-signal queries, for
	// interactive runs where rate limits bite quickly.
	QueryConservative QueryMode = iota

	// QueryFull adds health and broad-coverage queries on top of the
	// conservative set, for scheduled unattended runs.
	QueryFull
)

// BuildQueries constructs news search queries for a region from its
// language's term list. Emitted in priority order: quoted single-term
// queries for the top terms, then small OR combinations of weather,
// impact and (in full mode) health terms. Overly complex queries are
// dropped before returning, since long OR chains reliably trip feed
// throttling.
func BuildQueries(terms []string, regionName string, mode QueryMode) []string {
	if len(terms) == 0 {
		return []string{"monsoon " + regionName}
	}

	var queries []string

	priority := terms
	if len(priority) > 3 {
		priority = priority[:3]
	}
	for _, term := range priority {
		if strings.TrimSpace(term) == "" {
			continue
		}
		queries = append(queries, fmt.Sprintf("%q %s", term, regionName))
	}

	if len(terms) >= 3 {
		queries = append(queries, fmt.Sprintf("(%s OR %s) %s", terms[0], terms[1], regionName))
	}

	if len(terms) >= 6 {
		queries = append(queries, fmt.Sprintf("(%s OR %s) %s", terms[3], terms[4], regionName))
	}

	if mode == QueryConservative {
		if len(queries) > 3 {
			queries = queries[:3]
		}
	} else {
		if len(terms) >= 10 {
			queries = append(queries, fmt.Sprintf("(%s OR %s) %s", terms[8], terms[9], regionName))
		}
		if len(terms) >= 8 {
			broad := []string{terms[0], terms[3], terms[7]}
			queries = append(queries, fmt.Sprintf("(%s) %s", strings.Join(broad, " OR "), regionName))
		}
	}

	out := queries[:0]
	for _, q := range queries {
		if strings.Count(q, "OR") <= 4 && len(q) <= 200 {
			out = append(out, q)
		}
	}
	return out
}

// irrelevantPatterns flag content that matches climate vocabulary by
// coincidence. Language-neutral on purpose; local-language feeds rarely
// hit them.
var irrelevantPatterns = []string{
	"fashion", "beauty", "recipe", "cooking", "sports score", "cricket", "football",
	"entertainment", "celebrity", "movie release", "film", "music album",
	"festival celebration", "wedding", "marriage ceremony", "astrology", "horoscope",
	"stock market", "share price", "investment", "real estate deal", "property sale",
}

// contextIndicators are generic impact words that confirm a borderline
// single-term match is actually about weather impact.
var contextIndicators = []string{
	"weather", "government", "alert", "warning", "rescue", "relief", "help",
	"damage", "affected", "impact", "water", "river", "road", "house",
	"people", "area", "district", "village", "city", "state",
}

// IsRelevant reports whether text is genuinely about monsoon impact.
// It requires at least one term from the language's vocabulary, vetoes
// text dominated by off-topic patterns, and for a single term match asks
// for supporting context.
func IsRelevant(text string, terms []string) bool {
	if text == "" || len(terms) == 0 {
		return false
	}
	lower := strings.ToLower(text)

	matches := 0
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			matches++
		}
	}
	if matches == 0 {
		return false
	}

	irrelevant := 0
	for _, p := range irrelevantPatterns {
		if strings.Contains(lower, p) {
			irrelevant++
		}
	}
	if irrelevant > 2 {
		return false
	}

	if matches >= 2 {
		return true
	}

	for _, ind := range contextIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}
