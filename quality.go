package monsoon

import (
	"regexp"
	"strings"
)

// Quality is a coarse trustworthiness tier for extracted article text.
type Quality string

// Quality tiers, ordered high > medium > low.
const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
)

// Rank returns the ordering value of a quality tier for duplicate
// resolution. Unknown tiers rank with low.
func (q Quality) Rank() int {
	switch q {
	case QualityHigh:
		return 3
	case QualityMedium:
		return 2
	default:
		return 1
	}
}

// QualityThresholds holds the tunable cutoffs for quality assessment. The
// diversity cutoffs are empirically chosen defaults, not hard invariants.
type QualityThresholds struct {
	HighLength        int
	HighParagraphs    int
	HighBoilerplate   int
	HighDiversity     float64
	MediumLength      int
	MediumParagraphs  int
	MediumBoilerplate int
	MediumDiversity   float64
}

// DefaultQualityThresholds returns the standard cutoffs.
func DefaultQualityThresholds() QualityThresholds {
	return QualityThresholds{
		HighLength:        1500,
		HighParagraphs:    3,
		HighBoilerplate:   1,
		HighDiversity:     0.3,
		MediumLength:      500,
		MediumParagraphs:  2,
		MediumBoilerplate: 2,
		MediumDiversity:   0.2,
	}
}

var (
	markupRemnantRe = regexp.MustCompile(`<[^>]+>`)

	// Phrases that usually indicate navigation chrome or consent banners
	// leaked into the extracted text.
	boilerplatePatterns = []string{
		"cookie", "privacy policy", "terms of service",
		"subscribe", "sign up", "log in", "login",
		"advertisement", "click here", "read more",
	}
)

// AssessQuality grades extracted article text into a quality tier using
// text length, paragraph count, leftover markup, boilerplate phrase hits,
// and lexical diversity (unique-word ratio).
func AssessQuality(text string, t QualityThresholds) Quality {
	if text == "" {
		return QualityLow
	}

	length := len(text)
	paragraphs := 0
	for _, p := range strings.Split(text, "\n") {
		if len(strings.TrimSpace(p)) > 20 {
			paragraphs++
		}
	}

	hasMarkup := markupRemnantRe.MatchString(text)

	lower := strings.ToLower(text)
	boilerplate := 0
	for _, pattern := range boilerplatePatterns {
		if strings.Contains(lower, pattern) {
			boilerplate++
		}
	}

	words := strings.Fields(text)
	diversity := 0.0
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		diversity = float64(len(unique)) / float64(len(words))
	}

	switch {
	case length > t.HighLength && paragraphs >= t.HighParagraphs &&
		!hasMarkup && boilerplate <= t.HighBoilerplate && diversity > t.HighDiversity:
		return QualityHigh
	case length > t.MediumLength && paragraphs >= t.MediumParagraphs &&
		boilerplate <= t.MediumBoilerplate && diversity > t.MediumDiversity:
		return QualityMedium
	default:
		return QualityLow
	}
}
