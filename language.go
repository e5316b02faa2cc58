package monsoon

import "unicode"

// DetectorConfig holds the tunable thresholds for script-frequency
// language detection. The defaults are reasonable empirical values rather
// than derived constants.
type DetectorConfig struct {
	// MinLength below which text is always classified as English.
	MinLength int

	// NonLatinFraction of the text that must be non-Latin before a
	// script-specific code is considered.
	NonLatinFraction float64

	// ScriptFraction of the text the dominant script must cover for its
	// language code to be returned.
	ScriptFraction float64
}

// DefaultDetectorConfig returns the standard detection thresholds.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MinLength:        50,
		NonLatinFraction: 0.15,
		ScriptFraction:   0.10,
	}
}

// scriptRange maps a Unicode block to the language code dominated by it.
type scriptRange struct {
	lang   string
	lo, hi rune
}

var scriptRanges = []scriptRange{
	{"hi", 0x0900, 0x097F}, // Devanagari
	{"bn", 0x0980, 0x09FF}, // Bengali
	{"ta", 0x0B80, 0x0BFF}, // Tamil
	{"te", 0x0C00, 0x0C7F}, // Telugu
	{"kn", 0x0C80, 0x0CFF}, // Kannada
	{"ml", 0x0D00, 0x0D7F}, // Malayalam
	{"gu", 0x0A80, 0x0AFF}, // Gujarati
	{"pa", 0x0A00, 0x0A7F}, // Gurmukhi
}

const commonPunctuation = ".,;:!?'\"()[]{}"

// DetectLanguage guesses the language of text by counting characters in
// the Indic Unicode blocks. Short or predominantly-Latin text defaults to
// English.
func DetectLanguage(text string) string {
	return DetectLanguageWith(text, DefaultDetectorConfig())
}

// DetectLanguageWith is DetectLanguage with explicit thresholds.
func DetectLanguageWith(text string, cfg DetectorConfig) string {
	runes := []rune(text)
	if len(runes) < cfg.MinLength {
		return "en"
	}

	counts := make([]int, len(scriptRanges))
	nonLatin := 0
	for _, r := range runes {
		for i, sr := range scriptRanges {
			if r >= sr.lo && r <= sr.hi {
				counts[i]++
				break
			}
		}
		if isLatinLike(r) {
			continue
		}
		nonLatin++
	}

	total := len(runes)
	if float64(nonLatin) <= float64(total)*cfg.NonLatinFraction {
		return "en"
	}

	best := 0
	for i := range counts {
		if counts[i] > counts[best] {
			best = i
		}
	}
	if float64(counts[best]) > float64(total)*cfg.ScriptFraction {
		return scriptRanges[best].lang
	}
	return "en"
}

// isLatinLike reports whether r counts as "Latin" for the purposes of the
// non-Latin fraction: ASCII letters, whitespace, digits, and common
// punctuation.
func isLatinLike(r rune) bool {
	if r < 128 && unicode.IsLetter(r) {
		return true
	}
	if unicode.IsSpace(r) || unicode.IsDigit(r) {
		return true
	}
	for _, p := range commonPunctuation {
		if r == p {
			return true
		}
	}
	return false
}
