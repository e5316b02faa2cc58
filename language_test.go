package monsoon_test

import (
	"strings"
	"testing"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	t.Run("short text defaults to English", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "en", monsoon.DetectLanguage("बाढ़"))
		assert.Equal(t, "en", monsoon.DetectLanguage(""))
	})

	t.Run("pure Devanagari detects Hindi", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("भारी बारिश के कारण बाढ़ आई ", 5)
		assert.Equal(t, "hi", monsoon.DetectLanguage(text))
	})

	t.Run("pure Latin detects English", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("Heavy rainfall caused flooding in the district. ", 3)
		assert.Equal(t, "en", monsoon.DetectLanguage(text))
	})

	t.Run("mostly English with sprinkled Tamil stays English", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("Heavy rainfall caused widespread flooding across the district today. ", 4) + "வெள்ளம்"
		assert.Equal(t, "en", monsoon.DetectLanguage(text))
	})

	t.Run("majority Bengali with some English detects Bengali", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("ভারী বৃষ্টিতে বন্যা পরিস্থিতির অবনতি হয়েছে ", 5) + "IMD alert issued"
		assert.Equal(t, "bn", monsoon.DetectLanguage(text))
	})

	t.Run("each supported script maps to its code", func(t *testing.T) {
		t.Parallel()

		tests := map[string]string{
			"ta": "கனமழை காரணமாக வெள்ளம் ஏற்பட்டது மாவட்டம் முழுவதும்",
			"te": "భారీ వర్షాల కారణంగా వరదలు సంభవించాయి జిల్లా అంతటా",
			"kn": "ಭಾರೀ ಮಳೆಯಿಂದ ಪ್ರವಾಹ ಉಂಟಾಗಿದೆ ಜಿಲ್ಲೆಯಾದ್ಯಂತ ಹಾನಿ",
			"ml": "കനത്ത മഴയിൽ വെള്ളപ്പൊക്കം ഉണ്ടായി ജില്ലയിൽ നാശനഷ്ടം",
			"gu": "ભારે વરસાદને કારણે પૂર આવ્યું જિલ્લામાં નુકસાન થયું",
			"pa": "ਭਾਰੀ ਮੀਂਹ ਕਾਰਨ ਹੜ੍ਹ ਆ ਗਿਆ ਜ਼ਿਲ੍ਹੇ ਵਿੱਚ ਨੁਕਸਾਨ ਹੋਇਆ",
		}
		for want, text := range tests {
			assert.Equal(t, want, monsoon.DetectLanguage(text), "script for %s", want)
		}
	})

	t.Run("custom thresholds change sensitivity", func(t *testing.T) {
		t.Parallel()

		cfg := monsoon.DetectorConfig{MinLength: 10, NonLatinFraction: 0.05, ScriptFraction: 0.01}
		text := "Flooding reported across the coastal districts today வெள்ளம் பாதிப்பு"
		assert.Equal(t, "ta", monsoon.DetectLanguageWith(text, cfg))
	})
}
