package monsoon

import "strings"

// RegionType distinguishes states from union territories, which are
// stored under different output prefixes.
type RegionType string

const (
	RegionState          RegionType = "states"
	RegionUnionTerritory RegionType = "union-territories"
)

// States lists the 28 Indian states in slug form.
var States = []string{
	"andhra-pradesh", "arunachal-pradesh", "assam", "bihar", "chhattisgarh",
	"goa", "gujarat", "haryana", "himachal-pradesh", "jharkhand", "karnataka",
	"kerala", "madhya-pradesh", "maharashtra", "manipur", "meghalaya", "mizoram",
	"nagaland", "odisha", "punjab", "rajasthan", "sikkim", "tamil-nadu",
	"telangana", "tripura", "uttar-pradesh", "uttarakhand", "west-bengal",
}

// UnionTerritories lists the 8 union territories in slug form.
var UnionTerritories = []string{
	"andaman-and-nicobar-islands", "chandigarh",
	"dadra-and-nagar-haveli-and-daman-and-diu",
	"lakshadweep", "delhi", "puducherry",
	"jammu-and-kashmir", "ladakh",
}

// regionLanguages maps each region to the languages worth querying,
// primary first. Regions whose local language has no usable news feed
// coverage lead with English.
var regionLanguages = map[string][]string{
	"andhra-pradesh":    {"te", "en"},
	"arunachal-pradesh": {"en", "hi"},
	"assam":             {"as", "en", "bn", "hi"},
	"bihar":             {"hi", "en", "ur"},
	"chhattisgarh":      {"hi", "en"},
	"goa":               {"en", "mr", "kn"},
	"gujarat":           {"gu", "en", "hi"},
	"haryana":           {"hi", "en", "pa"},
	"himachal-pradesh":  {"hi", "en"},
	"jharkhand":         {"hi", "en"},
	"karnataka":         {"kn", "en", "te", "ta"},
	"kerala":            {"ml", "en", "ta"},
	"madhya-pradesh":    {"hi", "en"},
	"maharashtra":       {"mr", "en", "hi"},
	"manipur":           {"mni", "en", "hi"},
	"meghalaya":         {"en", "hi"},
	"mizoram":           {"lus", "en", "hi"},
	"nagaland":          {"en", "hi"},
	"odisha":            {"or", "en", "hi"},
	"punjab":            {"pa", "en", "hi"},
	"rajasthan":         {"hi", "en"},
	"sikkim":            {"ne", "en", "hi"},
	"tamil-nadu":        {"ta", "en"},
	"telangana":         {"te", "en", "ur"},
	"tripura":           {"bn", "en", "hi"},
	"uttar-pradesh":     {"hi", "en", "ur"},
	"uttarakhand":       {"hi", "en"},
	"west-bengal":       {"bn", "en", "hi"},

	"andaman-and-nicobar-islands":              {"en", "hi", "bn", "ta"},
	"chandigarh":                               {"hi", "en", "pa"},
	"dadra-and-nagar-haveli-and-daman-and-diu": {"gu", "en", "hi", "mr"},
	"lakshadweep":                              {"en", "ml"},
	"delhi":                                    {"hi", "en", "ur", "pa"},
	"puducherry":                               {"ta", "en", "ml", "te"},
	"jammu-and-kashmir":                        {"en", "hi", "ur"},
	"ladakh":                                   {"en", "hi", "ur"},
}

var languageNames = map[string]string{
	"en":  "English",
	"hi":  "Hindi",
	"ta":  "Tamil",
	"te":  "Telugu",
	"ml":  "Malayalam",
	"kn":  "Kannada",
	"bn":  "Bengali",
	"gu":  "Gujarati",
	"mr":  "Marathi",
	"or":  "Odia",
	"pa":  "Punjabi",
	"as":  "Assamese",
	"ur":  "Urdu",
	"ne":  "Nepali",
	"mni": "Meitei (Manipuri)",
	"lus": "Mizo (Lushai)",
}

// AllRegions returns states followed by union territories.
func AllRegions() []string {
	out := make([]string, 0, len(States)+len(UnionTerritories))
	out = append(out, States...)
	out = append(out, UnionTerritories...)
	return out
}

// ValidRegion reports whether slug names a known state or union territory.
func ValidRegion(slug string) bool {
	return TypeOfRegion(slug) != ""
}

// TypeOfRegion returns RegionState or RegionUnionTerritory, or "" for an
// unknown slug.
func TypeOfRegion(slug string) RegionType {
	for _, s := range States {
		if s == slug {
			return RegionState
		}
	}
	for _, ut := range UnionTerritories {
		if ut == slug {
			return RegionUnionTerritory
		}
	}
	return ""
}

// RegionLanguages returns the language codes to query for a region,
// primary language first. Unknown regions fall back to English.
func RegionLanguages(slug string) []string {
	if langs, ok := regionLanguages[slug]; ok {
		return langs
	}
	return []string{"en"}
}

// PrimaryLanguage returns the first entry of RegionLanguages.
func PrimaryLanguage(slug string) string {
	return RegionLanguages(slug)[0]
}

// LanguageName returns the human-readable name for a language code, or
// the code itself when the code is unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// RegionDisplayName converts a slug like "tamil-nadu" to "Tamil Nadu".
func RegionDisplayName(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
