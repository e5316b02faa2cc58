package monsoon

import (
	"net/url"
	"regexp"
	"strings"
)

// trackingParams are query parameters stripped during URL normalization.
// "oc" is the Google News redirect counter.
var trackingParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
	"fbclid", "gclid", "_ga", "_gac", "ref", "source", "medium",
	"campaign", "oc",
}

var googleNewsArticleRe = regexp.MustCompile(`/articles/([^?/]+)`)

// NormalizeURL canonicalizes a URL for duplicate detection: tracking
// parameters and the fragment are removed, the result is lowercased and
// the trailing slash dropped. Google News feed URLs collapse to a stable
// form keyed by their article ID, since the rest of the URL varies per
// request.
func NormalizeURL(rawURL string) string {
	if strings.Contains(rawURL, "news.google.com/rss/articles/") {
		if m := googleNewsArticleRe.FindStringSubmatch(rawURL); m != nil {
			return "google-news:" + m[1]
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.TrimRight(strings.ToLower(rawURL), "/")
	}

	q := u.Query()
	for _, p := range trackingParams {
		q.Del(p)
	}
	u.RawQuery = q.Encode()
	u.Fragment = ""

	return strings.TrimRight(strings.ToLower(u.String()), "/")
}

// Domain extracts the registrable host of a URL, folding the "www."
// prefix. Returns "" for unparseable URLs.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// MainDomain reduces a hostname to its last two labels, folding
// subdomains ("news.example.com" -> "example.com").
func MainDomain(domain string) string {
	if domain == "" {
		return ""
	}
	parts := strings.Split(domain, ".")
	if len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ".")
	}
	return domain
}

// MatchFinalURL matches a post-redirect URL back to one of the originally
// requested URLs. It tries, in order: exact match, Google News host fold,
// same-domain path similarity, main-domain fold, and prefix containment.
// The heuristics are best-effort; ambiguous redirects can mismatch, and
// callers should fall back to the original URL when nothing matches.
func MatchFinalURL(finalURL string, originals []string) string {
	if finalURL == "" || len(originals) == 0 {
		return ""
	}

	for _, o := range originals {
		if finalURL == o {
			return o
		}
	}

	if strings.Contains(finalURL, "news.google.com") {
		for _, o := range originals {
			if strings.Contains(o, "news.google.com") {
				return o
			}
		}
	}

	finalDomain := Domain(finalURL)
	finalPath := urlPath(finalURL)

	var domainMatches []string
	for _, o := range originals {
		if Domain(o) == finalDomain && finalDomain != "" {
			domainMatches = append(domainMatches, o)
		}
	}
	if len(domainMatches) == 1 {
		return domainMatches[0]
	}
	if len(domainMatches) > 1 {
		best, bestScore := domainMatches[0], 0.0
		for _, o := range domainMatches {
			score := pathSimilarity(finalPath, urlPath(o))
			if score > bestScore {
				best, bestScore = o, score
			}
		}
		return best
	}

	finalMain := MainDomain(finalDomain)
	for _, o := range originals {
		if MainDomain(Domain(o)) == finalMain && finalMain != "" {
			return o
		}
	}

	for _, o := range originals {
		if strings.HasPrefix(finalURL, o) || strings.HasPrefix(o, finalURL) {
			return o
		}
	}

	return ""
}

func urlPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Path)
}

// pathSimilarity scores two URL paths by the fraction of shared path
// components.
func pathSimilarity(a, b string) float64 {
	partsA := strings.Split(a, "/")
	partsB := strings.Split(b, "/")

	setA := make(map[string]struct{}, len(partsA))
	for _, p := range partsA {
		setA[p] = struct{}{}
	}
	common := 0
	seen := make(map[string]struct{}, len(partsB))
	for _, p := range partsB {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if _, ok := setA[p]; ok {
			common++
		}
	}

	denom := len(partsA)
	if len(partsB) > denom {
		denom = len(partsB)
	}
	if denom == 0 {
		return 0
	}
	return float64(common) / float64(denom)
}
