// Package goquery implements a container-heuristic article extractor.
// It is the last resort in the extraction chain: when the dedicated
// readability and trafilatura extractors come up empty, it hunts for the
// densest text container in the page and harvests its paragraphs.
package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
)

// containerSelectors are tried in order when looking for the element
// that holds the article body. They cover the markup conventions most
// Indian news sites use.
var containerSelectors = []string{
	"article",
	".article",
	".content",
	".story",
	"main",
	"#content",
	".post-content",
	".news-content",
}

// minContainerParagraph is the minimum text length for a paragraph taken
// from a recognized article container.
const minContainerParagraph = 20

// minLooseParagraph is the minimum text length for a paragraph taken
// from anywhere in the page, used when no container is found.
const minLooseParagraph = 30

// Ensure Extractor implements monsoon.Extractor.
var _ monsoon.Extractor = (*Extractor)(nil)

// Extractor pulls article text out of arbitrary news-site HTML using
// structural heuristics rather than a readability algorithm.
type Extractor struct{}

// NewExtractor creates a heuristic Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML, locates the densest article container, and
// returns its title and paragraph text. The returned text may be empty
// when the page has no usable paragraphs; callers decide whether the
// result is acceptable.
func (e *Extractor) Extract(html string) (*monsoon.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, monsoon.Errorf(monsoon.EINVALID, "failed to parse HTML: %v", err)
	}

	return &monsoon.ExtractResult{
		Title: ExtractTitle(doc),
		Text:  extractBody(doc),
	}, nil
}

// ExtractTitle returns the best available article title: the first
// plausible h1, then the document <title> with the site name suffix
// trimmed, then the Open Graph title. Returns "" when none is usable.
func ExtractTitle(doc *goquery.Document) string {
	title := ""
	doc.Find("h1").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		// Very short h1s are section labels, very long ones are usually
		// concatenated navigation text.
		if len(text) > 10 && len(text) < 200 {
			title = text
			return false
		}
		return true
	})
	if title != "" {
		return title
	}

	if text := strings.TrimSpace(doc.Find("title").First().Text()); text != "" {
		return trimSiteSuffix(text)
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		return strings.TrimSpace(og)
	}

	return ""
}

// trimSiteSuffix drops the trailing " - Site Name" or " | Site Name"
// that news sites append to their <title> tags.
func trimSiteSuffix(title string) string {
	for _, sep := range []string{" - ", " | "} {
		if idx := strings.LastIndex(title, sep); idx > 0 {
			title = title[:idx]
		}
	}
	return strings.TrimSpace(title)
}

// extractBody locates the article container with the most text and
// joins its paragraphs. Falls back to every sufficiently long paragraph
// in the page when no container yields anything.
func extractBody(doc *goquery.Document) string {
	candidates := findCandidates(doc)

	best := pickDensest(candidates)
	if best != nil {
		if text := joinParagraphs(best, minContainerParagraph); text != "" {
			return text
		}
	}

	// No recognizable container held paragraphs; sweep the whole page
	// with a stricter length gate to keep navigation crumbs out.
	var loose []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > minLooseParagraph {
			loose = append(loose, text)
		}
	})
	return strings.Join(loose, "\n")
}

// findCandidates returns container elements that might hold the article
// body: every match of the known selectors, or, when none match, the
// three divs with the most paragraph children.
func findCandidates(doc *goquery.Document) []*goquery.Selection {
	var candidates []*goquery.Selection
	for _, selector := range containerSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			candidates = append(candidates, sel)
		})
	}
	if len(candidates) > 0 {
		return candidates
	}

	type divCount struct {
		sel   *goquery.Selection
		paras int
	}
	var divs []divCount
	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		if n := sel.Find("p").Length(); n >= 3 {
			divs = append(divs, divCount{sel: sel, paras: n})
		}
	})
	sort.SliceStable(divs, func(i, j int) bool {
		return divs[i].paras > divs[j].paras
	})
	if len(divs) > 3 {
		divs = divs[:3]
	}
	for _, d := range divs {
		candidates = append(candidates, d.sel)
	}
	return candidates
}

// pickDensest returns the candidate with the most text, or nil when the
// list is empty.
func pickDensest(candidates []*goquery.Selection) *goquery.Selection {
	var best *goquery.Selection
	bestLen := 0
	for _, c := range candidates {
		if n := len(strings.TrimSpace(c.Text())); best == nil || n > bestLen {
			best = c
			bestLen = n
		}
	}
	return best
}

// joinParagraphs collects the container's paragraphs longer than minLen
// and joins them with newlines.
func joinParagraphs(container *goquery.Selection, minLen int) string {
	var paras []string
	container.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > minLen {
			paras = append(paras, text)
		}
	})
	return strings.Join(paras, "\n")
}
