package monsoon

// ExtractResult holds the article content pulled out of an HTML page.
type ExtractResult struct {
	// Title is the headline, taken from the first h1, the <title>
	// element, or og:title metadata, in that order of preference.
	Title string

	// Text is the article body as plain text, paragraphs joined with
	// newlines and boilerplate (nav, footer, sidebar, ads) removed.
	Text string
}

// Extractor pulls the main article text out of HTML, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the headline and body text.
	Extract(html string) (*ExtractResult, error)
}
