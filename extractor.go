package urlmd

// UntitledTitle is used when a document has no usable title.
const UntitledTitle = "Untitled"

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the main content as HTML.
	// Boilerplate (scripts, navigation, headers, footers, asides) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the title and main content.
	// Implementations must not mutate shared state; every call works on
	// its own parsed copy of the document.
	Extract(html string) (*ExtractResult, error)
}

// Sanitizer strips unsafe or presentational markup from an HTML fragment.
type Sanitizer interface {
	Sanitize(html string) string
}
