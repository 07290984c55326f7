package urlmd

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown using ATX headings,
	// hyphen bullet markers and fenced code blocks.
	Convert(html string) (string, error)
}
