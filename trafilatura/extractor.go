// Package trafilatura offers an alternative urlmd.Extractor built on
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/urlmd"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements urlmd.Extractor at compile time.
var _ urlmd.Extractor = (*Extractor)(nil)

// Extractor runs trafilatura with its readability and dom-distiller
// fallbacks enabled.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Extract returns the main content node rendered as HTML.
func (e *Extractor) Extract(rawHTML string) (*urlmd.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, urlmd.Errorf(urlmd.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "trafilatura failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, urlmd.Errorf(urlmd.EINTERNAL, "failed to render content: %v", err)
		}
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = urlmd.UntitledTitle
	}

	return &urlmd.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
