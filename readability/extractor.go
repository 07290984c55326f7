// Package readability offers an alternative urlmd.Extractor built on
// github.com/go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/urlmd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements urlmd.Extractor at compile time.
var _ urlmd.Extractor = (*Extractor)(nil)

// Extractor scores the document with the Readability algorithm.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the highest scoring content block and its title.
func (e *Extractor) Extract(rawHTML string) (*urlmd.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, urlmd.Errorf(urlmd.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "readability failed: %v", err)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = urlmd.UntitledTitle
	}

	return &urlmd.ExtractResult{
		Title:       title,
		ContentHTML: article.Content,
	}, nil
}
