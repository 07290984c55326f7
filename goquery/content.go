// Package goquery implements document extraction on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/urlmd"
)

// Ensure ContentExtractor implements urlmd.Extractor at compile time.
var _ urlmd.Extractor = (*ContentExtractor)(nil)

// ContentSelectors lists content root candidates in priority order.
// Semantic containers come first and the document body last.
var ContentSelectors = []string{
	"main",
	"article",
	"[role=main]",
	".post-content",
	".entry-content",
	".article-content",
	".content",
	"#content",
	"#main",
	"body",
}

// NoiseSelector matches elements removed before the content root is chosen.
const NoiseSelector = "script, style, nav, footer, header, aside"

// ContentExtractor picks a title and a main content element using a fixed
// selector priority list.
type ContentExtractor struct {
	selectors []string
}

// NewContentExtractor creates a ContentExtractor using ContentSelectors.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{selectors: ContentSelectors}
}

// Extract parses html into a fresh document, so the caller's input is
// never modified, and returns the inner HTML of the content root.
func (e *ContentExtractor) Extract(html string) (*urlmd.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, urlmd.Errorf(urlmd.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, urlmd.Errorf(urlmd.EINVALID, "failed to parse HTML: %v", err)
	}

	// Title first: <h1> may live inside a <header> that is about to go.
	title := documentTitle(doc)

	doc.Find(NoiseSelector).Remove()

	content, err := e.contentRoot(doc).Html()
	if err != nil {
		return nil, urlmd.Errorf(urlmd.EINTERNAL, "failed to render content: %v", err)
	}

	return &urlmd.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(content),
	}, nil
}

func documentTitle(doc *goquery.Document) string {
	if t := firstText(doc, "title"); t != "" {
		return t
	}
	if t := firstText(doc, "h1"); t != "" {
		return t
	}
	return urlmd.UntitledTitle
}

func firstText(doc *goquery.Document, selector string) string {
	var text string
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text = strings.TrimSpace(sel.Text())
		return text == ""
	})
	return text
}

func (e *ContentExtractor) contentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range e.selectors {
		var root *goquery.Selection
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if strings.TrimSpace(sel.Text()) != "" {
				root = sel
				return false
			}
			return true
		})
		if root != nil {
			return root
		}
	}
	return doc.Find("body").First()
}
