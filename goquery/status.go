package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/urlmd"
)

// Ensure StatusParser implements urlmd.StatusParser at compile time.
var _ urlmd.StatusParser = (*StatusParser)(nil)

// StatusParser reads a status out of embed markup of the form
// <blockquote><p>body</p>&mdash; Name (@handle) <a>date</a></blockquote>.
type StatusParser struct{}

// NewStatusParser creates a new StatusParser.
func NewStatusParser() *StatusParser {
	return &StatusParser{}
}

// ParseStatus extracts the body paragraphs and author display name.
func (p *StatusParser) ParseStatus(embed *urlmd.StatusEmbed) (*urlmd.Status, error) {
	if embed == nil || strings.TrimSpace(embed.HTML) == "" {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "status embed has no markup")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(embed.HTML))
	if err != nil {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "failed to parse status markup: %v", err)
	}

	quote := doc.Find("blockquote").First()
	if quote.Length() == 0 {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "status markup has no blockquote")
	}

	var paragraphs []string
	quote.Find("p").Each(func(_ int, sel *goquery.Selection) {
		sel.Find("br").ReplaceWithHtml("\n")
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return nil, urlmd.Errorf(urlmd.EUPSTREAM, "status markup has no text")
	}

	author := strings.TrimSpace(embed.AuthorName)
	if author == "" {
		quote.Find("p").Remove()
		author = attributionName(quote.Text())
	}

	return &urlmd.Status{
		Author:    author,
		AuthorURL: embed.AuthorURL,
		Body:      strings.Join(paragraphs, "\n\n"),
		URL:       embed.URL,
	}, nil
}

// attributionName returns the display name from "— Name (@handle) date".
func attributionName(attribution string) string {
	name, _, ok := strings.Cut(attribution, " (@")
	if !ok {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(name), "—-"))
}
