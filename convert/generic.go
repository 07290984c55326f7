package convert

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/fwojciec/urlmd"
)

// Ensure GenericSource implements urlmd.Source at compile time.
var _ urlmd.Source = (*GenericSource)(nil)

// DefaultMinContentLength is the number of non-space characters below
// which extracted Markdown counts as thin.
const DefaultMinContentLength = 200

// GenericSource converts arbitrary HTML documents.
type GenericSource struct {
	Fetcher   urlmd.Fetcher
	Extractor urlmd.Extractor
	Converter urlmd.Converter

	// Sanitizer, when set, cleans the content fragment before conversion.
	Sanitizer urlmd.Sanitizer

	// Archive serves snapshots when Options.EnableArchiveFallback is set.
	Archive urlmd.Archive

	// MinContentLength overrides DefaultMinContentLength when positive.
	MinContentLength int

	Logger *slog.Logger
}

// Convert fetches and extracts rawURL. With archive fallback enabled, a
// failed fetch or thin content is retried against an archived snapshot;
// if the archive cannot help, or only yields thin content in place of a
// successful fetch, the direct outcome is returned unchanged.
func (s *GenericSource) Convert(ctx context.Context, rawURL string, opts urlmd.Options) (*urlmd.Result, error) {
	result, err := s.direct(ctx, rawURL)
	if !opts.EnableArchiveFallback || s.Archive == nil {
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	if err == nil && !s.thin(result.Content) {
		return result, nil
	}

	logger := loggerOrDiscard(s.Logger)
	archived, archiveErr := s.archived(ctx, rawURL)
	if archiveErr != nil {
		logger.Warn("archive fallback failed",
			"url", rawURL,
			"err", archiveErr,
		)
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	if err == nil && s.thin(archived.Content) {
		logger.Debug("archived snapshot is also thin, keeping direct result", "url", rawURL)
		return result, nil
	}

	logger.Debug("using archived snapshot", "url", rawURL, "direct_err", err)
	return archived, nil
}

func (s *GenericSource) direct(ctx context.Context, rawURL string) (*urlmd.Result, error) {
	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return s.render(html, "")
}

func (s *GenericSource) archived(ctx context.Context, rawURL string) (*urlmd.Result, error) {
	snap, err := s.Archive.Snapshot(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return s.render(snap.HTML, urlmd.ArchivedTitlePrefix)
}

func (s *GenericSource) render(html, titlePrefix string) (*urlmd.Result, error) {
	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	fragment := extracted.ContentHTML
	if s.Sanitizer != nil {
		fragment = s.Sanitizer.Sanitize(fragment)
	}

	content, err := s.Converter.Convert(fragment)
	if err != nil {
		return nil, err
	}

	return &urlmd.Result{
		Title:      titlePrefix + urlmd.NormalizeText(extracted.Title),
		Content:    content,
		SourceType: urlmd.SourceGeneric,
	}, nil
}

func (s *GenericSource) thin(content string) bool {
	limit := s.MinContentLength
	if limit <= 0 {
		limit = DefaultMinContentLength
	}
	n := 0
	for _, r := range content {
		if !unicode.IsSpace(r) {
			n++
			if n >= limit {
				return false
			}
		}
	}
	return true
}
