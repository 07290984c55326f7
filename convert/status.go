package convert

import (
	"context"

	"github.com/fwojciec/urlmd"
)

// Ensure StatusSource implements urlmd.Source at compile time.
var _ urlmd.Source = (*StatusSource)(nil)

// StatusSource converts social-media status pages.
type StatusSource struct {
	Statuses urlmd.StatusService
	Parser   urlmd.StatusParser
}

// Convert renders the status at rawURL. The URL line always carries the
// requested URL.
func (s *StatusSource) Convert(ctx context.Context, rawURL string, _ urlmd.Options) (*urlmd.Result, error) {
	embed, err := s.Statuses.FetchStatus(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	status, err := s.Parser.ParseStatus(embed)
	if err != nil {
		return nil, err
	}

	status.Author = urlmd.NormalizeText(status.Author)
	status.Body = urlmd.NormalizeText(status.Body)
	status.URL = rawURL

	return &urlmd.Result{
		Title:      urlmd.StatusTitle(status),
		Content:    urlmd.RenderStatus(status),
		SourceType: urlmd.SourceSocialStatus,
	}, nil
}
