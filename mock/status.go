package mock

import (
	"context"

	"github.com/fwojciec/urlmd"
)

var _ urlmd.StatusService = (*StatusService)(nil)

// StatusService is a mock implementation of urlmd.StatusService.
type StatusService struct {
	FetchStatusFn func(ctx context.Context, statusURL string) (*urlmd.StatusEmbed, error)
}

func (s *StatusService) FetchStatus(ctx context.Context, statusURL string) (*urlmd.StatusEmbed, error) {
	return s.FetchStatusFn(ctx, statusURL)
}

var _ urlmd.StatusParser = (*StatusParser)(nil)

// StatusParser is a mock implementation of urlmd.StatusParser.
type StatusParser struct {
	ParseStatusFn func(embed *urlmd.StatusEmbed) (*urlmd.Status, error)
}

func (p *StatusParser) ParseStatus(embed *urlmd.StatusEmbed) (*urlmd.Status, error) {
	return p.ParseStatusFn(embed)
}
