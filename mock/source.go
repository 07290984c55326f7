package mock

import (
	"context"

	"github.com/fwojciec/urlmd"
)

var _ urlmd.Source = (*Source)(nil)

// Source is a mock implementation of urlmd.Source.
type Source struct {
	ConvertFn func(ctx context.Context, rawURL string, opts urlmd.Options) (*urlmd.Result, error)
}

func (s *Source) Convert(ctx context.Context, rawURL string, opts urlmd.Options) (*urlmd.Result, error) {
	return s.ConvertFn(ctx, rawURL, opts)
}
