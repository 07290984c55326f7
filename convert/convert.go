// Package convert turns URLs into Markdown results. It wires the fetching,
// extraction and rendering services of each source type and routes URLs
// between them.
package convert

import (
	"context"
	"log/slog"

	"github.com/fwojciec/urlmd"
)

// Ensure Dispatcher implements urlmd.Source at compile time.
var _ urlmd.Source = (*Dispatcher)(nil)

// Dispatcher classifies URLs and delegates to the matching Source.
type Dispatcher struct {
	Forum   urlmd.Source
	Status  urlmd.Source
	Generic urlmd.Source
}

// Convert routes rawURL by host. Unparsable URLs go to the generic source
// so its fetch reports the real error.
func (d *Dispatcher) Convert(ctx context.Context, rawURL string, opts urlmd.Options) (*urlmd.Result, error) {
	var src urlmd.Source
	switch urlmd.Classify(rawURL) {
	case urlmd.SourceForum:
		src = d.Forum
	case urlmd.SourceSocialStatus:
		src = d.Status
	default:
		src = d.Generic
	}

	result, err := src.Convert(ctx, rawURL, opts)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
