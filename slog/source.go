package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urlmd"
	"github.com/google/uuid"
)

// Ensure LoggingSource implements urlmd.Source.
var _ urlmd.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source and tags every conversion with an id.
type LoggingSource struct {
	next   urlmd.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next urlmd.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Convert logs the outcome of a conversion.
func (s *LoggingSource) Convert(ctx context.Context, rawURL string, opts urlmd.Options) (result *urlmd.Result, err error) {
	id := uuid.New().String()
	defer func(begin time.Time) {
		attrs := []any{
			"conversion", id,
			"url", rawURL,
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs,
				"sourceType", result.SourceType,
				"bytes", len(result.Content),
			)
		}
		if err != nil {
			attrs = append(attrs, "code", urlmd.ErrorCode(err), "err", err)
		}
		s.logger.Info("convert", attrs...)
	}(time.Now())
	return s.next.Convert(ctx, rawURL, opts)
}
