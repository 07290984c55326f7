package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urlmd"
)

// Ensure LoggingArchive implements urlmd.Archive.
var _ urlmd.Archive = (*LoggingArchive)(nil)

// LoggingArchive wraps an Archive with logging.
type LoggingArchive struct {
	next   urlmd.Archive
	logger *slog.Logger
}

// NewLoggingArchive creates a new LoggingArchive.
func NewLoggingArchive(next urlmd.Archive, logger *slog.Logger) *LoggingArchive {
	return &LoggingArchive{next: next, logger: logger}
}

// Snapshot logs the requested URL and the snapshot served.
func (a *LoggingArchive) Snapshot(ctx context.Context, url string) (snap *urlmd.Snapshot, err error) {
	defer func(begin time.Time) {
		var snapshotURL string
		if snap != nil {
			snapshotURL = snap.URL
		}
		a.logger.Info("archive snapshot",
			"url", url,
			"snapshot", snapshotURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Snapshot(ctx, url)
}
