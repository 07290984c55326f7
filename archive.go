package urlmd

import (
	"context"
	"time"
)

// ArchivedTitlePrefix marks titles derived from an archive snapshot.
const ArchivedTitlePrefix = "[Archived] "

// Snapshot is an archived copy of a page.
type Snapshot struct {
	URL         string // snapshot location
	OriginalURL string
	HTML        string
	Timestamp   time.Time
}

// Archive retrieves archived snapshots of pages.
type Archive interface {
	// Snapshot returns the most recent archived copy of url.
	// Returns ENOTFOUND if the archive holds no copy.
	Snapshot(ctx context.Context, url string) (*Snapshot, error)
}
