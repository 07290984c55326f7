package mock

import (
	"context"

	"github.com/fwojciec/urlmd"
)

var _ urlmd.Archive = (*Archive)(nil)

// Archive is a mock implementation of urlmd.Archive.
type Archive struct {
	SnapshotFn func(ctx context.Context, url string) (*urlmd.Snapshot, error)
}

func (a *Archive) Snapshot(ctx context.Context, url string) (*urlmd.Snapshot, error) {
	return a.SnapshotFn(ctx, url)
}
