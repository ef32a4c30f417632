package globals

import (
	"time"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain/collection"
	"github.com/x-xyz/gallery/domain/metadata"
)

const (
	SourceBackend = "backend"
	SourceDataset = "dataset"
)

// Snapshot is replaced as a whole on refresh and never mutated
type Snapshot struct {
	Collection *collection.Collection
	Index      *metadata.Index
	Source     string
	FetchedAt  time.Time
}

type Store interface {
	// Current is nil before the first successful Refresh
	Current() *Snapshot
	Refresh(c ctx.Ctx) (*Snapshot, error)
	// Subscribe receives the latest snapshot, stale ones are dropped
	Subscribe() <-chan Snapshot
	// Run refreshes every interval until c is done, not at all when interval <= 0
	Run(c ctx.Ctx, interval time.Duration)
}
