package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/x-xyz/gallery/base/backoff"
	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/collection"
	"github.com/x-xyz/gallery/domain/globals"
	"github.com/x-xyz/gallery/domain/metadata"
	"github.com/x-xyz/gallery/service/gallery"
)

const maxRefreshRetries = 3

type StoreCfg struct {
	Registry domain.Address
	// Gallery is optional, the dataset describes the collection without it
	Gallery  gallery.Client
	Metadata metadata.Usecase
	// DatasetSource is a path or https url, empty for no local metadata
	DatasetSource string
}

type store struct {
	registry      domain.Address
	gallery       gallery.Client
	metadata      metadata.Usecase
	datasetSource string

	current atomic.Value

	mu          sync.Mutex
	subscribers []chan globals.Snapshot

	now        func() time.Time
	retryStart time.Duration
}

func NewStore(cfg *StoreCfg) globals.Store {
	return &store{
		registry:      cfg.Registry.ToLower(),
		gallery:       cfg.Gallery,
		metadata:      cfg.Metadata,
		datasetSource: cfg.DatasetSource,
		now:           time.Now,
		retryStart:    time.Second,
	}
}

func (s *store) Current() *globals.Snapshot {
	if snap, ok := s.current.Load().(*globals.Snapshot); ok {
		return snap
	}
	return nil
}

func (s *store) Refresh(c ctx.Ctx) (*globals.Snapshot, error) {
	snap := &globals.Snapshot{
		Source:    globals.SourceDataset,
		FetchedAt: s.now(),
	}

	records := []metadata.Record{}
	if s.datasetSource != "" {
		ds, err := s.metadata.LoadDataset(c, s.datasetSource)
		if err != nil {
			c.WithFields(log.Fields{
				"source": s.datasetSource,
				"err":    err,
			}).Error("metadata.LoadDataset failed")
			return nil, err
		}
		records = ds.Tokens
		snap.Collection = ds.Collection()
	}
	snap.Index = s.metadata.BuildIndex(s.registry, records)

	if s.gallery != nil {
		coll, err := s.gallery.GetCollection(c, s.registry)
		if err != nil {
			c.WithFields(log.Fields{
				"registry": s.registry,
				"err":      err,
			}).Warn("gallery.GetCollection failed, using dataset")
		} else {
			snap.Collection = coll
			snap.Source = globals.SourceBackend
		}
	}

	if snap.Collection == nil {
		snap.Collection = &collection.Collection{Address: s.registry}
	}

	s.current.Store(snap)
	s.publish(*snap)

	c.WithFields(log.Fields{
		"source": snap.Source,
		"tokens": len(snap.Index.TokenIds),
	}).Info("globals refreshed")

	return snap, nil
}

func (s *store) Subscribe() <-chan globals.Snapshot {
	ch := make(chan globals.Snapshot, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, ch)
	if snap := s.Current(); snap != nil {
		ch <- *snap
	}
	return ch
}

// publish never blocks. A subscriber that has not read the previous
// snapshot gets it replaced.
func (s *store) publish(snap globals.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// Run retries a failed refresh with backoff, giving up at the next tick. A
// non-positive interval disables periodic refresh and Run returns at once.
func (s *store) Run(c ctx.Ctx, interval time.Duration) {
	if interval <= 0 {
		c.WithField("interval", interval.String()).Warn("periodic refresh disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	b := backoff.NewExponential(s.retryStart, interval/2)
	for {
		select {
		case <-c.Done():
			return
		case <-ticker.C:
		}

		b.Reset()
		for {
			_, err := s.Refresh(c)
			if err == nil {
				break
			}
			c.WithFields(log.Fields{
				"attempts": b.Attempts(),
				"err":      err,
			}).Error("Refresh failed")
			if b.Attempts() >= maxRefreshRetries || b.Next() >= interval {
				break
			}
			if err := b.Wait(c); err != nil {
				return
			}
		}
	}
}
