// Package marketplace turns a per-marketplace order adapter into a
// listing.Marketplace. Token ids are split into batches the upstream
// accepts and the highest open order per token is kept.
package marketplace

import (
	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/base/metrics"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
)

var (
	mtr = metrics.New("marketplace")
)

// Adapter fetches and normalizes the valid sell orders of one marketplace
type Adapter interface {
	Source() string
	// BatchSize is the max number of token ids per upstream request
	BatchSize() int
	// FetchListings issues one upstream request for tokenIds
	FetchListings(ctx bCtx.Ctx, registry domain.Address, tokenIds []domain.TokenId) (map[domain.TokenId][]listing.TokenListing, error)
}

type Option func(*Aggregator)

// WithConcurrency fetches up to n batches at once. n <= 1 is sequential.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		a.concurrency = n
	}
}

type Aggregator struct {
	adapter     Adapter
	concurrency int
}

func NewAggregator(adapter Adapter, opts ...Option) listing.Marketplace {
	a := &Aggregator{adapter: adapter, concurrency: 1}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Chunk splits items into consecutive slices of at most size items
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 1
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

func (a *Aggregator) Source() string {
	return a.adapter.Source()
}

func (a *Aggregator) GetTokenListing(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) (*listing.TokenListing, error) {
	res, err := a.GetTokenListings(ctx, registry, []domain.TokenId{tokenId})
	if err != nil {
		return nil, err
	}
	return res[tokenId], nil
}

func (a *Aggregator) GetTokenListings(ctx bCtx.Ctx, registry domain.Address, tokenIds []domain.TokenId) (map[domain.TokenId]*listing.TokenListing, error) {
	defer mtr.BumpTime("listings.time", "source", a.Source()).End()

	chunks := Chunk(tokenIds, a.adapter.BatchSize())
	var (
		fetched []map[domain.TokenId][]listing.TokenListing
		err     error
	)
	if a.concurrency > 1 && len(chunks) > 1 {
		fetched, err = a.fetchConcurrently(ctx, registry, chunks)
	} else {
		fetched, err = a.fetchSequentially(ctx, registry, chunks)
	}
	if err != nil {
		mtr.BumpSum("listings.err", 1, "source", a.Source())
		return nil, err
	}

	orders := make(map[domain.TokenId][]listing.TokenListing, len(tokenIds))
	for _, m := range fetched {
		for id, ls := range m {
			orders[id] = append(orders[id], ls...)
		}
	}

	res := make(map[domain.TokenId]*listing.TokenListing, len(tokenIds))
	for _, id := range tokenIds {
		res[id] = listing.Highest(orders[id])
	}
	return res, nil
}

func (a *Aggregator) fetchSequentially(ctx bCtx.Ctx, registry domain.Address, chunks [][]domain.TokenId) ([]map[domain.TokenId][]listing.TokenListing, error) {
	fetched := make([]map[domain.TokenId][]listing.TokenListing, 0, len(chunks))
	for _, chunk := range chunks {
		m, err := a.adapter.FetchListings(ctx, registry, chunk)
		if err != nil {
			ctx.WithFields(log.Fields{
				"source":   a.Source(),
				"registry": registry,
				"tokenIds": chunk,
				"err":      err,
			}).Error("adapter.FetchListings failed")
			return nil, err
		}
		fetched = append(fetched, m)
	}
	return fetched, nil
}

func (a *Aggregator) fetchConcurrently(ctx bCtx.Ctx, registry domain.Address, chunks [][]domain.TokenId) ([]map[domain.TokenId][]listing.TokenListing, error) {
	b := goroutines.NewBatch(a.concurrency, goroutines.WithBatchSize(len(chunks)))
	defer b.Close()
	for i := range chunks {
		chunk := chunks[i]
		b.Queue(func() (interface{}, error) {
			return a.adapter.FetchListings(ctx, registry, chunk)
		})
	}
	b.QueueComplete()

	var firstErr error
	fetched := make([]map[domain.TokenId][]listing.TokenListing, 0, len(chunks))
	for ret := range b.Results() {
		if ret.Error() != nil {
			if firstErr == nil {
				firstErr = ret.Error()
			}
			continue
		}
		fetched = append(fetched, ret.Value().(map[domain.TokenId][]listing.TokenListing))
	}
	if firstErr != nil {
		ctx.WithFields(log.Fields{
			"source":   a.Source(),
			"registry": registry,
			"err":      firstErr,
		}).Error("adapter.FetchListings failed")
		return nil, firstErr
	}
	return fetched, nil
}
