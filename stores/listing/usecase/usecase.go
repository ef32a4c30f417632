package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/goroutine"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/keys"
	"github.com/x-xyz/gallery/domain/listing"
	"github.com/x-xyz/gallery/service/cache"
)

// errIncomplete keeps results missing a failed marketplace out of the cache
var errIncomplete = errors.New("some marketplaces failed")

type ListingUseCaseCfg struct {
	Marketplaces []listing.Marketplace
	// Cache is optional, results are not cached without it
	Cache cache.Service
}

type impl struct {
	marketplaces []listing.Marketplace
	cache        cache.Service
}

// NewListingUseCase shows the cheapest of the per-marketplace best listings
func NewListingUseCase(cfg *ListingUseCaseCfg) listing.Usecase {
	return &impl{
		marketplaces: cfg.Marketplaces,
		cache:        cfg.Cache,
	}
}

func (im *impl) GetBestListing(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId) (*listing.TokenListing, error) {
	res, err := im.GetBestListings(c, registry, []domain.TokenId{tokenId})
	if err != nil {
		return nil, err
	}
	return res[tokenId], nil
}

func (im *impl) GetBestListings(c ctx.Ctx, registry domain.Address, tokenIds []domain.TokenId) (map[domain.TokenId]*listing.TokenListing, error) {
	if im.cache == nil {
		res, _ := im.getBestListings(c, registry, tokenIds)
		return res, nil
	}

	ids := make([]string, len(tokenIds))
	for i, id := range tokenIds {
		ids[i] = string(id)
	}
	key := keys.CacheKey(keys.PfxBestListing, registry.ToLowerStr(), keys.SetKey(ids...))

	res := map[domain.TokenId]*listing.TokenListing{}
	var partial map[domain.TokenId]*listing.TokenListing
	err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		m, complete := im.getBestListings(c, registry, tokenIds)
		if !complete {
			partial = m
			return nil, errIncomplete
		}
		return &m, nil
	})
	if errors.Is(err, errIncomplete) {
		return partial, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"registry": registry,
			"err":      err,
		}).Warn("cache.GetByFunc failed")
		res, _ := im.getBestListings(c, registry, tokenIds)
		return res, nil
	}
	return res, nil
}

// getBestListings never fails, a failing marketplace is left out and
// complete is false
func (im *impl) getBestListings(c ctx.Ctx, registry domain.Address, tokenIds []domain.TokenId) (res map[domain.TokenId]*listing.TokenListing, complete bool) {
	perMarketplace := make([]map[domain.TokenId]*listing.TokenListing, len(im.marketplaces))
	succeeded := make([]bool, len(im.marketplaces))
	tasks := make([]func(), len(im.marketplaces))
	for i, m := range im.marketplaces {
		i, m := i, m
		tasks[i] = func() {
			start := time.Now()
			res, err := m.GetTokenListings(c, registry, tokenIds)
			if err != nil {
				c.WithFields(log.Fields{
					"source":   m.Source(),
					"registry": registry,
					"elapsed":  time.Since(start).String(),
					"err":      err,
				}).Warn("marketplace.GetTokenListings failed")
				return
			}
			perMarketplace[i] = res
			succeeded[i] = true
		}
	}
	for i, p := range goroutine.Fan(tasks...) {
		if p != nil {
			c.WithField("source", im.marketplaces[i].Source()).Warn("marketplace panicked, ignored")
		}
	}

	complete = true
	for _, ok := range succeeded {
		complete = complete && ok
	}

	res = make(map[domain.TokenId]*listing.TokenListing, len(tokenIds))
	for _, id := range tokenIds {
		candidates := make([]*listing.TokenListing, 0, len(perMarketplace))
		for _, m := range perMarketplace {
			if m != nil {
				candidates = append(candidates, m[id])
			}
		}
		res[id] = listing.Lowest(candidates...)
	}
	return res, complete
}
