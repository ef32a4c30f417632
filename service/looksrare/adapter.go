package looksrare

import (
	"math/big"
	"time"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
)

const (
	Source = "looksrare"
	// the orders endpoint filters a single tokenId
	BatchSize = 1

	// LooksRare settles ether asks in WETH
	WethAddress = domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
)

type Adapter struct {
	client Client
}

func NewAdapter(client Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Source() string {
	return Source
}

func (a *Adapter) BatchSize() int {
	return BatchSize
}

func (a *Adapter) FetchListings(ctx bCtx.Ctx, registry domain.Address, tokenIds []domain.TokenId) (map[domain.TokenId][]listing.TokenListing, error) {
	res := make(map[domain.TokenId][]listing.TokenListing, len(tokenIds))
	for _, tokenId := range tokenIds {
		orders, err := a.client.GetAskOrders(ctx, registry, tokenId)
		if err != nil {
			return nil, err
		}
		for _, o := range orders {
			if l, ok := toListing(ctx, registry, tokenId, o); ok {
				res[tokenId] = append(res[tokenId], l)
			}
		}
	}
	return res, nil
}

func toListing(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId, o Order) (listing.TokenListing, bool) {
	if !o.IsOrderAsk || o.Status != validState {
		return listing.TokenListing{}, false
	}
	value, ok := new(big.Int).SetString(o.Price, 10)
	if !ok || value.Sign() < 0 {
		ctx.WithFields(log.Fields{"hash": o.Hash, "price": o.Price}).Warn("skip looksrare order")
		return listing.TokenListing{}, false
	}
	var endDate *time.Time
	if o.EndTime > 0 {
		t := time.Unix(o.EndTime, 0).UTC()
		endDate = &t
	}
	return listing.TokenListing{
		TokenListingId:  listing.UnsavedListingId,
		RegistryAddress: registry,
		TokenId:         tokenId,
		OffererAddress:  o.Signer.ToLower(),
		StartDate:       time.Unix(o.StartTime, 0).UTC(),
		EndDate:         endDate,
		IsValueNative:   o.CurrencyAddress.Equals(WethAddress) || o.CurrencyAddress.IsZero(),
		Value:           domain.NewBigInt(value),
		Source:          listing.SourceLooksrare,
		SourceId:        o.Hash,
	}, true
}
