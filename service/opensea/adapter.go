package opensea

import (
	"time"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
)

const (
	Source    = "opensea"
	BatchSize = 30

	wyvernSideSell      = 1
	wyvernSaleKindFixed = 0
	seaportSideAsk      = "ask"
	seaportOrderBasic   = "basic"
)

// Adapter normalizes the wyvern and seaport sell orders of assets
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
	resp, err := a.client.GetAssets(ctx, registry, tokenIds)
	if err != nil {
		return nil, err
	}

	res := make(map[domain.TokenId][]listing.TokenListing, len(resp.Assets))
	for _, asset := range resp.Assets {
		for _, o := range asset.SellOrders {
			if l, ok := fromSellOrder(ctx, registry, asset.TokenId, o); ok {
				res[asset.TokenId] = append(res[asset.TokenId], l)
			}
		}
		for _, o := range asset.SeaportSellOrders {
			if l, ok := fromSeaportSellOrder(ctx, registry, asset.TokenId, o); ok {
				res[asset.TokenId] = append(res[asset.TokenId], l)
			}
		}
	}
	return res, nil
}

func fromSellOrder(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId, o SellOrder) (listing.TokenListing, bool) {
	if o.Side != wyvernSideSell || o.SaleKind != wyvernSaleKindFixed || o.Cancelled || o.Finalized {
		return listing.TokenListing{}, false
	}
	value, err := parseWei(o.CurrentPrice)
	if err != nil {
		ctx.WithFields(log.Fields{"orderHash": o.OrderHash, "price": o.CurrentPrice}).Warn("skip wyvern order")
		return listing.TokenListing{}, false
	}
	return listing.TokenListing{
		TokenListingId:  listing.UnsavedListingId,
		RegistryAddress: registry,
		TokenId:         tokenId,
		OffererAddress:  o.Maker.Address.ToLower(),
		StartDate:       time.Unix(o.ListingTime, 0).UTC(),
		EndDate:         expiration(o.ExpirationTime),
		IsValueNative:   o.PaymentToken.IsZero(),
		Value:           domain.NewBigInt(value),
		Source:          listing.SourceOpenseaWyvern,
		SourceId:        o.OrderHash,
	}, true
}

func fromSeaportSellOrder(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId, o SeaportSellOrder) (listing.TokenListing, bool) {
	if o.Side != seaportSideAsk || o.Cancelled || o.Finalized {
		return listing.TokenListing{}, false
	}
	if o.OrderType != "" && o.OrderType != seaportOrderBasic {
		return listing.TokenListing{}, false
	}
	value, err := parseWei(o.CurrentPrice)
	if err != nil {
		ctx.WithFields(log.Fields{"orderHash": o.OrderHash, "price": o.CurrentPrice}).Warn("skip seaport order")
		return listing.TokenListing{}, false
	}
	return listing.TokenListing{
		TokenListingId:  listing.UnsavedListingId,
		RegistryAddress: registry,
		TokenId:         tokenId,
		OffererAddress:  o.Maker.Address.ToLower(),
		StartDate:       time.Unix(o.ListingTime, 0).UTC(),
		EndDate:         expiration(o.ExpirationTime),
		IsValueNative:   o.PaymentToken().IsZero(),
		Value:           domain.NewBigInt(value),
		Source:          listing.SourceOpenseaSeaport,
		SourceId:        o.OrderHash,
	}, true
}

func expiration(unix int64) *time.Time {
	if unix <= 0 {
		return nil
	}
	t := time.Unix(unix, 0).UTC()
	return &t
}
