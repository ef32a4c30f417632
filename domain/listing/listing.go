package listing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/domain"
)

// UnsavedListingId marks listings built from marketplace orders that the
// backend has not persisted
const UnsavedListingId int64 = -1

const NativeDecimals = 18

const (
	SourceLooksrare      = "looksrare"
	SourceOpenseaWyvern  = "opensea-wyvern"
	SourceOpenseaSeaport = "opensea-seaport"
)

// TokenListing is one open sell order
type TokenListing struct {
	TokenListingId  int64          `json:"tokenListingId"`
	RegistryAddress domain.Address `json:"registryAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
	OffererAddress  domain.Address `json:"offererAddress"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         *time.Time     `json:"endDate"`
	IsValueNative   bool           `json:"isValueNative"`
	Value           domain.BigInt  `json:"value"`
	Source          string         `json:"source"`
	SourceId        string         `json:"sourceId"`
}

func TokenListingFromObject(obj decode.Object) (*TokenListing, error) {
	d := decode.New(obj)
	l := &TokenListing{
		TokenListingId:  d.Int("tokenListingId"),
		RegistryAddress: domain.Address(d.String("registryAddress")),
		TokenId:         domain.TokenId(d.String("tokenId")),
		OffererAddress:  domain.Address(d.String("offererAddress")),
		StartDate:       d.Time("startDate"),
		EndDate:         d.OptTime("endDate"),
		IsValueNative:   d.Bool("isValueNative"),
		Value:           domain.NewBigInt(d.BigInt("value")),
		Source:          d.String("source"),
		SourceId:        d.String("sourceId"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// DisplayValue scales the wei value by decimals for presentation
func (l TokenListing) DisplayValue(decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(l.Value.Int(), -decimals)
}

// IsActive reports whether the listing window contains t
func (l TokenListing) IsActive(t time.Time) bool {
	if t.Before(l.StartDate) {
		return false
	}
	return l.EndDate == nil || t.Before(*l.EndDate)
}

// Highest returns the listing with the largest value, the first one on ties
func Highest(listings []TokenListing) *TokenListing {
	var best *TokenListing
	for i := range listings {
		if best == nil || listings[i].Value.Cmp(best.Value) > 0 {
			best = &listings[i]
		}
	}
	return best
}

// Lowest returns the non-nil listing with the smallest value, the first one
// on ties
func Lowest(listings ...*TokenListing) *TokenListing {
	var best *TokenListing
	for _, l := range listings {
		if l == nil {
			continue
		}
		if best == nil || l.Value.Cmp(best.Value) < 0 {
			best = l
		}
	}
	return best
}

// Usecase merges the marketplaces into the listing shown for a token
type Usecase interface {
	GetBestListing(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId) (*TokenListing, error)
	GetBestListings(c ctx.Ctx, registry domain.Address, tokenIds []domain.TokenId) (map[domain.TokenId]*TokenListing, error)
}

// Marketplace returns the best open order per token of one marketplace
type Marketplace interface {
	Source() string
	GetTokenListing(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId) (*TokenListing, error)
	// GetTokenListings has a key for every requested id, nil when there is no order
	GetTokenListings(c ctx.Ctx, registry domain.Address, tokenIds []domain.TokenId) (map[domain.TokenId]*TokenListing, error)
}
