package opensea

import (
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
)

var (
	ErrParsePrice = errors.New("parse opensea order price error")
)

type Client interface {
	// GetAssets returns the assets of contract with their open sell orders
	GetAssets(ctx bCtx.Ctx, contract domain.Address, tokenIds []domain.TokenId) (*AssetsResp, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	// BaseURL defaults to the public v1 api
	BaseURL string
}

type AssetsResp struct {
	Next     string  `json:"next"`
	Assets   []Asset `json:"assets"`
	Previous string  `json:"previous"`
}

type Asset struct {
	TokenId           domain.TokenId     `json:"token_id"`
	AssetContract     AssetContract      `json:"asset_contract"`
	SellOrders        []SellOrder        `json:"sell_orders"`
	SeaportSellOrders []SeaportSellOrder `json:"seaport_sell_orders"`
}

type AssetContract struct {
	Address domain.Address `json:"address"`
}

type OpenseaListingMaker struct {
	Address domain.Address `json:"address"`
}

// SellOrder is a wyvern order
type SellOrder struct {
	OrderHash      string              `json:"order_hash"`
	ExpirationTime int64               `json:"expiration_time"`
	ListingTime    int64               `json:"listing_time"`
	CurrentPrice   string              `json:"current_price"`
	Maker          OpenseaListingMaker `json:"maker"`
	PaymentToken   domain.Address      `json:"payment_token"`
	Side           int                 `json:"side"`
	SaleKind       int                 `json:"sale_kind"`
	Cancelled      bool                `json:"cancelled"`
	Finalized      bool                `json:"finalized"`
}

type OpenseaListingProtocolData struct {
	Parameters OpenseaListingParameters `json:"parameters"`
}

type OpenseaListingParameters struct {
	Consideration []OpenseaConsideration `json:"consideration"`
}

type OpenseaConsideration struct {
	ItemType        int            `json:"itemType"`
	ContractAddress domain.Address `json:"token"`
	StartAmount     string         `json:"startAmount"`
	EndAmount       string         `json:"endAmount"`
}

type SeaportSellOrder struct {
	OrderHash      string                     `json:"order_hash"`
	ExpirationTime int64                      `json:"expiration_time"`
	ListingTime    int64                      `json:"listing_time"`
	CurrentPrice   string                     `json:"current_price"`
	ProtocolData   OpenseaListingProtocolData `json:"protocol_data"`
	Maker          OpenseaListingMaker        `json:"maker"`
	Side           string                     `json:"side"`
	OrderType      string                     `json:"order_type"`
	Cancelled      bool                       `json:"cancelled"`
	Finalized      bool                       `json:"finalized"`
}

// PaymentToken is the currency of the first consideration item, the zero
// address for ether
func (o SeaportSellOrder) PaymentToken() domain.Address {
	if len(o.ProtocolData.Parameters.Consideration) == 0 {
		return domain.EmptyAddress
	}
	return o.ProtocolData.Parameters.Consideration[0].ContractAddress
}

// parseWei reads an integral wei amount. OpenSea sometimes formats it with a
// fraction or exponent.
func parseWei(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrParsePrice
	}
	if !d.Equal(d.Truncate(0)) || d.Sign() < 0 {
		return nil, ErrParsePrice
	}
	return d.BigInt(), nil
}
