package looksrare

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
)

var (
	ErrNotSuccess = errors.New("looksrare response not successful")
)

type Client interface {
	// GetAskOrders returns the valid asks of one token, cheapest first
	GetAskOrders(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId) ([]Order, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseURL    string
}

type OrdersResp struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Data    []Order `json:"data"`
}

type Order struct {
	Hash              string         `json:"hash"`
	CollectionAddress domain.Address `json:"collectionAddress"`
	TokenId           domain.TokenId `json:"tokenId"`
	IsOrderAsk        bool           `json:"isOrderAsk"`
	Signer            domain.Address `json:"signer"`
	Price             string         `json:"price"`
	StartTime         int64          `json:"startTime"`
	EndTime           int64          `json:"endTime"`
	CurrencyAddress   domain.Address `json:"currencyAddress"`
	Status            string         `json:"status"`
}
