package opensea

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/httpclient"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
)

const (
	bearerKey   = "X-API-KEY"
	v1Api       = "https://api.opensea.io/api/v1"
	assetsLimit = 50
)

func NewClient(cfg *ClientCfg) Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = v1Api
	}
	header := http.Header{}
	if cfg.Apikey != "" {
		header.Set(bearerKey, cfg.Apikey)
	}
	return &client{
		http: httpclient.New(httpclient.Cfg{
			HttpClient: cfg.HttpClient,
			Timeout:    cfg.Timeout,
			Header:     header,
			Name:       "opensea",
		}),
		baseURL: baseURL,
	}
}

type client struct {
	http    *httpclient.Client
	baseURL string
}

func (c *client) GetAssets(ctx bCtx.Ctx, contract domain.Address, tokenIds []domain.TokenId) (*AssetsResp, error) {
	base, err := url.Parse(fmt.Sprintf("%s/assets", c.baseURL))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	for _, id := range tokenIds {
		params.Add("token_ids", string(id))
	}
	params.Add("asset_contract_address", contract.ToLowerStr())
	params.Add("include_orders", "true")
	params.Add("limit", fmt.Sprint(assetsLimit))

	base.RawQuery = params.Encode()
	url := base.String()

	resp := AssetsResp{}
	if err := c.http.GetJSON(ctx, url, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("http.GetJSON failed")
		return nil, err
	}

	return &resp, nil
}
