package looksrare

import (
	"fmt"
	"net/url"
	"strings"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/httpclient"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
)

const (
	v1Api      = "https://api.looksrare.org/api/v1"
	pageSize   = 100
	sortByLow  = "PRICE_ASC"
	validState = "VALID"
)

func NewClient(cfg *ClientCfg) Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = v1Api
	}
	return &client{
		http: httpclient.New(httpclient.Cfg{
			HttpClient: cfg.HttpClient,
			Timeout:    cfg.Timeout,
			Name:       "looksrare",
		}),
		baseURL: baseURL,
	}
}

type client struct {
	http    *httpclient.Client
	baseURL string
}

func (c *client) GetAskOrders(ctx bCtx.Ctx, collection domain.Address, tokenId domain.TokenId) ([]Order, error) {
	base, err := url.Parse(fmt.Sprintf("%s/orders", c.baseURL))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("isOrderAsk", "true")
	params.Add("collection", string(collection))
	params.Add("tokenId", string(tokenId))
	params.Add("status[]", validState)
	params.Add("pagination[first]", fmt.Sprint(pageSize))
	params.Add("sort", sortByLow)

	base.RawQuery = params.Encode()
	url := base.String()

	resp := OrdersResp{}
	if err := c.http.GetJSON(ctx, url, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("http.GetJSON failed")
		return nil, err
	}
	if !resp.Success {
		ctx.WithFields(log.Fields{
			"url":     url,
			"message": resp.Message,
		}).Error("looksrare not success")
		return nil, ErrNotSuccess
	}
	return resp.Data, nil
}
