package gallery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/base/httpclient"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/collection"
	"github.com/x-xyz/gallery/domain/endpoint"
	"github.com/x-xyz/gallery/domain/listing"
	"github.com/x-xyz/gallery/domain/token"
	"github.com/x-xyz/gallery/domain/user"
)

func NewClient(cfg *ClientCfg) Client {
	header := http.Header{}
	if cfg.ApiKey != "" {
		header.Set(apiKeyKey, cfg.ApiKey)
	}
	return &client{
		http: httpclient.New(httpclient.Cfg{
			HttpClient: cfg.HttpClient,
			Timeout:    cfg.Timeout,
			Header:     header,
			Name:       "gallery",
		}),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

type client struct {
	http    *httpclient.Client
	baseURL string
}

func (c *client) get(ctx bCtx.Ctx, req endpoint.GetRequest) (interface{}, error) {
	u := c.baseURL + "/" + req.Path()
	if q := req.Query(); len(q) > 0 {
		u += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil)
}

func (c *client) post(ctx bCtx.Ctx, req endpoint.PostRequest) (interface{}, error) {
	body, err := json.Marshal(req.ToPayload())
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}
	return c.do(ctx, http.MethodPost, c.baseURL+"/"+req.Path(), body)
}

// do returns the decoded body, nil for an empty one
func (c *client) do(ctx bCtx.Ctx, method, u string, body []byte) (interface{}, error) {
	data, err := c.http.Do(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	payload, err := decode.Parse(data)
	if err != nil {
		ctx.WithFields(log.Fields{"url": u, "err": err}).Error("decode.Parse failed")
		return nil, err
	}
	return payload, nil
}

func parse[T any](ctx bCtx.Ctx, payload interface{}, from func(interface{}) (*T, error)) (*T, error) {
	res, err := from(payload)
	if err != nil {
		ctx.WithField("err", err).Error("parse response failed")
		return nil, err
	}
	return res, nil
}

func (c *client) tokenRequest(registry domain.Address, tokenId domain.TokenId) (*endpoint.TokenRequest, error) {
	return endpoint.NewTokenRequest(registry, tokenId)
}

func (c *client) GetCollection(ctx bCtx.Ctx, registry domain.Address) (*collection.Collection, error) {
	req, err := endpoint.NewGetCollectionRequest(registry)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetCollectionResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return &res.Collection, nil
}

func (c *client) GetCollectionToken(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) (*token.CollectionToken, error) {
	tr, err := c.tokenRequest(registry, tokenId)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, endpoint.GetCollectionTokenRequest{TokenRequest: *tr})
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetCollectionTokenResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return &res.Token, nil
}

func (c *client) GetGalleryToken(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) (*token.GalleryToken, error) {
	tr, err := c.tokenRequest(registry, tokenId)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, endpoint.GetGalleryTokenRequest{TokenRequest: *tr})
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetGalleryTokenResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return &res.GalleryToken, nil
}

func (c *client) GetCollectionAttributes(ctx bCtx.Ctx, registry domain.Address) ([]collection.CollectionAttribute, error) {
	req, err := endpoint.NewGetCollectionAttributesRequest(registry)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetCollectionAttributesResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.Attributes, nil
}

func (c *client) GetTokensByOwner(ctx bCtx.Ctx, registry, owner domain.Address) ([]token.CollectionToken, error) {
	req, err := endpoint.NewGetTokensByOwnerRequest(registry, owner)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetTokensByOwnerResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.Tokens, nil
}

func (c *client) GetTokenTransfers(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) ([]token.TokenTransfer, error) {
	tr, err := c.tokenRequest(registry, tokenId)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, endpoint.GetTokenTransfersRequest{TokenRequest: *tr})
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetTransfersResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.TokenTransfers, nil
}

func (c *client) GetTokenOwnerships(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) ([]token.TokenOwnership, error) {
	tr, err := c.tokenRequest(registry, tokenId)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, endpoint.GetTokenOwnershipsRequest{TokenRequest: *tr})
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetTokenOwnershipsResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.TokenOwnerships, nil
}

func (c *client) GetTokenAirdrops(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) ([]token.Airdrop, error) {
	tr, err := c.tokenRequest(registry, tokenId)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, endpoint.GetTokenAirdropsRequest{TokenRequest: *tr})
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetTokenAirdropsResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.Airdrops, nil
}

func (c *client) GetTokenListings(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) ([]listing.TokenListing, error) {
	tr, err := c.tokenRequest(registry, tokenId)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, endpoint.GetTokenListingsRequest{TokenRequest: *tr})
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetTokenListingsResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.TokenListings, nil
}

func (c *client) QueryCollectionTokens(ctx bCtx.Ctx, registry domain.Address, query endpoint.TokenQuery) ([]token.GalleryToken, error) {
	req, err := endpoint.NewQueryCollectionTokensRequest(registry, query)
	if err != nil {
		return nil, err
	}
	payload, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.QueryCollectionTokensResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.GalleryTokens, nil
}

func (c *client) SubmitTreasureHunt(ctx bCtx.Ctx, req *endpoint.SubmitTreasureHuntRequest) error {
	_, err := c.post(ctx, req)
	return err
}

func (c *client) CreateTokenCustomization(ctx bCtx.Ctx, req *endpoint.CreateTokenCustomizationRequest) (*token.TokenCustomization, error) {
	payload, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.CreateTokenCustomizationResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return &res.TokenCustomization, nil
}

func (c *client) GetGalleryUser(ctx bCtx.Ctx, registry, userAddress domain.Address) (*user.GalleryUser, error) {
	req, err := endpoint.NewGetGalleryUserRequest(registry, userAddress)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetGalleryUserResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *client) QueryCollectionUsers(ctx bCtx.Ctx, registry domain.Address, query endpoint.UserQuery) (*endpoint.ListResponse[user.GalleryUserRow], error) {
	req, err := endpoint.NewQueryCollectionUsersRequest(registry, query)
	if err != nil {
		return nil, err
	}
	payload, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.QueryCollectionUsersResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return &res.ListResponse, nil
}

func (c *client) FollowUser(ctx bCtx.Ctx, req *endpoint.FollowUserRequest) error {
	_, err := c.post(ctx, req)
	return err
}

func (c *client) GetCollectionTransfers(ctx bCtx.Ctx, registry domain.Address, userAddress *domain.Address, page endpoint.Pagination) ([]token.TokenTransfer, error) {
	req, err := endpoint.NewGetCollectionTransfersRequest(registry, userAddress, page)
	if err != nil {
		return nil, err
	}
	payload, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetTransfersResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.TokenTransfers, nil
}

func (c *client) GetCollectionOverlapSummaries(ctx bCtx.Ctx, registry domain.Address) ([]collection.CollectionOverlapSummary, error) {
	req, err := endpoint.NewGetCollectionOverlapSummariesRequest(registry)
	if err != nil {
		return nil, err
	}
	return c.overlapSummaries(ctx, req)
}

func (c *client) GetSuperCollectionOverlapSummaries(ctx bCtx.Ctx, superCollectionName string) ([]collection.CollectionOverlapSummary, error) {
	req, err := endpoint.NewGetSuperCollectionOverlapSummariesRequest(superCollectionName)
	if err != nil {
		return nil, err
	}
	return c.overlapSummaries(ctx, req)
}

func (c *client) overlapSummaries(ctx bCtx.Ctx, req *endpoint.GetOverlapSummariesRequest) ([]collection.CollectionOverlapSummary, error) {
	payload, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetOverlapSummariesResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return res.CollectionOverlapSummaries, nil
}

func (c *client) GetCollectionOverlaps(ctx bCtx.Ctx, registry, other domain.Address, page endpoint.Pagination) (*endpoint.ListResponse[collection.CollectionOverlap], error) {
	req, err := endpoint.NewGetCollectionOverlapsRequest(registry, other, page)
	if err != nil {
		return nil, err
	}
	return c.overlaps(ctx, req)
}

func (c *client) GetSuperCollectionOverlaps(ctx bCtx.Ctx, superCollectionName string, other domain.Address, page endpoint.Pagination) (*endpoint.ListResponse[collection.CollectionOverlap], error) {
	req, err := endpoint.NewGetSuperCollectionOverlapsRequest(superCollectionName, other, page)
	if err != nil {
		return nil, err
	}
	return c.overlaps(ctx, req)
}

func (c *client) overlaps(ctx bCtx.Ctx, req *endpoint.GetOverlapsRequest) (*endpoint.ListResponse[collection.CollectionOverlap], error) {
	payload, err := c.get(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := parse(ctx, payload, endpoint.GetOverlapsResponseFromPayload)
	if err != nil {
		return nil, err
	}
	return &res.ListResponse, nil
}
