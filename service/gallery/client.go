package gallery

import (
	"net/http"
	"time"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/collection"
	"github.com/x-xyz/gallery/domain/endpoint"
	"github.com/x-xyz/gallery/domain/listing"
	"github.com/x-xyz/gallery/domain/token"
	"github.com/x-xyz/gallery/domain/user"
)

const apiKeyKey = "X-API-KEY"

// Client is the gallery backend. Each method issues exactly one request.
type Client interface {
	GetCollection(ctx bCtx.Ctx, registry domain.Address) (*collection.Collection, error)
	GetCollectionToken(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) (*token.CollectionToken, error)
	GetGalleryToken(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) (*token.GalleryToken, error)
	GetCollectionAttributes(ctx bCtx.Ctx, registry domain.Address) ([]collection.CollectionAttribute, error)
	GetTokensByOwner(ctx bCtx.Ctx, registry, owner domain.Address) ([]token.CollectionToken, error)
	GetTokenTransfers(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) ([]token.TokenTransfer, error)
	GetTokenOwnerships(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) ([]token.TokenOwnership, error)
	GetTokenAirdrops(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) ([]token.Airdrop, error)
	GetTokenListings(ctx bCtx.Ctx, registry domain.Address, tokenId domain.TokenId) ([]listing.TokenListing, error)
	QueryCollectionTokens(ctx bCtx.Ctx, registry domain.Address, query endpoint.TokenQuery) ([]token.GalleryToken, error)
	SubmitTreasureHunt(ctx bCtx.Ctx, req *endpoint.SubmitTreasureHuntRequest) error
	CreateTokenCustomization(ctx bCtx.Ctx, req *endpoint.CreateTokenCustomizationRequest) (*token.TokenCustomization, error)
	GetGalleryUser(ctx bCtx.Ctx, registry, userAddress domain.Address) (*user.GalleryUser, error)
	QueryCollectionUsers(ctx bCtx.Ctx, registry domain.Address, query endpoint.UserQuery) (*endpoint.ListResponse[user.GalleryUserRow], error)
	FollowUser(ctx bCtx.Ctx, req *endpoint.FollowUserRequest) error
	GetCollectionTransfers(ctx bCtx.Ctx, registry domain.Address, userAddress *domain.Address, page endpoint.Pagination) ([]token.TokenTransfer, error)
	GetCollectionOverlapSummaries(ctx bCtx.Ctx, registry domain.Address) ([]collection.CollectionOverlapSummary, error)
	GetCollectionOverlaps(ctx bCtx.Ctx, registry, other domain.Address, page endpoint.Pagination) (*endpoint.ListResponse[collection.CollectionOverlap], error)
	GetSuperCollectionOverlapSummaries(ctx bCtx.Ctx, superCollectionName string) ([]collection.CollectionOverlapSummary, error)
	GetSuperCollectionOverlaps(ctx bCtx.Ctx, superCollectionName string, other domain.Address, page endpoint.Pagination) (*endpoint.ListResponse[collection.CollectionOverlap], error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseURL    string
	ApiKey     string
}
