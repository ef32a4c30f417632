package endpoint

import (
	"fmt"
	"net/url"

	"github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
	"github.com/x-xyz/gallery/domain/token"
)

// TokenRequest addresses one token of a collection
type TokenRequest struct {
	RegistryAddress domain.Address `validate:"required,address"`
	TokenId         domain.TokenId `validate:"required,numeric"`
}

func NewTokenRequest(registry domain.Address, tokenId domain.TokenId) (*TokenRequest, error) {
	r := &TokenRequest{RegistryAddress: registry, TokenId: tokenId}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r TokenRequest) tokenPath(prefix, suffix string) string {
	p := fmt.Sprintf("%sv1/collections/%s/tokens/%s", prefix, r.RegistryAddress, r.TokenId)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func (r TokenRequest) Query() url.Values {
	return nil
}

type GetCollectionTokenRequest struct{ TokenRequest }

func (r GetCollectionTokenRequest) Path() string { return r.tokenPath("", "") }

type GetGalleryTokenRequest struct{ TokenRequest }

func (r GetGalleryTokenRequest) Path() string { return r.tokenPath("gallery/", "") }

type GetTokenTransfersRequest struct{ TokenRequest }

func (r GetTokenTransfersRequest) Path() string { return r.tokenPath("", "recent-transfers") }

type GetTokenOwnershipsRequest struct{ TokenRequest }

func (r GetTokenOwnershipsRequest) Path() string { return r.tokenPath("", "ownerships") }

type GetTokenAirdropsRequest struct{ TokenRequest }

func (r GetTokenAirdropsRequest) Path() string { return r.tokenPath("gallery/", "airdrops") }

type GetTokenListingsRequest struct{ TokenRequest }

func (r GetTokenListingsRequest) Path() string { return r.tokenPath("", "listings") }

type GetCollectionTokenResponse struct {
	Token token.CollectionToken
}

func GetCollectionTokenResponseFromPayload(payload interface{}) (*GetCollectionTokenResponse, error) {
	t, err := ParseObject(payload, token.CollectionTokenFromObject)
	if err != nil {
		return nil, err
	}
	return &GetCollectionTokenResponse{Token: *t}, nil
}

type GetGalleryTokenResponse struct {
	GalleryToken token.GalleryToken
}

func GetGalleryTokenResponseFromPayload(payload interface{}) (*GetGalleryTokenResponse, error) {
	t, err := ParseObject(payload, token.GalleryTokenFromObject)
	if err != nil {
		return nil, err
	}
	return &GetGalleryTokenResponse{GalleryToken: *t}, nil
}

type GetTokenOwnershipsResponse struct {
	TokenOwnerships []token.TokenOwnership
}

func GetTokenOwnershipsResponseFromPayload(payload interface{}) (*GetTokenOwnershipsResponse, error) {
	items, err := ParseArrayField(payload, "tokenOwnerships", token.TokenOwnershipFromObject)
	if err != nil {
		return nil, err
	}
	return &GetTokenOwnershipsResponse{TokenOwnerships: items}, nil
}

type GetTokenAirdropsResponse struct {
	Airdrops []token.Airdrop
}

func GetTokenAirdropsResponseFromPayload(payload interface{}) (*GetTokenAirdropsResponse, error) {
	items, err := ParseArrayField(payload, "airdrops", token.AirdropFromObject)
	if err != nil {
		return nil, err
	}
	return &GetTokenAirdropsResponse{Airdrops: items}, nil
}

type GetTokenListingsResponse struct {
	TokenListings []listing.TokenListing
}

func GetTokenListingsResponseFromPayload(payload interface{}) (*GetTokenListingsResponse, error) {
	items, err := ParseArrayField(payload, "tokenListings", listing.TokenListingFromObject)
	if err != nil {
		return nil, err
	}
	return &GetTokenListingsResponse{TokenListings: items}, nil
}

type GetTokensByOwnerRequest struct {
	RegistryAddress domain.Address `validate:"required,address"`
	OwnerAddress    domain.Address `validate:"required,address"`
}

func NewGetTokensByOwnerRequest(registry, owner domain.Address) (*GetTokensByOwnerRequest, error) {
	r := &GetTokensByOwnerRequest{RegistryAddress: registry, OwnerAddress: owner}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r GetTokensByOwnerRequest) Path() string {
	return fmt.Sprintf("v1/collections/%s/tokens/owner/%s", r.RegistryAddress, r.OwnerAddress)
}

func (r GetTokensByOwnerRequest) Query() url.Values {
	return nil
}

type GetTokensByOwnerResponse struct {
	Tokens []token.CollectionToken
}

func GetTokensByOwnerResponseFromPayload(payload interface{}) (*GetTokensByOwnerResponse, error) {
	items, err := ParseArrayField(payload, "tokens", token.CollectionTokenFromObject)
	if err != nil {
		return nil, err
	}
	return &GetTokensByOwnerResponse{Tokens: items}, nil
}

// TokenQuery filters, sorts and pages the gallery tokens of a collection
type TokenQuery struct {
	Pagination
	OwnerAddress     *domain.Address
	MinPrice         *domain.BigInt
	MaxPrice         *domain.BigInt
	IsListed         *bool
	TokenIdIn        []domain.TokenId   `validate:"omitempty,dive,numeric"`
	AttributeFilters []FieldValueFilter `validate:"omitempty,dive"`
	Order            *Order             `validate:"omitempty"`
}

type QueryCollectionTokensRequest struct {
	RegistryAddress domain.Address `validate:"required,address"`
	Query           TokenQuery
}

func NewQueryCollectionTokensRequest(registry domain.Address, query TokenQuery) (*QueryCollectionTokensRequest, error) {
	r := &QueryCollectionTokensRequest{RegistryAddress: registry, Query: query}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	if q := r.Query; q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.Cmp(*q.MaxPrice) > 0 {
		return nil, domain.ErrBadParamInput
	}
	return r, nil
}

func (r QueryCollectionTokensRequest) Path() string {
	return fmt.Sprintf("gallery/v1/collections/%s/tokens/query", r.RegistryAddress)
}

func (r QueryCollectionTokensRequest) ToPayload() map[string]interface{} {
	q := r.Query
	payload := map[string]interface{}{}
	q.Pagination.fill(payload)
	if q.OwnerAddress != nil {
		payload["ownerAddress"] = string(*q.OwnerAddress)
	}
	if q.MinPrice != nil {
		payload["minPrice"] = q.MinPrice.String()
	}
	if q.MaxPrice != nil {
		payload["maxPrice"] = q.MaxPrice.String()
	}
	if q.IsListed != nil {
		payload["isListed"] = *q.IsListed
	}
	if len(q.TokenIdIn) > 0 {
		ids := make([]string, len(q.TokenIdIn))
		for i, id := range q.TokenIdIn {
			ids[i] = string(id)
		}
		payload["tokenIdIn"] = ids
	}
	if len(q.AttributeFilters) > 0 {
		filters := make([]interface{}, len(q.AttributeFilters))
		for i, f := range q.AttributeFilters {
			filters[i] = f.ToPayload()
		}
		payload["attributeFilters"] = filters
	}
	if q.Order != nil {
		payload["order"] = q.Order.ToPayload()
	}
	return payload
}

type QueryCollectionTokensResponse struct {
	GalleryTokens []token.GalleryToken
}

func QueryCollectionTokensResponseFromPayload(payload interface{}) (*QueryCollectionTokensResponse, error) {
	items, err := ParseArrayField(payload, "galleryTokens", token.GalleryTokenFromObject)
	if err != nil {
		return nil, err
	}
	return &QueryCollectionTokensResponse{GalleryTokens: items}, nil
}

type SubmitTreasureHuntRequest struct {
	TokenRequest
	UserAddress domain.Address `validate:"required,address"`
	Signature   string         `validate:"required"`
}

func NewSubmitTreasureHuntRequest(registry domain.Address, tokenId domain.TokenId, user domain.Address, signature string) (*SubmitTreasureHuntRequest, error) {
	r := &SubmitTreasureHuntRequest{
		TokenRequest: TokenRequest{RegistryAddress: registry, TokenId: tokenId},
		UserAddress:  user,
		Signature:    signature,
	}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r SubmitTreasureHuntRequest) Path() string {
	return r.tokenPath("gallery/", "submit-treasure-hunt")
}

func (r SubmitTreasureHuntRequest) ToPayload() map[string]interface{} {
	return map[string]interface{}{
		"userAddress": string(r.UserAddress),
		"signature":   r.Signature,
	}
}

type CreateTokenCustomizationRequest struct {
	TokenRequest
	CreatorAddress domain.Address `validate:"required,address"`
	Signature      string         `validate:"required"`
	BlockNumber    int64          `validate:"min=0"`
	Name           *string        `validate:"omitempty,max=128"`
	Description    *string        `validate:"omitempty,max=1024"`
}

func NewCreateTokenCustomizationRequest(registry domain.Address, tokenId domain.TokenId, creator domain.Address, signature string, blockNumber int64, name, description *string) (*CreateTokenCustomizationRequest, error) {
	r := &CreateTokenCustomizationRequest{
		TokenRequest:   TokenRequest{RegistryAddress: registry, TokenId: tokenId},
		CreatorAddress: creator,
		Signature:      signature,
		BlockNumber:    blockNumber,
		Name:           name,
		Description:    description,
	}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r CreateTokenCustomizationRequest) Path() string {
	return r.tokenPath("gallery/", "customizations")
}

func (r CreateTokenCustomizationRequest) ToPayload() map[string]interface{} {
	payload := map[string]interface{}{
		"creatorAddress": string(r.CreatorAddress),
		"signature":      r.Signature,
		"blockNumber":    r.BlockNumber,
		"name":           nil,
		"description":    nil,
	}
	if r.Name != nil {
		payload["name"] = *r.Name
	}
	if r.Description != nil {
		payload["description"] = *r.Description
	}
	return payload
}

type CreateTokenCustomizationResponse struct {
	TokenCustomization token.TokenCustomization
}

func CreateTokenCustomizationResponseFromPayload(payload interface{}) (*CreateTokenCustomizationResponse, error) {
	c, err := ParseObject(payload, token.TokenCustomizationFromObject)
	if err != nil {
		return nil, err
	}
	return &CreateTokenCustomizationResponse{TokenCustomization: *c}, nil
}
