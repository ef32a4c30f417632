package endpoint

import (
	"fmt"
	"net/url"

	"github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/collection"
	"github.com/x-xyz/gallery/domain/token"
)

type GetCollectionRequest struct {
	RegistryAddress domain.Address `validate:"required,address"`
}

func NewGetCollectionRequest(registry domain.Address) (*GetCollectionRequest, error) {
	r := &GetCollectionRequest{RegistryAddress: registry}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r GetCollectionRequest) Path() string {
	return fmt.Sprintf("v1/collections/%s", r.RegistryAddress)
}

func (r GetCollectionRequest) Query() url.Values {
	return nil
}

type GetCollectionResponse struct {
	Collection collection.Collection
}

func GetCollectionResponseFromPayload(payload interface{}) (*GetCollectionResponse, error) {
	c, err := ParseObject(payload, collection.CollectionFromObject)
	if err != nil {
		return nil, err
	}
	return &GetCollectionResponse{Collection: *c}, nil
}

type GetCollectionAttributesRequest struct {
	RegistryAddress domain.Address `validate:"required,address"`
}

func NewGetCollectionAttributesRequest(registry domain.Address) (*GetCollectionAttributesRequest, error) {
	r := &GetCollectionAttributesRequest{RegistryAddress: registry}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r GetCollectionAttributesRequest) Path() string {
	return fmt.Sprintf("gallery/v1/collections/%s/attributes", r.RegistryAddress)
}

func (r GetCollectionAttributesRequest) Query() url.Values {
	return nil
}

type GetCollectionAttributesResponse struct {
	Attributes []collection.CollectionAttribute
}

func GetCollectionAttributesResponseFromPayload(payload interface{}) (*GetCollectionAttributesResponse, error) {
	attrs, err := ParseArrayField(payload, "attributes", collection.CollectionAttributeFromObject)
	if err != nil {
		return nil, err
	}
	return &GetCollectionAttributesResponse{Attributes: attrs}, nil
}

// GetCollectionTransfersRequest lists recent transfers of a collection,
// optionally only those involving UserAddress
type GetCollectionTransfersRequest struct {
	RegistryAddress domain.Address `validate:"required,address"`
	UserAddress     *domain.Address
	Pagination
}

func NewGetCollectionTransfersRequest(registry domain.Address, userAddress *domain.Address, page Pagination) (*GetCollectionTransfersRequest, error) {
	r := &GetCollectionTransfersRequest{RegistryAddress: registry, UserAddress: userAddress, Pagination: page}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r GetCollectionTransfersRequest) Path() string {
	return fmt.Sprintf("v1/collections/%s/recent-transfers", r.RegistryAddress)
}

func (r GetCollectionTransfersRequest) Query() url.Values {
	q := url.Values{}
	if r.UserAddress != nil {
		q.Set("userAddress", string(*r.UserAddress))
	}
	r.Pagination.query(q)
	return q
}

type GetTransfersResponse struct {
	TokenTransfers []token.TokenTransfer
}

func GetTransfersResponseFromPayload(payload interface{}) (*GetTransfersResponse, error) {
	transfers, err := ParseArrayField(payload, "tokenTransfers", token.TokenTransferFromObject)
	if err != nil {
		return nil, err
	}
	return &GetTransfersResponse{TokenTransfers: transfers}, nil
}
