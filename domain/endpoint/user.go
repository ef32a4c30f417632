package endpoint

import (
	"fmt"
	"net/url"

	"github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/user"
)

type GetGalleryUserRequest struct {
	RegistryAddress domain.Address `validate:"required,address"`
	UserAddress     domain.Address `validate:"required,address"`
}

func NewGetGalleryUserRequest(registry, userAddress domain.Address) (*GetGalleryUserRequest, error) {
	r := &GetGalleryUserRequest{RegistryAddress: registry, UserAddress: userAddress}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r GetGalleryUserRequest) Path() string {
	return fmt.Sprintf("gallery/v1/collections/%s/users/%s", r.RegistryAddress, r.UserAddress)
}

func (r GetGalleryUserRequest) Query() url.Values {
	return nil
}

type GetGalleryUserResponse struct {
	User user.GalleryUser
}

func GetGalleryUserResponseFromPayload(payload interface{}) (*GetGalleryUserResponse, error) {
	u, err := ParseObject(payload, user.GalleryUserFromObject)
	if err != nil {
		return nil, err
	}
	return &GetGalleryUserResponse{User: *u}, nil
}

type UserQuery struct {
	Pagination
	Order *Order `validate:"omitempty"`
}

type QueryCollectionUsersRequest struct {
	RegistryAddress domain.Address `validate:"required,address"`
	Query           UserQuery
}

func NewQueryCollectionUsersRequest(registry domain.Address, query UserQuery) (*QueryCollectionUsersRequest, error) {
	r := &QueryCollectionUsersRequest{RegistryAddress: registry, Query: query}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r QueryCollectionUsersRequest) Path() string {
	return fmt.Sprintf("gallery/v1/collections/%s/users/query", r.RegistryAddress)
}

func (r QueryCollectionUsersRequest) ToPayload() map[string]interface{} {
	payload := map[string]interface{}{}
	r.Query.Pagination.fill(payload)
	if r.Query.Order != nil {
		payload["order"] = r.Query.Order.ToPayload()
	}
	return payload
}

type QueryCollectionUsersResponse struct {
	ListResponse[user.GalleryUserRow]
}

func QueryCollectionUsersResponseFromPayload(payload interface{}) (*QueryCollectionUsersResponse, error) {
	list, err := ParseListResponse(payload, user.GalleryUserRowFromObject)
	if err != nil {
		return nil, err
	}
	return &QueryCollectionUsersResponse{ListResponse: *list}, nil
}

type FollowUserRequest struct {
	RegistryAddress  domain.Address `validate:"required,address"`
	UserAddress      domain.Address `validate:"required,address"`
	Account          domain.Address `validate:"required,address"`
	SignatureMessage string         `validate:"required"`
	Signature        string         `validate:"required"`
}

func NewFollowUserRequest(registry, userAddress, account domain.Address, signatureMessage, signature string) (*FollowUserRequest, error) {
	r := &FollowUserRequest{
		RegistryAddress:  registry,
		UserAddress:      userAddress,
		Account:          account,
		SignatureMessage: signatureMessage,
		Signature:        signature,
	}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r FollowUserRequest) Path() string {
	return fmt.Sprintf("gallery/v1/collections/%s/users/%s/follow", r.RegistryAddress, r.UserAddress)
}

func (r FollowUserRequest) ToPayload() map[string]interface{} {
	return map[string]interface{}{
		"account":          string(r.Account),
		"signatureMessage": r.SignatureMessage,
		"signature":        r.Signature,
	}
}
