package endpoint

import (
	"fmt"
	"net/url"

	"github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/collection"
)

// GetOverlapSummariesRequest addresses either one collection or a super
// collection, exactly one of the two is set
type GetOverlapSummariesRequest struct {
	RegistryAddress     domain.Address `validate:"required_without=SuperCollectionName,excluded_with=SuperCollectionName"`
	SuperCollectionName string         `validate:"required_without=RegistryAddress"`
}

func NewGetCollectionOverlapSummariesRequest(registry domain.Address) (*GetOverlapSummariesRequest, error) {
	r := &GetOverlapSummariesRequest{RegistryAddress: registry}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func NewGetSuperCollectionOverlapSummariesRequest(superCollectionName string) (*GetOverlapSummariesRequest, error) {
	r := &GetOverlapSummariesRequest{SuperCollectionName: superCollectionName}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r GetOverlapSummariesRequest) Path() string {
	if r.SuperCollectionName != "" {
		return fmt.Sprintf("v1/super-collections/%s/overlaps", url.PathEscape(r.SuperCollectionName))
	}
	return fmt.Sprintf("v1/collections/%s/overlaps", r.RegistryAddress)
}

func (r GetOverlapSummariesRequest) Query() url.Values {
	return nil
}

type GetOverlapSummariesResponse struct {
	CollectionOverlapSummaries []collection.CollectionOverlapSummary
}

func GetOverlapSummariesResponseFromPayload(payload interface{}) (*GetOverlapSummariesResponse, error) {
	items, err := ParseArrayField(payload, "collectionOverlapSummaries", collection.CollectionOverlapSummaryFromObject)
	if err != nil {
		return nil, err
	}
	return &GetOverlapSummariesResponse{CollectionOverlapSummaries: items}, nil
}

// GetOverlapsRequest lists the shared owners of a collection, or of a super
// collection, with OtherRegistryAddress
type GetOverlapsRequest struct {
	RegistryAddress      domain.Address `validate:"required_without=SuperCollectionName,excluded_with=SuperCollectionName"`
	SuperCollectionName  string         `validate:"required_without=RegistryAddress"`
	OtherRegistryAddress domain.Address `validate:"required,address"`
	Pagination
}

func NewGetCollectionOverlapsRequest(registry, other domain.Address, page Pagination) (*GetOverlapsRequest, error) {
	r := &GetOverlapsRequest{RegistryAddress: registry, OtherRegistryAddress: other, Pagination: page}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func NewGetSuperCollectionOverlapsRequest(superCollectionName string, other domain.Address, page Pagination) (*GetOverlapsRequest, error) {
	r := &GetOverlapsRequest{SuperCollectionName: superCollectionName, OtherRegistryAddress: other, Pagination: page}
	if err := validator.Struct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r GetOverlapsRequest) Path() string {
	if r.SuperCollectionName != "" {
		return fmt.Sprintf("v1/super-collections/%s/overlaps/%s", url.PathEscape(r.SuperCollectionName), r.OtherRegistryAddress)
	}
	return fmt.Sprintf("v1/collections/%s/overlaps/%s", r.RegistryAddress, r.OtherRegistryAddress)
}

func (r GetOverlapsRequest) Query() url.Values {
	q := url.Values{}
	r.Pagination.query(q)
	return q
}

type GetOverlapsResponse struct {
	ListResponse[collection.CollectionOverlap]
}

func GetOverlapsResponseFromPayload(payload interface{}) (*GetOverlapsResponse, error) {
	list, err := ParseListResponse(payload, collection.CollectionOverlapFromObject)
	if err != nil {
		return nil, err
	}
	return &GetOverlapsResponse{ListResponse: *list}, nil
}
