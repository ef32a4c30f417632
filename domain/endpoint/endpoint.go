// Package endpoint pairs every backend operation with a request type that
// knows its path and payload and a response type that parses the raw body
// into resources.
package endpoint

import (
	"net/url"
	"strconv"

	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/domain"
)

// GetRequest is issued as GET {base}/{Path}?{Query}
type GetRequest interface {
	Path() string
	Query() url.Values
}

// PostRequest is issued as POST {base}/{Path} with the JSON payload
type PostRequest interface {
	Path() string
	ToPayload() map[string]interface{}
}

// ListResponse is the pagination envelope
type ListResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
}

// ParseListResponse parses {items, totalCount} with the item constructor
func ParseListResponse[T any](payload interface{}, parse func(decode.Object) (*T, error)) (*ListResponse[T], error) {
	obj, err := decode.AsObject(payload)
	if err != nil {
		return nil, err
	}
	d := decode.New(obj)
	res := &ListResponse[T]{
		Items:      decode.NestedArray(d, "items", parse),
		TotalCount: d.Int("totalCount"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// ParseArrayField parses {key: [...]} with the item constructor. A bare
// array is accepted as well.
func ParseArrayField[T any](payload interface{}, key string, parse func(decode.Object) (*T, error)) ([]T, error) {
	if _, ok := payload.([]interface{}); ok {
		return ParseArray(payload, parse)
	}
	obj, err := decode.AsObject(payload)
	if err != nil {
		return nil, err
	}
	d := decode.New(obj)
	items := decode.NestedArray(d, key, parse)
	if err := d.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ParseArray parses a bare JSON array with the item constructor
func ParseArray[T any](payload interface{}, parse func(decode.Object) (*T, error)) ([]T, error) {
	arr, err := decode.AsArray(payload)
	if err != nil {
		return nil, err
	}
	return decode.Each(arr, parse)
}

// ParseObject parses a bare resource object
func ParseObject[T any](payload interface{}, parse func(decode.Object) (*T, error)) (*T, error) {
	obj, err := decode.AsObject(payload)
	if err != nil {
		return nil, err
	}
	return parse(obj)
}

// FieldValueFilter matches resources whose field equals one of values
type FieldValueFilter struct {
	FieldName string   `json:"fieldName" validate:"required"`
	Values    []string `json:"values" validate:"required,min=1"`
}

func (f FieldValueFilter) ToPayload() map[string]interface{} {
	return map[string]interface{}{
		"fieldName": f.FieldName,
		"values":    f.Values,
	}
}

type Order struct {
	FieldName string         `json:"fieldName" validate:"required"`
	Direction domain.SortDir `json:"direction" validate:"required,oneof=ASC DESC"`
}

func (o Order) ToPayload() map[string]interface{} {
	return map[string]interface{}{
		"fieldName": o.FieldName,
		"direction": string(o.Direction),
	}
}

// Pagination is shared by query style requests
type Pagination struct {
	Limit  *int `validate:"omitempty,min=1,max=500"`
	Offset *int `validate:"omitempty,min=0"`
}

func (p Pagination) fill(payload map[string]interface{}) {
	if p.Limit != nil {
		payload["limit"] = *p.Limit
	}
	if p.Offset != nil {
		payload["offset"] = *p.Offset
	}
}

func (p Pagination) query(q url.Values) {
	if p.Limit != nil {
		q.Set("limit", itoa(*p.Limit))
	}
	if p.Offset != nil {
		q.Set("offset", itoa(*p.Offset))
	}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
