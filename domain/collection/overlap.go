package collection

import (
	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/domain"
)

// CollectionOverlap is one owner holding tokens in both collections
type CollectionOverlap struct {
	RegistryAddress         domain.Address `json:"registryAddress"`
	OtherRegistryAddress    domain.Address `json:"otherRegistryAddress"`
	OwnerAddress            domain.Address `json:"ownerAddress"`
	RegistryTokenCount      int64          `json:"registryTokenCount"`
	OtherRegistryTokenCount int64          `json:"otherRegistryTokenCount"`
}

func CollectionOverlapFromObject(obj decode.Object) (*CollectionOverlap, error) {
	d := decode.New(obj)
	o := &CollectionOverlap{
		RegistryAddress:         domain.Address(d.String("registryAddress")),
		OtherRegistryAddress:    domain.Address(d.String("otherRegistryAddress")),
		OwnerAddress:            domain.Address(d.String("ownerAddress")),
		RegistryTokenCount:      d.Int("registryTokenCount"),
		OtherRegistryTokenCount: d.Int("otherRegistryTokenCount"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

// CollectionOverlapSummary aggregates the overlaps of a collection pair
type CollectionOverlapSummary struct {
	RegistryAddress         domain.Address `json:"registryAddress"`
	OtherRegistryAddress    domain.Address `json:"otherRegistryAddress"`
	OtherCollection         *Collection    `json:"otherCollection"`
	OwnerCount              int64          `json:"ownerCount"`
	RegistryTokenCount      int64          `json:"registryTokenCount"`
	OtherRegistryTokenCount int64          `json:"otherRegistryTokenCount"`
}

func CollectionOverlapSummaryFromObject(obj decode.Object) (*CollectionOverlapSummary, error) {
	d := decode.New(obj)
	s := &CollectionOverlapSummary{
		RegistryAddress:         domain.Address(d.String("registryAddress")),
		OtherRegistryAddress:    domain.Address(d.String("otherRegistryAddress")),
		OtherCollection:         decode.OptNested(d, "otherCollection", CollectionFromObject),
		OwnerCount:              d.Int("ownerCount"),
		RegistryTokenCount:      d.Int("registryTokenCount"),
		OtherRegistryTokenCount: d.Int("otherRegistryTokenCount"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
