package token

import (
	"time"

	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
)

// TokenAttribute is one trait of a token. A trait type may repeat.
type TokenAttribute struct {
	TraitType string `json:"traitType"`
	Value     string `json:"value"`
}

func TokenAttributeFromObject(obj decode.Object) (*TokenAttribute, error) {
	d := decode.New(obj)
	a := &TokenAttribute{
		TraitType: d.String("traitType"),
		Value:     d.String("value"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

type CollectionToken struct {
	RegistryAddress   domain.Address   `json:"registryAddress"`
	TokenId           domain.TokenId   `json:"tokenId"`
	Name              string           `json:"name"`
	ImageUrl          *string          `json:"imageUrl"`
	FrameImageUrl     *string          `json:"frameImageUrl"`
	ResizableImageUrl *string          `json:"resizableImageUrl"`
	Description       *string          `json:"description"`
	Attributes        []TokenAttribute `json:"attributes"`
}

func CollectionTokenFromObject(obj decode.Object) (*CollectionToken, error) {
	d := decode.New(obj)
	t := &CollectionToken{
		RegistryAddress:   domain.Address(d.String("registryAddress")),
		TokenId:           domain.TokenId(d.String("tokenId")),
		Name:              d.String("name"),
		ImageUrl:          d.OptString("imageUrl"),
		FrameImageUrl:     d.OptString("frameImageUrl"),
		ResizableImageUrl: d.OptString("resizableImageUrl"),
		Description:       d.OptString("description"),
		Attributes:        decode.NestedArray(d, "attributes", TokenAttributeFromObject),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

type TokenOwnership struct {
	RegistryAddress domain.Address `json:"registryAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
	OwnerAddress    domain.Address `json:"ownerAddress"`
	Quantity        domain.BigInt  `json:"quantity"`
}

func TokenOwnershipFromObject(obj decode.Object) (*TokenOwnership, error) {
	d := decode.New(obj)
	o := &TokenOwnership{
		RegistryAddress: domain.Address(d.String("registryAddress")),
		TokenId:         domain.TokenId(d.String("tokenId")),
		OwnerAddress:    domain.Address(d.String("ownerAddress")),
		Quantity:        domain.NewBigInt(d.BigInt("quantity")),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

// TokenCustomization is a signed name/description override of a token
type TokenCustomization struct {
	TokenCustomizationId int64          `json:"tokenCustomizationId"`
	CreatedDate          time.Time      `json:"createdDate"`
	RegistryAddress      domain.Address `json:"registryAddress"`
	TokenId              domain.TokenId `json:"tokenId"`
	CreatorAddress       domain.Address `json:"creatorAddress"`
	Signature            string         `json:"signature"`
	BlockNumber          int64          `json:"blockNumber"`
	Name                 *string        `json:"name"`
	Description          *string        `json:"description"`
}

func TokenCustomizationFromObject(obj decode.Object) (*TokenCustomization, error) {
	d := decode.New(obj)
	c := &TokenCustomization{
		TokenCustomizationId: d.Int("tokenCustomizationId"),
		CreatedDate:          d.Time("createdDate"),
		RegistryAddress:      domain.Address(d.String("registryAddress")),
		TokenId:              domain.TokenId(d.String("tokenId")),
		CreatorAddress:       domain.Address(d.String("creatorAddress")),
		Signature:            d.String("signature"),
		BlockNumber:          d.Int("blockNumber"),
		Name:                 d.OptString("name"),
		Description:          d.OptString("description"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// GalleryToken is the unit rendered on a gallery grid
type GalleryToken struct {
	CollectionToken    CollectionToken       `json:"collectionToken"`
	TokenCustomization *TokenCustomization   `json:"tokenCustomization"`
	TokenListing       *listing.TokenListing `json:"tokenListing"`
	Quantity           *domain.BigInt        `json:"quantity"`
}

func GalleryTokenFromObject(obj decode.Object) (*GalleryToken, error) {
	d := decode.New(obj)
	t := &GalleryToken{
		TokenCustomization: decode.OptNested(d, "tokenCustomization", TokenCustomizationFromObject),
		TokenListing:       decode.OptNested(d, "tokenListing", listing.TokenListingFromObject),
		Quantity:           domain.OptBigInt(d.OptBigInt("quantity")),
	}
	if ct := decode.Nested(d, "collectionToken", CollectionTokenFromObject); ct != nil {
		t.CollectionToken = *ct
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

type Airdrop struct {
	AirdropId       int64           `json:"airdropId"`
	Name            string          `json:"name"`
	RegistryAddress domain.Address  `json:"registryAddress"`
	TokenId         domain.TokenId  `json:"tokenId"`
	ClaimingAddress *domain.Address `json:"claimingAddress"`
	IsClaimed       bool            `json:"isClaimed"`
	ClaimDate       *time.Time      `json:"claimDate"`
}

func AirdropFromObject(obj decode.Object) (*Airdrop, error) {
	d := decode.New(obj)
	a := &Airdrop{
		AirdropId:       d.Int("airdropId"),
		Name:            d.String("name"),
		RegistryAddress: domain.Address(d.String("registryAddress")),
		TokenId:         domain.TokenId(d.String("tokenId")),
		ClaimingAddress: domain.OptAddress(d.OptString("claimingAddress")),
		IsClaimed:       d.Bool("isClaimed"),
		ClaimDate:       d.OptTime("claimDate"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return a, nil
}
