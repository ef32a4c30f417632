package collection

import (
	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/domain"
)

type Collection struct {
	Address            domain.Address `json:"address"`
	Name               *string        `json:"name"`
	Symbol             *string        `json:"symbol"`
	Description        *string        `json:"description"`
	ImageUrl           *string        `json:"imageUrl"`
	BannerImageUrl     *string        `json:"bannerImageUrl"`
	Url                *string        `json:"url"`
	OpenseaSlug        *string        `json:"openseaSlug"`
	DiscordUrl         *string        `json:"discordUrl"`
	TwitterUsername    *string        `json:"twitterUsername"`
	InstagramUsername  *string        `json:"instagramUsername"`
	WikiUrl            *string        `json:"wikiUrl"`
	DoesSupportErc721  bool           `json:"doesSupportErc721"`
	DoesSupportErc1155 bool           `json:"doesSupportErc1155"`
}

func CollectionFromObject(obj decode.Object) (*Collection, error) {
	d := decode.New(obj)
	c := &Collection{
		Address:            domain.Address(d.String("address")),
		Name:               d.OptString("name"),
		Symbol:             d.OptString("symbol"),
		Description:        d.OptString("description"),
		ImageUrl:           d.OptString("imageUrl"),
		BannerImageUrl:     d.OptString("bannerImageUrl"),
		Url:                d.OptString("url"),
		OpenseaSlug:        d.OptString("openseaSlug"),
		DiscordUrl:         d.OptString("discordUrl"),
		TwitterUsername:    d.OptString("twitterUsername"),
		InstagramUsername:  d.OptString("instagramUsername"),
		WikiUrl:            d.OptString("wikiUrl"),
		DoesSupportErc721:  d.Bool("doesSupportErc721"),
		DoesSupportErc1155: d.Bool("doesSupportErc1155"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

type CollectionAttributeValue struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

func CollectionAttributeValueFromObject(obj decode.Object) (*CollectionAttributeValue, error) {
	d := decode.New(obj)
	v := &CollectionAttributeValue{
		Value: d.String("value"),
		Count: d.Int("count"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

// CollectionAttribute is one trait type and the values tokens carry for it
type CollectionAttribute struct {
	Name   string                     `json:"name"`
	Values []CollectionAttributeValue `json:"values"`
}

func CollectionAttributeFromObject(obj decode.Object) (*CollectionAttribute, error) {
	d := decode.New(obj)
	a := &CollectionAttribute{
		Name:   d.String("name"),
		Values: decode.NestedArray(d, "values", CollectionAttributeValueFromObject),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return a, nil
}
