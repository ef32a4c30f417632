package user

import (
	"time"

	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/token"
)

// MaxChosenOwnedTokens bounds the owned token sample shown per user row
const MaxChosenOwnedTokens = 7

type TwitterProfile struct {
	TwitterId       string     `json:"twitterId"`
	Username        string     `json:"username"`
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	IsVerified      bool       `json:"isVerified"`
	ProfileImageUrl *string    `json:"profileImageUrl"`
	FollowerCount   int64      `json:"followerCount"`
	FollowingCount  int64      `json:"followingCount"`
	UpdatedDate     *time.Time `json:"updatedDate"`
}

func TwitterProfileFromObject(obj decode.Object) (*TwitterProfile, error) {
	d := decode.New(obj)
	p := &TwitterProfile{
		TwitterId:       d.String("twitterId"),
		Username:        d.String("username"),
		Name:            d.OptString("name"),
		Description:     d.OptString("description"),
		IsVerified:      d.Bool("isVerified"),
		ProfileImageUrl: d.OptString("profileImageUrl"),
		FollowerCount:   d.Int("followerCount"),
		FollowingCount:  d.Int("followingCount"),
		UpdatedDate:     d.OptTime("updatedDate"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// GalleryUser is a holder profile scoped to one collection
type GalleryUser struct {
	Address               domain.Address  `json:"address"`
	RegistryAddress       domain.Address  `json:"registryAddress"`
	TwitterProfile        *TwitterProfile `json:"twitterProfile"`
	OwnedTokenCount       int64           `json:"ownedTokenCount"`
	UniqueOwnedTokenCount int64           `json:"uniqueOwnedTokenCount"`
	FollowerCount         int64           `json:"followerCount"`
	FollowingCount        int64           `json:"followingCount"`
	JoinDate              *time.Time      `json:"joinDate"`
}

func GalleryUserFromObject(obj decode.Object) (*GalleryUser, error) {
	d := decode.New(obj)
	u := &GalleryUser{
		Address:               domain.Address(d.String("address")),
		RegistryAddress:       domain.Address(d.String("registryAddress")),
		TwitterProfile:        decode.OptNested(d, "twitterProfile", TwitterProfileFromObject),
		OwnedTokenCount:       d.Int("ownedTokenCount"),
		UniqueOwnedTokenCount: d.Int("uniqueOwnedTokenCount"),
		FollowerCount:         d.Int("followerCount"),
		FollowingCount:        d.Int("followingCount"),
		JoinDate:              d.OptTime("joinDate"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return u, nil
}

// GalleryUserRow is one leaderboard entry
type GalleryUserRow struct {
	GalleryUser       GalleryUser             `json:"galleryUser"`
	ChosenOwnedTokens []token.CollectionToken `json:"chosenOwnedTokens"`
}

func GalleryUserRowFromObject(obj decode.Object) (*GalleryUserRow, error) {
	d := decode.New(obj)
	r := &GalleryUserRow{
		ChosenOwnedTokens: decode.NestedArray(d, "chosenOwnedTokens", token.CollectionTokenFromObject),
	}
	if u := decode.Nested(d, "galleryUser", GalleryUserFromObject); u != nil {
		r.GalleryUser = *u
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	if len(r.ChosenOwnedTokens) > MaxChosenOwnedTokens {
		r.ChosenOwnedTokens = r.ChosenOwnedTokens[:MaxChosenOwnedTokens]
	}
	return r, nil
}
