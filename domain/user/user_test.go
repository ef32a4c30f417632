package user

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/gallery/base/decode/decodetest"
)

const galleryUserJson = `{
	"address": "0x5566000000000000000000000000000000005566",
	"registryAddress": "0x1a92f7381b9f03921564a437210bb9396471050c",
	"twitterProfile": {
		"twitterId": "123",
		"username": "cat_fan",
		"name": "Cat Fan",
		"description": null,
		"isVerified": false,
		"profileImageUrl": null,
		"followerCount": 10,
		"followingCount": 20,
		"updatedDate": "2022-03-01T00:00:00Z"
	},
	"ownedTokenCount": 9,
	"uniqueOwnedTokenCount": 8,
	"followerCount": 1,
	"followingCount": 2,
	"joinDate": null
}`

func ownedTokens(n int) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{"registryAddress": "0x1", "tokenId": "%d", "name": "#%d", "attributes": []}`, i, i))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestGalleryUserRoundTrip(t *testing.T) {
	u := decodetest.RoundTrip(t, galleryUserJson, GalleryUserFromObject)
	require.NotNil(t, u.TwitterProfile)
	require.Equal(t, "cat_fan", u.TwitterProfile.Username)
	require.Equal(t, int64(9), u.OwnedTokenCount)
	require.Nil(t, u.JoinDate)

	decodetest.RequiredFields(t, galleryUserJson, GalleryUserFromObject, "address", "ownedTokenCount")
}

func TestGalleryUserRowCapsChosenTokens(t *testing.T) {
	raw := fmt.Sprintf(`{"galleryUser": %s, "chosenOwnedTokens": %s}`, galleryUserJson, ownedTokens(10))
	r := decodetest.RoundTrip(t, raw, GalleryUserRowFromObject)
	require.Len(t, r.ChosenOwnedTokens, MaxChosenOwnedTokens)
	require.Equal(t, "0", r.ChosenOwnedTokens[0].TokenId.String())

	raw = fmt.Sprintf(`{"galleryUser": %s, "chosenOwnedTokens": %s}`, galleryUserJson, ownedTokens(2))
	r = decodetest.RoundTrip(t, raw, GalleryUserRowFromObject)
	require.Len(t, r.ChosenOwnedTokens, 2)

	decodetest.RequiredFields(t, raw, GalleryUserRowFromObject, "galleryUser", "chosenOwnedTokens")
}
