package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/base/decode/decodetest"
)

const tokenJson = `{
	"registryAddress": "0x1a92f7381b9f03921564a437210bb9396471050c",
	"tokenId": "1234",
	"name": "Cool Cat #1234",
	"imageUrl": "https://img.example/1234.png",
	"frameImageUrl": null,
	"resizableImageUrl": "https://img.example/r/1234.png",
	"description": null,
	"attributes": [
		{"traitType": "Hat", "value": "Red"},
		{"traitType": "Hat", "value": "Blue"}
	]
}`

const transferJson = `{
	"transactionHash": "0xabc",
	"registryAddress": "0x1a92f7381b9f03921564a437210bb9396471050c",
	"fromAddress": "0x0000000000000000000000000000000000000000",
	"toAddress": "0x5566000000000000000000000000000000005566",
	"operatorAddress": null,
	"tokenId": "1234",
	"token": ` + tokenJson + `,
	"amount": "1",
	"value": "80000000000000000000000000",
	"gasLimit": 210000,
	"gasPrice": "31000000000",
	"gasUsed": 150000,
	"blockNumber": 14000000,
	"blockHash": "0xdef",
	"blockDate": "2022-01-13T08:12:44.123Z",
	"isMultiAddress": false,
	"isInterstitial": false,
	"isSwap": false,
	"isBatch": true,
	"isOutbound": true
}`

const galleryTokenJson = `{
	"collectionToken": ` + tokenJson + `,
	"tokenCustomization": {
		"tokenCustomizationId": 7,
		"createdDate": "2022-02-01T10:00:00",
		"registryAddress": "0x1a92f7381b9f03921564a437210bb9396471050c",
		"tokenId": "1234",
		"creatorAddress": "0x5566000000000000000000000000000000005566",
		"signature": "0xsig",
		"blockNumber": 14100000,
		"name": "Whiskers",
		"description": null
	},
	"tokenListing": {
		"tokenListingId": 3,
		"registryAddress": "0x1a92f7381b9f03921564a437210bb9396471050c",
		"tokenId": "1234",
		"offererAddress": "0x5566000000000000000000000000000000005566",
		"startDate": "2022-02-01T10:00:00Z",
		"endDate": null,
		"isValueNative": true,
		"value": "2500000000000000000",
		"source": "opensea-seaport",
		"sourceId": "0xorder"
	},
	"quantity": "3"
}`

type tokenSuite struct {
	suite.Suite
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(tokenSuite))
}

func (s *tokenSuite) TestCollectionTokenRoundTrip() {
	tok := decodetest.RoundTrip(s.T(), tokenJson, CollectionTokenFromObject)
	s.Equal("1234", tok.TokenId.String())
	s.Nil(tok.FrameImageUrl)
	s.Nil(tok.Description)
	s.Equal("https://img.example/r/1234.png", *tok.ResizableImageUrl)
	s.Equal([]TokenAttribute{{"Hat", "Red"}, {"Hat", "Blue"}}, tok.Attributes)
}

func (s *tokenSuite) TestCollectionTokenRequiredFields() {
	decodetest.RequiredFields(s.T(), tokenJson, CollectionTokenFromObject,
		"registryAddress", "tokenId", "name", "attributes")
}

func (s *tokenSuite) TestTransferRoundTrip() {
	tr := decodetest.RoundTrip(s.T(), transferJson, TokenTransferFromObject)
	s.Equal("80000000000000000000000000", tr.Value.String())
	s.Equal("31000000000", tr.GasPrice.String())
	s.Equal(int64(14000000), tr.BlockNumber)
	s.Equal(time.Date(2022, 1, 13, 8, 12, 44, 123000000, time.UTC), tr.BlockDate.UTC())
	s.Equal("Cool Cat #1234", tr.Token.Name)
	s.True(tr.IsBatch)
	s.Require().NotNil(tr.IsOutbound)
	s.True(*tr.IsOutbound)
	s.Nil(tr.OperatorAddress)
}

func (s *tokenSuite) TestTransferRequiredFields() {
	decodetest.RequiredFields(s.T(), transferJson, TokenTransferFromObject,
		"transactionHash", "fromAddress", "toAddress", "token", "value", "blockDate", "isSwap", "isMultiAddress")
}

func (s *tokenSuite) TestTransferRejectsBadNestedToken() {
	obj, err := decode.ParseObject([]byte(transferJson))
	s.Require().NoError(err)
	delete(obj["token"].(map[string]interface{}), "name")

	_, err = TokenTransferFromObject(obj)
	s.Require().Error(err)
	s.ErrorIs(err, decode.ErrMissing)
	s.Equal("token.name: required field missing", err.Error())
}

func (s *tokenSuite) TestGalleryTokenRoundTrip() {
	gt := decodetest.RoundTrip(s.T(), galleryTokenJson, GalleryTokenFromObject)
	s.Require().NotNil(gt.TokenCustomization)
	s.Equal("Whiskers", *gt.TokenCustomization.Name)
	s.Equal(time.Date(2022, 2, 1, 10, 0, 0, 0, time.UTC), gt.TokenCustomization.CreatedDate.UTC())
	s.Require().NotNil(gt.TokenListing)
	s.Equal("2500000000000000000", gt.TokenListing.Value.String())
	s.Require().NotNil(gt.Quantity)
	s.Equal("3", gt.Quantity.String())
}

func (s *tokenSuite) TestGalleryTokenOptionalParts() {
	gt := decodetest.RoundTrip(s.T(), `{"collectionToken": `+tokenJson+`, "tokenCustomization": null, "tokenListing": null}`, GalleryTokenFromObject)
	s.Nil(gt.TokenCustomization)
	s.Nil(gt.TokenListing)
	s.Nil(gt.Quantity)
}

func (s *tokenSuite) TestOwnershipAndAirdrop() {
	o := decodetest.RoundTrip(s.T(), `{
		"registryAddress": "0x1", "tokenId": "9", "ownerAddress": "0x2",
		"quantity": "100000000000000000000000"
	}`, TokenOwnershipFromObject)
	s.Equal("100000000000000000000000", o.Quantity.String())

	a := decodetest.RoundTrip(s.T(), `{
		"airdropId": 1, "name": "Drop", "registryAddress": "0x1", "tokenId": "9",
		"claimingAddress": "0x3", "isClaimed": true, "claimDate": "2022-05-05T00:00:00Z"
	}`, AirdropFromObject)
	s.True(a.IsClaimed)
	s.Equal("0x3", string(*a.ClaimingAddress))

	decodetest.RequiredFields(s.T(), `{"registryAddress": "0x1", "tokenId": "9", "ownerAddress": "0x2", "quantity": "1"}`,
		TokenOwnershipFromObject, "quantity", "ownerAddress")
}
