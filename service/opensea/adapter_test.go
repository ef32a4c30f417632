package opensea

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
	"github.com/x-xyz/gallery/service/marketplace"
)

const registry = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")

const assetsFixture = `{
	"next": null,
	"previous": null,
	"assets": [
		{
			"token_id": "1",
			"asset_contract": {"address": "0x939ae6a4c8dfdbb1f7085189574f0a938013952a"},
			"sell_orders": [
				{
					"order_hash": "0xwyvern-valid",
					"listing_time": 1650000000,
					"expiration_time": 0,
					"current_price": "2000000000000000000.00000",
					"maker": {"address": "0xAB5801a7D398351b8bE11C439e05C5B3259aeC9B"},
					"payment_token": "0x0000000000000000000000000000000000000000",
					"side": 1,
					"sale_kind": 0,
					"cancelled": false,
					"finalized": false
				},
				{
					"order_hash": "0xwyvern-cancelled",
					"listing_time": 1650000000,
					"expiration_time": 0,
					"current_price": "9000000000000000000",
					"maker": {"address": "0xab5801a7d398351b8be11c439e05c5b3259aec9b"},
					"payment_token": "0x0000000000000000000000000000000000000000",
					"side": 1,
					"sale_kind": 0,
					"cancelled": true,
					"finalized": false
				},
				{
					"order_hash": "0xwyvern-auction",
					"listing_time": 1650000000,
					"expiration_time": 0,
					"current_price": "8000000000000000000",
					"maker": {"address": "0xab5801a7d398351b8be11c439e05c5b3259aec9b"},
					"payment_token": "0x0000000000000000000000000000000000000000",
					"side": 1,
					"sale_kind": 1,
					"cancelled": false,
					"finalized": false
				}
			],
			"seaport_sell_orders": [
				{
					"order_hash": "0xseaport-valid",
					"listing_time": 1660000000,
					"expiration_time": 1670000000,
					"current_price": "3000000000000000000",
					"maker": {"address": "0xab5801a7d398351b8be11c439e05c5b3259aec9b"},
					"side": "ask",
					"order_type": "basic",
					"cancelled": false,
					"finalized": false,
					"protocol_data": {"parameters": {"consideration": [
						{"itemType": 0, "token": "0x0000000000000000000000000000000000000000", "startAmount": "1", "endAmount": "1"}
					]}}
				},
				{
					"order_hash": "0xseaport-finalized",
					"listing_time": 1660000000,
					"expiration_time": 0,
					"current_price": "7000000000000000000",
					"maker": {"address": "0xab5801a7d398351b8be11c439e05c5b3259aec9b"},
					"side": "ask",
					"order_type": "basic",
					"cancelled": false,
					"finalized": true,
					"protocol_data": {"parameters": {"consideration": []}}
				},
				{
					"order_hash": "0xseaport-cancelled",
					"listing_time": 1660000000,
					"expiration_time": 0,
					"current_price": "9500000000000000000",
					"maker": {"address": "0xab5801a7d398351b8be11c439e05c5b3259aec9b"},
					"side": "ask",
					"order_type": "basic",
					"cancelled": true,
					"finalized": false,
					"protocol_data": {"parameters": {"consideration": [
						{"itemType": 0, "token": "0x0000000000000000000000000000000000000000", "startAmount": "1", "endAmount": "1"}
					]}}
				}
			]
		},
		{
			"token_id": "2",
			"asset_contract": {"address": "0x939ae6a4c8dfdbb1f7085189574f0a938013952a"},
			"sell_orders": null,
			"seaport_sell_orders": [
				{
					"order_hash": "0xseaport-weth",
					"listing_time": 1660000000,
					"expiration_time": 0,
					"current_price": "500",
					"maker": {"address": "0xab5801a7d398351b8be11c439e05c5b3259aec9b"},
					"side": "ask",
					"order_type": "basic",
					"cancelled": false,
					"finalized": false,
					"protocol_data": {"parameters": {"consideration": [
						{"itemType": 1, "token": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", "startAmount": "1", "endAmount": "1"}
					]}}
				}
			]
		}
	]
}`

func newServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAdapterFetchListings(t *testing.T) {
	req := require.New(t)
	var query map[string][]string
	var apiKey string
	srv := newServer(t, http.StatusOK, assetsFixture, func(r *http.Request) {
		query = r.URL.Query()
		apiKey = r.Header.Get("X-API-KEY")
	})

	adapter := NewAdapter(NewClient(&ClientCfg{Timeout: time.Second, Apikey: "key", BaseURL: srv.URL}))
	res, err := adapter.FetchListings(bCtx.Background(), registry, []domain.TokenId{"1", "2", "3"})
	req.NoError(err)

	req.Equal([]string{"1", "2", "3"}, query["token_ids"])
	req.Equal([]string{string(registry)}, query["asset_contract_address"])
	req.Equal([]string{"true"}, query["include_orders"])
	req.Equal("key", apiKey)

	req.Len(res["1"], 2)
	for _, l := range res["1"] {
		req.NotEqual("0xwyvern-cancelled", l.SourceId)
		req.NotEqual("0xseaport-cancelled", l.SourceId)
	}
	wyvern := res["1"][0]
	req.Equal(listing.SourceOpenseaWyvern, wyvern.Source)
	req.Equal("0xwyvern-valid", wyvern.SourceId)
	req.Equal(listing.UnsavedListingId, wyvern.TokenListingId)
	req.Equal("2000000000000000000", wyvern.Value.String())
	req.True(wyvern.IsValueNative)
	req.Nil(wyvern.EndDate)
	req.Equal(domain.Address("0xab5801a7d398351b8be11c439e05c5b3259aec9b"), wyvern.OffererAddress)

	seaport := res["1"][1]
	req.Equal(listing.SourceOpenseaSeaport, seaport.Source)
	req.NotNil(seaport.EndDate)
	req.Equal(time.Unix(1670000000, 0).UTC(), *seaport.EndDate)

	req.Len(res["2"], 1)
	req.False(res["2"][0].IsValueNative)
	req.Empty(res["3"])
}

func TestAggregatedHighest(t *testing.T) {
	req := require.New(t)
	srv := newServer(t, http.StatusOK, assetsFixture, nil)

	m := marketplace.NewAggregator(NewAdapter(NewClient(&ClientCfg{Timeout: time.Second, BaseURL: srv.URL})))
	res, err := m.GetTokenListings(bCtx.Background(), registry, []domain.TokenId{"1", "2", "3"})
	req.NoError(err)
	req.Len(res, 3)
	req.Equal("0xseaport-valid", res["1"].SourceId)
	req.Equal("0xseaport-weth", res["2"].SourceId)
	req.Nil(res["3"])
}

func TestAdapterStatusNotOk(t *testing.T) {
	srv := newServer(t, http.StatusTooManyRequests, `{"detail": "throttled"}`, nil)
	adapter := NewAdapter(NewClient(&ClientCfg{Timeout: time.Second, BaseURL: srv.URL}))
	_, err := adapter.FetchListings(bCtx.Background(), registry, []domain.TokenId{"1"})
	require.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestParseWei(t *testing.T) {
	req := require.New(t)
	v, err := parseWei("1.5e18")
	req.NoError(err)
	req.Equal("1500000000000000000", v.String())

	_, err = parseWei("1.5")
	req.ErrorIs(err, ErrParsePrice)
	_, err = parseWei("abc")
	req.ErrorIs(err, ErrParsePrice)
}
