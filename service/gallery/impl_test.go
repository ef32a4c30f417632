package gallery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/ptr"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/endpoint"
)

const (
	registry = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	owner    = domain.Address("0x5afec0a4ee64e1dc8d5bc2bab6e1e68b6a0d4c5c")
)

type recorded struct {
	method    string
	path      string
	query     string
	body      map[string]interface{}
	requestId string
	apiKey    string
}

type clientSuite struct {
	suite.Suite

	server   *httptest.Server
	client   Client
	status   int
	response string
	mu       sync.Mutex
	calls    []recorded
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupTest() {
	s.status = http.StatusOK
	s.response = ""
	s.calls = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{
			method:    r.Method,
			path:      r.URL.Path,
			query:     r.URL.RawQuery,
			requestId: r.Header.Get("X-Request-Id"),
			apiKey:    r.Header.Get("X-API-KEY"),
		}
		if r.Body != nil {
			data, _ := io.ReadAll(r.Body)
			if len(data) > 0 {
				_ = json.Unmarshal(data, &rec.body)
			}
		}
		s.mu.Lock()
		s.calls = append(s.calls, rec)
		s.mu.Unlock()
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.response))
	}))
	s.client = NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		BaseURL:    s.server.URL + "/",
		ApiKey:     "secret",
	})
}

func (s *clientSuite) TearDownTest() {
	s.server.Close()
}

func (s *clientSuite) TestGetCollection() {
	s.response = `{
		"address": "0x939ae6a4c8dfdbb1f7085189574f0a938013952a",
		"name": "Sprites",
		"symbol": null,
		"doesSupportErc721": true,
		"doesSupportErc1155": false
	}`
	c, err := s.client.GetCollection(bCtx.Background(), registry)
	s.Require().NoError(err)
	s.Equal("Sprites", ptr.StringValue(c.Name))
	s.Nil(c.Symbol)

	s.Require().Len(s.requests(), 1)
	s.Equal(http.MethodGet, s.requests()[0].method)
	s.Equal("/v1/collections/"+string(registry), s.requests()[0].path)
	s.NotEmpty(s.requests()[0].requestId)
	s.Equal("secret", s.requests()[0].apiKey)
}

func (s *clientSuite) TestRequestFailure() {
	s.status = http.StatusNotFound
	s.response = `{"message": "no such token"}`

	_, err := s.client.GetCollectionToken(bCtx.Background(), registry, "1")
	s.Require().Error(err)
	s.True(errors.Is(err, domain.ErrRequestFailed))
	s.True(errors.Is(err, domain.ErrNotFound))

	var failure *domain.RequestFailure
	s.Require().True(errors.As(err, &failure))
	s.Equal(http.StatusNotFound, failure.StatusCode)
	s.Equal(`{"message": "no such token"}`, failure.Body)
	s.Equal(http.MethodGet, failure.Method)
}

func (s *clientSuite) TestServerError() {
	s.status = http.StatusInternalServerError
	err := s.client.FollowUser(bCtx.Background(), s.followRequest())
	s.True(errors.Is(err, domain.ErrRequestFailed))
	s.False(errors.Is(err, domain.ErrNotFound))
	s.Len(s.requests(), 1)
}

func (s *clientSuite) TestInvalidArgumentsSendNothing() {
	_, err := s.client.GetCollectionToken(bCtx.Background(), registry, "not-a-number")
	s.ErrorIs(err, domain.ErrBadParamInput)
	s.Empty(s.requests())
}

func (s *clientSuite) TestParseFailure() {
	s.response = `{"attributes": [{"name": "Hat"}]}`
	_, err := s.client.GetCollectionAttributes(bCtx.Background(), registry)
	s.ErrorIs(err, domain.ErrInvalidResource)
	s.Contains(err.Error(), "attributes[0].values")
}

func (s *clientSuite) TestQueryCollectionTokens() {
	s.response = `{"galleryTokens": []}`
	listed := true
	tokens, err := s.client.QueryCollectionTokens(bCtx.Background(), registry, endpoint.TokenQuery{
		Pagination:       endpoint.Pagination{Limit: ptr.Int(10)},
		IsListed:         &listed,
		AttributeFilters: []endpoint.FieldValueFilter{{FieldName: "Hat", Values: []string{"Red"}}},
	})
	s.Require().NoError(err)
	s.Empty(tokens)

	s.Require().Len(s.requests(), 1)
	call := s.requests()[0]
	s.Equal(http.MethodPost, call.method)
	s.Equal("/gallery/v1/collections/"+string(registry)+"/tokens/query", call.path)
	s.Equal(float64(10), call.body["limit"])
	s.Equal(true, call.body["isListed"])
	s.Equal([]interface{}{
		map[string]interface{}{"fieldName": "Hat", "values": []interface{}{"Red"}},
	}, call.body["attributeFilters"])
}

func (s *clientSuite) TestQueryCollectionUsers() {
	s.response = `{"items": [], "totalCount": 0}`
	res, err := s.client.QueryCollectionUsers(bCtx.Background(), registry, endpoint.UserQuery{
		Order: &endpoint.Order{FieldName: "followerCount", Direction: domain.SortDirDesc},
	})
	s.Require().NoError(err)
	s.Equal(int64(0), res.TotalCount)
	s.Equal(map[string]interface{}{"fieldName": "followerCount", "direction": "DESC"}, s.requests()[0].body["order"])
}

func (s *clientSuite) TestCollectionTransfers() {
	s.response = `{"tokenTransfers": []}`
	_, err := s.client.GetCollectionTransfers(bCtx.Background(), registry, nil, endpoint.Pagination{Offset: ptr.Int(20)})
	s.Require().NoError(err)
	s.Equal("/v1/collections/"+string(registry)+"/recent-transfers", s.requests()[0].path)
	s.Equal("offset=20", s.requests()[0].query)
}

func (s *clientSuite) TestFollowUserEmptyBody() {
	s.status = http.StatusNoContent
	s.Require().NoError(s.client.FollowUser(bCtx.Background(), s.followRequest()))
	call := s.requests()[0]
	s.Equal("/gallery/v1/collections/"+string(registry)+"/users/"+string(owner)+"/follow", call.path)
	s.Equal("0xsig", call.body["signature"])
	s.Equal("follow me", call.body["signatureMessage"])
}

func (s *clientSuite) TestSuperCollectionOverlaps() {
	s.response = `{"items": [{
		"registryAddress": "0x939ae6a4c8dfdbb1f7085189574f0a938013952a",
		"otherRegistryAddress": "0x5afec0a4ee64e1dc8d5bc2bab6e1e68b6a0d4c5c",
		"ownerAddress": "0x5afec0a4ee64e1dc8d5bc2bab6e1e68b6a0d4c5c",
		"registryTokenCount": 2,
		"otherRegistryTokenCount": 5
	}], "totalCount": 1}`
	res, err := s.client.GetSuperCollectionOverlaps(bCtx.Background(), "sprites", owner, endpoint.Pagination{})
	s.Require().NoError(err)
	s.Equal(int64(1), res.TotalCount)
	s.Require().Len(res.Items, 1)
	s.Equal("/v1/super-collections/sprites/overlaps/"+string(owner), s.requests()[0].path)
}

func (s *clientSuite) TestTimeout() {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer slow.Close()

	c := NewClient(&ClientCfg{BaseURL: slow.URL, Timeout: 20 * time.Millisecond})
	_, err := c.GetCollection(bCtx.Background(), registry)
	s.Require().Error(err)
	s.False(errors.Is(err, domain.ErrRequestFailed))
}

func (s *clientSuite) followRequest() *endpoint.FollowUserRequest {
	req, err := endpoint.NewFollowUserRequest(registry, owner, owner, "follow me", "0xsig")
	s.Require().NoError(err)
	return req
}

func (s *clientSuite) requests() []recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recorded{}, s.calls...)
}
