package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
	"github.com/x-xyz/gallery/domain/listing/mocks"
	"github.com/x-xyz/gallery/middleware"
)

const registry = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")

type handlerSuite struct {
	suite.Suite
	e  *echo.Echo
	uc *mocks.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.uc = mocks.NewUsecase(s.T())
	s.e = echo.New()
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.uc)
}

func (s *handlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestGetBestListing() {
	s.uc.On("GetBestListing", mock.Anything, registry, domain.TokenId("42")).Return(&listing.TokenListing{
		TokenListingId:  listing.UnsavedListingId,
		RegistryAddress: registry,
		TokenId:         "42",
		IsValueNative:   true,
		Value:           domain.MustBigInt("1500000000000000000"),
		Source:          listing.SourceLooksrare,
		SourceId:        "abc",
	}, nil).Once()

	rec := s.do(http.MethodGet, "/collections/"+string(registry)+"/tokens/42/listing", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := struct {
		Data struct {
			TokenId      string `json:"tokenId"`
			Value        string `json:"value"`
			DisplayValue string `json:"displayValue"`
			Source       string `json:"source"`
		} `json:"data"`
		Status string `json:"status"`
	}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("success", resp.Status)
	s.Equal("42", resp.Data.TokenId)
	s.Equal("1500000000000000000", resp.Data.Value)
	s.Equal("1.5", resp.Data.DisplayValue)
	s.Equal(listing.SourceLooksrare, resp.Data.Source)
}

func (s *handlerSuite) TestGetBestListingNone() {
	s.uc.On("GetBestListing", mock.Anything, registry, domain.TokenId("7")).Return(nil, nil).Once()

	rec := s.do(http.MethodGet, "/collections/"+string(registry)+"/tokens/7/listing", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":null,"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestGetBestListingInvalidParams() {
	rec := s.do(http.MethodGet, "/collections/0x123/tokens/7/listing", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/collections/"+string(registry)+"/tokens/abc/listing", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGetBestListingFailed() {
	s.uc.On("GetBestListing", mock.Anything, registry, domain.TokenId("7")).Return(nil, errors.New("boom")).Once()

	rec := s.do(http.MethodGet, "/collections/"+string(registry)+"/tokens/7/listing", "")
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *handlerSuite) TestGetBestListings() {
	ids := []domain.TokenId{"1", "2"}
	s.uc.On("GetBestListings", mock.Anything, registry, ids).Return(map[domain.TokenId]*listing.TokenListing{
		"1": {TokenId: "1", Value: domain.MustBigInt("10"), Source: listing.SourceOpenseaSeaport},
		"2": nil,
	}, nil).Once()

	rec := s.do(http.MethodPost, "/collections/"+string(registry)+"/listings", `{"tokenIds":["1","2"]}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := struct {
		Data map[string]*struct {
			Value string `json:"value"`
		} `json:"data"`
	}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 2)
	s.Equal("10", resp.Data["1"].Value)
	s.Nil(resp.Data["2"])
}

func (s *handlerSuite) TestGetBestListingsValidation() {
	rec := s.do(http.MethodPost, "/collections/"+string(registry)+"/listings", `{"tokenIds":[]}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/collections/"+string(registry)+"/listings", `{"tokenIds":["x"]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}
