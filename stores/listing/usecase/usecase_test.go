package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
	"github.com/x-xyz/gallery/domain/listing/mocks"
	"github.com/x-xyz/gallery/service/cache"
	"github.com/x-xyz/gallery/service/cache/provider/primitive"
)

const registry = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")

var mockCtx = ctx.Background()

func tokenListing(source, value string) *listing.TokenListing {
	return &listing.TokenListing{
		TokenListingId:  listing.UnsavedListingId,
		RegistryAddress: registry,
		TokenId:         "1",
		Value:           domain.MustBigInt(value),
		Source:          source,
		SourceId:        source + "-order",
	}
}

type listingSuite struct {
	suite.Suite
	a *mocks.Marketplace
	b *mocks.Marketplace
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.a = mocks.NewMarketplace(s.T())
	s.b = mocks.NewMarketplace(s.T())
	s.a.On("Source").Return("a").Maybe()
	s.b.On("Source").Return("b").Maybe()
}

func (s *listingSuite) TestLowestAcrossMarketplaces() {
	ids := []domain.TokenId{"1", "2", "3"}
	s.a.On("GetTokenListings", mock.Anything, registry, ids).Return(map[domain.TokenId]*listing.TokenListing{
		"1": tokenListing("a", "2000000000000000000"),
		"2": tokenListing("a", "1000000000000000000"),
		"3": nil,
	}, nil).Once()
	s.b.On("GetTokenListings", mock.Anything, registry, ids).Return(map[domain.TokenId]*listing.TokenListing{
		"1": tokenListing("b", "1999999999999999999"),
		"2": nil,
		"3": nil,
	}, nil).Once()

	uc := NewListingUseCase(&ListingUseCaseCfg{Marketplaces: []listing.Marketplace{s.a, s.b}})
	res, err := uc.GetBestListings(mockCtx, registry, ids)
	s.Require().NoError(err)
	s.Len(res, 3)
	s.Equal("b", res["1"].Source)
	s.Equal("a", res["2"].Source)
	s.Nil(res["3"])
}

func (s *listingSuite) TestFailingMarketplaceIgnored() {
	ids := []domain.TokenId{"1"}
	s.a.On("GetTokenListings", mock.Anything, registry, ids).Return(nil, errors.New("rate limited")).Once()
	s.b.On("GetTokenListings", mock.Anything, registry, ids).Return(map[domain.TokenId]*listing.TokenListing{
		"1": tokenListing("b", "5"),
	}, nil).Once()

	uc := NewListingUseCase(&ListingUseCaseCfg{Marketplaces: []listing.Marketplace{s.a, s.b}})
	best, err := uc.GetBestListing(mockCtx, registry, "1")
	s.Require().NoError(err)
	s.Require().NotNil(best)
	s.Equal("b", best.Source)
}

func (s *listingSuite) TestAllFailing() {
	ids := []domain.TokenId{"1"}
	s.a.On("GetTokenListings", mock.Anything, registry, ids).Return(nil, errors.New("down")).Once()
	s.b.On("GetTokenListings", mock.Anything, registry, ids).Return(nil, errors.New("down")).Once()

	uc := NewListingUseCase(&ListingUseCaseCfg{Marketplaces: []listing.Marketplace{s.a, s.b}})
	res, err := uc.GetBestListings(mockCtx, registry, ids)
	s.Require().NoError(err)
	s.Contains(res, domain.TokenId("1"))
	s.Nil(res["1"])
}

func (s *listingSuite) TestPanickingMarketplaceIgnored() {
	ids := []domain.TokenId{"1"}
	s.a.On("GetTokenListings", mock.Anything, registry, ids).Run(func(args mock.Arguments) {
		panic("bad adapter")
	}).Return(nil, nil).Once()
	s.b.On("GetTokenListings", mock.Anything, registry, ids).Return(map[domain.TokenId]*listing.TokenListing{
		"1": tokenListing("b", "5"),
	}, nil).Once()

	uc := NewListingUseCase(&ListingUseCaseCfg{Marketplaces: []listing.Marketplace{s.a, s.b}})
	best, err := uc.GetBestListing(mockCtx, registry, "1")
	s.Require().NoError(err)
	s.Equal("b", best.Source)
}

func (s *listingSuite) TestCached() {
	ids := []domain.TokenId{"2", "1"}
	s.a.On("GetTokenListings", mock.Anything, registry, ids).Return(map[domain.TokenId]*listing.TokenListing{
		"1": tokenListing("a", "7"),
		"2": nil,
	}, nil).Once()

	c := cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("listing", 1),
	})
	uc := NewListingUseCase(&ListingUseCaseCfg{Marketplaces: []listing.Marketplace{s.a}, Cache: c})

	for i := 0; i < 2; i++ {
		res, err := uc.GetBestListings(mockCtx, registry, ids)
		s.Require().NoError(err)
		s.Len(res, 2)
		s.Equal("7", res["1"].Value.String())
		s.Nil(res["2"])
	}
}

func (s *listingSuite) TestFailedMarketplaceNotCached() {
	ids := []domain.TokenId{"1"}
	s.a.On("GetTokenListings", mock.Anything, registry, ids).Return(nil, errors.New("timeout")).Once()
	s.a.On("GetTokenListings", mock.Anything, registry, ids).Return(map[domain.TokenId]*listing.TokenListing{
		"1": tokenListing("a", "3"),
	}, nil).Once()
	s.b.On("GetTokenListings", mock.Anything, registry, ids).Return(map[domain.TokenId]*listing.TokenListing{
		"1": tokenListing("b", "5"),
	}, nil).Twice()

	c := cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("listing", 1),
	})
	uc := NewListingUseCase(&ListingUseCaseCfg{Marketplaces: []listing.Marketplace{s.a, s.b}, Cache: c})

	best, err := uc.GetBestListing(mockCtx, registry, "1")
	s.Require().NoError(err)
	s.Require().NotNil(best)
	s.Equal("b", best.Source)

	best, err = uc.GetBestListing(mockCtx, registry, "1")
	s.Require().NoError(err)
	s.Require().NotNil(best)
	s.Equal("a", best.Source)
	s.Equal("3", best.Value.String())

	// both succeeded, the third call is served from the cache
	best, err = uc.GetBestListing(mockCtx, registry, "1")
	s.Require().NoError(err)
	s.Equal("a", best.Source)
}
