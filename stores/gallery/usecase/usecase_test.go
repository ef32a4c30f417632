package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/ethereum"
	"github.com/x-xyz/gallery/base/ptr"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/endpoint"
	"github.com/x-xyz/gallery/domain/token"
	"github.com/x-xyz/gallery/service/gallery/mocks"
)

const registry = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")

var mockCtx = ctx.Background()

type fixedBlocks uint64

func (b fixedBlocks) BlockNumber(context.Context) (uint64, error) {
	return uint64(b), nil
}

type failingBlocks struct{}

func (failingBlocks) BlockNumber(context.Context) (uint64, error) {
	return 0, errors.New("rpc down")
}

// fakeAccount signs with its own function
type fakeAccount struct {
	addr domain.Address
	sign func(string) (string, error)
}

func (a *fakeAccount) CurrentAddress(ctx.Ctx) (*domain.Address, error) {
	return &a.addr, nil
}

func (a *fakeAccount) Sign(_ ctx.Ctx, message string) (string, error) {
	return a.sign(message)
}

func (a *fakeAccount) OnAccountsChanged(func([]domain.Address)) {}

type actionSuite struct {
	suite.Suite
	client  *mocks.Client
	signer  *ethereum.KeySigner
	account domain.Address
}

func TestActionSuite(t *testing.T) {
	suite.Run(t, new(actionSuite))
}

func (s *actionSuite) SetupTest() {
	s.client = mocks.NewClient(s.T())
	key, _, err := ethereum.GenerateKey()
	s.Require().NoError(err)
	s.signer = ethereum.NewKeySigner(key)
	addr, err := s.signer.CurrentAddress(mockCtx)
	s.Require().NoError(err)
	s.account = *addr
}

func (s *actionSuite) newUseCase(account domain.AccountProvider) *impl {
	im := NewActionUseCase(&ActionUseCaseCfg{
		Client:  s.client,
		Account: account,
		Blocks:  fixedBlocks(15000000),
	}).(*impl)
	im.now = func() time.Time { return time.Unix(1660000000, 0) }
	return im
}

func (s *actionSuite) validSignature(message, sig string) bool {
	ok, err := ethereum.ValidateMsgSignature([]byte(message), sig, string(s.account))
	return err == nil && ok
}

func (s *actionSuite) TestSubmitTreasureHunt() {
	s.client.On("SubmitTreasureHunt", mock.Anything, mock.MatchedBy(func(req *endpoint.SubmitTreasureHuntRequest) bool {
		return req.RegistryAddress == registry &&
			req.TokenId == "42" &&
			req.UserAddress == s.account &&
			s.validSignature(treasureHuntMessage(registry, "42"), req.Signature)
	})).Return(nil).Once()

	s.NoError(s.newUseCase(s.signer).SubmitTreasureHunt(mockCtx, registry, "42"))
}

func (s *actionSuite) TestSubmitTreasureHuntBackendFailed() {
	s.client.On("SubmitTreasureHunt", mock.Anything, mock.Anything).Return(&domain.RequestFailure{StatusCode: 409}).Once()

	err := s.newUseCase(s.signer).SubmitTreasureHunt(mockCtx, registry, "42")
	s.ErrorIs(err, domain.ErrRequestFailed)
}

func (s *actionSuite) TestNoAccount() {
	signer, err := ethereum.NewKeySignerFromHex("")
	s.Require().NoError(err)
	uc := s.newUseCase(signer)

	s.ErrorIs(uc.SubmitTreasureHunt(mockCtx, registry, "42"), domain.ErrNoAccount)
	s.ErrorIs(uc.FollowUser(mockCtx, registry, s.account), domain.ErrNoAccount)
	_, err = uc.CreateTokenCustomization(mockCtx, registry, "42", ptr.String("name"), nil)
	s.ErrorIs(err, domain.ErrNoAccount)
}

func (s *actionSuite) TestSigningFailed() {
	uc := s.newUseCase(&fakeAccount{
		addr: s.account,
		sign: func(string) (string, error) { return "", errors.New("user rejected") },
	})

	s.ErrorIs(uc.SubmitTreasureHunt(mockCtx, registry, "42"), domain.ErrSigningFailed)
}

func (s *actionSuite) TestSignatureOfAnotherAccount() {
	key, _, err := ethereum.GenerateKey()
	s.Require().NoError(err)
	other := ethereum.NewKeySigner(key)

	uc := s.newUseCase(&fakeAccount{
		addr: s.account,
		sign: func(message string) (string, error) { return other.Sign(mockCtx, message) },
	})
	s.ErrorIs(uc.SubmitTreasureHunt(mockCtx, registry, "42"), domain.ErrInvalidSignature)

	uc = s.newUseCase(&fakeAccount{
		addr: s.account,
		sign: func(string) (string, error) { return "0xzz", nil },
	})
	s.ErrorIs(uc.SubmitTreasureHunt(mockCtx, registry, "42"), domain.ErrInvalidSignature)
}

func (s *actionSuite) TestFollowUser() {
	user := domain.Address("0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B")
	message := followMessage(registry, user.ToLower(), s.account, time.Unix(1660000000, 0))

	s.client.On("FollowUser", mock.Anything, mock.MatchedBy(func(req *endpoint.FollowUserRequest) bool {
		return req.UserAddress == user.ToLower() &&
			req.Account == s.account &&
			req.SignatureMessage == message &&
			s.validSignature(message, req.Signature)
	})).Return(nil).Once()

	s.NoError(s.newUseCase(s.signer).FollowUser(mockCtx, registry, user))
}

func (s *actionSuite) TestCreateTokenCustomization() {
	name := ptr.String("Sunny")
	message := customizationMessage(registry, "42", name, nil, 15000000)
	want := &token.TokenCustomization{
		RegistryAddress: registry,
		TokenId:         "42",
		CreatorAddress:  s.account,
		Name:            name,
	}

	s.client.On("CreateTokenCustomization", mock.Anything, mock.MatchedBy(func(req *endpoint.CreateTokenCustomizationRequest) bool {
		return req.BlockNumber == 15000000 &&
			req.CreatorAddress == s.account &&
			*req.Name == "Sunny" &&
			req.Description == nil &&
			s.validSignature(message, req.Signature)
	})).Return(want, nil).Once()

	got, err := s.newUseCase(s.signer).CreateTokenCustomization(mockCtx, registry, "42", name, nil)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *actionSuite) TestCreateTokenCustomizationNoBlock() {
	uc := s.newUseCase(s.signer)
	uc.blocks = failingBlocks{}

	_, err := uc.CreateTokenCustomization(mockCtx, registry, "42", ptr.String("Sunny"), nil)
	s.Error(err)
}
