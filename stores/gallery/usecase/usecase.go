package usecase

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/ethereum"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/endpoint"
	"github.com/x-xyz/gallery/domain/gallery"
	"github.com/x-xyz/gallery/domain/token"
	galleryClient "github.com/x-xyz/gallery/service/gallery"
)

type ActionUseCaseCfg struct {
	Client  galleryClient.Client
	Account domain.AccountProvider
	// Blocks stamps customizations with the current block number
	Blocks ethereum.BlockReader
}

type impl struct {
	client  galleryClient.Client
	account domain.AccountProvider
	blocks  ethereum.BlockReader
	now     func() time.Time
}

func NewActionUseCase(cfg *ActionUseCaseCfg) gallery.ActionUsecase {
	return &impl{
		client:  cfg.Client,
		account: cfg.Account,
		blocks:  cfg.Blocks,
		now:     time.Now,
	}
}

func (im *impl) currentAccount(c ctx.Ctx) (domain.Address, error) {
	addr, err := im.account.CurrentAddress(c)
	if err != nil {
		c.WithField("err", err).Error("account.CurrentAddress failed")
		return "", err
	}
	if addr == nil {
		return "", domain.ErrNoAccount
	}
	return *addr, nil
}

// sign signs message as account and checks the signature recovers to it
func (im *impl) sign(c ctx.Ctx, account domain.Address, message string) (string, error) {
	sig, err := im.account.Sign(c, message)
	if err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("account.Sign failed")
		if xerrors.Is(err, domain.ErrNoAccount) || xerrors.Is(err, domain.ErrSigningFailed) {
			return "", err
		}
		return "", xerrors.Errorf("%v: %w", err, domain.ErrSigningFailed)
	}

	if ok, err := ethereum.ValidateMsgSignature([]byte(message), sig, string(account)); err != nil || !ok {
		c.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("invalid signature")
		return "", xerrors.Errorf("signature does not match %s: %w", account, domain.ErrInvalidSignature)
	}

	return sig, nil
}

func (im *impl) SubmitTreasureHunt(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId) error {
	registry = registry.ToLower()

	account, err := im.currentAccount(c)
	if err != nil {
		return err
	}

	sig, err := im.sign(c, account, treasureHuntMessage(registry, tokenId))
	if err != nil {
		return err
	}

	req, err := endpoint.NewSubmitTreasureHuntRequest(registry, tokenId, account, sig)
	if err != nil {
		return err
	}

	if err := im.client.SubmitTreasureHunt(c, req); err != nil {
		c.WithFields(log.Fields{
			"registry": registry,
			"tokenId":  tokenId,
			"err":      err,
		}).Error("client.SubmitTreasureHunt failed")
		return err
	}
	return nil
}

func (im *impl) FollowUser(c ctx.Ctx, registry, userAddress domain.Address) error {
	registry = registry.ToLower()
	userAddress = userAddress.ToLower()

	account, err := im.currentAccount(c)
	if err != nil {
		return err
	}

	message := followMessage(registry, userAddress, account, im.now())
	sig, err := im.sign(c, account, message)
	if err != nil {
		return err
	}

	req, err := endpoint.NewFollowUserRequest(registry, userAddress, account, message, sig)
	if err != nil {
		return err
	}

	if err := im.client.FollowUser(c, req); err != nil {
		c.WithFields(log.Fields{
			"registry": registry,
			"user":     userAddress,
			"err":      err,
		}).Error("client.FollowUser failed")
		return err
	}
	return nil
}

func (im *impl) CreateTokenCustomization(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId, name, description *string) (*token.TokenCustomization, error) {
	registry = registry.ToLower()

	account, err := im.currentAccount(c)
	if err != nil {
		return nil, err
	}

	blockNumber, err := im.blocks.BlockNumber(c)
	if err != nil {
		c.WithField("err", err).Error("blocks.BlockNumber failed")
		return nil, err
	}

	sig, err := im.sign(c, account, customizationMessage(registry, tokenId, name, description, int64(blockNumber)))
	if err != nil {
		return nil, err
	}

	req, err := endpoint.NewCreateTokenCustomizationRequest(registry, tokenId, account, sig, int64(blockNumber), name, description)
	if err != nil {
		return nil, err
	}

	res, err := im.client.CreateTokenCustomization(c, req)
	if err != nil {
		c.WithFields(log.Fields{
			"registry": registry,
			"tokenId":  tokenId,
			"err":      err,
		}).Error("client.CreateTokenCustomization failed")
		return nil, err
	}
	return res, nil
}
