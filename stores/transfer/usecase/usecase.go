package usecase

import (
	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/token"
	"github.com/x-xyz/gallery/service/gallery"
)

type impl struct {
	client gallery.Client
}

func NewTransferUseCase(client gallery.Client) token.TransferUsecase {
	return &impl{client}
}

func (im *impl) GetTokenTransfers(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId, viewer *domain.Address) ([]token.LabeledTransfer, error) {
	transfers, err := im.client.GetTokenTransfers(c, registry.ToLower(), tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"registry": registry,
			"tokenId":  tokenId,
			"err":      err,
		}).Error("client.GetTokenTransfers failed")
		return nil, err
	}

	res := make([]token.LabeledTransfer, len(transfers))
	for i, t := range transfers {
		res[i] = token.LabeledTransfer{
			TokenTransfer: t,
			Action:        token.ClassifyTransfer(t, viewer),
		}
	}
	return res, nil
}
