package gallery

import (
	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/token"
)

// ActionUsecase performs the backend writes that need the connected
// account's signature. Without an account they fail with domain.ErrNoAccount.
type ActionUsecase interface {
	SubmitTreasureHunt(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId) error
	FollowUser(c ctx.Ctx, registry, userAddress domain.Address) error
	CreateTokenCustomization(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId, name, description *string) (*token.TokenCustomization, error)
}
