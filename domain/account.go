package domain

import "github.com/x-xyz/gallery/base/ctx"

// AccountProvider is the wallet capability the data layer depends on. It
// knows the connected address and can sign a text message with it.
type AccountProvider interface {
	// CurrentAddress returns nil when no account is connected
	CurrentAddress(c ctx.Ctx) (*Address, error)
	// Sign returns the hex encoded personal_sign signature of message
	Sign(c ctx.Ctx, message string) (string, error)
	OnAccountsChanged(func([]Address))
}
