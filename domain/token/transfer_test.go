package token

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/gallery/domain"
)

func TestClassifyTransfer(t *testing.T) {
	alice := domain.Address("0xA11CE00000000000000000000000000000000000")
	bob := domain.Address("0xb0b0000000000000000000000000000000000000")
	aliceLower := alice.ToLower()

	cases := []struct {
		name     string
		transfer TokenTransfer
		viewer   *domain.Address
		want     TransferAction
	}{
		{
			name:     "swap wins over mint",
			transfer: TokenTransfer{FromAddress: domain.EmptyAddress, ToAddress: bob, IsSwap: true},
			want:     TransferActionSwapped,
		},
		{
			name:     "multi address wins over burn",
			transfer: TokenTransfer{FromAddress: alice, ToAddress: domain.EmptyAddress, IsMultiAddress: true},
			want:     TransferActionSwapped,
		},
		{
			name:     "mint wins over burn and zero value",
			transfer: TokenTransfer{FromAddress: domain.EmptyAddress, ToAddress: domain.EmptyAddress},
			want:     TransferActionMinted,
		},
		{
			name:     "burn wins over zero value",
			transfer: TokenTransfer{FromAddress: alice, ToAddress: domain.EmptyAddress},
			viewer:   &alice,
			want:     TransferActionBurned,
		},
		{
			name:     "zero value sent by viewer",
			transfer: TokenTransfer{FromAddress: alice, ToAddress: bob, Value: domain.BigIntFromInt64(0)},
			viewer:   &aliceLower,
			want:     TransferActionGave,
		},
		{
			name:     "zero value received by viewer",
			transfer: TokenTransfer{FromAddress: alice, ToAddress: bob},
			viewer:   &bob,
			want:     TransferActionGiven,
		},
		{
			name:     "zero value without viewer",
			transfer: TokenTransfer{FromAddress: alice, ToAddress: bob},
			want:     TransferActionGiven,
		},
		{
			name:     "paid transfer sent by viewer",
			transfer: TokenTransfer{FromAddress: alice, ToAddress: bob, Value: domain.MustBigInt("1000000000000000000")},
			viewer:   &alice,
			want:     TransferActionSold,
		},
		{
			name:     "paid transfer received by viewer",
			transfer: TokenTransfer{FromAddress: alice, ToAddress: bob, Value: domain.MustBigInt("1")},
			viewer:   &bob,
			want:     TransferActionBought,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, ClassifyTransfer(c.transfer, c.viewer))
		})
	}
}
