package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/gallery/domain"
)

func TestIsValidAddress(t *testing.T) {
	require.True(t, IsValidAddress("0x1a92f7381b9f03921564a437210bb9396471050c"))
	require.True(t, IsValidAddress("0x939ae6A4C8dfDBB1f7085189574F0A938013952A"))
	require.False(t, IsValidAddress("0x000"))
	require.False(t, IsValidAddress("not-an-address"))
	require.False(t, IsValidAddress("0x1234"))
}

type req struct {
	Registry string `validate:"required,address"`
	Limit    int    `validate:"omitempty,min=1,max=100"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(req{Registry: "0x1a92f7381b9f03921564a437210bb9396471050c"}))
	require.ErrorIs(t, Struct(req{}), domain.ErrBadParamInput)
	require.ErrorIs(t, Struct(req{Registry: "0x1a92f7381b9f03921564a437210bb9396471050c", Limit: 101}), domain.ErrBadParamInput)
	require.ErrorIs(t, NewCustomValidator().Validate(req{Registry: "bad"}), domain.ErrBadParamInput)
}
