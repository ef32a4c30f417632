package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/x-xyz/gallery/base/decode"
	"golang.org/x/xerrors"
)

var (
	Big0 = big.NewInt(0)
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) IsZero() bool {
	return a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToHexString() (string, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return "", xerrors.Errorf("invalid id %s", i)
	}
	return fmt.Sprintf("%064x", id), nil
}

type TxHash string

type BlockHash string

type SortDir string

const (
	SortDirAsc  SortDir = "ASC"
	SortDirDesc SortDir = "DESC"
)

// BigInt is an arbitrary precision integer serialized as a decimal string.
// The zero value is 0.
type BigInt struct {
	v *big.Int
}

func NewBigInt(v *big.Int) BigInt {
	if v == nil {
		return BigInt{}
	}
	return BigInt{v: new(big.Int).Set(v)}
}

func BigIntFromInt64(v int64) BigInt {
	return BigInt{v: big.NewInt(v)}
}

func ParseBigInt(s string) (BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, xerrors.Errorf("%q: %w", s, ErrInvalidNumberFormat)
	}
	return BigInt{v: v}, nil
}

// MustBigInt panics on malformed input, for constants and tests
func MustBigInt(s string) BigInt {
	b, err := ParseBigInt(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Int returns a copy of the value
func (b BigInt) Int() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.v)
}

func (b BigInt) Cmp(o BigInt) int {
	return b.Int().Cmp(o.Int())
}

func (b BigInt) Sign() int {
	if b.v == nil {
		return 0
	}
	return b.v.Sign()
}

func (b BigInt) String() string {
	if b.v == nil {
		return "0"
	}
	return b.v.String()
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	v, err := decode.Parse(data)
	if err != nil {
		return err
	}
	n, err := decode.ToBigInt(v)
	if err != nil {
		return err
	}
	b.v = n
	return nil
}

// OptBigInt converts a nullable decoded value
func OptBigInt(v *big.Int) *BigInt {
	if v == nil {
		return nil
	}
	b := NewBigInt(v)
	return &b
}

// Addresses converts decoded strings
func Addresses(s []string) []Address {
	res := make([]Address, 0, len(s))
	for _, a := range s {
		res = append(res, Address(a))
	}
	return res
}

// OptAddress converts a nullable decoded string
func OptAddress(s *string) *Address {
	if s == nil {
		return nil
	}
	a := Address(*s)
	return &a
}
