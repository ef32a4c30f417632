package ethereum

import (
	"crypto/ecdsa"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
)

// KeySigner is an AccountProvider backed by a local private key. It signs
// with the personal_sign scheme so ValidateMsgSignature accepts the result.
type KeySigner struct {
	mu        sync.RWMutex
	key       *ecdsa.PrivateKey
	listeners []func([]domain.Address)
}

func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{key: key}
}

// NewKeySignerFromHex accepts the key with or without 0x prefix. An empty
// string yields a signer with no account.
func NewKeySignerFromHex(hexKey string) (*KeySigner, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return NewKeySigner(nil), nil
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, xerrors.Errorf("invalid private key: %w", err)
	}
	return NewKeySigner(key), nil
}

func (s *KeySigner) CurrentAddress(c ctx.Ctx) (*domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return nil, nil
	}
	addr := AddressOf(&s.key.PublicKey)
	return &addr, nil
}

func (s *KeySigner) Sign(c ctx.Ctx, message string) (string, error) {
	s.mu.RLock()
	key := s.key
	s.mu.RUnlock()
	if key == nil {
		return "", domain.ErrNoAccount
	}
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		c.WithField("err", err).Error("crypto.Sign failed")
		return "", xerrors.Errorf("%v: %w", err, domain.ErrSigningFailed)
	}
	// wallets return V as 27/28
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

func (s *KeySigner) OnAccountsChanged(f func([]domain.Address)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, f)
}

// SetKey swaps the account and notifies listeners. A nil key disconnects.
func (s *KeySigner) SetKey(key *ecdsa.PrivateKey) {
	s.mu.Lock()
	s.key = key
	listeners := append([]func([]domain.Address){}, s.listeners...)
	s.mu.Unlock()

	addrs := []domain.Address{}
	if key != nil {
		addrs = append(addrs, AddressOf(&key.PublicKey))
	}
	for _, f := range listeners {
		f(addrs)
	}
}
