package ethereum

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/x-xyz/gallery/domain"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	return privateKey, &privateKey.PublicKey, nil
}

// AddressOf is the lowercase account address of key
func AddressOf(key *ecdsa.PublicKey) domain.Address {
	return domain.Address(crypto.PubkeyToAddress(*key).Hex()).ToLower()
}
