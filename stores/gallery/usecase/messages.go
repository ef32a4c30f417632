package usecase

import (
	"fmt"
	"time"

	"github.com/x-xyz/gallery/domain"
)

func treasureHuntMessage(registry domain.Address, tokenId domain.TokenId) string {
	return fmt.Sprintf("I found the treasure!\n\nCollection: %s\nToken: %s", registry, tokenId)
}

func followMessage(registry, userAddress, account domain.Address, at time.Time) string {
	return fmt.Sprintf("Follow %s\n\nCollection: %s\nFollower: %s\nTimestamp: %d", userAddress, registry, account, at.Unix())
}

func customizationMessage(registry domain.Address, tokenId domain.TokenId, name, description *string, blockNumber int64) string {
	return fmt.Sprintf("Customize token %s\n\nCollection: %s\nName: %s\nDescription: %s\nBlock: %d",
		tokenId, registry, orEmpty(name), orEmpty(description), blockNumber)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
