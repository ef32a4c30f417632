package healthcheck

import (
	"time"

	"github.com/x-xyz/gallery/base/ctx"
)

// Status describes what the service currently serves
type Status struct {
	Source     string    `json:"source"`
	FetchedAt  time.Time `json:"fetchedAt"`
	TokenCount int       `json:"tokenCount"`
	// BlockNumber is nil when no rpc node is configured
	BlockNumber *uint64 `json:"blockNumber,omitempty"`
}

type HealthCheckUsecase interface {
	// Check returns the status even when it fails, as far as it got
	Check(c ctx.Ctx) (*Status, error)
}
