package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/gallery/base/ctx"
)

var ErrNotFound = errors.New("cache entry not found")

// Provider stores raw bytes with a ttl. A zero ttl never expires.
type Provider interface {
	// Get returns the remaining ttl along with the value, 0 when it never expires
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
