package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/service/cache/provider"
)

var ErrNotFound = errors.New("cache entry not found")

// Loader produces the value to cache on a miss
type Loader func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service caches typed values on top of a byte Provider. Keys are prefixed
// with Pfx and values are json encoded unless a codec is configured.
type Service interface {
	// GetByFunc decodes the cached value into container or, on a miss, runs
	// load and caches its result. A hit and a miss fill container the same way.
	GetByFunc(c ctx.Ctx, key string, container interface{}, load Loader) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
