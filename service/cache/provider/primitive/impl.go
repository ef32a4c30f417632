package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/metrics"
	"github.com/x-xyz/gallery/service/cache/provider"
)

var (
	mtr = metrics.New("cache")
)

// freecache refuses anything smaller
const minSize = 512 * 1024

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	size := sizeMB * 1024 * 1024
	if size < minSize {
		size = minSize
	}
	return &impl{name, freecache.NewCache(size)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		mtr.BumpSum("miss", 1, "name", im.name)
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, 0, err
	}
	mtr.BumpSum("hit", 1, "name", im.name)
	return val, expiresIn(ttl), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, seconds(ttl)); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

// seconds rounds ttl up since freecache treats 0 as no expiry
func seconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	return int((ttl + time.Second - 1) / time.Second)
}

// expiresIn converts the absolute unix expiry of freecache, 0 when none
func expiresIn(expireAt uint32) time.Duration {
	if expireAt == 0 {
		return 0
	}
	d := time.Until(time.Unix(int64(expireAt), 0))
	if d < 0 {
		return 0
	}
	return d
}
