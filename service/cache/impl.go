package cache

import (
	"encoding/json"
	"errors"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain/keys"
	"github.com/x-xyz/gallery/service/cache/provider"
)

type impl struct {
	cfg ServiceConfig
}

func New(cfg ServiceConfig) Service {
	if cfg.Serialize == nil {
		cfg.Serialize = json.Marshal
	}
	if cfg.Deserialize == nil {
		cfg.Deserialize = json.Unmarshal
	}
	return &impl{cfg: cfg}
}

func (im *impl) key(key string) string {
	return keys.CacheKey(im.cfg.Pfx, key)
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, load Loader) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	val, err := load()
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("load failed")
		return err
	}

	raw, err := im.cfg.Serialize(val)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	// a failed write only costs the next caller a load
	if err := im.cfg.Cache.Set(c, im.key(key), raw, im.cfg.Ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("cache.Set failed")
	}
	return im.decode(c, key, raw, container)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	raw, _, err := im.cfg.Cache.Get(c, im.key(key))
	if errors.Is(err, provider.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Get failed")
		return err
	}
	return im.decode(c, key, raw, container)
}

func (im *impl) decode(c ctx.Ctx, key string, raw []byte, container interface{}) error {
	if err := im.cfg.Deserialize(raw, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	raw, err := im.cfg.Serialize(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.cfg.Cache.Set(c, im.key(key), raw, im.cfg.Ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if err := im.cfg.Cache.Del(c, im.key(key)); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Del failed")
		return err
	}
	return nil
}
