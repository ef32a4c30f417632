package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/ethereum"
	"github.com/x-xyz/gallery/domain/globals"
	hcdomain "github.com/x-xyz/gallery/domain/healthcheck"
)

const pingTimeout = 2 * time.Second

var ErrNotLoaded = errors.New("collection not loaded")

type impl struct {
	globals globals.Store
	blocks  ethereum.BlockReader
}

// New checks the collection snapshot is loaded and, when blocks is not nil,
// that the rpc node answers
func New(globals globals.Store, blocks ethereum.BlockReader) hcdomain.HealthCheckUsecase {
	return &impl{
		globals: globals,
		blocks:  blocks,
	}
}

func (im *impl) Check(c ctx.Ctx) (*hcdomain.Status, error) {
	snap := im.globals.Current()
	if snap == nil {
		return &hcdomain.Status{}, ErrNotLoaded
	}

	status := &hcdomain.Status{
		Source:    snap.Source,
		FetchedAt: snap.FetchedAt,
	}
	if snap.Index != nil {
		status.TokenCount = len(snap.Index.TokenIds)
	}

	if im.blocks == nil {
		return status, nil
	}

	pingCtx, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	block, err := im.blocks.BlockNumber(pingCtx)
	if err != nil {
		c.WithField("err", err).Error("blocks.BlockNumber failed")
		return status, err
	}
	status.BlockNumber = &block
	return status, nil
}
