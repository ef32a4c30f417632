package ethereum

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/x-xyz/gallery/base/log"
)

// BlockReader is the part of an ethereum client the gallery needs
type BlockReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// ThrottledClient limits the number of in-flight rpc calls to n
type ThrottledClient struct {
	client BlockReader
	tokens chan int
}

// Dial connects to the rpc endpoint and throttles it to n concurrent calls
func Dial(rpcUrl string, n int) (*ThrottledClient, error) {
	client, err := ethclient.Dial(rpcUrl)
	if err != nil {
		return nil, err
	}
	return NewThrottledClient(client, n), nil
}

func NewThrottledClient(client BlockReader, n int) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledClient{
		client: client,
		tokens: tokens,
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	token, err := c.before(ctx)
	if err != nil {
		return 0, err
	}
	defer c.after(token)
	return c.client.BlockNumber(ctx)
}

func (c *ThrottledClient) before(ctx context.Context) (int, error) {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithField("waited", time.Since(now).String()).Warn("throttle ctx done")
		return 0, ctx.Err()
	case token := <-c.tokens:
		return token, nil
	}
}

func (c *ThrottledClient) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}
