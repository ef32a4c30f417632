// Package httpclient issues the outbound json requests of the upstream
// clients with one request id, timeout and failure shape.
package httpclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/base/metrics"
	"github.com/x-xyz/gallery/domain"
)

const (
	HeaderRequestId = "X-Request-Id"
	DefaultTimeout  = 30 * time.Second
)

type Cfg struct {
	HttpClient http.Client
	// Timeout of a whole request, DefaultTimeout when not positive
	Timeout time.Duration
	// Header is sent with every request
	Header http.Header
	// Name prefixes the request metrics
	Name string
}

type Client struct {
	client  http.Client
	timeout time.Duration
	header  http.Header
	mtr     metrics.Service
}

func New(cfg Cfg) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Name == "" {
		cfg.Name = "httpclient"
	}
	return &Client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		header:  cfg.Header.Clone(),
		mtr:     metrics.New(cfg.Name),
	}
}

// Do issues exactly one request and returns the raw body. A non-2xx status
// returns *domain.RequestFailure.
func (c *Client) Do(ctx bCtx.Ctx, method, u string, body []byte) ([]byte, error) {
	defer c.mtr.BumpTime("request.time", "method", method).End()

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestId := uuid.NewString()
	logger := ctx.WithFields(log.Fields{
		"method":    method,
		"url":       u,
		"requestId": requestId,
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		logger.WithField("err", err).Error("NewRequestWithContext failed")
		return nil, err
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set(HeaderRequestId, requestId)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.mtr.BumpSum("request.err", 1, "method", method, "code", "transport")
		logger.WithField("err", err).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithField("err", err).Error("failed to read body")
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.mtr.BumpSum("request.err", 1, "method", method, "code", strconv.Itoa(resp.StatusCode))
		logger.WithFields(log.Fields{
			"statusCode": resp.StatusCode,
			"path":       pathOf(u),
		}).Error("resp.StatusCode not ok")
		return nil, &domain.RequestFailure{
			Method:     method,
			Url:        u,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}
	return data, nil
}

// GetJSON decodes the body of a GET into out
func (c *Client) GetJSON(ctx bCtx.Ctx, u string, out interface{}) error {
	data, err := c.Do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		ctx.WithFields(log.Fields{"url": u, "err": err}).Error("json.Unmarshal failed")
		return err
	}
	return nil
}

func pathOf(u string) string {
	if parsed, err := url.Parse(u); err == nil {
		return parsed.Path
	}
	return u
}
