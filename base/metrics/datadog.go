package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gallery/base/log"
)

const (
	defaultPort   = 8125
	defaultBuffer = 10
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	clientMu sync.RWMutex
	client   statsCli = &LogClient{}
)

type Cfg struct {
	// Host of the dogstatsd agent, empty keeps metrics in the debug log
	Host string
	Port int
	// Buffer is the number of metrics batched per packet
	Buffer int
}

// Configure points every Service at the agent described by cfg
func Configure(cfg Cfg) error {
	if cfg.Host == "" {
		log.Log().Info("no datadog host, metrics go to the log")
		setClient(&LogClient{})
		return nil
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Buffer == 0 {
		cfg.Buffer = defaultBuffer
	}
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	cli, err := statsd.NewBuffered(addr, cfg.Buffer)
	if err != nil {
		return xerrors.Errorf("failed to connect datadog agent %s: %w", addr, err)
	}
	log.Log().WithField("addr", addr).Info("reporting metrics to datadog agent")
	setClient(cli)
	return nil
}

func setClient(c statsCli) {
	clientMu.Lock()
	defer clientMu.Unlock()
	client = c
}

func current() statsCli {
	clientMu.RLock()
	defer clientMu.RUnlock()
	return client
}
