/*
Package metrics reports gallery counters and timers to a dogstatsd agent.

Key conventions:
  - process time: *.time
  - upstream latency: *.latency
  - failures: *.err
*/
package metrics

import (
	"sync"
	"time"

	"github.com/x-xyz/gallery/base/env"
	"github.com/x-xyz/gallery/base/log"
)

// TagValueNA fills a tag whose value is missing
const TagValueNA = "n/a"

type Ender interface {
	End()
}

type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	// BumpTime starts a timer, End records it:
	//
	//	defer mtr.BumpTime("request.time").End()
	BumpTime(key string, tags ...string) Ender
}

type Option func(*Metrics)

// WithoutPodName drops the pod tag, which multiplies custom metrics per replica
func WithoutPodName() Option {
	return func(m *Metrics) {
		m.withPod = false
	}
}

// New returns a Service whose keys are prefixed by pkgName
func New(pkgName string, options ...Option) Service {
	m := &Metrics{prefix: pkgName, withPod: true}
	for _, option := range options {
		option(m)
	}
	return m
}

type Metrics struct {
	prefix  string
	withPod bool

	// package level Services are created before the config is read
	tagsOnce sync.Once
	tags     []string
}

func (m *Metrics) baseTags() []string {
	m.tagsOnce.Do(func() {
		// an empty host tag strips the agent host tags
		m.tags = []string{"host:", "env:" + env.EnvName(), "app:" + env.AppName()}
		if m.withPod {
			m.tags = append(m.tags, "pod:"+env.PodName())
		}
	})
	return m.tags
}

func (m *Metrics) key(key string) string {
	return m.prefix + "." + key
}

func (m *Metrics) withTags(tags []string) []string {
	base := m.baseTags()
	out := make([]string, 0, len(base)+len(tags)/2+1)
	out = append(out, base...)
	return append(out, parseTag(tags)...)
}

func (m *Metrics) report(fn string, key string, val interface{}, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": fn}).Error("bump failed")
	}
}

// BumpAvg is reported as a gauge since dogstatsd has no average type
func (m *Metrics) BumpAvg(key string, val float64, tags ...string) {
	k := m.key(key)
	m.report("BumpAvg", k, val, current().Gauge(k, val, m.withTags(tags), 1))
}

func (m *Metrics) BumpSum(key string, val float64, tags ...string) {
	k := m.key(key)
	m.report("BumpSum", k, val, current().Count(k, int64(val), m.withTags(tags), 1))
}

func (m *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	k := m.key(key)
	m.report("BumpHistogram", k, val, current().Histogram(k, val, m.withTags(tags), 1))
}

func (m *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timer{m: m, key: m.key(key), tags: m.withTags(tags), start: time.Now()}
}

type timer struct {
	m     *Metrics
	key   string
	tags  []string
	start time.Time
}

func (t *timer) End() {
	ms := float64(time.Since(t.start)) / float64(time.Millisecond)
	t.m.report("BumpTime", t.key, ms, current().TimeInMilliseconds(t.key, ms, t.tags, 1))
}

// parseTag turns key/value pairs into datadog "key:value" tags. A trailing
// key without value is tagged TagValueNA.
func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	arr := make([]string, 0, (len(tags)+1)/2)
	for i := 0; i < len(tags); i += 2 {
		v := TagValueNA
		if i+1 < len(tags) {
			v = tags[i+1]
		}
		arr = append(arr, tags[i]+":"+v)
	}
	return arr
}
