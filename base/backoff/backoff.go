package backoff

import (
	"context"
	"time"
)

// Backoff doubles its wait after every Wait, capped at limit
type Backoff struct {
	start    time.Duration
	limit    time.Duration
	next     time.Duration
	attempts int
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.attempts = 0
	b.next = b.start
}

// Attempts is the number of completed waits since Reset
func (b *Backoff) Attempts() int {
	return b.attempts
}

// Next is the duration the next Wait sleeps
func (b *Backoff) Next() time.Duration {
	return b.next
}

// Wait sleeps for Next or until ctx is done, returning ctx.Err() in that case
func (b *Backoff) Wait(ctx context.Context) error {
	timer := time.NewTimer(b.next)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	b.attempts++
	b.next *= 2
	if b.limit > 0 && b.next > b.limit {
		b.next = b.limit
	}
	return nil
}
