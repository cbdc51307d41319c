// Package queue provides the process-wide admission gate bounding
// concurrent alert-processing runs.
package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrQueueTimeout is returned when no processing slot frees up within
// the configured wait window.
var ErrQueueTimeout = errors.New("queue timeout: no processing slot became available")

// Gate caps the number of concurrently active runs. Excess callers wait
// up to the configured timeout, then fail instead of blocking forever.
type Gate struct {
	slots   chan struct{}
	timeout time.Duration
	waiting atomic.Int64
}

// NewGate creates a gate admitting at most maxConcurrent runs at once.
func NewGate(maxConcurrent int, timeout time.Duration) *Gate {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Gate{
		slots:   make(chan struct{}, maxConcurrent),
		timeout: timeout,
	}
}

// Acquire claims a processing slot. The returned release function is
// idempotent. Fails with ErrQueueTimeout when the wait window elapses,
// or the context's error when the caller goes away first.
func (g *Gate) Acquire(ctx context.Context) (func(), error) {
	g.waiting.Add(1)
	defer g.waiting.Add(-1)

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case g.slots <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() { <-g.slots })
		}, nil
	case <-timer.C:
		return nil, ErrQueueTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stats is an occupancy snapshot for health reporting.
type Stats struct {
	MaxConcurrent int   `json:"max_concurrent"`
	Active        int   `json:"active"`
	Waiting       int64 `json:"waiting"`
}

// Stats returns the current gate occupancy.
func (g *Gate) Stats() Stats {
	return Stats{
		MaxConcurrent: cap(g.slots),
		Active:        len(g.slots),
		Waiting:       g.waiting.Load(),
	}
}
