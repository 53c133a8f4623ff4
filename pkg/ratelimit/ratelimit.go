package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrLimitExceeded is returned by Charge when the counter has no room
// for the requested cost.
var ErrLimitExceeded = errors.New("ratelimit: API counter limit exceeded")

// Counter models the exchange's per-account API counter: every call
// adds its cost, and the counter decays at a fixed rate per second.
// Calls that would push the counter over the limit are refused (or
// delayed, via Wait). The counter paces calls only; it never retries
// them.
type Counter struct {
	mu          sync.Mutex
	counter     float64
	limit       float64
	decayPerSec float64
	lastUpdate  time.Time
}

// NewCounter creates a counter with the given ceiling and decay rate.
// Kraken starter accounts use limit 15 with 0.33/s decay; intermediate
// and pro tiers use 20 with 0.5/s and 1/s.
func NewCounter(limit, decayPerSec float64) *Counter {
	return &Counter{
		limit:       limit,
		decayPerSec: decayPerSec,
		lastUpdate:  time.Now(),
	}
}

// decay applies elapsed-time decay. Callers must hold mu.
func (c *Counter) decay() {
	now := time.Now()
	elapsed := now.Sub(c.lastUpdate).Seconds()
	c.counter -= elapsed * c.decayPerSec
	if c.counter < 0 {
		c.counter = 0
	}
	c.lastUpdate = now
}

// Charge adds cost to the counter, or returns ErrLimitExceeded without
// charging when there is no room.
func (c *Counter) Charge(cost int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decay()
	if c.counter+float64(cost) > c.limit {
		return ErrLimitExceeded
	}
	c.counter += float64(cost)
	return nil
}

// Wait blocks until cost can be charged, then charges it. It respects
// context cancellation.
func (c *Counter) Wait(ctx context.Context, cost int) error {
	for {
		c.mu.Lock()
		c.decay()
		need := c.counter + float64(cost) - c.limit
		if need <= 0 {
			c.counter += float64(cost)
			c.mu.Unlock()
			return nil
		}
		wait := 100 * time.Millisecond
		if c.decayPerSec > 0 {
			wait = time.Duration(need/c.decayPerSec*float64(time.Second)) + 10*time.Millisecond
		}
		c.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Remaining reports how much headroom the counter has right now.
func (c *Counter) Remaining() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decay()
	return c.limit - c.counter
}
