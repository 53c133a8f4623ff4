package signing

import (
	"sync/atomic"
	"time"
)

// NonceCounter issues strictly increasing nonces for one session.
// The value starts from the wall clock in milliseconds and is bumped
// past the last issued value whenever callers outpace the clock, so
// concurrent private calls never observe a duplicate. A consumed nonce
// is never handed out again, even if the call it was minted for is
// later aborted.
//
// The zero value is ready to use. Counters must not be shared between
// sessions with different credentials.
type NonceCounter struct {
	last atomic.Int64
}

// Next returns the next nonce. It never fails.
func (n *NonceCounter) Next() int64 {
	for {
		prev := n.last.Load()
		next := time.Now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if n.last.CompareAndSwap(prev, next) {
			return next
		}
	}
}
