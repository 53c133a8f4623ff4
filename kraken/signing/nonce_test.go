package signing

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceCounterStrictlyIncreasing(t *testing.T) {
	var c NonceCounter
	prev := c.Next()
	for i := 0; i < 10000; i++ {
		next := c.Next()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestNonceCounterConcurrentDistinct(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 2000

	var c NonceCounter
	var wg sync.WaitGroup
	results := make([][]int64, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			out := make([]int64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				out = append(out, c.Next())
			}
			results[g] = out
		}(g)
	}
	wg.Wait()

	all := make([]int64, 0, goroutines*perGoroutine)
	for _, r := range results {
		all = append(all, r...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	for i := 1; i < len(all); i++ {
		assert.NotEqual(t, all[i-1], all[i], "duplicate nonce issued")
	}
}
