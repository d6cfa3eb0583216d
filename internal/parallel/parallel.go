// Package parallel splits index ranges across goroutines.
package parallel

import "sync"

// Config controls parallel execution behavior.
type Config struct {
	NumWorkers   int // Goroutines to use. Values <= 1 run sequentially.
	MinChunkSize int // Minimum items per goroutine.
}

// Sequential reports whether cfg runs n items on the calling goroutine.
func (cfg Config) Sequential(n int) bool {
	return cfg.NumWorkers <= 1 || n < 2*max(cfg.MinChunkSize, 1)
}

// ForRange calls f on contiguous, non-overlapping sub-ranges that cover [0, n).
// It returns after every call has finished. Each index belongs to exactly one
// call, so f may write index-owned state without locking.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if cfg.Sequential(n) {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
