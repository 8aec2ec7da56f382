// Package parallel splits flat buffer loops into chunks for worker goroutines.
package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
// Elementwise kernels are memory bound, so chunks are large.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1 << 15,
	}
}

// Sequential returns a config that never spawns goroutines.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// chunkSize returns the span per worker, or n when the loop should stay
// on the calling goroutine.
func (cfg Config) chunkSize(n int) int {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2*cfg.MinChunkSize {
		return n
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
}

// Range calls f(lo, hi) over consecutive half-open spans covering [0, n).
// All spans have completed when Range returns.
func Range(n int, cfg Config, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	chunk := cfg.chunkSize(n)
	if chunk >= n {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// RangeErr is Range for spans that can fail. It returns the first error
// reported by any span after all spans have finished.
func RangeErr(n int, cfg Config, f func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	chunk := cfg.chunkSize(n)
	if chunk >= n {
		return f(0, n)
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		g.Go(func() error {
			return f(start, end)
		})
	}
	return g.Wait()
}
