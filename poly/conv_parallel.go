package poly

import (
	"runtime"
	"sync"
)

// ConvolveParallel computes the same Product as Convolve with the
// outer loop split across worker goroutines. Each worker accumulates
// into its own buffer and the buffers are summed afterwards, so the
// result is bit-identical to the serial version.
func ConvolveParallel(a, b *Polynomial) Product {
	workers := runtime.GOMAXPROCS(0)
	if workers < 2 {
		return Convolve(a, b)
	}
	if workers > N {
		workers = N
	}

	partial := make([]Product, workers)
	chunk := (N + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > N {
			hi = N
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			acc := &partial[w]
			for i := lo; i < hi; i++ {
				ai := a[i].Uint64()
				for j := 0; j < N; j++ {
					acc[i+j] += ai * b[j].Uint64()
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	var c Product
	for w := range partial {
		for i := range c {
			c[i] += partial[w][i]
		}
	}
	return c
}
