package executils

import (
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

type ParallelOptions struct {
	// Below Threshold items fn runs sequentially on the calling goroutine.
	Threshold int
	// Step is how many items a worker claims at once.
	Step int
	// Workers defaults to runtime.NumCPU().
	Workers int
}

var DefaultParallelOptions = ParallelOptions{
	Threshold: 64,
	Step:      8,
}

// ParallelExec calls fn once for every element of vals and returns when all
// calls are done. Order is not preserved above the threshold.
func ParallelExec[T any](vals []T, opts ParallelOptions, fn func(T)) {
	if len(vals) < opts.Threshold || len(vals) <= 1 {
		for _, v := range vals {
			fn(v)
		}
		return
	}

	step := opts.Step
	if step <= 0 {
		step = 1
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if chunks := (len(vals) + step - 1) / step; workers > chunks {
		workers = chunks
	}

	cursor := atomic.NewInt64(0)
	end := int64(len(vals))

	var wg sync.WaitGroup
	wg.Add(workers)
	for p := 0; p < workers; p++ {
		go func() {
			defer wg.Done()
			for {
				upper := cursor.Add(int64(step))
				lower := upper - int64(step)
				if lower >= end {
					return
				}
				for i := lower; i < upper && i < end; i++ {
					fn(vals[i])
				}
			}
		}()
	}
	wg.Wait()
}
