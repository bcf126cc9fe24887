package benchmark

import (
	"errors"
	"fmt"
	"time"
)

// now is swapped in tests to make timings deterministic.
var now = time.Now

// Run executes op n times and returns one Duration per call, in call order.
//
// Only the op call itself is timed; per-iteration hooks run outside the
// measured window. SetupAll and CleanupAll run exactly once each, also when
// n is zero. The first error from op or a hook stops the loop and is
// returned together with the durations collected so far. Once SetupAll has
// succeeded, CleanupAll always runs and any error it returns is joined with
// the loop error.
func Run(op func() error, n int, opts Options) (durations []Duration, err error) {
	if n < 0 {
		n = 0
	}

	if opts.SetupAll != nil {
		if err := opts.SetupAll(); err != nil {
			return []Duration{}, fmt.Errorf("setup all: %w", err)
		}
	}

	if opts.CleanupAll != nil {
		defer func() {
			if cerr := opts.CleanupAll(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("cleanup all: %w", cerr))
			}
		}()
	}

	durations = make([]Duration, 0, n)
	for i := 0; i < n; i++ {
		if opts.Setup != nil {
			if err := opts.Setup(); err != nil {
				return durations, fmt.Errorf("setup (iteration %d): %w", i, err)
			}
		}

		start := now()
		opErr := op()
		elapsed := FromTime(now().Sub(start))
		if opErr != nil {
			return durations, fmt.Errorf("iteration %d: %w", i, opErr)
		}

		durations = append(durations, elapsed)
		if opts.Observer != nil {
			opts.Observer(i, elapsed)
		}

		if opts.Cleanup != nil {
			if err := opts.Cleanup(); err != nil {
				return durations, fmt.Errorf("cleanup (iteration %d): %w", i, err)
			}
		}
	}

	return durations, nil
}
