package hdr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Regions computes the HDR of d for each fraction using cfg, running up to
// cfg.Workers computations at once. The result is in the order of
// fractions. The first failure cancels the fractions not yet started and
// is returned; no partial result is returned with it.
//
// Each region is computed exactly as [Compute] would, so the intervals
// are identical to sequential calls. d and cfg.Minimizer are shared by all
// workers and must be safe for concurrent use. The distributions in this
// package, GoldenSection, and a GonumMinimizer with nil Method and Settings
// are.
func Regions(ctx context.Context, d Distribution, fractions []float64, cfg Config) ([]Interval, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	// Reject bad fractions up front so that no work starts.
	for _, f := range fractions {
		if err := checkFraction(f); err != nil {
			return nil, err
		}
	}

	result := make([]Interval, len(fractions))
	if len(fractions) == 0 {
		return result, nil
	}

	// Each worker writes only its own slot, so no synchronization is
	// needed for result.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, f := range fractions {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			iv, err := Compute(d, f, cfg)
			if err != nil {
				return err
			}
			result[i] = iv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
