package hdr

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// SearchMethod selects how a non-trivial HDR is searched for.
type SearchMethod string

const (
	// MethodGrid scans a fixed, evenly spaced set of lower-bound
	// probabilities. See [GridSearch].
	MethodGrid SearchMethod = "grid"

	// MethodOptimize minimizes interval width with a [Minimizer].
	// See [OptimizeSearch].
	MethodOptimize SearchMethod = "optimize"
)

// Config controls how Compute and Regions search for an HDR.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Method selects the grid scan or the optimizer. Exactly one is used
	// per call. Default: MethodGrid.
	Method SearchMethod

	// NumSteps is the number of grid points over [0, 1-fraction]. It is
	// raised to at least 3 and rounded up to odd, see [NormalizeSteps].
	// Only used by MethodGrid. Must be >= 0; 0 means DefaultNumSteps.
	NumSteps int

	// Minimizer is the solver used by MethodOptimize.
	// Default: GoldenSection with DefaultRelTol.
	Minimizer Minimizer

	// Workers bounds the number of regions Regions computes concurrently.
	// 0 means runtime.NumCPU(). Must be >= 0.
	Workers int
}

// DefaultConfig returns a Config using the grid scan at DefaultNumSteps.
func DefaultConfig() Config {
	return Config{
		Method:    MethodGrid,
		NumSteps:  DefaultNumSteps,
		Minimizer: GoldenSection{RelTol: DefaultRelTol, MaxIterations: DefaultMaxIterations},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Method == "" {
		cfg.Method = MethodGrid
	}
	if cfg.NumSteps == 0 {
		cfg.NumSteps = DefaultNumSteps
	}
	if cfg.Minimizer == nil {
		cfg.Minimizer = GoldenSection{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Method {
	case MethodGrid, MethodOptimize:
	default:
		return fmt.Errorf("hdr: invalid Method %q", cfg.Method)
	}
	if cfg.NumSteps < 0 {
		return fmt.Errorf("hdr: NumSteps must be >= 0 (0 means default), got %d", cfg.NumSteps)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("hdr: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	return nil
}

// Compute returns the highest density region of d containing the given
// fraction of its probability mass: the shortest interval [a, b] with
// P(a <= X <= b) = fraction, assuming d is unimodal.
//
// Fraction 0 yields the point [mode, mode] (the median if the mode is
// undefined) and fraction 1 the support [min, max]; neither searches.
// Fractions outside [0, 1] fail with a *DomainError. Any other fraction is
// searched with cfg.Method.
//
// For multimodal distributions no error is returned, but the result is
// not guaranteed to be the HDR.
func Compute(d Distribution, fraction float64, cfg Config) (Interval, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return Interval{}, err
	}
	if d == nil {
		return Interval{}, errors.New("hdr: nil Distribution")
	}

	// Both engines validate the fraction and resolve 0 and 1 themselves.
	switch cfg.Method {
	case MethodOptimize:
		return OptimizeSearch(d, fraction, cfg.Minimizer)
	default:
		return GridSearch(d, fraction, cfg.NumSteps)
	}
}

// Grid is Compute with the grid scan at NormalizeSteps(numSteps) points.
func Grid(d Distribution, fraction float64, numSteps int) (Interval, error) {
	return Compute(d, fraction, Config{Method: MethodGrid, NumSteps: NormalizeSteps(numSteps)})
}

// Optimize is Compute with the optimization search using m. A nil m uses
// GoldenSection with its defaults.
func Optimize(d Distribution, fraction float64, m Minimizer) (Interval, error) {
	return Compute(d, fraction, Config{Method: MethodOptimize, Minimizer: m})
}

// Coverage returns the probability mass of iv under a distribution with
// the given CDF: cdf(Upper) - cdf(Lower) for continuous distributions and
// cdf(Upper) - cdf(Lower-1) for integer-valued discrete ones.
func Coverage(cdf func(float64) float64, kind Kind, iv Interval) float64 {
	lo := cdf(iv.Lower)
	if kind == Discrete {
		lo = cdf(iv.Lower - 1)
	}
	return math.Max(0, cdf(iv.Upper)-lo)
}
