package hdr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Minimizer finds an argument minimizing a scalar function over the closed
// interval [lower, upper]. It is the only contract the optimization search
// needs from a solver. Implementations report non-convergence as an error;
// the search does not retry.
type Minimizer interface {
	Minimize(f func(x float64) float64, lower, upper float64) (float64, error)
}

// Default golden-section settings.
const (
	DefaultRelTol        = 1e-4
	DefaultMaxIterations = 200
)

// invPhi is 1/φ, the golden-section shrink factor.
var invPhi = (math.Sqrt(5) - 1) / 2

// GoldenSection is a bracketed golden-section search. It assumes the
// objective is unimodal on the interval, which holds for interval width
// as a function of the lower-bound probability when the distribution is
// unimodal. Both endpoints are also evaluated, so objectives minimized at
// the edge of the interval (monotone densities) are resolved exactly.
type GoldenSection struct {
	// RelTol stops the search once the bracket is narrower than
	// RelTol*(upper-lower). Default: DefaultRelTol.
	RelTol float64

	// MaxIterations bounds the number of bracket reductions. Reaching it
	// before RelTol is met is reported as non-convergence.
	// Default: DefaultMaxIterations.
	MaxIterations int
}

// Minimize implements [Minimizer].
func (g GoldenSection) Minimize(f func(float64) float64, lower, upper float64) (float64, error) {
	relTol := g.RelTol
	if relTol <= 0 {
		relTol = DefaultRelTol
	}
	maxIter := g.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return 0, &SolverError{Err: fmt.Errorf("invalid bounds [%g, %g]", lower, upper)}
	}
	if lower == upper {
		return lower, nil
	}

	tol := relTol * (upper - lower)
	a, b := lower, upper
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)

	for k := 0; b-a > tol; k++ {
		if k == maxIter {
			return 0, &SolverError{Status: "IterationLimit"}
		}
		if fc <= fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}

	x, fx := c, fc
	if fd < fc {
		x, fx = d, fd
	}
	if fl := f(lower); fl <= fx {
		x, fx = lower, fl
	}
	if fu := f(upper); fu < fx {
		x = upper
	}
	return x, nil
}

// GonumMinimizer minimizes with gonum's optimize package. gonum methods are
// unconstrained, so the argument is clamped into [lower, upper] before the
// objective sees it.
type GonumMinimizer struct {
	// Method is the gonum method to run. It must work from function values
	// alone. nil uses a fresh *optimize.NelderMead per call. A non-nil
	// Method carries state and must not be shared by concurrent calls.
	Method optimize.Method

	// Settings is passed to optimize.Minimize unchanged; nil uses gonum's
	// defaults. A Converger in Settings carries state, so non-nil Settings
	// must not be shared by concurrent calls either.
	Settings *optimize.Settings
}

// Minimize implements [Minimizer].
func (g GonumMinimizer) Minimize(f func(float64) float64, lower, upper float64) (float64, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return 0, &SolverError{Err: fmt.Errorf("invalid bounds [%g, %g]", lower, upper)}
	}
	if lower == upper {
		return lower, nil
	}
	clamp := func(x float64) float64 {
		return math.Max(lower, math.Min(upper, x))
	}

	method := g.Method
	if method == nil {
		// Keep the initial simplex inside the bounds; gonum's default size is
		// absolute and can overshoot a short interval.
		method = &optimize.NelderMead{SimplexSize: (upper - lower) / 4}
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 { return f(clamp(x[0])) },
	}

	result, err := optimize.Minimize(problem, []float64{(lower + upper) / 2}, g.Settings, method)
	if err != nil {
		se := &SolverError{Err: err}
		if result != nil {
			se.Status = fmt.Sprint(result.Status)
		}
		return 0, se
	}
	switch result.Status {
	case optimize.Failure, optimize.IterationLimit, optimize.RuntimeLimit,
		optimize.FunctionEvaluationLimit:
		return 0, &SolverError{Status: fmt.Sprint(result.Status)}
	}
	return clamp(result.X[0]), nil
}
