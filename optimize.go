package hdr

import (
	"errors"
	"math"
)

// OptimizeSearch finds the HDR of d covering the given fraction of mass by
// asking m for the lower-bound probability b in [0, 1-fraction] that
// minimizes Q(b+fraction) - Q(b). The result is [Q(b*), Q(b*+fraction)].
//
// For a Discrete distribution that implements [CDFer], m works on a
// relaxed quantile that is linear between neighbouring integer mass
// points; the returned bounds are always true quantiles and so are mass
// points of d. Without a CDF the step objective is handed to m as is.
// Either way, discrete results may differ from [GridSearch] by one mass
// point.
//
// Fractions outside [0, 1] fail with a *DomainError, and fractions 0 and 1
// are resolved without calling m, as in [Compute].
func OptimizeSearch(d Distribution, fraction float64, m Minimizer) (Interval, error) {
	if m == nil {
		return Interval{}, errors.New("hdr: nil Minimizer")
	}
	if iv, ok, err := resolveBoundary(d, fraction); err != nil || ok {
		return iv, err
	}

	q := func(p float64) (float64, error) { return quantile(d, p) }
	if d.Kind() == Discrete {
		if c, ok := d.(CDFer); ok {
			q = func(p float64) (float64, error) { return relaxedQuantile(d, c, p) }
		}
	}

	// The first quantile failure is kept and the objective turns flat so the
	// solver winds down; the failure is reported instead of the solver's
	// result.
	var evalErr error
	objective := func(b float64) float64 {
		if evalErr != nil {
			return math.Inf(1)
		}
		lower, err := q(b)
		if err != nil {
			evalErr = err
			return math.Inf(1)
		}
		upper, err := q(b + fraction)
		if err != nil {
			evalErr = err
			return math.Inf(1)
		}
		return upper - lower
	}

	hi := 1 - fraction
	bStar, err := m.Minimize(objective, 0, hi)
	if evalErr != nil {
		return Interval{}, evalErr
	}
	if err != nil {
		var se *SolverError
		if !errors.As(err, &se) {
			err = &SolverError{Err: err}
		}
		return Interval{}, err
	}
	if math.IsNaN(bStar) {
		return Interval{}, &SolverError{Status: "NaN minimizer"}
	}

	br, err := evalBracket(d, math.Max(0, math.Min(hi, bStar)), fraction)
	if err != nil {
		return Interval{}, err
	}
	return br.interval(), nil
}

// relaxedQuantile interpolates the quantile of an integer-valued
// distribution linearly between mass points: for F(k-1) < p <= F(k) it
// returns k-1 + (p-F(k-1))/(F(k)-F(k-1)). It agrees with the true quantile
// at p = F(k) and is continuous and non-decreasing in p.
func relaxedQuantile(d Distribution, c CDFer, p float64) (float64, error) {
	k, err := quantile(d, p)
	if err != nil || math.IsInf(k, 0) {
		return k, err
	}
	hi := c.CDF(k)
	lo := c.CDF(k - 1)
	if hi <= lo {
		return k, nil
	}
	return k - 1 + (math.Max(0, math.Min(1, p))-lo)/(hi-lo), nil
}
