package hdr

import (
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultNumSteps is the grid resolution used by [DefaultConfig].
const DefaultNumSteps = 10001

// NormalizeSteps coerces a requested grid size to the one actually used:
// at least 3, and odd so that the midpoint of the bracket range is always
// probed. 1 becomes 3 and 4 becomes 5.
func NormalizeSteps(numSteps int) int {
	numSteps = max(numSteps, 3)
	if numSteps%2 == 0 {
		numSteps++
	}
	return numSteps
}

// gridProbabilities returns n probabilities evenly spaced over [0, hi],
// both endpoints included. Each point is computed as hi*(i/(n-1)) so that
// for odd n the middle point is exactly hi/2.
func gridProbabilities(hi float64, n int) []float64 {
	ps := make([]float64, n)
	last := float64(n - 1)
	for i := range ps {
		ps[i] = hi * (float64(i) / last)
	}
	ps[n-1] = hi
	return ps
}

// GridSearch finds the HDR of d covering the given fraction of mass by
// scanning NormalizeSteps(numSteps) lower-bound probabilities evenly spaced
// over [0, 1-fraction] and keeping the narrowest bracket. Ties go to the
// smallest lower-bound probability.
//
// Fractions outside [0, 1] fail with a *DomainError, and fractions 0 and 1
// are resolved without a scan, as in [Compute].
//
// When the width profile of a smooth continuous distribution has more than
// one local minimum, a warning is written with the standard log package;
// use log.SetOutput to redirect or silence it.
func GridSearch(d Distribution, fraction float64, numSteps int) (Interval, error) {
	if iv, ok, err := resolveBoundary(d, fraction); err != nil || ok {
		return iv, err
	}

	n := NormalizeSteps(numSteps)
	ps := gridProbabilities(1-fraction, n)

	brackets := make([]bracket, n)
	widths := make([]float64, n)
	for i, p := range ps {
		b, err := evalBracket(d, p, fraction)
		if err != nil {
			return Interval{}, err
		}
		brackets[i] = b
		widths[i] = b.width()
	}

	if warnMultimodal(d) && localMinima(widths) > 1 {
		log.Printf("hdr: width profile has multiple local minima (distribution may be multimodal); result may not be the HDR")
	}

	// MinIdx returns the first index on ties.
	return brackets[floats.MinIdx(widths)].interval(), nil
}

// stepQuantiler is implemented by continuous distributions whose quantile
// function is a step function, such as [Empirical]. Their width profile is
// jagged even for unimodal data.
type stepQuantiler interface {
	stepQuantile()
}

// warnMultimodal reports whether the width profile of d is smooth enough
// for its local minima to indicate multiple modes.
func warnMultimodal(d Distribution) bool {
	if d.Kind() != Continuous {
		return false
	}
	_, step := d.(stepQuantiler)
	return !step
}

// plateauTol is the relative difference below which neighbouring widths
// are treated as equal when counting local minima.
const plateauTol = 1e-10

// localMinima counts strict local minima of w, treating runs of (nearly)
// equal values as a single point. The width profile of a unimodal
// continuous distribution has at most one.
func localMinima(w []float64) int {
	vals := make([]float64, 0, len(w))
	for _, x := range w {
		if len(vals) > 0 && nearlyEqual(x, vals[len(vals)-1]) {
			continue
		}
		vals = append(vals, x)
	}

	count := 0
	for i, x := range vals {
		leftHigher := i == 0 || vals[i-1] > x
		rightHigher := i == len(vals)-1 || vals[i+1] > x
		if leftHigher && rightHigher {
			count++
		}
	}
	return count
}

func nearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= plateauTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
