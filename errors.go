package hdr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this package wraps one of these
// (or an error produced by a caller-supplied Distribution or Minimizer), so
// callers can classify failures with errors.Is.
var (
	// ErrDomain reports a mass fraction outside [0, 1].
	ErrDomain = errors.New("hdr: fraction outside [0, 1]")

	// ErrUndefinedStatistic reports that a distribution does not define the
	// mode, median, minimum or maximum needed at a boundary fraction.
	// Distributions return an error wrapping it from an optional capability
	// to signal "not defined for these parameters".
	ErrUndefinedStatistic = errors.New("hdr: statistic undefined")

	// ErrNotConverged reports that a Minimizer stopped before converging or
	// failed internally.
	ErrNotConverged = errors.New("hdr: solver did not converge")

	// ErrQuantile reports a failed quantile evaluation.
	ErrQuantile = errors.New("hdr: quantile evaluation failed")
)

// DomainError is returned when the requested mass fraction is not a
// probability.
type DomainError struct {
	Fraction float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("hdr: fraction must be in [0, 1], got %g", e.Fraction)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// StatisticError is returned when a boundary fraction needs a summary
// statistic the distribution cannot provide.
type StatisticError struct {
	Name string // "mode", "median", "minimum" or "maximum"
	Err  error
}

func (e *StatisticError) Error() string {
	if e.Err == nil || e.Err == ErrUndefinedStatistic {
		return fmt.Sprintf("hdr: %s undefined for distribution", e.Name)
	}
	return fmt.Sprintf("hdr: %s: %v", e.Name, e.Err)
}

func (e *StatisticError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUndefinedStatistic}
	}
	return []error{ErrUndefinedStatistic, e.Err}
}

// QuantileError is returned when a distribution's quantile function fails
// at probability P, either with an error or by producing NaN.
type QuantileError struct {
	P   float64
	Err error
}

func (e *QuantileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("hdr: quantile(%g) is NaN", e.P)
	}
	return fmt.Sprintf("hdr: quantile(%g): %v", e.P, e.Err)
}

func (e *QuantileError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrQuantile}
	}
	return []error{ErrQuantile, e.Err}
}

// SolverError is returned when a Minimizer fails. Status carries the
// solver's own termination reason when it has one.
type SolverError struct {
	Status string
	Err    error
}

func (e *SolverError) Error() string {
	switch {
	case e.Err != nil && e.Status != "":
		return fmt.Sprintf("hdr: solver stopped with status %s: %v", e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("hdr: solver failed: %v", e.Err)
	default:
		return fmt.Sprintf("hdr: solver stopped with status %s", e.Status)
	}
}

func (e *SolverError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNotConverged}
	}
	return []error{ErrNotConverged, e.Err}
}
