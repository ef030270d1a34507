package hdr

import (
	"errors"
	"math"
)

// Kind classifies a distribution as continuous or discrete. The
// optimization search builds its objective differently for each.
type Kind int

const (
	Continuous Kind = iota
	Discrete
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	default:
		return "unknown"
	}
}

// Distribution is the capability every input must provide: a quantile
// (inverse CDF) function on [0, 1] and its continuous/discrete tag.
//
// Quantile must be non-decreasing in p. A NaN result is treated as a
// failed evaluation. Implementations are only read during a call and must
// be safe for concurrent use if passed to [Regions].
type Distribution interface {
	Kind() Kind
	Quantile(p float64) (float64, error)
}

// Moder is implemented by distributions that can report their mode.
// Returning an error wrapping [ErrUndefinedStatistic] means the mode is not
// defined for the current parameters, and the median is used instead.
type Moder interface {
	Mode() (float64, error)
}

// Medianer is implemented by distributions that can report their median.
type Medianer interface {
	Median() (float64, error)
}

// Bounded is implemented by distributions that know the bounds of their
// support. Unbounded sides are reported as ±Inf.
type Bounded interface {
	Min() (float64, error)
	Max() (float64, error)
}

// CDFer is implemented by discrete distributions on the integers that
// expose their CDF. The optimization search uses it to relax the step
// quantile function into a continuous one.
type CDFer interface {
	CDF(x float64) float64
}

// quantile evaluates d at p, clamping p into [0, 1] to absorb rounding in
// b+fraction, and converts NaN results into a *QuantileError.
func quantile(d Distribution, p float64) (float64, error) {
	p = math.Max(0, math.Min(1, p))
	q, err := d.Quantile(p)
	if err != nil {
		var qe *QuantileError
		if errors.As(err, &qe) {
			return 0, err
		}
		return 0, &QuantileError{P: p, Err: err}
	}
	if math.IsNaN(q) {
		return 0, &QuantileError{P: p}
	}
	return q, nil
}

// Func adapts plain functions to a Distribution. QuantileFunc is required;
// nil statistic functions are reported as undefined.
type Func struct {
	Type         Kind
	QuantileFunc func(p float64) float64
	ModeFunc     func() float64
	MedianFunc   func() float64
	MinFunc      func() float64
	MaxFunc      func() float64
}

func (f Func) Kind() Kind { return f.Type }

func (f Func) Quantile(p float64) (float64, error) {
	if f.QuantileFunc == nil {
		return 0, errors.New("hdr: Func has no QuantileFunc")
	}
	return f.QuantileFunc(p), nil
}

func (f Func) Mode() (float64, error)   { return callStatistic(f.ModeFunc) }
func (f Func) Median() (float64, error) { return callStatistic(f.MedianFunc) }
func (f Func) Min() (float64, error)    { return callStatistic(f.MinFunc) }
func (f Func) Max() (float64, error)    { return callStatistic(f.MaxFunc) }

func callStatistic(fn func() float64) (float64, error) {
	if fn == nil {
		return 0, ErrUndefinedStatistic
	}
	return fn(), nil
}
