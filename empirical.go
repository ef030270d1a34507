package hdr

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Empirical is the distribution of a finite sample, such as draws from a
// posterior. Quantiles follow stats.Percentile: values between order
// statistics are averaged, and probabilities below 1/n map to the sample
// minimum.
type Empirical struct {
	data stats.Float64Data
}

var _ Distribution = (*Empirical)(nil)

// NewEmpirical returns the empirical distribution of samples. The samples
// are copied; NaN values are rejected.
func NewEmpirical(samples []float64) (*Empirical, error) {
	if len(samples) == 0 {
		return nil, errors.New("hdr: empirical distribution needs at least one sample")
	}
	data := make(stats.Float64Data, len(samples))
	for i, x := range samples {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("hdr: sample %d is NaN", i)
		}
		data[i] = x
	}
	// Percentile sorts a copy on every call; keep that copy already ordered.
	sort.Float64s(data)
	return &Empirical{data: data}, nil
}

func (e *Empirical) Kind() Kind { return Continuous }

// Len returns the sample size.
func (e *Empirical) Len() int { return e.data.Len() }

func (e *Empirical) Quantile(p float64) (float64, error) {
	if p*float64(e.data.Len()) < 1 {
		return stats.Min(e.data)
	}
	q, err := stats.Percentile(e.data, p*100)
	if errors.Is(err, stats.ErrBounds) && p > 0 && p <= 1 {
		// Percentile recomputes the rank as (p*100/100)*n, which can round
		// to just below 1 when p*n is 1.
		return stats.Min(e.data)
	}
	return q, err
}

// stepQuantile marks the sample quantile as a step function.
func (e *Empirical) stepQuantile() {}

// Mode is defined only when exactly one value occurs most often.
func (e *Empirical) Mode() (float64, error) {
	modes, err := stats.Mode(e.data)
	if err != nil {
		return 0, err
	}
	if len(modes) != 1 {
		return 0, ErrUndefinedStatistic
	}
	return modes[0], nil
}

func (e *Empirical) Median() (float64, error) { return stats.Median(e.data) }
func (e *Empirical) Min() (float64, error)    { return stats.Min(e.data) }
func (e *Empirical) Max() (float64, error)    { return stats.Max(e.data) }
