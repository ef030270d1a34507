package hdr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestResolveBoundaryContinue(t *testing.T) {
	for _, f := range []float64{1e-12, 0.3, 0.5, 1 - 1e-12} {
		_, ok, err := resolveBoundary(Normal{Mu: 0, Sigma: 1}, f)
		require.NoError(t, err)
		assert.False(t, ok, "fraction %g needs a search", f)
	}
}

func TestResolveBoundaryZeroUsesMode(t *testing.T) {
	tests := []struct {
		name string
		d    Distribution
		want float64
	}{
		{"normal", Normal{Mu: 1.5, Sigma: 2}, 1.5},
		{"lognormal", LogNormal{Mu: 1, Sigma: 0.5}, math.Exp(0.75)},
		{"gamma", Gamma{Alpha: 3, Beta: 2}, 1},
		{"beta", Beta{Alpha: 2, Beta: 5}, 0.2},
		{"exponential", Exponential{Rate: 3}, 0},
		{"poisson", Poisson{Lambda: 4.5}, 4},
		{"binomial", Binomial{N: 10, P: 0.5}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, ok, err := resolveBoundary(tt.d, 0)
			require.NoError(t, err)
			require.True(t, ok)
			assert.InDelta(t, tt.want, iv.Lower, 1e-12)
			assert.Equal(t, iv.Lower, iv.Upper)
		})
	}
}

func TestResolveBoundaryZeroFallsBackToMedian(t *testing.T) {
	// Gamma has no mode for shape < 1.
	d := Gamma{Alpha: 0.5, Beta: 1}
	iv, err := Compute(d, 0, DefaultConfig())
	require.NoError(t, err)
	want := distuv.Gamma{Alpha: 0.5, Beta: 1}.Quantile(0.5)
	assert.Equal(t, Interval{Lower: want, Upper: want}, iv)

	f := Func{
		Type:         Continuous,
		QuantileFunc: func(p float64) float64 { return p },
		MedianFunc:   func() float64 { return 0.5 },
	}
	iv, err = Grid(f, 0, 11)
	require.NoError(t, err)
	assert.Equal(t, Interval{Lower: 0.5, Upper: 0.5}, iv)
}

func TestResolveBoundaryOneIsSupport(t *testing.T) {
	tests := []struct {
		name   string
		d      Distribution
		lo, hi float64
	}{
		{"normal", Normal{Mu: 0, Sigma: 1}, math.Inf(-1), math.Inf(1)},
		{"beta", Beta{Alpha: 2, Beta: 2}, 0, 1},
		{"gamma", Gamma{Alpha: 2, Beta: 1}, 0, math.Inf(1)},
		{"binomial", Binomial{N: 7, P: 0.2}, 0, 7},
		{"poisson", Poisson{Lambda: 2}, 0, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range []SearchMethod{MethodGrid, MethodOptimize} {
				cfg := DefaultConfig()
				cfg.Method = m
				iv, err := Compute(tt.d, 1, cfg)
				require.NoError(t, err)
				assert.Equal(t, Interval{Lower: tt.lo, Upper: tt.hi}, iv)
			}
		})
	}
}

func TestResolveBoundaryUndefinedStatistics(t *testing.T) {
	q := func(p float64) float64 { return p }

	// No mode, no median.
	_, err := Grid(Func{Type: Continuous, QuantileFunc: q}, 0, 11)
	var se *StatisticError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "median", se.Name)
	assert.ErrorIs(t, err, ErrUndefinedStatistic)

	// No minimum.
	_, err = Grid(Func{Type: Continuous, QuantileFunc: q, MaxFunc: func() float64 { return 1 }}, 1, 11)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "minimum", se.Name)

	// No maximum.
	_, err = Grid(Func{Type: Continuous, QuantileFunc: q, MinFunc: func() float64 { return 0 }}, 1, 11)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "maximum", se.Name)

	// A distribution with no optional capabilities at all.
	_, err = Grid(quantileOnly{}, 1, 11)
	assert.ErrorIs(t, err, ErrUndefinedStatistic)
	_, err = Grid(quantileOnly{}, 0, 11)
	assert.ErrorIs(t, err, ErrUndefinedStatistic)
}

func TestResolveBoundaryModeFailurePropagates(t *testing.T) {
	boom := errors.New("mode exploded")
	_, err := Grid(failingMode{err: boom}, 0, 11)
	var se *StatisticError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "mode", se.Name)
	assert.ErrorIs(t, err, boom)
}

type quantileOnly struct{}

func (quantileOnly) Kind() Kind                          { return Continuous }
func (quantileOnly) Quantile(p float64) (float64, error) { return p, nil }

// failingMode fails in Mode with an error other than ErrUndefinedStatistic,
// which must not fall back to the median.
type failingMode struct{ err error }

func (failingMode) Kind() Kind                          { return Continuous }
func (failingMode) Quantile(p float64) (float64, error) { return p, nil }
func (f failingMode) Mode() (float64, error)            { return 0, f.err }
func (failingMode) Median() (float64, error)            { return 0.5, nil }
