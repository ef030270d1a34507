package hdr

import (
	"bytes"
	"log"
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridProbabilities(t *testing.T) {
	ps := gridProbabilities(0.05, 5)
	require.Len(t, ps, 5)
	assert.Equal(t, 0.0, ps[0])
	assert.Equal(t, 0.025, ps[2], "midpoint must be exact")
	assert.Equal(t, 0.05, ps[4])
	for i := 1; i < len(ps); i++ {
		assert.Greater(t, ps[i], ps[i-1])
	}
}

func TestGridSymmetricIsCentered(t *testing.T) {
	tests := []struct {
		name   string
		d      Distribution
		centre float64
	}{
		{"normal", Normal{Mu: 0, Sigma: 2}, 0},
		{"shifted normal", Normal{Mu: 10, Sigma: 0.5}, 10},
		{"students t", StudentsT{Mu: -3, Sigma: 1, Nu: 4}, -3},
		{"laplace", Laplace{Mu: 1, Scale: 2}, 1},
		{"beta", Beta{Alpha: 3, Beta: 3}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, f := range []float64{0.2, 0.5, 0.9, 0.95} {
				// Coarse grids too: the midpoint is probed for every odd size.
				for _, n := range []int{3, 11, 101, DefaultNumSteps} {
					iv, err := GridSearch(tt.d, f, n)
					require.NoError(t, err)
					assert.InDelta(t, tt.centre, (iv.Lower+iv.Upper)/2, 1e-9,
						"f=%g n=%d interval %v", f, n, iv)
				}
			}
		})
	}
}

func TestGridExponentialStartsAtZero(t *testing.T) {
	iv, err := GridSearch(Exponential{Rate: 1}, 0.9, 101)
	require.NoError(t, err)
	assert.Equal(t, 0.0, iv.Lower)
	assert.InDelta(t, math.Log(10), iv.Upper, 1e-12)
}

func TestGridRefinementNeverWidens(t *testing.T) {
	// Grids of 2^k+1 points are nested, so every bracket probed by a coarse
	// grid is probed again by the finer one.
	for _, d := range []Distribution{
		LogNormal{Mu: 1, Sigma: 0.5},
		Gamma{Alpha: 2, Beta: 0.5},
		Weibull{K: 1.5, Lambda: 2},
		Poisson{Lambda: 6},
	} {
		prev := math.Inf(1)
		for n := 3; n <= 4097; n = 2*n - 1 {
			iv, err := GridSearch(d, 0.9, n)
			require.NoError(t, err)
			assert.LessOrEqual(t, iv.Width(), prev, "%T n=%d", d, n)
			prev = iv.Width()
		}
	}
}

func TestGridTiesPickSmallestLowerBound(t *testing.T) {
	// Probabilities and quantiles are exact in binary here, so widths
	// [0.5, 0.5, 9.5, 0.5, 0.5] tie exactly.
	iv, err := GridSearch(twoBlocks(), 0.25, 5)
	require.NoError(t, err)
	assert.Equal(t, Interval{Lower: 0, Upper: 0.5}, iv)
}

func TestGridWarnsOnMultimodalProfile(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	_, err := GridSearch(twoBlocks(), 0.25, 5)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "multiple local minima")

	buf.Reset()
	_, err = GridSearch(Normal{Mu: 0, Sigma: 1}, 0.3, 101)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestGridNoWarningForUnimodalSample(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	rng := rand.New(rand.NewSource(7))
	samples := make([]float64, 5000)
	for i := range samples {
		samples[i] = rng.NormFloat64()
	}
	e, err := NewEmpirical(samples)
	require.NoError(t, err)

	iv, err := Grid(e, 0.9, DefaultNumSteps)
	require.NoError(t, err)
	assert.InDelta(t, 0, (iv.Lower+iv.Upper)/2, 0.2)
	assert.Empty(t, buf.String())
}

func TestWarnMultimodal(t *testing.T) {
	e, err := NewEmpirical([]float64{1, 2, 3})
	require.NoError(t, err)

	assert.True(t, warnMultimodal(Normal{Mu: 0, Sigma: 1}))
	assert.True(t, warnMultimodal(twoBlocks()))
	assert.False(t, warnMultimodal(Poisson{Lambda: 3}))
	assert.False(t, warnMultimodal(e))
}

func TestGridSearchBoundaryAndDomain(t *testing.T) {
	iv, err := GridSearch(Normal{Mu: 3, Sigma: 1}, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, Interval{Lower: 3, Upper: 3}, iv)

	iv, err = GridSearch(Beta{Alpha: 2, Beta: 2}, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, Interval{Lower: 0, Upper: 1}, iv)

	for _, f := range []float64{-0.2, 1.5, math.NaN()} {
		_, err := GridSearch(Normal{Mu: 0, Sigma: 1}, f, 5)
		var de *DomainError
		assert.ErrorAs(t, err, &de, "fraction %g", f)
		assert.ErrorIs(t, err, ErrDomain)
	}
}

func TestGridPropagatesQuantileError(t *testing.T) {
	d := Func{Type: Continuous, QuantileFunc: func(p float64) float64 {
		if p > 0.7 {
			return math.NaN()
		}
		return p
	}}
	_, err := GridSearch(d, 0.5, 11)
	var qe *QuantileError
	require.ErrorAs(t, err, &qe)
	assert.Greater(t, qe.P, 0.7)
	assert.ErrorIs(t, err, ErrQuantile)

	_, err = GridSearch(Normal{Mu: 0, Sigma: -1}, 0.5, 11)
	assert.ErrorIs(t, err, ErrQuantile)
}

func TestLocalMinima(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name string
		w    []float64
		want int
	}{
		{"valley", []float64{inf, 3, 2, 1, 2, 3, inf}, 1},
		{"monotone", []float64{1, 2, 3, 4}, 1},
		{"plateau", []float64{3, 1, 1, 1, 3}, 1},
		{"two valleys", []float64{3, 1, 3, 1, 3}, 2},
		{"two plateaus", []float64{1, 1, 5, 5, 1, 1}, 2},
		{"noise", []float64{3, 1, 1 + 1e-14, 1, 3}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, localMinima(tt.w), tt.name)
	}
}

// twoBlocks is a bimodal distribution: half its mass uniform on [0, 1] and
// half uniform on [10, 11].
func twoBlocks() Func {
	return Func{
		Type: Continuous,
		QuantileFunc: func(p float64) float64 {
			if p <= 0.5 {
				return 2 * p
			}
			return 10 + 2*(p-0.5)
		},
	}
}
