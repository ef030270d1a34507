package hdr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// The distribution families below adapt gonum's distuv package to
// [Distribution]. Each implements [Moder], [Medianer] and [Bounded];
// statistics that are not defined for the given parameters are reported
// with [ErrUndefinedStatistic]. Parameters are checked by every method,
// since distuv itself does not validate them, so invalid parameters fail
// at the boundary fractions as well as in a search.

var (
	_ Distribution = Normal{}
	_ Distribution = LogNormal{}
	_ Distribution = Gamma{}
	_ Distribution = Beta{}
	_ Distribution = Exponential{}
	_ Distribution = Weibull{}
	_ Distribution = StudentsT{}
	_ Distribution = ChiSquared{}
	_ Distribution = Laplace{}
	_ Distribution = Poisson{}
	_ Distribution = Binomial{}
	_ CDFer        = Poisson{}
	_ CDFer        = Binomial{}
)

// checked returns v, or zero and err if err is non-nil.
func checked(v float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	return v, nil
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("hdr: %s must be > 0 and finite, got %g", name, v)
	}
	return nil
}

// Normal is the normal distribution with mean Mu and standard deviation
// Sigma.
type Normal struct {
	Mu, Sigma float64
}

func (d Normal) Kind() Kind { return Continuous }

func (d Normal) validate() error {
	return positive("Normal Sigma", d.Sigma)
}

func (d Normal) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}.Quantile(p), nil
}

func (d Normal) Mode() (float64, error)   { return checked(d.Mu, d.validate()) }
func (d Normal) Median() (float64, error) { return checked(d.Mu, d.validate()) }
func (d Normal) Min() (float64, error)    { return checked(math.Inf(-1), d.validate()) }
func (d Normal) Max() (float64, error)    { return checked(math.Inf(1), d.validate()) }

// LogNormal is the distribution of exp(X) for X ~ Normal(Mu, Sigma).
type LogNormal struct {
	Mu, Sigma float64
}

func (d LogNormal) Kind() Kind { return Continuous }

func (d LogNormal) validate() error {
	return positive("LogNormal Sigma", d.Sigma)
}

func (d LogNormal) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma}.Quantile(p), nil
}

func (d LogNormal) Mode() (float64, error) {
	return checked(math.Exp(d.Mu-d.Sigma*d.Sigma), d.validate())
}
func (d LogNormal) Median() (float64, error) { return checked(math.Exp(d.Mu), d.validate()) }
func (d LogNormal) Min() (float64, error)    { return checked(0, d.validate()) }
func (d LogNormal) Max() (float64, error)    { return checked(math.Inf(1), d.validate()) }

// Gamma is the gamma distribution with shape Alpha and rate Beta.
type Gamma struct {
	Alpha, Beta float64
}

func (d Gamma) Kind() Kind { return Continuous }

func (d Gamma) validate() error {
	if err := positive("Gamma Alpha", d.Alpha); err != nil {
		return err
	}
	return positive("Gamma Beta", d.Beta)
}

func (d Gamma) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.Gamma{Alpha: d.Alpha, Beta: d.Beta}.Quantile(p), nil
}

// Mode is undefined for Alpha < 1, where the density is unbounded at 0.
func (d Gamma) Mode() (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	if d.Alpha < 1 {
		return 0, ErrUndefinedStatistic
	}
	return (d.Alpha - 1) / d.Beta, nil
}

func (d Gamma) Median() (float64, error) { return d.Quantile(0.5) }
func (d Gamma) Min() (float64, error)    { return checked(0, d.validate()) }
func (d Gamma) Max() (float64, error)    { return checked(math.Inf(1), d.validate()) }

// Beta is the beta distribution on [0, 1] with shapes Alpha and Beta.
type Beta struct {
	Alpha, Beta float64
}

func (d Beta) Kind() Kind { return Continuous }

func (d Beta) validate() error {
	if err := positive("Beta Alpha", d.Alpha); err != nil {
		return err
	}
	return positive("Beta Beta", d.Beta)
}

func (d Beta) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.Beta{Alpha: d.Alpha, Beta: d.Beta}.Quantile(p), nil
}

// Mode is only defined when both shapes exceed 1.
func (d Beta) Mode() (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	if d.Alpha <= 1 || d.Beta <= 1 {
		return 0, ErrUndefinedStatistic
	}
	return (d.Alpha - 1) / (d.Alpha + d.Beta - 2), nil
}

func (d Beta) Median() (float64, error) { return d.Quantile(0.5) }
func (d Beta) Min() (float64, error)    { return checked(0, d.validate()) }
func (d Beta) Max() (float64, error)    { return checked(1, d.validate()) }

// Exponential is the exponential distribution with the given Rate.
type Exponential struct {
	Rate float64
}

func (d Exponential) Kind() Kind { return Continuous }

func (d Exponential) validate() error {
	return positive("Exponential Rate", d.Rate)
}

func (d Exponential) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.Exponential{Rate: d.Rate}.Quantile(p), nil
}

func (d Exponential) Mode() (float64, error)   { return checked(0, d.validate()) }
func (d Exponential) Median() (float64, error) { return checked(math.Ln2/d.Rate, d.validate()) }
func (d Exponential) Min() (float64, error)    { return checked(0, d.validate()) }
func (d Exponential) Max() (float64, error)    { return checked(math.Inf(1), d.validate()) }

// Weibull is the Weibull distribution with shape K and scale Lambda.
type Weibull struct {
	K, Lambda float64
}

func (d Weibull) Kind() Kind { return Continuous }

func (d Weibull) validate() error {
	if err := positive("Weibull K", d.K); err != nil {
		return err
	}
	return positive("Weibull Lambda", d.Lambda)
}

func (d Weibull) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.Weibull{K: d.K, Lambda: d.Lambda}.Quantile(p), nil
}

func (d Weibull) Mode() (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	if d.K <= 1 {
		return 0, nil
	}
	return d.Lambda * math.Pow((d.K-1)/d.K, 1/d.K), nil
}

func (d Weibull) Median() (float64, error) {
	return checked(d.Lambda*math.Pow(math.Ln2, 1/d.K), d.validate())
}
func (d Weibull) Min() (float64, error) { return checked(0, d.validate()) }
func (d Weibull) Max() (float64, error) { return checked(math.Inf(1), d.validate()) }

// StudentsT is the location-scale Student's t distribution with Nu
// degrees of freedom.
type StudentsT struct {
	Mu, Sigma, Nu float64
}

func (d StudentsT) Kind() Kind { return Continuous }

func (d StudentsT) validate() error {
	if err := positive("StudentsT Sigma", d.Sigma); err != nil {
		return err
	}
	return positive("StudentsT Nu", d.Nu)
}

func (d StudentsT) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.StudentsT{Mu: d.Mu, Sigma: d.Sigma, Nu: d.Nu}.Quantile(p), nil
}

func (d StudentsT) Mode() (float64, error)   { return checked(d.Mu, d.validate()) }
func (d StudentsT) Median() (float64, error) { return checked(d.Mu, d.validate()) }
func (d StudentsT) Min() (float64, error)    { return checked(math.Inf(-1), d.validate()) }
func (d StudentsT) Max() (float64, error)    { return checked(math.Inf(1), d.validate()) }

// ChiSquared is the chi-squared distribution with K degrees of freedom.
type ChiSquared struct {
	K float64
}

func (d ChiSquared) Kind() Kind { return Continuous }

func (d ChiSquared) validate() error {
	return positive("ChiSquared K", d.K)
}

func (d ChiSquared) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.ChiSquared{K: d.K}.Quantile(p), nil
}

func (d ChiSquared) Mode() (float64, error)   { return checked(math.Max(d.K-2, 0), d.validate()) }
func (d ChiSquared) Median() (float64, error) { return d.Quantile(0.5) }
func (d ChiSquared) Min() (float64, error)    { return checked(0, d.validate()) }
func (d ChiSquared) Max() (float64, error)    { return checked(math.Inf(1), d.validate()) }

// Laplace is the double exponential distribution with location Mu and
// scale Scale.
type Laplace struct {
	Mu, Scale float64
}

func (d Laplace) Kind() Kind { return Continuous }

func (d Laplace) validate() error {
	return positive("Laplace Scale", d.Scale)
}

func (d Laplace) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	return distuv.Laplace{Mu: d.Mu, Scale: d.Scale}.Quantile(p), nil
}

func (d Laplace) Mode() (float64, error)   { return checked(d.Mu, d.validate()) }
func (d Laplace) Median() (float64, error) { return checked(d.Mu, d.validate()) }
func (d Laplace) Min() (float64, error)    { return checked(math.Inf(-1), d.validate()) }
func (d Laplace) Max() (float64, error)    { return checked(math.Inf(1), d.validate()) }

// Poisson is the Poisson distribution with mean Lambda.
type Poisson struct {
	Lambda float64
}

func (d Poisson) Kind() Kind { return Discrete }

// Quantile returns the smallest k with CDF(k) >= p. Quantile(1) is +Inf.
func (d Poisson) validate() error {
	return positive("Poisson Lambda", d.Lambda)
}

func (d Poisson) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	guess := d.Lambda + math.Sqrt(d.Lambda)*normalZ(p)
	return discreteQuantile(d.CDF, 0, math.Inf(1), guess, p), nil
}

func (d Poisson) CDF(x float64) float64 {
	return distuv.Poisson{Lambda: d.Lambda}.CDF(x)
}

func (d Poisson) Mode() (float64, error)   { return checked(math.Floor(d.Lambda), d.validate()) }
func (d Poisson) Median() (float64, error) { return d.Quantile(0.5) }
func (d Poisson) Min() (float64, error)    { return checked(0, d.validate()) }
func (d Poisson) Max() (float64, error)    { return checked(math.Inf(1), d.validate()) }

// Binomial is the number of successes in N trials with success
// probability P.
type Binomial struct {
	N int
	P float64
}

func (d Binomial) Kind() Kind { return Discrete }

func (d Binomial) validate() error {
	if d.N < 0 {
		return fmt.Errorf("hdr: Binomial N must be >= 0, got %d", d.N)
	}
	if !(d.P >= 0 && d.P <= 1) {
		return fmt.Errorf("hdr: Binomial P must be in [0, 1], got %g", d.P)
	}
	return nil
}

// Quantile returns the smallest k with CDF(k) >= p.
func (d Binomial) Quantile(p float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	n := float64(d.N)
	guess := n*d.P + math.Sqrt(n*d.P*(1-d.P))*normalZ(p)
	return discreteQuantile(d.CDF, 0, n, guess, p), nil
}

func (d Binomial) CDF(x float64) float64 {
	return distuv.Binomial{N: float64(d.N), P: d.P}.CDF(x)
}

func (d Binomial) Mode() (float64, error) {
	return checked(math.Min(math.Floor(float64(d.N+1)*d.P), float64(d.N)), d.validate())
}

func (d Binomial) Median() (float64, error) { return d.Quantile(0.5) }
func (d Binomial) Min() (float64, error)    { return checked(0, d.validate()) }
func (d Binomial) Max() (float64, error)    { return checked(float64(d.N), d.validate()) }

// normalZ is the standard normal quantile, clamped so that p = 0 or 1
// yields a finite starting point for the discrete search.
func normalZ(p float64) float64 {
	return distuv.UnitNormal.Quantile(math.Max(1e-12, math.Min(1-1e-12, p)))
}

// discreteQuantile returns the smallest integer k in [lo, hi] with
// cdf(k) >= p, walking from guess. p <= 0 yields lo and p >= 1 yields hi.
func discreteQuantile(cdf func(float64) float64, lo, hi, guess, p float64) float64 {
	if p <= 0 {
		return lo
	}
	if p >= 1 {
		return hi
	}
	k := math.Max(lo, math.Min(hi, math.Floor(guess)))
	if math.IsNaN(k) || math.IsInf(k, 0) {
		k = lo
	}
	for k > lo && cdf(k-1) >= p {
		k--
	}
	for k < hi && cdf(k) < p {
		k++
	}
	return k
}
