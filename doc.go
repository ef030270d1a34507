// Package hdr computes the highest density region (HDR) of a univariate,
// unimodal probability distribution: the shortest interval containing a
// given fraction of the probability mass.
//
// For a unimodal distribution the HDR covering mass f is [Q(b), Q(b+f)]
// for the lower-bound probability b in [0, 1-f] that minimizes
// Q(b+f) - Q(b), where Q is the quantile function. Two searches for b are
// provided:
//
//	// Grid scan over evenly spaced b, midpoint always included.
//	iv, err := hdr.Grid(hdr.LogNormal{Mu: 1, Sigma: 0.5}, 0.95, 10001)
//
//	// Bounded scalar minimization of the width.
//	iv, err := hdr.Optimize(hdr.Poisson{Lambda: 4}, 0.95, hdr.GoldenSection{})
//
// Both are thin wrappers over [Compute], which takes a [Config]:
//
//	cfg := hdr.DefaultConfig()
//	cfg.Method = hdr.MethodOptimize
//	cfg.Minimizer = hdr.GonumMinimizer{} // Nelder-Mead from gonum/optimize
//	iv, err := hdr.Compute(hdr.Gamma{Alpha: 2, Beta: 1}, 0.9, cfg)
//
// # Distributions
//
// Any type implementing [Distribution] can be used. Optional capabilities
// ([Moder], [Medianer], [Bounded], [CDFer]) are discovered by type
// assertion and are only needed for fractions 0 and 1 and for the discrete
// relaxation of the optimizer. Adapters for common gonum distuv families,
// a sample-based [Empirical] distribution and the function adapter [Func]
// are included.
//
// # Discrete distributions
//
// Discrete quantile functions are step functions. The grid evaluates them
// directly; the optimizer minimizes a relaxation that interpolates between
// mass points and then reports the true quantiles at the optimum. The two
// methods can disagree by one mass point in width.
//
// # Multimodal distributions
//
// Multimodal input is not supported. No error is returned, but the result
// is not guaranteed to be the HDR; the grid scan logs a warning when the
// width profile of a continuous distribution has several local minima.
package hdr
