package hdr

import "fmt"

// Interval is a closed region [Lower, Upper] of a distribution's support.
type Interval struct {
	Lower float64
	Upper float64
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Contains reports whether x lies in the closed interval.
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lower && x <= iv.Upper
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lower, iv.Upper)
}

// bracket is a candidate interval during a search, indexed by the
// probability p of its lower bound.
type bracket struct {
	p     float64
	lower float64
	upper float64
}

func (b bracket) width() float64 { return b.upper - b.lower }

func (b bracket) interval() Interval {
	return Interval{Lower: b.lower, Upper: b.upper}
}

// evalBracket evaluates the bracket whose lower bound sits at probability p.
func evalBracket(d Distribution, p, fraction float64) (bracket, error) {
	lower, err := quantile(d, p)
	if err != nil {
		return bracket{}, err
	}
	upper, err := quantile(d, p+fraction)
	if err != nil {
		return bracket{}, err
	}
	return bracket{p: p, lower: lower, upper: upper}, nil
}
