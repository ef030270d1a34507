package hdr

import (
	"errors"
	"math"
)

// checkFraction rejects mass fractions that are not probabilities.
func checkFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return &DomainError{Fraction: fraction}
	}
	return nil
}

// resolveBoundary handles the fractions that need no search. It returns
// ok == true with the interval for fraction 0 (a point at the mode, or the
// median when the mode is undefined) and fraction 1 (the full support).
// For any other valid fraction it returns ok == false and the caller must
// search.
func resolveBoundary(d Distribution, fraction float64) (iv Interval, ok bool, err error) {
	if err := checkFraction(fraction); err != nil {
		return Interval{}, false, err
	}

	switch fraction {
	case 0:
		m, err := centre(d)
		if err != nil {
			return Interval{}, false, err
		}
		return Interval{Lower: m, Upper: m}, true, nil
	case 1:
		b, isBounded := d.(Bounded)
		if !isBounded {
			return Interval{}, false, &StatisticError{Name: "minimum"}
		}
		lo, err := b.Min()
		if err != nil {
			return Interval{}, false, &StatisticError{Name: "minimum", Err: err}
		}
		hi, err := b.Max()
		if err != nil {
			return Interval{}, false, &StatisticError{Name: "maximum", Err: err}
		}
		return Interval{Lower: lo, Upper: hi}, true, nil
	}
	return Interval{}, false, nil
}

// centre returns the mode when it is defined, otherwise the median.
func centre(d Distribution) (float64, error) {
	if m, isModer := d.(Moder); isModer {
		mode, err := m.Mode()
		if err == nil {
			return mode, nil
		}
		if !errors.Is(err, ErrUndefinedStatistic) {
			return 0, &StatisticError{Name: "mode", Err: err}
		}
	}
	m, isMedianer := d.(Medianer)
	if !isMedianer {
		return 0, &StatisticError{Name: "median"}
	}
	median, err := m.Median()
	if err != nil {
		return 0, &StatisticError{Name: "median", Err: err}
	}
	return median, nil
}
