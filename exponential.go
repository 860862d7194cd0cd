package curvego

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Exponential interpolates linearly in log space:
//
//	y = y_lo * (y_hi/y_lo)^t
//
// with t the bracketing ratio. This is the market-standard scheme for
// discount factors, where log-linear interpolation corresponds to a
// piecewise-constant forward rate. Values must be strictly positive.
//
// Like Linear, it keeps no precomputed state and never requires re-fitting
// after AddPoint.
type Exponential[I any, V constraints.Float] struct {
	samples[I, V]
	fitted bool
}

// NewExponential builds a log-linear interpolator from paired indices and
// values. Non-positive values are rejected with ErrNonPositiveValue.
func NewExponential[I any, V constraints.Float](axis Axis[I], xs []I, ys []V) (*Exponential[I, V], error) {
	s, err := newSamples(axis, xs, ys)
	if err != nil {
		return nil, err
	}

	for i, y := range s.ys {
		if y <= 0 {
			return nil, fmt.Errorf("%w: value %v at index %v", ErrNonPositiveValue, y, s.xs[i])
		}
	}

	return &Exponential[I, V]{samples: s}, nil
}

// Fit marks the interpolator ready. Exponential interpolation has no
// auxiliary state to prepare, so this is a readiness transition only.
func (e *Exponential[I, V]) Fit() error {
	e.fitted = true
	return nil
}

// AddPoint inserts a new sample at the position that keeps the index
// sequence ascending. Non-positive values are rejected.
func (e *Exponential[I, V]) AddPoint(x I, y V) error {
	if y <= 0 {
		return fmt.Errorf("%w: value %v at index %v", ErrNonPositiveValue, y, x)
	}

	return e.insert(x, y)
}

// Interpolate returns the stored value for exact hits and otherwise
// interpolates log-linearly between the bracketing samples.
func (e *Exponential[I, V]) Interpolate(x I) (V, error) {
	var zero V

	if err := e.guard(x); err != nil {
		return zero, err
	}

	if i, found := e.search(x); found {
		return e.ys[i], nil
	}

	lo, hi := e.bracket(x)
	t := e.ratio(x, lo, hi)

	yLo := float64(e.ys[lo])
	yHi := float64(e.ys[hi])

	return V(yLo * math.Pow(yHi/yLo, t)), nil
}
