package curvego

import "golang.org/x/exp/constraints"

// Linear interpolates piecewise-linearly between the two samples bracketing
// a query. It keeps no precomputed state, so samples added after
// construction are picked up by the next query without re-fitting.
//
// Linear is a plain value; see the package documentation for the
// concurrency model.
type Linear[I any, V constraints.Float] struct {
	samples[I, V]
	fitted bool
}

// NewLinear builds a piecewise-linear interpolator from paired indices and
// values. The inputs are copied and sorted ascending by index.
func NewLinear[I any, V constraints.Float](axis Axis[I], xs []I, ys []V) (*Linear[I, V], error) {
	s, err := newSamples(axis, xs, ys)
	if err != nil {
		return nil, err
	}

	return &Linear[I, V]{samples: s}, nil
}

// Fit marks the interpolator ready. Linear interpolation has no auxiliary
// state to prepare, so this is a readiness transition only.
func (li *Linear[I, V]) Fit() error {
	li.fitted = true
	return nil
}

// AddPoint inserts a new sample at the position that keeps the index
// sequence ascending.
func (li *Linear[I, V]) AddPoint(x I, y V) error {
	return li.insert(x, y)
}

// Interpolate returns the stored value for exact hits, avoiding any
// round-off on points that are already known, and otherwise interpolates
// linearly between the bracketing samples.
func (li *Linear[I, V]) Interpolate(x I) (V, error) {
	var zero V

	if err := li.guard(x); err != nil {
		return zero, err
	}

	if i, found := li.search(x); found {
		return li.ys[i], nil
	}

	lo, hi := li.bracket(x)
	t := li.ratio(x, lo, hi)

	return li.ys[lo] + (li.ys[hi]-li.ys[lo])*V(t), nil
}
