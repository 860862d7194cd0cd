package curvego

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/exp/constraints"
)

// Interpolator is the contract every interpolation strategy satisfies.
//
// A caller constructs an interpolator from two equal-length sequences,
// optionally calls Fit to prepare internal state, then queries with
// Interpolate and may extend the sample set with AddPoint in between.
type Interpolator[I, V any] interface {
	// Fit prepares the interpolator for queries, for example by
	// precomputing auxiliary weights. Fit is idempotent: calling it again
	// on a fitted interpolator is a no-op.
	Fit() error

	// Range returns the inclusive index domain covered by the stored
	// samples.
	Range() (min, max I)

	// AddPoint inserts a new sample, preserving the ascending-order
	// invariant. Unorderable and duplicate indices are rejected.
	AddPoint(x I, y V) error

	// Interpolate estimates the value at x. Queries outside Range fail
	// with ErrOutOfRange; exact hits return the stored value unchanged.
	Interpolate(x I) (V, error)
}

var (
	_ Interpolator[float64, float64]   = (*Linear[float64, float64])(nil)
	_ Interpolator[float64, float64]   = (*Exponential[float64, float64])(nil)
	_ Interpolator[float64, float64]   = (*Polynomial[float64, float64])(nil)
	_ Interpolator[time.Time, float64] = (*Linear[time.Time, float64])(nil)
	_ Interpolator[time.Time, float64] = (*Polynomial[time.Time, float64])(nil)
)

// samples is the sorted sample store shared by all interpolators.
//
// xs and ys always have equal length and xs is strictly ascending. Both
// invariants are established at construction and preserved by insert, which
// updates the two slices simultaneously so pairing can never drift.
type samples[I any, V constraints.Float] struct {
	axis Axis[I]
	xs   []I
	ys   []V
}

func newSamples[I any, V constraints.Float](axis Axis[I], xs []I, ys []V) (samples[I, V], error) {
	var s samples[I, V]

	if axis == nil {
		return s, ErrNilAxis
	}

	if len(xs) != len(ys) {
		return s, fmt.Errorf("%w: %d indices, %d values", ErrUnequalLength, len(xs), len(ys))
	}

	if len(xs) == 0 {
		return s, ErrNoSamples
	}

	for i, x := range xs {
		if !axis.Valid(x) {
			return s, fmt.Errorf("%w: position %d", ErrInvalidIndex, i)
		}
	}

	// Sort a permutation instead of the inputs so the caller's slices stay
	// untouched.
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return axis.Compare(xs[a], xs[b])
	})

	sortedXs := make([]I, len(xs))
	sortedYs := make([]V, len(ys))

	for i, j := range order {
		sortedXs[i] = xs[j]
		sortedYs[i] = ys[j]
	}

	for i := 1; i < len(sortedXs); i++ {
		if axis.Compare(sortedXs[i-1], sortedXs[i]) == 0 {
			return s, fmt.Errorf("%w: %v", ErrDuplicateIndex, sortedXs[i])
		}
	}

	s.axis = axis
	s.xs = sortedXs
	s.ys = sortedYs

	return s, nil
}

// Len returns the number of stored samples.
func (s *samples[I, V]) Len() int { return len(s.xs) }

// Range returns the smallest and largest stored index. Construction
// guarantees at least one sample, so Range is always well-defined.
func (s *samples[I, V]) Range() (min, max I) {
	return s.xs[0], s.xs[len(s.xs)-1]
}

// search returns the position of x in xs, or the insertion position that
// keeps xs ascending if x is not stored.
func (s *samples[I, V]) search(x I) (int, bool) {
	return slices.BinarySearchFunc(s.xs, x, s.axis.Compare)
}

// insert places (x, y) into both slices at the same position.
func (s *samples[I, V]) insert(x I, y V) error {
	if !s.axis.Valid(x) {
		return fmt.Errorf("%w: %v", ErrInvalidIndex, x)
	}

	i, found := s.search(x)
	if found {
		return fmt.Errorf("%w: %v", ErrDuplicateIndex, x)
	}

	s.xs = slices.Insert(s.xs, i, x)
	s.ys = slices.Insert(s.ys, i, y)

	return nil
}

// guard rejects queries the sample set cannot answer.
func (s *samples[I, V]) guard(x I) error {
	if !s.axis.Valid(x) {
		return fmt.Errorf("%w: %v", ErrInvalidIndex, x)
	}

	min, max := s.Range()
	if s.axis.Compare(x, min) < 0 || s.axis.Compare(x, max) > 0 {
		return fmt.Errorf("%w: %v outside [%v, %v]", ErrOutOfRange, x, min, max)
	}

	return nil
}

// bracket returns the positions of the two stored samples enclosing x.
// Callers must have handled exact hits and out-of-range queries already,
// so both positions are in bounds.
func (s *samples[I, V]) bracket(x I) (lo, hi int) {
	i, _ := s.search(x)
	return i - 1, i
}

// ratio returns the position of x between the samples at lo and hi as a
// fraction in (0, 1).
func (s *samples[I, V]) ratio(x I, lo, hi int) float64 {
	return s.axis.Delta(x, s.xs[lo]) / s.axis.Delta(s.xs[hi], s.xs[lo])
}
