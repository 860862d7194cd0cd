package curvego

import (
	"cmp"
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Axis describes the index domain an interpolator operates on.
//
// Interpolation needs exactly two things from an index type: a total order
// and a way to turn the gap between two indices into a dimensionless
// quantity. Axis captures both, which is what lets plain numbers and
// calendar dates share the same interpolator implementations: a date
// difference is a duration, and a duration ratio is an ordinary number.
type Axis[I any] interface {
	// Compare returns a negative number if a < b, zero if a == b and a
	// positive number if a > b.
	Compare(a, b I) int

	// Delta returns a minus b, expressed in axis units. Only ratios of
	// deltas are ever consumed, so the unit cancels out.
	Delta(a, b I) float64

	// Valid reports whether x can be ordered on this axis. Unorderable
	// values such as NaN are rejected at the construction and insertion
	// boundaries instead of surfacing deep inside a comparison.
	Valid(x I) bool
}

// NumericAxis is an Axis over ordinary real number types.
type NumericAxis[I constraints.Integer | constraints.Float] struct{}

func (NumericAxis[I]) Compare(a, b I) int { return cmp.Compare(a, b) }

func (NumericAxis[I]) Delta(a, b I) float64 { return float64(a) - float64(b) }

func (NumericAxis[I]) Valid(x I) bool { return !math.IsNaN(float64(x)) }

// Numbers returns an Axis over ordinary real number types.
func Numbers[I constraints.Integer | constraints.Float]() Axis[I] {
	return NumericAxis[I]{}
}

// TimeAxis is an Axis over calendar timestamps. Deltas are expressed in
// Unit steps, so with the default unit of one day a date-difference ratio
// is a day-count ratio.
type TimeAxis struct {
	// Unit is the duration of one axis step. Zero or negative means one day.
	Unit time.Duration
}

func (ax TimeAxis) Compare(a, b time.Time) int { return a.Compare(b) }

func (ax TimeAxis) Delta(a, b time.Time) float64 {
	unit := ax.Unit
	if unit <= 0 {
		unit = 24 * time.Hour
	}
	return float64(a.Sub(b)) / float64(unit)
}

func (ax TimeAxis) Valid(time.Time) bool { return true }

// Days returns an Axis over calendar timestamps with deltas measured in days.
func Days() Axis[time.Time] {
	return TimeAxis{Unit: 24 * time.Hour}
}
