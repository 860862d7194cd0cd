package curvego

import "errors"

var (
	// ErrUnequalLength is returned when the index and value sequences passed
	// to a constructor differ in length.
	ErrUnequalLength = errors.New("curvego: unequal number of indices and values")

	// ErrNoSamples is returned when a constructor is called with zero
	// samples. An interpolator always covers a non-empty range.
	ErrNoSamples = errors.New("curvego: at least one sample point is required")

	// ErrInvalidIndex is returned when an index value cannot be ordered on
	// its axis, for example NaN.
	ErrInvalidIndex = errors.New("curvego: index value is not orderable")

	// ErrDuplicateIndex is returned when two samples share the same index.
	// Duplicate indices make the bracketing ratio undefined.
	ErrDuplicateIndex = errors.New("curvego: duplicate index value")

	// ErrOutOfRange is returned when a query index falls outside the closed
	// interval spanned by the stored samples. Extrapolation is unsupported.
	ErrOutOfRange = errors.New("curvego: query outside the sampled range")

	// ErrNotFitted is returned by Polynomial.Interpolate when the
	// barycentric weights are missing or stale. Call Fit first.
	ErrNotFitted = errors.New("curvego: interpolator has not been fitted")

	// ErrNonPositiveValue is returned by the exponential interpolator, which
	// works in log space and therefore requires strictly positive values.
	ErrNonPositiveValue = errors.New("curvego: exponential interpolation requires positive values")

	// ErrNilAxis is returned when a constructor is called without an axis.
	ErrNilAxis = errors.New("curvego: axis must not be nil")
)
