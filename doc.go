// Package curvego provides an embedded interpolation engine for quantitative
// finance workloads: curve lookups, discount factors, volatility points.
//
// Given a finite set of sample points ordered along an index axis, an
// interpolator estimates the value at any query point inside the sampled
// range. Extrapolation is never attempted.
//
// # Quick Start
//
// Numeric indices:
//
//	li, _ := curvego.NewLinear(curvego.Numbers[float64](), []float64{1, 2, 3}, []float64{10, 20, 30})
//	v, _ := li.Interpolate(2.5) // 25
//
// Calendar dates work the same way, because a date difference is a duration
// and a duration ratio is an ordinary number:
//
//	li, _ := curvego.NewLinear(curvego.Days(), dates, discountFactors)
//	df, _ := li.Interpolate(valueDate)
//
// # Interpolators
//
// Three strategies implement the shared Interpolator contract:
//
//   - Linear: piecewise-linear between the two bracketing samples.
//   - Exponential: linear in log space; the market-standard scheme for
//     discount factors.
//   - Polynomial: the Lagrange polynomial through all samples, evaluated in
//     the numerically stable barycentric form. Requires Fit before querying.
//
// # Error Handling
//
// All caller-input failures are typed, recoverable sentinel errors:
//
//	if errors.Is(err, curvego.ErrOutOfRange) {
//	    // query fell outside the sampled range
//	}
//
// # Concurrency
//
// An interpolator is a plain mutable value with no locks, no background
// activity and no external resources. Single-owner access is assumed; wrap
// it in external synchronization when AddPoint or Fit can race with queries.
package curvego
