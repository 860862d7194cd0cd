// Package curve builds date-indexed discount curves on top of the curvego
// interpolation contract.
//
// A DiscountCurve is constructed from pillar dates and their already known
// discount factors; the package performs no bootstrapping. Between pillars
// the curve interpolates log-linearly by default, the market-standard scheme
// equivalent to piecewise-constant forward rates.
//
//	c, _ := curve.New(settlement, pillarDates, discountFactors)
//	df, _ := c.DF(paymentDate)
//	z, _ := c.ZeroRate(paymentDate)
//	f, _ := c.ForwardRate(start, end)
package curve
