package curve

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/curvego"
	"github.com/hupe1980/curvego/daycount"
)

// Method selects the interpolation scheme applied to the discount factors.
type Method int

const (
	// LogLinear interpolates linearly in log discount-factor space. This is
	// the default: it keeps factors positive and corresponds to
	// piecewise-constant forward rates between pillars.
	LogLinear Method = iota

	// Linear interpolates discount factors directly.
	Linear

	// Polynomial fits a single Lagrange polynomial through all pillars.
	Polynomial
)

type options struct {
	dayCount daycount.Convention
	method   Method
}

// Option configures curve construction.
type Option func(*options)

// WithDayCount sets the day-count convention used for the year fractions in
// zero- and forward-rate calculations. Default: ACT/365F.
func WithDayCount(dc daycount.Convention) Option {
	return func(o *options) {
		o.dayCount = dc
	}
}

// WithMethod sets the interpolation scheme. Default: LogLinear.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// DiscountCurve maps payment dates to discount factors observed at a single
// settlement date. It consumes the curvego interpolation contract and never
// extrapolates: queries beyond the last pillar fail with
// curvego.ErrOutOfRange.
//
// A DiscountCurve is a plain value. Wrap it in external synchronization if
// AddPillar can race with queries.
type DiscountCurve struct {
	settlement time.Time
	dayCount   daycount.Convention
	interp     curvego.Interpolator[time.Time, float64]
}

// New builds a discount curve from pillar dates and their discount factors.
// A unit pillar at the settlement date is added implicitly when absent, so
// the curve always covers [settlement, last pillar].
func New(settlement time.Time, dates []time.Time, dfs []float64, opts ...Option) (*DiscountCurve, error) {
	o := options{
		dayCount: daycount.Act365Fixed,
		method:   LogLinear,
	}

	for _, fn := range opts {
		fn(&o)
	}

	if len(dates) != len(dfs) {
		return nil, fmt.Errorf("%w: %d dates, %d discount factors", curvego.ErrUnequalLength, len(dates), len(dfs))
	}

	hasSettlement := slices.ContainsFunc(dates, func(d time.Time) bool {
		return d.Equal(settlement)
	})

	if !hasSettlement {
		dates = append([]time.Time{settlement}, dates...)
		dfs = append([]float64{1}, dfs...)
	}

	interp, err := newInterpolator(o.method, dates, dfs)
	if err != nil {
		return nil, err
	}

	if err := interp.Fit(); err != nil {
		return nil, err
	}

	return &DiscountCurve{
		settlement: settlement,
		dayCount:   o.dayCount,
		interp:     interp,
	}, nil
}

func newInterpolator(m Method, dates []time.Time, dfs []float64) (curvego.Interpolator[time.Time, float64], error) {
	axis := curvego.Days()

	switch m {
	case Linear:
		return curvego.NewLinear(axis, dates, dfs)
	case Polynomial:
		return curvego.NewPolynomial(axis, dates, dfs)
	case LogLinear:
		return curvego.NewExponential(axis, dates, dfs)
	default:
		return nil, fmt.Errorf("curve: unknown interpolation method %d", m)
	}
}

// Settlement returns the curve's settlement date.
func (c *DiscountCurve) Settlement() time.Time { return c.settlement }

// Range returns the date span the curve can discount over.
func (c *DiscountCurve) Range() (min, max time.Time) { return c.interp.Range() }

// DF returns the discount factor for date t.
func (c *DiscountCurve) DF(t time.Time) (float64, error) {
	return c.interp.Interpolate(t)
}

// ZeroRate returns the continuously compounded zero rate for date t,
// derived as -ln(DF)/τ with τ the year fraction from settlement under the
// curve's day-count convention.
func (c *DiscountCurve) ZeroRate(t time.Time) (float64, error) {
	df, err := c.DF(t)
	if err != nil {
		return 0, err
	}

	tau := c.dayCount.YearFrac(c.settlement, t)
	if tau <= 0 {
		return 0, fmt.Errorf("curve: zero rate undefined at or before settlement %s", c.settlement.Format(time.DateOnly))
	}

	return -math.Log(df) / tau, nil
}

// ForwardRate returns the simple forward rate between start and end implied
// by the discount-factor ratio: (DF(start)/DF(end) - 1)/τ.
func (c *DiscountCurve) ForwardRate(start, end time.Time) (float64, error) {
	if !start.Before(end) {
		return 0, fmt.Errorf("curve: forward rate requires start %s before end %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	dfStart, err := c.DF(start)
	if err != nil {
		return 0, err
	}

	dfEnd, err := c.DF(end)
	if err != nil {
		return 0, err
	}

	tau := c.dayCount.YearFrac(start, end)

	return (dfStart/dfEnd - 1) / tau, nil
}

// AddPillar inserts a new (date, discount factor) pillar and re-fits the
// underlying interpolator so the curve stays immediately queryable.
func (c *DiscountCurve) AddPillar(t time.Time, df float64) error {
	if err := c.interp.AddPoint(t, df); err != nil {
		return err
	}

	return c.interp.Fit()
}
