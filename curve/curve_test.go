package curve

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/curvego"
	"github.com/hupe1980/curvego/daycount"
)

var settlement = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

// flatCurve builds annual pillars whose discount factors imply a constant
// continuously compounded zero rate under ACT/365F.
func flatCurve(t *testing.T, rate float64, years int, opts ...Option) *DiscountCurve {
	t.Helper()

	dates := make([]time.Time, years)
	dfs := make([]float64, years)
	for i := range dates {
		dates[i] = settlement.AddDate(i+1, 0, 0)
		tau := daycount.Act365Fixed.YearFrac(settlement, dates[i])
		dfs[i] = math.Exp(-rate * tau)
	}

	c, err := New(settlement, dates, dfs, opts...)
	require.NoError(t, err)

	return c
}

func TestDiscountCurveSettlementPillar(t *testing.T) {
	c := flatCurve(t, 0.04, 5)

	min, max := c.Range()
	assert.True(t, min.Equal(settlement), "implicit unit pillar at settlement")
	assert.True(t, max.Equal(settlement.AddDate(5, 0, 0)))

	df, err := c.DF(settlement)
	require.NoError(t, err)
	assert.Equal(t, 1.0, df)
}

func TestDiscountCurveZeroRates(t *testing.T) {
	const rate = 0.04

	c := flatCurve(t, rate, 5)

	// Log-linear interpolation of exponential discount factors reproduces
	// the flat rate everywhere, pillars and in-between dates alike.
	for _, months := range []int{6, 12, 18, 30, 47, 60} {
		d := settlement.AddDate(0, months, 0)

		z, err := c.ZeroRate(d)
		require.NoError(t, err)
		assert.InDelta(t, rate, z, 1e-10, "months %d", months)
	}
}

func TestDiscountCurveZeroRateAtSettlement(t *testing.T) {
	c := flatCurve(t, 0.04, 2)

	_, err := c.ZeroRate(settlement)
	assert.Error(t, err)
}

func TestDiscountCurveForwardRate(t *testing.T) {
	c := flatCurve(t, 0.04, 5)

	start := settlement.AddDate(1, 0, 0)
	end := settlement.AddDate(2, 0, 0)

	f, err := c.ForwardRate(start, end)
	require.NoError(t, err)

	dfStart, err := c.DF(start)
	require.NoError(t, err)
	dfEnd, err := c.DF(end)
	require.NoError(t, err)

	tau := daycount.Act365Fixed.YearFrac(start, end)
	assert.InDelta(t, (dfStart/dfEnd-1)/tau, f, 1e-12)

	// Continuous 4% corresponds to a simple forward of (e^{0.04τ}-1)/τ.
	assert.InDelta(t, (math.Exp(0.04*tau)-1)/tau, f, 1e-10)

	_, err = c.ForwardRate(end, start)
	assert.Error(t, err)
}

func TestDiscountCurveNoExtrapolation(t *testing.T) {
	c := flatCurve(t, 0.04, 2)

	_, err := c.DF(settlement.AddDate(3, 0, 0))
	assert.ErrorIs(t, err, curvego.ErrOutOfRange)

	_, err = c.DF(settlement.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, curvego.ErrOutOfRange)
}

func TestDiscountCurveAddPillar(t *testing.T) {
	c := flatCurve(t, 0.04, 2)

	newDate := settlement.AddDate(3, 0, 0)
	tau := daycount.Act365Fixed.YearFrac(settlement, newDate)

	require.NoError(t, c.AddPillar(newDate, math.Exp(-0.04*tau)))

	z, err := c.ZeroRate(settlement.AddDate(2, 6, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.04, z, 1e-10)

	assert.ErrorIs(t, c.AddPillar(newDate, 0.9), curvego.ErrDuplicateIndex)
}

func TestDiscountCurveMethods(t *testing.T) {
	for _, m := range []Method{LogLinear, Linear, Polynomial} {
		c := flatCurve(t, 0.03, 3, WithMethod(m))

		d := settlement.AddDate(1, 6, 0)

		df, err := c.DF(d)
		require.NoError(t, err)

		tau := daycount.Act365Fixed.YearFrac(settlement, d)
		// All schemes stay close to the exact flat-curve factor between
		// pillars; only LogLinear reproduces it exactly.
		assert.InDelta(t, math.Exp(-0.03*tau), df, 2e-4, "method %d", m)
	}

	_, err := New(settlement, []time.Time{settlement.AddDate(1, 0, 0)}, []float64{0.97}, WithMethod(Method(42)))
	assert.Error(t, err)
}

func TestDiscountCurveValidation(t *testing.T) {
	_, err := New(settlement, []time.Time{settlement.AddDate(1, 0, 0)}, []float64{0.97, 0.95})
	assert.ErrorIs(t, err, curvego.ErrUnequalLength)

	// Non-positive factors are rejected by the default log-linear scheme.
	_, err = New(settlement, []time.Time{settlement.AddDate(1, 0, 0)}, []float64{-0.5})
	assert.ErrorIs(t, err, curvego.ErrNonPositiveValue)
}

func TestDiscountCurveExplicitSettlementPillar(t *testing.T) {
	dates := []time.Time{settlement, settlement.AddDate(1, 0, 0)}
	dfs := []float64{1, 0.96}

	c, err := New(settlement, dates, dfs, WithDayCount(daycount.Act360))
	require.NoError(t, err)

	df, err := c.DF(settlement)
	require.NoError(t, err)
	assert.Equal(t, 1.0, df)

	assert.True(t, c.Settlement().Equal(settlement))
}
