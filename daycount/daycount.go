// Package daycount implements the day-count conventions used to convert a
// span between two calendar dates into a year fraction.
package daycount

import (
	"fmt"
	"time"
)

// Convention identifies a day-count convention.
type Convention int

const (
	// Act365Fixed divides actual elapsed days by 365. It is the standard
	// time basis for curve interpolation and zero-rate calculations.
	Act365Fixed Convention = iota

	// Act360 divides actual elapsed days by 360, the common money-market
	// basis.
	Act360

	// Thirty360US applies the US 30/360 bond-basis day adjustment.
	Thirty360US
)

// String returns the market shorthand for the convention.
func (c Convention) String() string {
	switch c {
	case Act365Fixed:
		return "ACT/365F"
	case Act360:
		return "ACT/360"
	case Thirty360US:
		return "30/360"
	default:
		return "Unknown"
	}
}

// Parse returns the Convention named by its market shorthand.
func Parse(s string) (Convention, error) {
	switch s {
	case "ACT/365F":
		return Act365Fixed, nil
	case "ACT/360":
		return Act360, nil
	case "30/360":
		return Thirty360US, nil
	default:
		return 0, fmt.Errorf("daycount: unknown convention %q", s)
	}
}

// YearFrac returns the year fraction between start and end under c.
func (c Convention) YearFrac(start, end time.Time) float64 {
	switch c {
	case Act360:
		return actualDays(start, end) / 360
	case Thirty360US:
		return thirty360Days(start, end) / 360
	default:
		return actualDays(start, end) / 365
	}
}

func actualDays(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

func thirty360Days(start, end time.Time) float64 {
	d1, d2 := start.Day(), end.Day()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 == 30 {
		d2 = 30
	}

	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())

	return float64(360*years + 30*months + d2 - d1)
}
