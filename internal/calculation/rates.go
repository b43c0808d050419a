package calculation

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
)

// PeriodicRate converts an annual nominal rate in percent to a per-period fraction.
// Negative rates are passed through. periodsPerYear must be positive; every
// calculator validates its frequency before converting.
func PeriodicRate(annualPercent decimal.Decimal, periodsPerYear int) decimal.Decimal {
	return annualPercent.DivRound(hundred, WorkingPrecision).
		DivRound(decimal.NewFromInt(int64(periodsPerYear)), WorkingPrecision)
}

// PeriodCount is the number of simulated periods in a horizon
func PeriodCount(years, periodsPerYear int) int {
	return years * periodsPerYear
}

// Percent converts a fraction to a percentage
func Percent(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(hundred)
}
