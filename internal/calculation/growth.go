package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// WorkingPrecision is the number of decimal places carried through intermediate arithmetic.
// Results are rounded to currency units only when packaged.
const WorkingPrecision int32 = 20

// LumpSum is principal*(1+rate)^periods. Zero periods returns the principal unchanged.
func LumpSum(principal, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return principal
	}
	return principal.Mul(powInt(one.Add(rate), periods)).Round(WorkingPrecision)
}

// AnnuityFutureValue is the value of an ordinary annuity: payment*((1+rate)^n-1)/rate,
// or payment*n when rate is zero.
func AnnuityFutureValue(payment, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	if rate.IsZero() {
		return payment.Mul(decimal.NewFromInt(int64(periods)))
	}
	factor := powInt(one.Add(rate), periods).Sub(one).DivRound(rate, WorkingPrecision)
	return payment.Mul(factor).Round(WorkingPrecision)
}

// powInt raises base to a non-negative integer power by repeated squaring,
// rounding every product to WorkingPrecision.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := one
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(WorkingPrecision)
		}
		base = base.Mul(base).Round(WorkingPrecision)
		exp >>= 1
	}
	return result
}

// annualizedRate is (ending/starting)^(1/years)-1 as a fraction.
// Fractional roots fall back to float64; zero or negative ratios return zero.
func annualizedRate(ending, starting decimal.Decimal, years int) decimal.Decimal {
	if starting.Sign() <= 0 || ending.Sign() <= 0 || years <= 0 {
		return decimal.Zero
	}
	ratio, _ := ending.DivRound(starting, WorkingPrecision).Float64()
	return decimal.NewFromFloat(math.Pow(ratio, 1/float64(years)) - 1)
}

// totalReturn is ending/starting-1 as a fraction, zero when nothing was invested
func totalReturn(ending, starting decimal.Decimal) decimal.Decimal {
	if starting.Sign() <= 0 {
		return decimal.Zero
	}
	return ending.DivRound(starting, WorkingPrecision).Sub(one)
}

func roundMoney(d decimal.Decimal) decimal.Decimal { return d.Round(0) }
func roundCents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
func roundPct(d decimal.Decimal) decimal.Decimal   { return d.Round(2) }

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
