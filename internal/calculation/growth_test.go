package calculation

import (
	"testing"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPeriodicRate(t *testing.T) {
	tests := []struct {
		annual  string
		periods int
		want    string
	}{
		{"12", 12, "0.01"},
		{"5", 1, "0.05"},
		{"-10", 1, "-0.1"},
		{"0", 365, "0"},
	}
	for _, tt := range tests {
		got := PeriodicRate(decimal.RequireFromString(tt.annual), tt.periods)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("PeriodicRate(%s, %d) = %s, want %s", tt.annual, tt.periods, got, tt.want)
		}
	}
}

func TestEngine_RejectsZeroFrequencyBeforeConverting(t *testing.T) {
	engine := NewEngine()
	for _, in := range []domain.Input{
		domain.CompoundInterestInput{Principal: decimal.NewFromInt(1000), Rate: decimal.NewFromInt(5), Years: 5, CompoundingFrequency: 0},
		domain.AnnuityInput{Payment: decimal.NewFromInt(100), Rate: decimal.NewFromInt(5), Years: 5, Frequency: 0},
	} {
		if _, err := engine.Calculate(in); !IsValidationError(err) {
			t.Errorf("%s with frequency 0: expected validation error, got %v", in.Kind(), err)
		}
	}
}

func TestPeriodCount(t *testing.T) {
	assert.Equal(t, 120, PeriodCount(10, 12))
	assert.Equal(t, 2600, PeriodCount(50, 52))
}

func TestLumpSum_ZeroPeriodsReturnsPrincipal(t *testing.T) {
	for _, p := range []string{"0", "1", "12345.67", "2000000"} {
		for _, r := range []string{"0", "0.05", "-0.1", "0.2"} {
			principal := decimal.RequireFromString(p)
			got := LumpSum(principal, decimal.RequireFromString(r), 0)
			assert.True(t, got.Equal(principal), "LumpSum(%s, %s, 0) = %s", p, r, got)
		}
	}
}

func TestLumpSum_KnownValues(t *testing.T) {
	got := LumpSum(decimal.NewFromInt(10000), decimal.NewFromFloat(0.05), 10)
	assert.Equal(t, "16288.95", got.StringFixed(2))

	got = LumpSum(decimal.NewFromInt(10000), PeriodicRate(decimal.NewFromInt(5), 12), 120)
	assert.Equal(t, "16470.09", got.StringFixed(2))

	got = LumpSum(decimal.NewFromInt(1000), decimal.NewFromFloat(-0.5), 2)
	assert.Equal(t, "250.00", got.StringFixed(2))
}

func TestAnnuityFutureValue_ZeroRateIsLinear(t *testing.T) {
	for _, n := range []int{1, 12, 120, 600} {
		payment := decimal.NewFromInt(250)
		got := AnnuityFutureValue(payment, decimal.Zero, n)
		assert.True(t, got.Equal(payment.Mul(decimal.NewFromInt(int64(n)))), "n=%d got %s", n, got)
	}
}

func TestAnnuityFutureValue_MatchesSeries(t *testing.T) {
	// 100 at the end of each of 3 periods at 10%: 100*1.21 + 100*1.1 + 100
	got := AnnuityFutureValue(decimal.NewFromInt(100), decimal.NewFromFloat(0.1), 3)
	assert.Equal(t, "331.00", got.StringFixed(2))

	assert.True(t, AnnuityFutureValue(decimal.NewFromInt(100), decimal.NewFromFloat(0.1), 0).IsZero())
}

func TestPowInt(t *testing.T) {
	assert.True(t, powInt(decimal.NewFromInt(2), 10).Equal(decimal.NewFromInt(1024)))
	assert.True(t, powInt(decimal.NewFromFloat(1.5), 0).Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "1.62889462677744140625", powInt(decimal.NewFromFloat(1.05), 10).String())
}

func TestAnnualizedRate(t *testing.T) {
	got := annualizedRate(decimal.NewFromInt(121), decimal.NewFromInt(100), 2)
	assert.Equal(t, "0.1", got.Round(10).String())

	assert.True(t, annualizedRate(decimal.NewFromInt(121), decimal.Zero, 2).IsZero(), "zero base yields zero")
	assert.True(t, annualizedRate(decimal.Zero, decimal.NewFromInt(100), 2).IsZero(), "zero ending yields zero")
}

func TestTotalReturn(t *testing.T) {
	assert.Equal(t, "0.5", totalReturn(decimal.NewFromInt(150), decimal.NewFromInt(100)).String())
	assert.True(t, totalReturn(decimal.NewFromInt(150), decimal.Zero).IsZero())
}
