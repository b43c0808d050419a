package calculation

import (
	"testing"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMarginalTax(t *testing.T) {
	tests := []struct {
		income string
		want   string
	}{
		{"0", "0"},
		{"-5000", "0"},
		{"11600", "1160"},
		{"44725", "5135"},
		{"85000", "13995.5"},
		{"62500", "9045.5"},
	}
	for _, tt := range tests {
		got := MarginalTax(decimal.RequireFromString(tt.income), DefaultBrackets)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("MarginalTax(%s) = %s, want %s", tt.income, got, tt.want)
		}
	}
}

func TestMarginalTax_IsProgressive(t *testing.T) {
	// top slice above 578,125 is taxed at 37%
	low := MarginalTax(decimal.NewFromInt(600000), DefaultBrackets)
	high := MarginalTax(decimal.NewFromInt(600100), DefaultBrackets)
	assert.Equal(t, "37", high.Sub(low).String())
}

func TestTaxSavings_Additivity(t *testing.T) {
	incomes := []int64{30000, 85000, 190000, 250000, 700000}
	deductions := [][2]int64{{1000, 2000}, {5000, 17500}, {22500, 7000}, {60000, 60000}}

	for _, inc := range incomes {
		for _, d := range deductions {
			income := decimal.NewFromInt(inc)
			d1, d2 := decimal.NewFromInt(d[0]), decimal.NewFromInt(d[1])

			whole := TaxSavings(income, d1.Add(d2), DefaultBrackets)
			split := TaxSavings(income, d1, DefaultBrackets).Add(TaxSavings(income.Sub(d1), d2, DefaultBrackets))
			assert.True(t, whole.Sub(split).Abs().LessThan(decimal.NewFromFloat(0.01)),
				"income %d deductions %v: %s != %s", inc, d, whole, split)
		}
	}
}

func TestTaxSavings_SingleBracket(t *testing.T) {
	got := TaxSavings(decimal.NewFromInt(85000), decimal.NewFromInt(12000), DefaultBrackets)
	assert.Equal(t, "2640", got.String(), "12,000 deducted inside the 22% bracket")
}

func TestAccountLimits(t *testing.T) {
	k401 := LimitFor(domain.Account401k)
	assert.False(t, k401.Unlimited)
	assert.Equal(t, "1875", k401.ClampMonthly(decimal.NewFromInt(2500)).String())
	assert.Equal(t, "1000", k401.ClampMonthly(decimal.NewFromInt(1000)).String())
	assert.True(t, k401.Exceeded(decimal.NewFromInt(30000)))
	assert.False(t, k401.Exceeded(decimal.NewFromInt(22500)))

	roth := LimitFor(domain.AccountRothIRA)
	assert.Equal(t, "7000", roth.ClampAnnual(decimal.NewFromInt(12000)).String())

	general := LimitFor(domain.AccountGeneral)
	assert.True(t, general.Unlimited)
	assert.Equal(t, "5000", general.ClampMonthly(decimal.NewFromInt(5000)).String())
	assert.False(t, general.Exceeded(decimal.NewFromInt(1000000)))
}
