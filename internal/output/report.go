package output

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is configured
const DefaultCurrency = "USD"

// Unit tells presenters how to render a Metric value
type Unit int

const (
	UnitMoney   Unit = iota // whole currency units
	UnitCents               // currency with minor units
	UnitPercent             // already scaled to 0-100
	UnitCount               // plain integer (years, months, ages)
)

// Metric is one labelled headline value of a result
type Metric struct {
	Label string
	Value decimal.Decimal
	Unit  Unit
}

// Format renders the metric for display in the given currency
func (m Metric) Format(currency string) string {
	switch m.Unit {
	case UnitCents:
		return FormatCents(m.Value, currency)
	case UnitPercent:
		return FormatPercent(m.Value)
	case UnitCount:
		return m.Value.Round(0).String()
	default:
		return FormatCurrency(m.Value, currency)
	}
}

func currencyFor(code string) *money.Currency {
	if c := money.GetCurrency(strings.ToUpper(code)); c != nil {
		return c
	}
	return money.GetCurrency(DefaultCurrency)
}

// CurrencySymbol returns the display symbol of a currency code, e.g. "$" for USD
func CurrencySymbol(currency string) string {
	return currencyFor(currency).Grapheme
}

// FormatCurrency formats an amount in whole currency units, e.g. "$16,289"
func FormatCurrency(amount decimal.Decimal, currency string) string {
	c := currencyFor(currency)
	f := money.NewFormatter(0, c.Decimal, c.Thousand, c.Grapheme, c.Template)
	return f.Format(amount.Round(0).IntPart())
}

// FormatCents formats an amount with the currency's minor units, e.g. "$16,288.95"
func FormatCents(amount decimal.Decimal, currency string) string {
	c := currencyFor(currency)
	minor := amount.Shift(int32(c.Fraction)).Round(0).IntPart()
	return money.New(minor, c.Code).Display()
}

// FormatPercent formats a percentage value with two decimals
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

func money0(label string, v decimal.Decimal) Metric {
	return Metric{Label: label, Value: v, Unit: UnitMoney}
}
func cents(label string, v decimal.Decimal) Metric {
	return Metric{Label: label, Value: v, Unit: UnitCents}
}
func percent(label string, v decimal.Decimal) Metric {
	return Metric{Label: label, Value: v, Unit: UnitPercent}
}

// Headlines returns the headline values of a result in display order
func Headlines(r domain.Result) []Metric {
	switch res := r.(type) {
	case domain.BasicFVResult:
		return []Metric{cents("Future Value", res.FutureValue), cents("Interest Earned", res.Interest)}
	case domain.CompoundInterestResult:
		return []Metric{cents("Future Value", res.FutureValue), cents("Interest Earned", res.Interest)}
	case domain.MonthlyContributionsResult:
		return []Metric{
			money0("Future Value", res.FutureValue),
			money0("Total Contributions", res.TotalContributions),
			money0("Total Earnings", res.TotalEarnings),
		}
	case domain.WithdrawalsResult:
		metrics := []Metric{
			money0("Final Balance", res.FinalBalance),
			money0("Total Withdrawals", res.TotalWithdrawals),
			money0("Total Earnings", res.TotalEarnings),
		}
		if res.Depleted {
			metrics = append(metrics, Metric{Label: "Months Until Depletion", Value: decimal.NewFromInt(int64(res.MonthsUntilDepletion)), Unit: UnitCount})
		}
		return metrics
	case domain.MutualFundResult:
		return []Metric{
			money0("Future Value", res.FutureValue),
			money0("Total Investment", res.TotalInvestment),
			money0("Total Returns", res.TotalReturns),
			money0("Total Fees", res.TotalFees),
			percent("Effective Annual Return", res.EffectiveReturn),
		}
	case domain.HomeValueResult:
		return []Metric{
			money0("Future Value", res.FutureValue),
			money0("Total Appreciation", res.TotalAppreciation),
			percent("Annualized Return", res.AnnualizedReturn),
			money0("Improvement Value", res.ImprovementValue),
		}
	case domain.CarValueResult:
		return []Metric{
			money0("Future Value", res.FutureValue),
			money0("Total Depreciation", res.TotalDepreciation),
			money0("Annual Depreciation", res.AnnualDepreciation),
			money0("Maintenance Impact", res.MaintenanceImpact),
		}
	case domain.InflationAdjustedResult:
		return []Metric{
			money0("Nominal Value", res.NominalValue),
			money0("Real Value", res.RealValue),
			money0("Inflation Impact", res.InflationImpact),
		}
	case domain.AnnuityResult:
		return []Metric{
			money0("Future Value", res.FutureValue),
			money0("Total Contributions", res.TotalContributions),
			money0("Total Earnings", res.TotalEarnings),
			percent("Effective Yield", res.EffectiveYield),
		}
	case domain.RetirementResult:
		return []Metric{
			money0("Future Value", res.FutureValue),
			money0("Total Contributions", res.TotalContributions),
			money0("Total Earnings", res.TotalEarnings),
			money0("Tax Savings", res.TaxSavings),
			money0("Monthly Contribution", res.EffectiveMonthlyContribution),
		}
	case domain.SIPResult:
		return []Metric{
			money0("Future Value", res.FutureValue),
			money0("Total Investment", res.TotalInvestment),
			money0("Total Earnings", res.TotalEarnings),
			percent("Total Return", res.EffectiveReturn),
		}
	default:
		return nil
	}
}

// Warnings returns the domain warnings a result carries, e.g. a clamped contribution
func Warnings(r domain.Result, currency string) []string {
	var out []string
	switch res := r.(type) {
	case domain.RetirementResult:
		if res.LimitExceeded && res.AnnualLimit != nil {
			out = append(out, fmt.Sprintf("Contribution exceeds the annual limit of %s; %s per month was used",
				FormatCurrency(*res.AnnualLimit, currency), FormatCurrency(res.EffectiveMonthlyContribution, currency)))
		}
	case domain.WithdrawalsResult:
		if res.Depleted {
			out = append(out, fmt.Sprintf("Balance is depleted after %d months", res.MonthsUntilDepletion))
		}
	}
	return out
}
