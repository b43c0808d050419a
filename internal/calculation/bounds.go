package calculation

import "github.com/rgehrsitz/fvgo/internal/domain"

// FieldBounds is the documented domain of one numeric input field.
// Field matches the field's json/yaml tag.
type FieldBounds struct {
	Field        string  `json:"field"`
	Label        string  `json:"label"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Step         float64 `json:"step,omitempty"`
	Unit         string  `json:"unit,omitempty"`    // "$", "%", "yr" or "" for plain counts
	Choices      []int   `json:"choices,omitempty"` // when set, the value must be one of these
	MinExclusive bool    `json:"min_exclusive,omitempty"`
}

var (
	compoundingFrequencies = []int{1, 2, 4, 12, 365}
	annuityFrequencies     = []int{1, 2, 4, 12, 26, 52}
)

var inputBounds = map[domain.Kind][]FieldBounds{
	domain.KindBasicFV: {
		{Field: "principal", Label: "Principal", Max: 2000000, Step: 1000, Unit: "$"},
		{Field: "rate", Label: "Annual Rate", Max: 20, Step: 0.1, Unit: "%"},
		{Field: "years", Label: "Years", Min: 1, Max: 50, Step: 1, Unit: "yr"},
	},
	domain.KindCompoundInterest: {
		{Field: "principal", Label: "Principal", Max: 2000000, Step: 1000, Unit: "$"},
		{Field: "rate", Label: "Annual Rate", Max: 20, Step: 0.1, Unit: "%"},
		{Field: "years", Label: "Years", Min: 1, Max: 50, Step: 1, Unit: "yr"},
		{Field: "compounding_frequency", Label: "Compounding", Min: 1, Max: 365, Choices: compoundingFrequencies},
	},
	domain.KindMonthlyContributions: {
		{Field: "initial_amount", Label: "Initial Amount", Max: 100000, Step: 500, Unit: "$"},
		{Field: "monthly_contribution", Label: "Monthly Contribution", Max: 5000, Step: 50, Unit: "$"},
		{Field: "annual_rate", Label: "Annual Rate", Max: 20, Step: 0.1, Unit: "%"},
		{Field: "years", Label: "Years", Min: 1, Max: 50, Step: 1, Unit: "yr"},
	},
	domain.KindWithdrawals: {
		{Field: "initial_balance", Label: "Initial Balance", Max: 2000000, Step: 5000, Unit: "$"},
		{Field: "monthly_withdrawal", Label: "Monthly Withdrawal", Max: 10000, Step: 100, Unit: "$"},
		{Field: "annual_rate", Label: "Annual Rate", Max: 15, Step: 0.1, Unit: "%"},
		{Field: "years", Label: "Years", Min: 1, Max: 50, Step: 1, Unit: "yr"},
	},
	domain.KindMutualFund: {
		{Field: "initial_investment", Label: "Initial Investment", Max: 100000, Step: 500, Unit: "$"},
		{Field: "monthly_investment", Label: "Monthly Investment", Max: 5000, Step: 50, Unit: "$"},
		{Field: "years", Label: "Years", Min: 1, Max: 40, Step: 1, Unit: "yr"},
		{Field: "expected_return", Label: "Expected Return", Max: 20, Step: 0.1, Unit: "%"},
		{Field: "expense_ratio", Label: "Expense Ratio", Max: 2, Step: 0.05, Unit: "%"},
		{Field: "front_load", Label: "Front Load", Max: 5, Step: 0.25, Unit: "%"},
	},
	domain.KindHomeValue: {
		{Field: "current_value", Label: "Current Value", Max: 2000000, Step: 5000, Unit: "$", MinExclusive: true},
		{Field: "annual_appreciation", Label: "Annual Appreciation", Min: -10, Max: 15, Step: 0.1, Unit: "%"},
		{Field: "years", Label: "Years", Min: 1, Max: 30, Step: 1, Unit: "yr"},
		{Field: "improvements", Label: "Improvements", Max: 200000, Step: 1000, Unit: "$"},
		{Field: "improvement_appreciation", Label: "Improvement Value Add", Max: 100, Step: 1, Unit: "%"},
		{Field: "market_adjustment", Label: "Market Adjustment", Min: -10, Max: 10, Step: 0.5, Unit: "%"},
	},
	domain.KindCarValue: {
		{Field: "current_value", Label: "Current Value", Min: 1000, Max: 200000, Step: 500, Unit: "$"},
		{Field: "age", Label: "Vehicle Age", Max: 20, Step: 1, Unit: "yr"},
		{Field: "years", Label: "Years", Min: 1, Max: 10, Step: 1, Unit: "yr"},
		{Field: "annual_mileage", Label: "Annual Mileage", Max: 50000, Step: 1000},
		{Field: "maintenance_budget", Label: "Maintenance Budget", Max: 5000, Step: 100, Unit: "$"},
		{Field: "market_trend", Label: "Market Trend", Min: -10, Max: 10, Step: 0.5, Unit: "%"},
	},
	domain.KindInflationAdjusted: {
		{Field: "principal", Label: "Principal", Max: 2000000, Step: 1000, Unit: "$"},
		{Field: "rate", Label: "Annual Return", Max: 20, Step: 0.1, Unit: "%"},
		{Field: "inflation_rate", Label: "Inflation Rate", Max: 15, Step: 0.1, Unit: "%"},
		{Field: "years", Label: "Years", Min: 1, Max: 50, Step: 1, Unit: "yr"},
	},
	domain.KindAnnuity: {
		{Field: "payment", Label: "Payment", Max: 10000, Step: 50, Unit: "$"},
		{Field: "rate", Label: "Annual Rate", Max: 20, Step: 0.1, Unit: "%"},
		{Field: "years", Label: "Years", Min: 1, Max: 40, Step: 1, Unit: "yr"},
		{Field: "frequency", Label: "Payments per Year", Min: 1, Max: 52, Choices: annuityFrequencies},
	},
	domain.KindRetirement: {
		{Field: "current_age", Label: "Current Age", Min: 18, Max: 80, Step: 1, Unit: "yr"},
		{Field: "retirement_age", Label: "Retirement Age", Min: 18, Max: 90, Step: 1, Unit: "yr"},
		{Field: "current_savings", Label: "Current Savings", Max: 1000000, Step: 1000, Unit: "$"},
		{Field: "monthly_contribution", Label: "Monthly Contribution", Max: 5000, Step: 50, Unit: "$"},
		{Field: "expected_return", Label: "Expected Return", Max: 15, Step: 0.1, Unit: "%"},
		{Field: "annual_income", Label: "Annual Income", Max: 500000, Step: 1000, Unit: "$"},
	},
	domain.KindSIP: {
		{Field: "monthly_investment", Label: "Monthly Investment", Max: 10000, Step: 100, Unit: "$"},
		{Field: "annual_rate", Label: "Expected Return", Max: 20, Step: 0.1, Unit: "%"},
		{Field: "years", Label: "Years", Min: 1, Max: 30, Step: 1, Unit: "yr"},
	},
}

// Bounds returns the numeric field domains of a calculator in input order
func Bounds(kind domain.Kind) []FieldBounds {
	return append([]FieldBounds(nil), inputBounds[kind]...)
}

func boundsFor(kind domain.Kind, field string) FieldBounds {
	for _, b := range inputBounds[kind] {
		if b.Field == field {
			return b
		}
	}
	panic("calculation: no bounds for " + string(kind) + "." + field)
}
