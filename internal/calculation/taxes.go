package calculation

import (
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal Tax Brackets: 2024 single-filer table for every projection year
//    - No inflation indexing, no standard deduction
// 2. Contribution limits: 2024 values ($22,500 401(k), $7,000 Roth IRA)
// 3. Tax savings are a first-year estimate and only apply to pre-tax accounts

// TaxBracket is one step of a progressive table: income above Floor is taxed at Rate
type TaxBracket struct {
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
	Floor decimal.Decimal `yaml:"floor" json:"floor"`
}

// DefaultBrackets is ordered by floor, highest first. Do not mutate.
var DefaultBrackets = []TaxBracket{
	{Rate: decimal.NewFromFloat(0.37), Floor: decimal.NewFromInt(578125)},
	{Rate: decimal.NewFromFloat(0.35), Floor: decimal.NewFromInt(231250)},
	{Rate: decimal.NewFromFloat(0.32), Floor: decimal.NewFromInt(182100)},
	{Rate: decimal.NewFromFloat(0.24), Floor: decimal.NewFromInt(95375)},
	{Rate: decimal.NewFromFloat(0.22), Floor: decimal.NewFromInt(44725)},
	{Rate: decimal.NewFromFloat(0.12), Floor: decimal.NewFromInt(11600)},
	{Rate: decimal.NewFromFloat(0.10), Floor: decimal.Zero},
}

// ContributionLimit is an annual ceiling; Unlimited means no ceiling applies
type ContributionLimit struct {
	Amount    decimal.Decimal
	Unlimited bool
}

// AccountLimits holds the annual contribution ceiling per account kind. Do not mutate.
var AccountLimits = map[domain.AccountKind]ContributionLimit{
	domain.Account401k:    {Amount: decimal.NewFromInt(22500)},
	domain.AccountRothIRA: {Amount: decimal.NewFromInt(7000)},
	domain.AccountGeneral: {Unlimited: true},
}

// LimitFor returns the contribution limit of an account, unlimited for unknown kinds
func LimitFor(kind domain.AccountKind) ContributionLimit {
	if l, ok := AccountLimits[kind]; ok {
		return l
	}
	return ContributionLimit{Unlimited: true}
}

// ClampMonthly caps a monthly amount at Amount/12
func (l ContributionLimit) ClampMonthly(monthly decimal.Decimal) decimal.Decimal {
	if l.Unlimited {
		return monthly
	}
	return minDecimal(monthly, l.Amount.DivRound(twelve, WorkingPrecision))
}

// ClampAnnual caps an annual amount at Amount
func (l ContributionLimit) ClampAnnual(annual decimal.Decimal) decimal.Decimal {
	if l.Unlimited {
		return annual
	}
	return minDecimal(annual, l.Amount)
}

// Exceeded reports whether an annual amount is over the limit
func (l ContributionLimit) Exceeded(annual decimal.Decimal) bool {
	return !l.Unlimited && annual.GreaterThan(l.Amount)
}

// MarginalTax integrates income over a floor-descending bracket table.
// Each slice of income above a floor is taxed at that bracket's rate.
func MarginalTax(income decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	remaining := income
	tax := decimal.Zero
	for _, b := range brackets {
		if remaining.GreaterThan(b.Floor) {
			tax = tax.Add(remaining.Sub(b.Floor).Mul(b.Rate))
			remaining = b.Floor
		}
	}
	return tax
}

// TaxSavings is the tax avoided by deducting deduction from grossIncome
func TaxSavings(grossIncome, deduction decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	return MarginalTax(grossIncome, brackets).Sub(MarginalTax(grossIncome.Sub(deduction), brackets))
}
