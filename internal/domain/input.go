package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Input is the parameter set of a single calculator. The concrete type selects the calculator.
// All rates are percentages (5 means 5%).
type Input interface {
	Kind() Kind
	isInput()
}

// BasicFVInput holds the parameters of a single lump sum compounded annually
type BasicFVInput struct {
	Principal decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate" toml:"rate"`
	Years     int             `yaml:"years" json:"years" toml:"years"`
}

// CompoundInterestInput holds a lump sum compounded at a chosen frequency
type CompoundInterestInput struct {
	Principal            decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	Rate                 decimal.Decimal `yaml:"rate" json:"rate" toml:"rate"`
	Years                int             `yaml:"years" json:"years" toml:"years"`
	CompoundingFrequency int             `yaml:"compounding_frequency" json:"compounding_frequency" toml:"compounding_frequency"` // periods per year
}

// MonthlyContributionsInput holds an initial amount plus a level monthly contribution
type MonthlyContributionsInput struct {
	InitialAmount       decimal.Decimal `yaml:"initial_amount" json:"initial_amount" toml:"initial_amount"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution" toml:"monthly_contribution"`
	AnnualRate          decimal.Decimal `yaml:"annual_rate" json:"annual_rate" toml:"annual_rate"`
	Years               int             `yaml:"years" json:"years" toml:"years"`
}

// WithdrawalsInput holds a starting balance drawn down by a level monthly withdrawal
type WithdrawalsInput struct {
	InitialBalance    decimal.Decimal `yaml:"initial_balance" json:"initial_balance" toml:"initial_balance"`
	MonthlyWithdrawal decimal.Decimal `yaml:"monthly_withdrawal" json:"monthly_withdrawal" toml:"monthly_withdrawal"`
	AnnualRate        decimal.Decimal `yaml:"annual_rate" json:"annual_rate" toml:"annual_rate"`
	Years             int             `yaml:"years" json:"years" toml:"years"`
}

// MutualFundInput holds a fund investment subject to an expense ratio and a front load
type MutualFundInput struct {
	InitialInvestment decimal.Decimal `yaml:"initial_investment" json:"initial_investment" toml:"initial_investment"`
	MonthlyInvestment decimal.Decimal `yaml:"monthly_investment" json:"monthly_investment" toml:"monthly_investment"`
	Years             int             `yaml:"years" json:"years" toml:"years"`
	ExpectedReturn    decimal.Decimal `yaml:"expected_return" json:"expected_return" toml:"expected_return"`
	ExpenseRatio      decimal.Decimal `yaml:"expense_ratio" json:"expense_ratio" toml:"expense_ratio"` // annual, percent of balance
	FrontLoad         decimal.Decimal `yaml:"front_load" json:"front_load" toml:"front_load"`          // percent taken from every purchase
}

// HomeValueInput holds a home value and the cost of improvements made to it
type HomeValueInput struct {
	CurrentValue            decimal.Decimal `yaml:"current_value" json:"current_value" toml:"current_value"`
	AnnualAppreciation      decimal.Decimal `yaml:"annual_appreciation" json:"annual_appreciation" toml:"annual_appreciation"`
	Years                   int             `yaml:"years" json:"years" toml:"years"`
	Improvements            decimal.Decimal `yaml:"improvements" json:"improvements" toml:"improvements"`
	ImprovementAppreciation decimal.Decimal `yaml:"improvement_appreciation" json:"improvement_appreciation" toml:"improvement_appreciation"` // extra rate on top of the base rate
	MarketAdjustment        decimal.Decimal `yaml:"market_adjustment" json:"market_adjustment" toml:"market_adjustment"`
}

// CarValueInput holds the parameters of the vehicle depreciation model
type CarValueInput struct {
	CurrentValue      decimal.Decimal `yaml:"current_value" json:"current_value" toml:"current_value"`
	Age               int             `yaml:"age" json:"age" toml:"age"` // vehicle age in years today
	Years             int             `yaml:"years" json:"years" toml:"years"`
	AnnualMileage     int             `yaml:"annual_mileage" json:"annual_mileage" toml:"annual_mileage"`
	Condition         Condition       `yaml:"condition" json:"condition" toml:"condition"`
	MaintenanceBudget decimal.Decimal `yaml:"maintenance_budget" json:"maintenance_budget" toml:"maintenance_budget"` // per year
	MarketTrend       decimal.Decimal `yaml:"market_trend" json:"market_trend" toml:"market_trend"`
}

// InflationAdjustedInput holds a lump sum compared against inflation
type InflationAdjustedInput struct {
	Principal     decimal.Decimal `yaml:"principal" json:"principal" toml:"principal"`
	Rate          decimal.Decimal `yaml:"rate" json:"rate" toml:"rate"`
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate" toml:"inflation_rate"`
	Years         int             `yaml:"years" json:"years" toml:"years"`
}

// AnnuityInput holds a level payment made every period
type AnnuityInput struct {
	Payment   decimal.Decimal `yaml:"payment" json:"payment" toml:"payment"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate" toml:"rate"`
	Years     int             `yaml:"years" json:"years" toml:"years"`
	Frequency int             `yaml:"frequency" json:"frequency" toml:"frequency"` // payments per year
}

// RetirementInput holds the parameters of a tax-advantaged retirement savings plan
type RetirementInput struct {
	CurrentAge          int             `yaml:"current_age" json:"current_age" toml:"current_age"`
	RetirementAge       int             `yaml:"retirement_age" json:"retirement_age" toml:"retirement_age"`
	CurrentSavings      decimal.Decimal `yaml:"current_savings" json:"current_savings" toml:"current_savings"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution" toml:"monthly_contribution"`
	ExpectedReturn      decimal.Decimal `yaml:"expected_return" json:"expected_return" toml:"expected_return"`
	AccountKind         AccountKind     `yaml:"account_kind" json:"account_kind" toml:"account_kind"`
	AnnualIncome        decimal.Decimal `yaml:"annual_income" json:"annual_income" toml:"annual_income"`
}

// SIPInput holds a systematic investment plan with a fixed monthly amount
type SIPInput struct {
	MonthlyInvestment decimal.Decimal `yaml:"monthly_investment" json:"monthly_investment" toml:"monthly_investment"`
	AnnualRate        decimal.Decimal `yaml:"annual_rate" json:"annual_rate" toml:"annual_rate"`
	Years             int             `yaml:"years" json:"years" toml:"years"`
}

func (BasicFVInput) Kind() Kind              { return KindBasicFV }
func (CompoundInterestInput) Kind() Kind     { return KindCompoundInterest }
func (MonthlyContributionsInput) Kind() Kind { return KindMonthlyContributions }
func (WithdrawalsInput) Kind() Kind          { return KindWithdrawals }
func (MutualFundInput) Kind() Kind           { return KindMutualFund }
func (HomeValueInput) Kind() Kind            { return KindHomeValue }
func (CarValueInput) Kind() Kind             { return KindCarValue }
func (InflationAdjustedInput) Kind() Kind    { return KindInflationAdjusted }
func (AnnuityInput) Kind() Kind              { return KindAnnuity }
func (RetirementInput) Kind() Kind           { return KindRetirement }
func (SIPInput) Kind() Kind                  { return KindSIP }

func (BasicFVInput) isInput()              {}
func (CompoundInterestInput) isInput()     {}
func (MonthlyContributionsInput) isInput() {}
func (WithdrawalsInput) isInput()          {}
func (MutualFundInput) isInput()           {}
func (HomeValueInput) isInput()            {}
func (CarValueInput) isInput()             {}
func (InflationAdjustedInput) isInput()    {}
func (AnnuityInput) isInput()              {}
func (RetirementInput) isInput()           {}
func (SIPInput) isInput()                  {}

// Condition grades the state of a vehicle
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// Conditions lists vehicle conditions from best to worst
var Conditions = []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

// UnmarshalText accepts condition names case-insensitively
func (c *Condition) UnmarshalText(text []byte) error {
	v := Condition(strings.ToLower(strings.TrimSpace(string(text))))
	for _, known := range Conditions {
		if v == known {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown vehicle condition %q", string(text))
}

// AccountKind identifies the retirement account vehicle
type AccountKind string

const (
	Account401k    AccountKind = "401k"
	AccountRothIRA AccountKind = "roth_ira"
	AccountGeneral AccountKind = "general"
)

// AccountKinds lists the supported retirement accounts
var AccountKinds = []AccountKind{Account401k, AccountRothIRA, AccountGeneral}

// UnmarshalText accepts "401k", "roth_ira"/"rothIra" and "general"
func (a *AccountKind) UnmarshalText(text []byte) error {
	switch normalizeKindName(string(text)) {
	case "401k", "traditional401k":
		*a = Account401k
	case "rothira", "roth":
		*a = AccountRothIRA
	case "general", "taxable":
		*a = AccountGeneral
	default:
		return fmt.Errorf("unknown account kind %q", string(text))
	}
	return nil
}

// IsPreTax reports whether contributions reduce current taxable income
func (a AccountKind) IsPreTax() bool {
	return a == Account401k
}

// Title returns the display name of the account
func (a AccountKind) Title() string {
	switch a {
	case Account401k:
		return "Traditional 401(k)"
	case AccountRothIRA:
		return "Roth IRA"
	case AccountGeneral:
		return "General Investment Account"
	default:
		return string(a)
	}
}
