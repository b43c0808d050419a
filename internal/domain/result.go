package domain

import "github.com/shopspring/decimal"

// Result is the output of a single calculator; the concrete type mirrors the Input that produced it.
// Money fields are rounded to whole currency units (cents for BasicFV and CompoundInterest),
// percentage fields to two decimals.
type Result interface {
	Kind() Kind
	isResult()
}

// Tracked is implemented by results that carry a yearly trajectory
type Tracked interface {
	Snapshots() []PeriodSnapshot
}

// PeriodSnapshot is the state of a simulated balance at the end of one logical year
type PeriodSnapshot struct {
	Period       int             `yaml:"period" json:"period"`               // 1-based year index
	Age          int             `yaml:"age,omitempty" json:"age,omitempty"` // saver or vehicle age, when tracked
	Balance      decimal.Decimal `yaml:"balance" json:"balance"`             // balance at year end
	Contribution decimal.Decimal `yaml:"contribution" json:"contribution"`   // sum of positive flows in the year
	Withdrawal   decimal.Decimal `yaml:"withdrawal" json:"withdrawal"`       // sum of negative flows in the year, as a positive amount
	Growth       decimal.Decimal `yaml:"growth" json:"growth"`               // balance change not explained by flows
}

// InflationSnapshot compares nominal and real value at the end of one year
type InflationSnapshot struct {
	Year    int             `yaml:"year" json:"year"`
	Nominal decimal.Decimal `yaml:"nominal" json:"nominal"`
	Real    decimal.Decimal `yaml:"real" json:"real"`
	Impact  decimal.Decimal `yaml:"impact" json:"impact"`
}

// BasicFVResult is the future value of a lump sum
type BasicFVResult struct {
	FutureValue decimal.Decimal `yaml:"future_value" json:"future_value"`
	Interest    decimal.Decimal `yaml:"interest" json:"interest"`
}

// CompoundInterestResult is the future value of a lump sum compounded n times a year
type CompoundInterestResult struct {
	FutureValue decimal.Decimal `yaml:"future_value" json:"future_value"`
	Interest    decimal.Decimal `yaml:"interest" json:"interest"`
}

// MonthlyContributionsResult is the outcome of a contribution plan
type MonthlyContributionsResult struct {
	FutureValue        decimal.Decimal  `yaml:"future_value" json:"future_value"`
	TotalContributions decimal.Decimal  `yaml:"total_contributions" json:"total_contributions"`
	TotalEarnings      decimal.Decimal  `yaml:"total_earnings" json:"total_earnings"`
	Trajectory         []PeriodSnapshot `yaml:"trajectory" json:"trajectory"`
}

// WithdrawalsResult is the outcome of a drawdown schedule
type WithdrawalsResult struct {
	FinalBalance         decimal.Decimal  `yaml:"final_balance" json:"final_balance"`
	TotalWithdrawals     decimal.Decimal  `yaml:"total_withdrawals" json:"total_withdrawals"`
	TotalEarnings        decimal.Decimal  `yaml:"total_earnings" json:"total_earnings"`
	Depleted             bool             `yaml:"depleted" json:"depleted"`
	MonthsUntilDepletion int              `yaml:"months_until_depletion,omitempty" json:"months_until_depletion,omitempty"` // 0 unless Depleted
	Trajectory           []PeriodSnapshot `yaml:"trajectory" json:"trajectory"`
}

// MutualFundResult is the outcome of a fund investment after fees
type MutualFundResult struct {
	FutureValue     decimal.Decimal  `yaml:"future_value" json:"future_value"`
	TotalInvestment decimal.Decimal  `yaml:"total_investment" json:"total_investment"`
	TotalReturns    decimal.Decimal  `yaml:"total_returns" json:"total_returns"`
	TotalFees       decimal.Decimal  `yaml:"total_fees" json:"total_fees"`
	EffectiveReturn decimal.Decimal  `yaml:"effective_return" json:"effective_return"` // annualized, percent
	Trajectory      []PeriodSnapshot `yaml:"trajectory" json:"trajectory"`
}

// HomeValueResult is the appreciated value of a home and its improvements
type HomeValueResult struct {
	FutureValue       decimal.Decimal `yaml:"future_value" json:"future_value"`
	TotalAppreciation decimal.Decimal `yaml:"total_appreciation" json:"total_appreciation"`
	AnnualizedReturn  decimal.Decimal `yaml:"annualized_return" json:"annualized_return"` // percent
	ImprovementValue  decimal.Decimal `yaml:"improvement_value" json:"improvement_value"`
}

// CarValueResult is the depreciated value of a vehicle
type CarValueResult struct {
	FutureValue        decimal.Decimal  `yaml:"future_value" json:"future_value"`
	TotalDepreciation  decimal.Decimal  `yaml:"total_depreciation" json:"total_depreciation"`
	AnnualDepreciation decimal.Decimal  `yaml:"annual_depreciation" json:"annual_depreciation"`
	MaintenanceImpact  decimal.Decimal  `yaml:"maintenance_impact" json:"maintenance_impact"`
	Trajectory         []PeriodSnapshot `yaml:"trajectory" json:"trajectory"`
}

// InflationAdjustedResult compares nominal growth with purchasing power
type InflationAdjustedResult struct {
	NominalValue    decimal.Decimal     `yaml:"nominal_value" json:"nominal_value"`
	RealValue       decimal.Decimal     `yaml:"real_value" json:"real_value"`
	InflationImpact decimal.Decimal     `yaml:"inflation_impact" json:"inflation_impact"`
	Trajectory      []InflationSnapshot `yaml:"trajectory" json:"trajectory"`
}

// AnnuityResult is the accumulated value of a level payment stream
type AnnuityResult struct {
	FutureValue        decimal.Decimal  `yaml:"future_value" json:"future_value"`
	TotalContributions decimal.Decimal  `yaml:"total_contributions" json:"total_contributions"`
	TotalEarnings      decimal.Decimal  `yaml:"total_earnings" json:"total_earnings"`
	EffectiveYield     decimal.Decimal  `yaml:"effective_yield" json:"effective_yield"` // percent over the whole term
	Trajectory         []PeriodSnapshot `yaml:"trajectory" json:"trajectory"`
}

// RetirementResult is the projected retirement balance and the tax effect of contributing
type RetirementResult struct {
	FutureValue                  decimal.Decimal  `yaml:"future_value" json:"future_value"`
	TotalContributions           decimal.Decimal  `yaml:"total_contributions" json:"total_contributions"`
	TotalEarnings                decimal.Decimal  `yaml:"total_earnings" json:"total_earnings"`
	TaxSavings                   decimal.Decimal  `yaml:"tax_savings" json:"tax_savings"` // first-year estimate
	EffectiveMonthlyContribution decimal.Decimal  `yaml:"effective_monthly_contribution" json:"effective_monthly_contribution"`
	LimitExceeded                bool             `yaml:"limit_exceeded" json:"limit_exceeded"`
	AnnualLimit                  *decimal.Decimal `yaml:"annual_limit,omitempty" json:"annual_limit,omitempty"` // nil when unlimited
	Trajectory                   []PeriodSnapshot `yaml:"trajectory" json:"trajectory"`
}

// SIPResult is the outcome of a systematic investment plan
type SIPResult struct {
	FutureValue     decimal.Decimal  `yaml:"future_value" json:"future_value"`
	TotalInvestment decimal.Decimal  `yaml:"total_investment" json:"total_investment"`
	TotalEarnings   decimal.Decimal  `yaml:"total_earnings" json:"total_earnings"`
	EffectiveReturn decimal.Decimal  `yaml:"effective_return" json:"effective_return"` // percent over the whole term
	Trajectory      []PeriodSnapshot `yaml:"trajectory" json:"trajectory"`
}

func (BasicFVResult) Kind() Kind              { return KindBasicFV }
func (CompoundInterestResult) Kind() Kind     { return KindCompoundInterest }
func (MonthlyContributionsResult) Kind() Kind { return KindMonthlyContributions }
func (WithdrawalsResult) Kind() Kind          { return KindWithdrawals }
func (MutualFundResult) Kind() Kind           { return KindMutualFund }
func (HomeValueResult) Kind() Kind            { return KindHomeValue }
func (CarValueResult) Kind() Kind             { return KindCarValue }
func (InflationAdjustedResult) Kind() Kind    { return KindInflationAdjusted }
func (AnnuityResult) Kind() Kind              { return KindAnnuity }
func (RetirementResult) Kind() Kind           { return KindRetirement }
func (SIPResult) Kind() Kind                  { return KindSIP }

func (BasicFVResult) isResult()              {}
func (CompoundInterestResult) isResult()     {}
func (MonthlyContributionsResult) isResult() {}
func (WithdrawalsResult) isResult()          {}
func (MutualFundResult) isResult()           {}
func (HomeValueResult) isResult()            {}
func (CarValueResult) isResult()             {}
func (InflationAdjustedResult) isResult()    {}
func (AnnuityResult) isResult()              {}
func (RetirementResult) isResult()           {}
func (SIPResult) isResult()                  {}

func (r MonthlyContributionsResult) Snapshots() []PeriodSnapshot { return r.Trajectory }
func (r WithdrawalsResult) Snapshots() []PeriodSnapshot          { return r.Trajectory }
func (r MutualFundResult) Snapshots() []PeriodSnapshot           { return r.Trajectory }
func (r CarValueResult) Snapshots() []PeriodSnapshot             { return r.Trajectory }
func (r AnnuityResult) Snapshots() []PeriodSnapshot              { return r.Trajectory }
func (r RetirementResult) Snapshots() []PeriodSnapshot           { return r.Trajectory }
func (r SIPResult) Snapshots() []PeriodSnapshot                  { return r.Trajectory }

// Snapshots returns the trajectory of r, or nil when the calculator has none
func Snapshots(r Result) []PeriodSnapshot {
	if t, ok := r.(Tracked); ok {
		return t.Snapshots()
	}
	return nil
}
