package calculation

import "github.com/shopspring/decimal"

// AppreciationModel grows a property and its improvements as two lump-sum tracks.
// All rates are percentages.
type AppreciationModel struct {
	CurrentValue            decimal.Decimal
	AnnualAppreciation      decimal.Decimal
	Improvements            decimal.Decimal
	ImprovementAppreciation decimal.Decimal // added to the base rate for the improvement track
	MarketAdjustment        decimal.Decimal
}

// AppreciationOutcome is the unrounded output of AppreciationModel
type AppreciationOutcome struct {
	BaseValue        decimal.Decimal
	ImprovementValue decimal.Decimal
	FutureValue      decimal.Decimal
	Appreciation     decimal.Decimal // FutureValue - CurrentValue - Improvements
	AnnualizedReturn decimal.Decimal // fraction
}

// Project compounds both tracks annually for years
func (m AppreciationModel) Project(years int) AppreciationOutcome {
	baseRate := PeriodicRate(m.AnnualAppreciation.Add(m.MarketAdjustment), 1)
	improvementRate := PeriodicRate(m.AnnualAppreciation.Add(m.ImprovementAppreciation).Add(m.MarketAdjustment), 1)

	base := LumpSum(m.CurrentValue, baseRate, years)
	improved := LumpSum(m.Improvements, improvementRate, years)
	total := base.Add(improved)
	invested := m.CurrentValue.Add(m.Improvements)

	return AppreciationOutcome{
		BaseValue:        base,
		ImprovementValue: improved,
		FutureValue:      total,
		Appreciation:     total.Sub(invested),
		AnnualizedReturn: annualizedRate(total, invested, years),
	}
}
