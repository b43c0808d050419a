package calculation

import (
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// HomeValue projects a home and the improvements made to it
func (e *Engine) HomeValue(in domain.HomeValueInput) (domain.HomeValueResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.HomeValueResult{}, err
	}
	out := AppreciationModel{
		CurrentValue:            in.CurrentValue,
		AnnualAppreciation:      in.AnnualAppreciation,
		Improvements:            in.Improvements,
		ImprovementAppreciation: in.ImprovementAppreciation,
		MarketAdjustment:        in.MarketAdjustment,
	}.Project(in.Years)

	return domain.HomeValueResult{
		FutureValue:       roundMoney(out.FutureValue),
		TotalAppreciation: roundMoney(out.Appreciation),
		AnnualizedReturn:  roundPct(Percent(out.AnnualizedReturn)),
		ImprovementValue:  roundMoney(out.ImprovementValue),
	}, nil
}

func validateHomeValue(in domain.HomeValueInput) error {
	v := newValidator(domain.KindHomeValue)
	v.number("current_value", in.CurrentValue)
	v.number("annual_appreciation", in.AnnualAppreciation)
	v.integer("years", in.Years)
	v.number("improvements", in.Improvements)
	v.number("improvement_appreciation", in.ImprovementAppreciation)
	v.number("market_adjustment", in.MarketAdjustment)
	return v.result()
}

// CarValue projects a vehicle's depreciated value
func (e *Engine) CarValue(in domain.CarValueInput) (domain.CarValueResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.CarValueResult{}, err
	}
	out := DepreciationModel{
		InitialValue:      in.CurrentValue,
		StartAge:          in.Age,
		AnnualMileage:     in.AnnualMileage,
		Condition:         in.Condition,
		MaintenanceBudget: in.MaintenanceBudget,
		MarketTrend:       in.MarketTrend,
	}.Project(in.Years)

	return domain.CarValueResult{
		FutureValue:        roundMoney(out.FinalValue),
		TotalDepreciation:  roundMoney(out.TotalDepreciation),
		AnnualDepreciation: roundMoney(out.TotalDepreciation.DivRound(decimal.NewFromInt(int64(in.Years)), WorkingPrecision)),
		MaintenanceImpact:  roundMoney(out.MaintenanceImpact),
		Trajectory:         roundTrajectory(out.Trajectory),
	}, nil
}

func validateCarValue(in domain.CarValueInput) error {
	v := newValidator(domain.KindCarValue)
	v.number("current_value", in.CurrentValue)
	v.integer("age", in.Age)
	v.integer("years", in.Years)
	v.integer("annual_mileage", in.AnnualMileage)
	if _, ok := conditionMultipliers[in.Condition]; !ok {
		v.fail("condition", string(in.Condition), "must be one of excellent, good, fair, poor")
	}
	v.number("maintenance_budget", in.MaintenanceBudget)
	v.number("market_trend", in.MarketTrend)
	return v.result()
}
