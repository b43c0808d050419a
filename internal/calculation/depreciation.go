package calculation

import (
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// VEHICLE DEPRECIATION ASSUMPTIONS:
//
// 1. Base rate by vehicle age: 20% in the first year, 15% in the second,
//    10% through age 5 and 7% afterwards
// 2. Mileage shifts the rate by (annualMileage-12000)*-0.0001 percentage points
// 3. Condition and maintenance scale the post-depreciation value every year
// 4. Half of the total maintenance spend is added back once at the end, undiscounted

// depreciationBand is the base rate for vehicles up to MaxAge years old
type depreciationBand struct {
	MaxAge int
	Rate   decimal.Decimal
}

var depreciationBands = []depreciationBand{
	{MaxAge: 0, Rate: decimal.NewFromFloat(0.20)},
	{MaxAge: 1, Rate: decimal.NewFromFloat(0.15)},
	{MaxAge: 5, Rate: decimal.NewFromFloat(0.10)},
}

var matureDepreciationRate = decimal.NewFromFloat(0.07)

var conditionMultipliers = map[domain.Condition]decimal.Decimal{
	domain.ConditionExcellent: decimal.NewFromFloat(1.10),
	domain.ConditionGood:      decimal.NewFromFloat(1.00),
	domain.ConditionFair:      decimal.NewFromFloat(0.90),
	domain.ConditionPoor:      decimal.NewFromFloat(0.80),
}

var (
	baselineMileage       = decimal.NewFromInt(12000)
	mileageSensitivity    = decimal.NewFromFloat(-0.0001)
	maintenanceBenchmark  = decimal.NewFromFloat(0.05) // share of purchase value
	maxMaintenanceBonus   = decimal.NewFromFloat(1.10)
	maintenanceCarryShare = decimal.NewFromFloat(0.5)
)

// BaseDepreciationRate returns the age-banded rate for a vehicle of the given age
func BaseDepreciationRate(age int) decimal.Decimal {
	for _, band := range depreciationBands {
		if age <= band.MaxAge {
			return band.Rate
		}
	}
	return matureDepreciationRate
}

// ConditionMultiplier returns the value retention factor of a condition grade
func ConditionMultiplier(c domain.Condition) decimal.Decimal {
	if m, ok := conditionMultipliers[c]; ok {
		return m
	}
	return one
}

// MileageAdjustment is (mileage-12000)*-0.0001, in percentage points
func MileageAdjustment(annualMileage int) decimal.Decimal {
	return decimal.NewFromInt(int64(annualMileage)).Sub(baselineMileage).Mul(mileageSensitivity)
}

// MaintenanceMultiplier is min(1.10, budget/(initialValue*0.05))
func MaintenanceMultiplier(budget, initialValue decimal.Decimal) decimal.Decimal {
	benchmark := initialValue.Mul(maintenanceBenchmark)
	if benchmark.Sign() <= 0 {
		return maxMaintenanceBonus
	}
	return minDecimal(maxMaintenanceBonus, budget.DivRound(benchmark, WorkingPrecision))
}

// DepreciationOutcome is the unrounded output of DepreciationModel
type DepreciationOutcome struct {
	FinalValue        decimal.Decimal
	TotalDepreciation decimal.Decimal // sum of the yearly losses before condition and maintenance scaling
	MaintenanceImpact decimal.Decimal
	Trajectory        []domain.PeriodSnapshot
}

// DepreciationModel projects a vehicle's value year by year
type DepreciationModel struct {
	InitialValue      decimal.Decimal
	StartAge          int
	AnnualMileage     int
	Condition         domain.Condition
	MaintenanceBudget decimal.Decimal
	MarketTrend       decimal.Decimal // percent
}

// Project runs the model for the given number of years
func (m DepreciationModel) Project(years int) DepreciationOutcome {
	conditionMult := ConditionMultiplier(m.Condition)
	maintMult := MaintenanceMultiplier(m.MaintenanceBudget, m.InitialValue)
	adjustment := MileageAdjustment(m.AnnualMileage).Add(m.MarketTrend).DivRound(hundred, WorkingPrecision)

	value := m.InitialValue
	out := DepreciationOutcome{Trajectory: make([]domain.PeriodSnapshot, 0, years)}
	for year := 1; year <= years; year++ {
		// the band is chosen by the age the vehicle reaches in this year
		rate := BaseDepreciationRate(m.StartAge + year).Add(adjustment)
		yearStart := value
		loss := value.Mul(rate).Round(WorkingPrecision)
		value = value.Sub(loss).Mul(conditionMult).Mul(maintMult).Round(WorkingPrecision)
		out.TotalDepreciation = out.TotalDepreciation.Add(loss)
		out.Trajectory = append(out.Trajectory, domain.PeriodSnapshot{
			Period:     year,
			Age:        m.StartAge + year,
			Balance:    value,
			Withdrawal: loss,
			Growth:     value.Sub(yearStart).Add(loss),
		})
	}

	out.MaintenanceImpact = m.MaintenanceBudget.Mul(decimal.NewFromInt(int64(years))).Mul(maintenanceCarryShare)
	out.FinalValue = value.Add(out.MaintenanceImpact)
	return out
}
