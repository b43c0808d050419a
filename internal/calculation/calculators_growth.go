package calculation

import (
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// BasicFV compounds a lump sum once a year
func (e *Engine) BasicFV(in domain.BasicFVInput) (domain.BasicFVResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.BasicFVResult{}, err
	}
	fv := LumpSum(in.Principal, PeriodicRate(in.Rate, 1), in.Years)
	return domain.BasicFVResult{
		FutureValue: roundCents(fv),
		Interest:    roundCents(fv.Sub(in.Principal)),
	}, nil
}

func validateBasicFV(in domain.BasicFVInput) error {
	v := newValidator(domain.KindBasicFV)
	v.number("principal", in.Principal)
	v.number("rate", in.Rate)
	v.integer("years", in.Years)
	return v.result()
}

// CompoundInterest compounds a lump sum CompoundingFrequency times a year
func (e *Engine) CompoundInterest(in domain.CompoundInterestInput) (domain.CompoundInterestResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.CompoundInterestResult{}, err
	}
	rate := PeriodicRate(in.Rate, in.CompoundingFrequency)
	fv := LumpSum(in.Principal, rate, PeriodCount(in.Years, in.CompoundingFrequency))
	return domain.CompoundInterestResult{
		FutureValue: roundCents(fv),
		Interest:    roundCents(fv.Sub(in.Principal)),
	}, nil
}

func validateCompoundInterest(in domain.CompoundInterestInput) error {
	v := newValidator(domain.KindCompoundInterest)
	v.number("principal", in.Principal)
	v.number("rate", in.Rate)
	v.integer("years", in.Years)
	v.integer("compounding_frequency", in.CompoundingFrequency)
	return v.result()
}

// InflationAdjusted compares nominal growth with growth deflated by inflation
func (e *Engine) InflationAdjusted(in domain.InflationAdjustedInput) (domain.InflationAdjustedResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.InflationAdjustedResult{}, err
	}
	nominalRate := PeriodicRate(in.Rate, 1)
	// (1+r)/(1+i) - 1
	realRate := one.Add(nominalRate).
		DivRound(one.Add(PeriodicRate(in.InflationRate, 1)), WorkingPrecision).
		Sub(one)

	trajectory := make([]domain.InflationSnapshot, 0, in.Years)
	var nominal, realValue decimal.Decimal
	for year := 1; year <= in.Years; year++ {
		nominal = LumpSum(in.Principal, nominalRate, year)
		realValue = LumpSum(in.Principal, realRate, year)
		trajectory = append(trajectory, domain.InflationSnapshot{
			Year:    year,
			Nominal: roundMoney(nominal),
			Real:    roundMoney(realValue),
			Impact:  roundMoney(nominal.Sub(realValue)),
		})
	}

	return domain.InflationAdjustedResult{
		NominalValue:    roundMoney(nominal),
		RealValue:       roundMoney(realValue),
		InflationImpact: roundMoney(nominal.Sub(realValue)),
		Trajectory:      trajectory,
	}, nil
}

func validateInflationAdjusted(in domain.InflationAdjustedInput) error {
	v := newValidator(domain.KindInflationAdjusted)
	v.number("principal", in.Principal)
	v.number("rate", in.Rate)
	v.number("inflation_rate", in.InflationRate)
	v.integer("years", in.Years)
	return v.result()
}
