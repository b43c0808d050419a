package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Retirement projects savings in a contribution-limited account up to retirement age.
// Contributions over the account's annual limit are clamped to limit/12 per month and
// flagged with LimitExceeded instead of being rejected.
func (e *Engine) Retirement(in domain.RetirementInput) (domain.RetirementResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.RetirementResult{}, err
	}
	years := in.RetirementAge - in.CurrentAge
	limit := LimitFor(in.AccountKind)
	requestedAnnual := in.MonthlyContribution.Mul(twelve)
	monthly := limit.ClampMonthly(in.MonthlyContribution)

	res := domain.RetirementResult{
		EffectiveMonthlyContribution: roundMoney(monthly),
		LimitExceeded:                limit.Exceeded(requestedAnnual),
	}
	if !limit.Unlimited {
		amount := limit.Amount
		res.AnnualLimit = &amount
	}
	if res.LimitExceeded {
		e.logger().Warnf("retirement: annual contribution %s exceeds the %s limit of %s, clamping to %s per month",
			requestedAnnual.StringFixed(0), in.AccountKind.Title(), limit.Amount.StringFixed(0), monthly.StringFixed(2))
	}

	sim := Simulate(SimulationParams{
		InitialBalance: in.CurrentSavings,
		PeriodicRate:   PeriodicRate(in.ExpectedReturn, monthsPerYear),
		Periods:        PeriodCount(years, monthsPerYear),
		PeriodsPerYear: monthsPerYear,
		Order:          FlowThenGrow,
		Flows:          []CashFlow{Contribution(monthly)},
		AgeAt:          func(year int) int { return in.CurrentAge + year },
	})

	contributed := in.CurrentSavings.Add(sim.TotalContributed)
	res.FutureValue = roundMoney(sim.FinalBalance)
	res.TotalContributions = roundMoney(contributed)
	res.TotalEarnings = roundMoney(sim.FinalBalance.Sub(contributed))
	res.Trajectory = roundTrajectory(sim.Trajectory)

	if in.AccountKind.IsPreTax() {
		res.TaxSavings = roundMoney(TaxSavings(in.AnnualIncome, limit.ClampAnnual(requestedAnnual), e.brackets()))
	} else {
		res.TaxSavings = decimal.Zero
	}
	return res, nil
}

func validateRetirement(in domain.RetirementInput) error {
	v := newValidator(domain.KindRetirement)
	v.integer("current_age", in.CurrentAge)
	if in.RetirementAge <= in.CurrentAge {
		v.fail("retirement_age", fmt.Sprint(in.RetirementAge),
			fmt.Sprintf("must be greater than current age %d", in.CurrentAge))
	}
	v.integer("retirement_age", in.RetirementAge)
	v.number("current_savings", in.CurrentSavings)
	v.number("monthly_contribution", in.MonthlyContribution)
	v.number("expected_return", in.ExpectedReturn)
	if _, ok := AccountLimits[in.AccountKind]; !ok {
		v.fail("account_kind", string(in.AccountKind), "must be one of 401k, roth_ira, general")
	}
	v.number("annual_income", in.AnnualIncome)
	return v.result()
}
