package calculation

import (
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// MonthlyContributions values an initial amount plus a level monthly contribution.
// The headline value uses the closed form; the trajectory comes from the simulator.
func (e *Engine) MonthlyContributions(in domain.MonthlyContributionsInput) (domain.MonthlyContributionsResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.MonthlyContributionsResult{}, err
	}
	rate := PeriodicRate(in.AnnualRate, monthsPerYear)
	months := PeriodCount(in.Years, monthsPerYear)

	fv := LumpSum(in.InitialAmount, rate, months).Add(AnnuityFutureValue(in.MonthlyContribution, rate, months))
	contributed := in.InitialAmount.Add(in.MonthlyContribution.Mul(decimal.NewFromInt(int64(months))))

	// ordinary annuity: growth on the opening balance, then the deposit
	sim := Simulate(SimulationParams{
		InitialBalance: in.InitialAmount,
		PeriodicRate:   rate,
		Periods:        months,
		PeriodsPerYear: monthsPerYear,
		Order:          GrowThenFlow,
		Flows:          []CashFlow{Contribution(in.MonthlyContribution)},
	})

	return domain.MonthlyContributionsResult{
		FutureValue:        roundMoney(fv),
		TotalContributions: roundMoney(contributed),
		TotalEarnings:      roundMoney(fv.Sub(contributed)),
		Trajectory:         roundTrajectory(sim.Trajectory),
	}, nil
}

func validateMonthlyContributions(in domain.MonthlyContributionsInput) error {
	v := newValidator(domain.KindMonthlyContributions)
	v.number("initial_amount", in.InitialAmount)
	v.number("monthly_contribution", in.MonthlyContribution)
	v.number("annual_rate", in.AnnualRate)
	v.integer("years", in.Years)
	return v.result()
}

// Withdrawals draws a level amount every month from a growing balance and stops
// at the first month that leaves nothing.
func (e *Engine) Withdrawals(in domain.WithdrawalsInput) (domain.WithdrawalsResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.WithdrawalsResult{}, err
	}
	months := PeriodCount(in.Years, monthsPerYear)
	sim := Simulate(SimulationParams{
		InitialBalance:  in.InitialBalance,
		PeriodicRate:    PeriodicRate(in.AnnualRate, monthsPerYear),
		Periods:         months,
		PeriodsPerYear:  monthsPerYear,
		Order:           GrowThenFlow,
		Flows:           []CashFlow{Withdrawal(in.MonthlyWithdrawal)},
		StopOnDepletion: true,
	})

	res := domain.WithdrawalsResult{
		FinalBalance:     roundMoney(sim.FinalBalance),
		TotalWithdrawals: roundMoney(sim.TotalWithdrawn),
		TotalEarnings:    roundMoney(maxDecimal(sim.FinalBalance.Add(sim.TotalWithdrawn).Sub(in.InitialBalance), decimal.Zero)),
		Trajectory:       roundTrajectory(sim.Trajectory),
	}
	if sim.DepletedAt > 0 {
		res.Depleted = true
		res.MonthsUntilDepletion = sim.DepletedAt
		e.logger().Infof("withdrawals: balance depleted after %d of %d months", sim.DepletedAt, months)
	}
	return res, nil
}

func validateWithdrawals(in domain.WithdrawalsInput) error {
	v := newValidator(domain.KindWithdrawals)
	v.number("initial_balance", in.InitialBalance)
	v.number("monthly_withdrawal", in.MonthlyWithdrawal)
	v.number("annual_rate", in.AnnualRate)
	v.integer("years", in.Years)
	return v.result()
}

// MutualFund simulates monthly purchases net of a front load, a monthly expense
// charge on the balance and then growth.
func (e *Engine) MutualFund(in domain.MutualFundInput) (domain.MutualFundResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.MutualFundResult{}, err
	}
	months := PeriodCount(in.Years, monthsPerYear)
	loadFactor := one.Sub(in.FrontLoad.DivRound(hundred, WorkingPrecision))
	initialAfterLoad := in.InitialInvestment.Mul(loadFactor)
	monthlyAfterLoad := in.MonthlyInvestment.Mul(loadFactor)

	sim := Simulate(SimulationParams{
		InitialBalance: initialAfterLoad,
		PeriodicRate:   PeriodicRate(in.ExpectedReturn, monthsPerYear),
		Periods:        months,
		PeriodsPerYear: monthsPerYear,
		Order:          FlowThenGrow,
		Flows: []CashFlow{
			Contribution(monthlyAfterLoad),
			BalanceFee(PeriodicRate(in.ExpenseRatio, monthsPerYear)),
		},
	})

	invested := in.InitialInvestment.Add(in.MonthlyInvestment.Mul(decimal.NewFromInt(int64(months))))
	// the initial load counts as a fee, loads on monthly purchases do not
	fees := in.InitialInvestment.Sub(initialAfterLoad).Add(sim.TotalWithdrawn)
	returns := sim.FinalBalance.Sub(invested).Add(fees)

	return domain.MutualFundResult{
		FutureValue:     roundMoney(sim.FinalBalance),
		TotalInvestment: roundMoney(invested),
		TotalReturns:    roundMoney(returns),
		TotalFees:       roundMoney(fees),
		EffectiveReturn: roundPct(Percent(annualizedRate(sim.FinalBalance, invested, in.Years))),
		Trajectory:      roundTrajectory(sim.Trajectory),
	}, nil
}

func validateMutualFund(in domain.MutualFundInput) error {
	v := newValidator(domain.KindMutualFund)
	v.number("initial_investment", in.InitialInvestment)
	v.number("monthly_investment", in.MonthlyInvestment)
	v.integer("years", in.Years)
	v.number("expected_return", in.ExpectedReturn)
	v.number("expense_ratio", in.ExpenseRatio)
	v.number("front_load", in.FrontLoad)
	return v.result()
}

// Annuity accumulates a level payment made Frequency times a year, each payment
// earning growth in the period it is made.
func (e *Engine) Annuity(in domain.AnnuityInput) (domain.AnnuityResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.AnnuityResult{}, err
	}
	sim := Simulate(SimulationParams{
		InitialBalance: decimal.Zero,
		PeriodicRate:   PeriodicRate(in.Rate, in.Frequency),
		Periods:        PeriodCount(in.Years, in.Frequency),
		PeriodsPerYear: in.Frequency,
		Order:          FlowThenGrow,
		Flows:          []CashFlow{Contribution(in.Payment)},
	})

	return domain.AnnuityResult{
		FutureValue:        roundMoney(sim.FinalBalance),
		TotalContributions: roundMoney(sim.TotalContributed),
		TotalEarnings:      roundMoney(sim.FinalBalance.Sub(sim.TotalContributed)),
		EffectiveYield:     roundPct(Percent(totalReturn(sim.FinalBalance, sim.TotalContributed))),
		Trajectory:         roundTrajectory(sim.Trajectory),
	}, nil
}

func validateAnnuity(in domain.AnnuityInput) error {
	v := newValidator(domain.KindAnnuity)
	v.number("payment", in.Payment)
	v.number("rate", in.Rate)
	v.integer("years", in.Years)
	v.integer("frequency", in.Frequency)
	return v.result()
}

// SIP simulates a systematic investment plan: a monthly deposit followed by that month's growth
func (e *Engine) SIP(in domain.SIPInput) (domain.SIPResult, error) {
	if err := e.Validate(in); err != nil {
		return domain.SIPResult{}, err
	}
	sim := Simulate(SimulationParams{
		InitialBalance: decimal.Zero,
		PeriodicRate:   PeriodicRate(in.AnnualRate, monthsPerYear),
		Periods:        PeriodCount(in.Years, monthsPerYear),
		PeriodsPerYear: monthsPerYear,
		Order:          FlowThenGrow,
		Flows:          []CashFlow{Contribution(in.MonthlyInvestment)},
	})

	return domain.SIPResult{
		FutureValue:     roundMoney(sim.FinalBalance),
		TotalInvestment: roundMoney(sim.TotalContributed),
		TotalEarnings:   roundMoney(sim.FinalBalance.Sub(sim.TotalContributed)),
		EffectiveReturn: roundPct(Percent(totalReturn(sim.FinalBalance, sim.TotalContributed))),
		Trajectory:      roundTrajectory(sim.Trajectory),
	}, nil
}

func validateSIP(in domain.SIPInput) error {
	v := newValidator(domain.KindSIP)
	v.number("monthly_investment", in.MonthlyInvestment)
	v.number("annual_rate", in.AnnualRate)
	v.integer("years", in.Years)
	return v.result()
}
