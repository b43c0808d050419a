package calculation

import (
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// FlowOrder decides whether a period's cash flows land before or after its growth
type FlowOrder int

const (
	// FlowThenGrow applies the flows first, so a contribution earns growth in its own period
	FlowThenGrow FlowOrder = iota
	// GrowThenFlow applies growth to the opening balance, then the flows
	GrowThenFlow
)

// CashFlow returns the signed amount moved in a period given the running balance.
// Contributions are positive, withdrawals and fees negative. period is 1-based.
type CashFlow func(balance decimal.Decimal, period int) decimal.Decimal

// Contribution is a level positive flow
func Contribution(amount decimal.Decimal) CashFlow {
	return func(decimal.Decimal, int) decimal.Decimal { return amount }
}

// Withdrawal is a level negative flow
func Withdrawal(amount decimal.Decimal) CashFlow {
	return func(decimal.Decimal, int) decimal.Decimal { return amount.Neg() }
}

// BalanceFee charges a fraction of the running balance every period
func BalanceFee(rate decimal.Decimal) CashFlow {
	return func(balance decimal.Decimal, _ int) decimal.Decimal {
		if balance.Sign() <= 0 {
			return decimal.Zero
		}
		return balance.Mul(rate).Round(WorkingPrecision).Neg()
	}
}

// SimulationParams configures one run of the period simulator
type SimulationParams struct {
	InitialBalance  decimal.Decimal
	PeriodicRate    decimal.Decimal
	Periods         int
	PeriodsPerYear  int
	Order           FlowOrder
	Flows           []CashFlow
	StopOnDepletion bool
	AgeAt           func(year int) int // optional, fills PeriodSnapshot.Age
}

// SimulationOutcome is the unrounded result of a simulation
type SimulationOutcome struct {
	FinalBalance     decimal.Decimal
	TotalContributed decimal.Decimal // sum of positive flows
	TotalWithdrawn   decimal.Decimal // sum of negative flows, as a positive amount
	TotalGrowth      decimal.Decimal
	Trajectory       []domain.PeriodSnapshot
	DepletedAt       int // period that emptied the balance, 0 if it never did
}

// Simulate steps a balance through params.Periods periods and folds every PeriodsPerYear
// periods into one snapshot. With StopOnDepletion the run ends after the first period
// whose closing balance is zero or below; the final balance is then clamped at zero.
func Simulate(params SimulationParams) SimulationOutcome {
	perYear := params.PeriodsPerYear
	if perYear <= 0 {
		perYear = 1
	}
	growthFactor := one.Add(params.PeriodicRate)

	balance := params.InitialBalance
	out := SimulationOutcome{
		TotalContributed: decimal.Zero,
		TotalWithdrawn:   decimal.Zero,
		TotalGrowth:      decimal.Zero,
		Trajectory:       make([]domain.PeriodSnapshot, 0, params.Periods/perYear+1),
	}

	yearStart := balance
	yearIn, yearOut := decimal.Zero, decimal.Zero

	applyFlows := func(period int) {
		for _, flow := range params.Flows {
			delta := flow(balance, period)
			if delta.Sign() > 0 {
				yearIn = yearIn.Add(delta)
			} else {
				yearOut = yearOut.Sub(delta)
			}
			balance = balance.Add(delta)
		}
	}
	grow := func() {
		balance = balance.Mul(growthFactor).Round(WorkingPrecision)
	}
	closeYear := func(period int) {
		year := (period + perYear - 1) / perYear
		snap := domain.PeriodSnapshot{
			Period:       year,
			Balance:      balance,
			Contribution: yearIn,
			Withdrawal:   yearOut,
			Growth:       balance.Sub(yearStart).Sub(yearIn).Add(yearOut),
		}
		if params.AgeAt != nil {
			snap.Age = params.AgeAt(year)
		}
		out.Trajectory = append(out.Trajectory, snap)
		out.TotalContributed = out.TotalContributed.Add(yearIn)
		out.TotalWithdrawn = out.TotalWithdrawn.Add(yearOut)
		out.TotalGrowth = out.TotalGrowth.Add(snap.Growth)
		yearStart = balance
		yearIn, yearOut = decimal.Zero, decimal.Zero
	}

	for period := 1; period <= params.Periods; period++ {
		if params.Order == GrowThenFlow {
			grow()
			applyFlows(period)
		} else {
			applyFlows(period)
			grow()
		}

		if params.StopOnDepletion && balance.Sign() <= 0 {
			out.DepletedAt = period
			balance = decimal.Zero
			closeYear(period)
			break
		}
		if period%perYear == 0 {
			closeYear(period)
		}
	}
	// partial trailing year
	if out.DepletedAt == 0 && params.Periods%perYear != 0 {
		closeYear(params.Periods)
	}

	out.FinalBalance = balance
	return out
}

// roundTrajectory rounds every money field of the snapshots to whole units
func roundTrajectory(traj []domain.PeriodSnapshot) []domain.PeriodSnapshot {
	rounded := make([]domain.PeriodSnapshot, len(traj))
	for i, s := range traj {
		rounded[i] = domain.PeriodSnapshot{
			Period:       s.Period,
			Age:          s.Age,
			Balance:      roundMoney(maxDecimal(s.Balance, decimal.Zero)),
			Contribution: roundMoney(s.Contribution),
			Withdrawal:   roundMoney(s.Withdrawal),
			Growth:       roundMoney(s.Growth),
		}
	}
	return rounded
}
