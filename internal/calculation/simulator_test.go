package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_FlowOrder(t *testing.T) {
	params := SimulationParams{
		InitialBalance: decimal.NewFromInt(100),
		PeriodicRate:   decimal.NewFromFloat(0.1),
		Periods:        1,
		PeriodsPerYear: 1,
		Flows:          []CashFlow{Contribution(decimal.NewFromInt(100))},
	}

	params.Order = FlowThenGrow
	assert.Equal(t, "220", Simulate(params).FinalBalance.String(), "contribution should earn growth in its own period")

	params.Order = GrowThenFlow
	assert.Equal(t, "210", Simulate(params).FinalBalance.String(), "contribution should land after growth")
}

func TestSimulate_FoldsPeriodsIntoYears(t *testing.T) {
	out := Simulate(SimulationParams{
		InitialBalance: decimal.NewFromInt(1000),
		PeriodicRate:   decimal.Zero,
		Periods:        36,
		PeriodsPerYear: 12,
		Flows:          []CashFlow{Contribution(decimal.NewFromInt(100))},
		AgeAt:          func(year int) int { return 40 + year },
	})

	require.Len(t, out.Trajectory, 3)
	for i, snap := range out.Trajectory {
		assert.Equal(t, i+1, snap.Period, "periods should ascend")
		assert.Equal(t, 41+i, snap.Age)
		assert.Equal(t, "1200", snap.Contribution.String())
		assert.True(t, snap.Growth.IsZero(), "no growth at zero rate")
	}
	assert.Equal(t, "4600", out.FinalBalance.String())
	assert.Equal(t, "3600", out.TotalContributed.String())
	assert.Equal(t, 0, out.DepletedAt)
}

func TestSimulate_GrowthIsBalanceChangeNetOfFlows(t *testing.T) {
	out := Simulate(SimulationParams{
		InitialBalance: decimal.NewFromInt(10000),
		PeriodicRate:   PeriodicRate(decimal.NewFromInt(6), 12),
		Periods:        24,
		PeriodsPerYear: 12,
		Order:          FlowThenGrow,
		Flows: []CashFlow{
			Contribution(decimal.NewFromInt(500)),
			Withdrawal(decimal.NewFromInt(200)),
		},
	})

	start := decimal.NewFromInt(10000)
	for _, snap := range out.Trajectory {
		want := snap.Balance.Sub(start).Sub(snap.Contribution).Add(snap.Withdrawal)
		assert.True(t, snap.Growth.Equal(want), "year %d growth %s, want %s", snap.Period, snap.Growth, want)
		assert.Equal(t, "2400", snap.Withdrawal.String())
		start = snap.Balance
	}
	assert.True(t, out.TotalGrowth.IsPositive())
}

func TestSimulate_DepletionStopsEarly(t *testing.T) {
	out := Simulate(SimulationParams{
		InitialBalance:  decimal.NewFromInt(12000),
		PeriodicRate:    decimal.Zero,
		Periods:         12,
		PeriodsPerYear:  12,
		Order:           GrowThenFlow,
		Flows:           []CashFlow{Withdrawal(decimal.NewFromInt(1100))},
		StopOnDepletion: true,
	})

	assert.Equal(t, 11, out.DepletedAt)
	assert.True(t, out.FinalBalance.IsZero(), "final balance should be clamped at zero")
	assert.Equal(t, "12100", out.TotalWithdrawn.String(), "only executed periods count")
	require.Len(t, out.Trajectory, 1, "the partial year is still reported")
	assert.Equal(t, 1, out.Trajectory[0].Period)
}

func TestSimulate_DepletedYearReconciles(t *testing.T) {
	start := decimal.NewFromInt(12000)
	out := Simulate(SimulationParams{
		InitialBalance:  start,
		PeriodicRate:    decimal.Zero,
		Periods:         12,
		PeriodsPerYear:  12,
		Order:           GrowThenFlow,
		Flows:           []CashFlow{Withdrawal(decimal.NewFromInt(1100))},
		StopOnDepletion: true,
	})

	require.Len(t, out.Trajectory, 1)
	last := out.Trajectory[0]
	assert.True(t, last.Balance.IsZero(), "snapshot balance is clamped, got %s", last.Balance)
	rebuilt := start.Add(last.Contribution).Sub(last.Withdrawal).Add(last.Growth)
	assert.True(t, rebuilt.Equal(last.Balance), "start + in - out + growth = %s, balance %s", rebuilt, last.Balance)
	assert.Equal(t, "100", last.Growth.String())
}

func TestSimulate_NoDepletionWithoutFlag(t *testing.T) {
	out := Simulate(SimulationParams{
		InitialBalance: decimal.NewFromInt(100),
		PeriodicRate:   decimal.Zero,
		Periods:        3,
		PeriodsPerYear: 1,
		Flows:          []CashFlow{Withdrawal(decimal.NewFromInt(100))},
	})

	assert.Equal(t, 0, out.DepletedAt)
	assert.Equal(t, "-200", out.FinalBalance.String())
	assert.Len(t, out.Trajectory, 3)
}

func TestSimulate_NegativeRateDecays(t *testing.T) {
	out := Simulate(SimulationParams{
		InitialBalance: decimal.NewFromInt(1000),
		PeriodicRate:   decimal.NewFromFloat(-0.1),
		Periods:        2,
		PeriodsPerYear: 1,
	})

	assert.Equal(t, "810", out.FinalBalance.String())
	assert.Equal(t, "-190", out.TotalGrowth.String())
}

func TestSimulate_PartialTrailingYear(t *testing.T) {
	out := Simulate(SimulationParams{
		InitialBalance: decimal.Zero,
		Periods:        18,
		PeriodsPerYear: 12,
		Flows:          []CashFlow{Contribution(decimal.NewFromInt(10))},
	})

	require.Len(t, out.Trajectory, 2)
	assert.Equal(t, 2, out.Trajectory[1].Period)
	assert.Equal(t, "60", out.Trajectory[1].Contribution.String())
}

func TestBalanceFee(t *testing.T) {
	fee := BalanceFee(decimal.NewFromFloat(0.01))
	assert.Equal(t, "-5", fee(decimal.NewFromInt(500), 1).String())
	assert.True(t, fee(decimal.NewFromInt(-5), 1).IsZero(), "no fee on an empty balance")
}
