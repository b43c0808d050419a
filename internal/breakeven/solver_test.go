package breakeven

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawdown() domain.WithdrawalsInput {
	return domain.WithdrawalsInput{
		InitialBalance:    decimal.NewFromInt(12000),
		MonthlyWithdrawal: decimal.NewFromInt(1100),
		AnnualRate:        decimal.Zero,
		Years:             1,
	}
}

func savings() domain.MonthlyContributionsInput {
	return domain.MonthlyContributionsInput{
		InitialAmount:       decimal.Zero,
		MonthlyContribution: decimal.Zero,
		AnnualRate:          decimal.Zero,
		Years:               1,
	}
}

func TestNewDefaultSolver(t *testing.T) {
	engine := calculation.NewEngine()
	solver := NewDefaultSolver(engine)

	if solver.Engine != engine {
		t.Error("Expected Engine to match input")
	}
	if solver.Options != DefaultSolverOptions() {
		t.Error("Expected default options to be applied")
	}
}

func TestSustainableWithdrawal_ZeroRate(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	result, err := solver.SustainableWithdrawal(context.Background(), drawdown())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "999.99", result.Amount.String(), "1000 a month empties the account in the last month")
	assert.Greater(t, result.Iterations, 0)

	outcome, ok := result.Outcome.(domain.WithdrawalsResult)
	require.True(t, ok)
	assert.False(t, outcome.Depleted)
}

func TestSustainableWithdrawal_IsTheBoundary(t *testing.T) {
	engine := calculation.NewEngine()
	solver := NewDefaultSolver(engine)
	in := domain.WithdrawalsInput{
		InitialBalance: decimal.NewFromInt(500000),
		AnnualRate:     decimal.NewFromInt(5),
		Years:          20,
	}

	result, err := solver.SustainableWithdrawal(context.Background(), in)
	require.NoError(t, err)

	in.MonthlyWithdrawal = result.Amount
	at, err := engine.Withdrawals(in)
	require.NoError(t, err)
	assert.False(t, at.Depleted, "solved amount %s must be sustainable", result.Amount)

	in.MonthlyWithdrawal = result.Amount.Add(decimal.NewFromFloat(0.02))
	above, err := engine.Withdrawals(in)
	require.NoError(t, err)
	assert.True(t, above.Depleted, "two cents more must deplete")
}

func TestSustainableWithdrawal_UpperBoundAndFailure(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	result, err := solver.Solve(context.Background(), Request{
		Target:      TargetSustainableWithdrawal,
		Withdrawals: func() *domain.WithdrawalsInput { in := drawdown(); return &in }(),
		Constraints: Constraints{Max: decPtr(500)},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Upper bound is sustainable", result.ConvergenceInfo)

	empty := drawdown()
	empty.InitialBalance = decimal.Zero
	_, err = solver.SustainableWithdrawal(context.Background(), empty)
	var be *BreakEvenError
	require.True(t, errors.As(err, &be), "got %v", err)
	assert.Equal(t, "sustainable_withdrawal", be.Operation)
}

func TestRequiredContribution(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	goal := decimal.NewFromInt(12000)

	result, err := solver.RequiredContribution(context.Background(), savings(), goal)
	require.NoError(t, err)
	assert.True(t, result.Success)
	// rounded up to the cent, so it lands on 1000.00 or 1000.01
	assert.True(t, result.Amount.GreaterThanOrEqual(decimal.NewFromInt(1000)), "amount %s", result.Amount)
	assert.True(t, result.Amount.LessThanOrEqual(decimal.NewFromFloat(1000.01)), "amount %s", result.Amount)

	outcome := result.Outcome.(domain.MonthlyContributionsResult)
	assert.True(t, outcome.FutureValue.GreaterThanOrEqual(goal))
}

func TestRequiredContribution_AlreadyMetAndUnreachable(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	rich := savings()
	rich.InitialAmount = decimal.NewFromInt(20000)
	result, err := solver.RequiredContribution(context.Background(), rich, decimal.NewFromInt(10000))
	require.NoError(t, err)
	assert.True(t, result.Amount.IsZero())
	assert.Equal(t, 0, result.Iterations)

	_, err = solver.RequiredContribution(context.Background(), savings(), decimal.NewFromInt(1000000000))
	var be *BreakEvenError
	require.True(t, errors.As(err, &be))
	assert.Nil(t, be.Cause)
	assert.Contains(t, be.Message, "not reachable")

	_, err = solver.RequiredContribution(context.Background(), savings(), decimal.Zero)
	assert.Error(t, err)
}

func TestSolve_Errors(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	ctx := context.Background()

	_, err := solver.Solve(ctx, Request{Target: "retirement_date"})
	if err == nil || !strings.Contains(err.Error(), "unsupported target") {
		t.Errorf("Expected unsupported target error, got %v", err)
	}

	_, err = solver.Solve(ctx, Request{Target: TargetSustainableWithdrawal})
	assert.Error(t, err)

	_, err = solver.Solve(ctx, Request{Target: TargetRequiredContribution, Goal: decimal.NewFromInt(1)})
	assert.Error(t, err)

	_, err = solver.Solve(ctx, Request{Target: TargetSustainableWithdrawal, Constraints: Constraints{Min: decPtr(9), Max: decPtr(1)}})
	assert.Error(t, err)
}

func TestSolve_InvalidInputWrapsValidationError(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	in := drawdown()
	in.Years = 0

	_, err := solver.SustainableWithdrawal(context.Background(), in)
	require.Error(t, err)
	assert.True(t, calculation.IsValidationError(err), "got %v", err)
}

func TestSolve_ContextCancellation(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.SustainableWithdrawal(ctx, drawdown())
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestSolve_MaxIterationsReached(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	in := drawdown()

	result, err := solver.Solve(context.Background(), Request{
		Target:        TargetSustainableWithdrawal,
		Withdrawals:   &in,
		MaxIterations: 3,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 3, result.Iterations)
	assert.Equal(t, "Max iterations (3) reached", result.ConvergenceInfo)
}

func TestContributionLadder(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	goals := []decimal.Decimal{decimal.NewFromInt(12000), decimal.NewFromInt(24000), decimal.NewFromInt(1000000000)}

	ladder, err := solver.ContributionLadder(context.Background(), savings(), goals)
	require.NoError(t, err)
	require.Len(t, ladder.Results, 2)
	require.Len(t, ladder.Unreachable, 1)
	assert.True(t, ladder.Results[1].Amount.GreaterThan(ladder.Results[0].Amount))

	_, err = solver.ContributionLadder(context.Background(), savings(), goals[2:])
	assert.Error(t, err)
}

func TestFormatters(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	result, err := solver.SustainableWithdrawal(context.Background(), drawdown())
	require.NoError(t, err)

	table := (&TableFormatter{}).Format(result)
	assert.Contains(t, table, "Sustainable monthly withdrawal")
	assert.Contains(t, table, "$999.99")
	assert.Contains(t, table, "Final Balance:")

	js, err := (&JSONFormatter{}).Format(result)
	require.NoError(t, err)
	assert.Contains(t, js, `"target":"sustainable_withdrawal"`)
	assert.Contains(t, js, `"amount":"999.99"`)

	ladder, err := solver.ContributionLadder(context.Background(), savings(), []decimal.Decimal{decimal.NewFromInt(12000), decimal.NewFromInt(1000000000)})
	require.NoError(t, err)
	text := (&TableFormatter{}).FormatLadder(ladder)
	assert.Contains(t, text, "$12,000")
	assert.Contains(t, text, "unreachable")
}
