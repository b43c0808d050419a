package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Search ranges match the calculators' input domains
var (
	maxMonthlyWithdrawal   = decimal.NewFromInt(10000)
	maxMonthlyContribution = decimal.NewFromInt(5000)
	two                    = decimal.NewFromInt(2)
)

// Solver finds the monthly amount that meets a goal by bisection over the engine
type Solver struct {
	Engine  *calculation.Engine
	Options SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(engine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		Engine:  engine,
		Options: options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// Solve dispatches req to the matching search
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	switch req.Target {
	case TargetSustainableWithdrawal:
		if req.Withdrawals == nil {
			return nil, &BreakEvenError{Operation: "solve", Message: "withdrawals input is required"}
		}
		return s.sustainableWithdrawal(ctx, req)
	case TargetRequiredContribution:
		if req.Contributions == nil {
			return nil, &BreakEvenError{Operation: "solve", Message: "contributions input is required"}
		}
		return s.requiredContribution(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("unsupported target: %s", req.Target),
		}
	}
}

// SustainableWithdrawal finds the largest monthly withdrawal that does not deplete the balance within its horizon
func (s *Solver) SustainableWithdrawal(ctx context.Context, in domain.WithdrawalsInput) (*Result, error) {
	return s.Solve(ctx, Request{Target: TargetSustainableWithdrawal, Withdrawals: &in})
}

// RequiredContribution finds the smallest monthly contribution for in to reach goal
func (s *Solver) RequiredContribution(ctx context.Context, in domain.MonthlyContributionsInput, goal decimal.Decimal) (*Result, error) {
	return s.Solve(ctx, Request{Target: TargetRequiredContribution, Contributions: &in, Goal: goal})
}

func (s *Solver) sustainableWithdrawal(ctx context.Context, req Request) (*Result, error) {
	const op = "sustainable_withdrawal"
	base := *req.Withdrawals
	eval := func(amount decimal.Decimal) (domain.WithdrawalsResult, error) {
		in := base
		in.MonthlyWithdrawal = amount
		return s.Engine.Withdrawals(in)
	}
	// sustainable amounts pass; the predicate is monotone falling in the amount
	pass := func(amount decimal.Decimal) (bool, domain.Result, error) {
		res, err := eval(amount)
		return !res.Depleted, res, err
	}

	lo, hi := req.Constraints.bounds(decimal.Zero, maxMonthlyWithdrawal)
	result := &Result{Target: TargetSustainableWithdrawal}

	ok, outcome, err := s.check(ctx, op, pass, hi)
	if err != nil {
		return nil, err
	}
	if ok {
		result.Success, result.Amount, result.Outcome = true, hi, outcome
		result.ConvergenceInfo = "Upper bound is sustainable"
		return result, nil
	}
	ok, outcome, err = s.check(ctx, op, pass, lo)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("balance depletes even at %s per month", lo.StringFixed(2)),
		}
	}

	for result.Iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		result.Iterations++
		mid := lo.Add(hi).Div(two)
		midOK, midOutcome, err := s.check(ctx, op, pass, mid)
		if err != nil {
			return nil, err
		}
		if midOK {
			lo, outcome = mid, midOutcome
		} else {
			hi = mid
		}
	}

	result.Amount = lo.Truncate(2)
	result.Success = hi.Sub(lo).LessThanOrEqual(req.Tolerance)
	result.ConvergenceInfo = convergenceInfo(result.Success, req)
	if !result.Amount.Equal(lo) {
		res, err := eval(result.Amount)
		if err != nil {
			return nil, &BreakEvenError{Operation: op, Message: "failed to evaluate solution", Cause: err}
		}
		outcome = res
	}
	result.Outcome = outcome
	return result, nil
}

func (s *Solver) requiredContribution(ctx context.Context, req Request) (*Result, error) {
	const op = "required_contribution"
	if !req.Goal.IsPositive() {
		return nil, &BreakEvenError{Operation: op, Message: "goal must be positive"}
	}
	base := *req.Contributions
	eval := func(amount decimal.Decimal) (domain.MonthlyContributionsResult, error) {
		in := base
		in.MonthlyContribution = amount
		return s.Engine.MonthlyContributions(in)
	}
	// amounts reaching the goal pass; the predicate is monotone rising in the amount
	pass := func(amount decimal.Decimal) (bool, domain.Result, error) {
		res, err := eval(amount)
		return res.FutureValue.GreaterThanOrEqual(req.Goal), res, err
	}

	lo, hi := req.Constraints.bounds(decimal.Zero, maxMonthlyContribution)
	result := &Result{Target: TargetRequiredContribution, Goal: req.Goal}

	ok, outcome, err := s.check(ctx, op, pass, lo)
	if err != nil {
		return nil, err
	}
	if ok {
		result.Success, result.Amount, result.Outcome = true, lo, outcome
		result.ConvergenceInfo = "Goal is reached at the lower bound"
		return result, nil
	}
	ok, outcome, err = s.check(ctx, op, pass, hi)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("goal %s is not reachable with %s per month", req.Goal.StringFixed(0), hi.StringFixed(2)),
		}
	}

	for result.Iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		result.Iterations++
		mid := lo.Add(hi).Div(two)
		midOK, midOutcome, err := s.check(ctx, op, pass, mid)
		if err != nil {
			return nil, err
		}
		if midOK {
			hi, outcome = mid, midOutcome
		} else {
			lo = mid
		}
	}

	result.Amount = hi.RoundUp(2)
	result.Success = hi.Sub(lo).LessThanOrEqual(req.Tolerance)
	result.ConvergenceInfo = convergenceInfo(result.Success, req)
	if !result.Amount.Equal(hi) {
		res, err := eval(result.Amount)
		if err != nil {
			return nil, &BreakEvenError{Operation: op, Message: "failed to evaluate solution", Cause: err}
		}
		outcome = res
	}
	result.Outcome = outcome
	return result, nil
}

// check evaluates the predicate at amount after checking for cancellation
func (s *Solver) check(ctx context.Context, op string, pass func(decimal.Decimal) (bool, domain.Result, error), amount decimal.Decimal) (bool, domain.Result, error) {
	select {
	case <-ctx.Done():
		return false, nil, ctx.Err()
	default:
	}
	ok, res, err := pass(amount)
	if err != nil {
		return false, nil, &BreakEvenError{
			Operation: op,
			Message:   fmt.Sprintf("failed to calculate at %s", amount.StringFixed(2)),
			Cause:     err,
		}
	}
	return ok, res, nil
}

func convergenceInfo(success bool, req Request) string {
	if success {
		return fmt.Sprintf("Converged within %s", req.Tolerance.String())
	}
	return fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
}
