package breakeven

import (
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Target names the amount being solved for
type Target string

const (
	// TargetSustainableWithdrawal is the largest monthly withdrawal that never depletes the balance
	TargetSustainableWithdrawal Target = "sustainable_withdrawal"
	// TargetRequiredContribution is the smallest monthly contribution that reaches a future value
	TargetRequiredContribution Target = "required_contribution"
)

// ParseTarget accepts the target tag with dashes or underscores
func ParseTarget(s string) (Target, bool) {
	switch Target(normalizeTarget(s)) {
	case TargetSustainableWithdrawal:
		return TargetSustainableWithdrawal, true
	case TargetRequiredContribution:
		return TargetRequiredContribution, true
	}
	return "", false
}

func normalizeTarget(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}

// Constraints bound the searched amount. Nil bounds use the calculator's input domain.
type Constraints struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

// Validate checks the bounds are internally consistent
func (c Constraints) Validate() error {
	if c.Min != nil && c.Min.IsNegative() {
		return &BreakEvenError{Operation: "validate_constraints", Message: "min cannot be negative"}
	}
	if c.Min != nil && c.Max != nil && c.Min.GreaterThan(*c.Max) {
		return &BreakEvenError{Operation: "validate_constraints", Message: "min cannot be greater than max"}
	}
	return nil
}

func (c Constraints) bounds(lo, hi decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if c.Min != nil {
		lo = *c.Min
	}
	if c.Max != nil {
		hi = *c.Max
	}
	return lo, hi
}

// Request describes one goal-seek run. Withdrawals is required for
// TargetSustainableWithdrawal, Contributions and Goal for TargetRequiredContribution.
type Request struct {
	Target        Target
	Withdrawals   *domain.WithdrawalsInput
	Contributions *domain.MonthlyContributionsInput
	Goal          decimal.Decimal // future value to reach
	Constraints   Constraints
	MaxIterations int
	Tolerance     decimal.Decimal
}

// Result is the solved amount and the calculation at that amount
type Result struct {
	Target          Target          `json:"target"`
	Success         bool            `json:"success"`
	Iterations      int             `json:"iterations"`
	ConvergenceInfo string          `json:"convergence_info"`
	Amount          decimal.Decimal `json:"amount"` // monthly amount, rounded to cents
	Goal            decimal.Decimal `json:"goal,omitempty"`
	Outcome         domain.Result   `json:"outcome"`
}

// SolverOptions configures the bisection
type SolverOptions struct {
	Tolerance     decimal.Decimal // stop once the bracket is this narrow
	MaxIterations int
}

// DefaultSolverOptions returns a one-cent tolerance and 50 iterations
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 50,
	}
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
