package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fvgo/internal/domain"
)

// Engine runs the projection calculators. It holds no state between calls
// beyond its configuration and is safe for concurrent use once configured.
type Engine struct {
	Brackets []TaxBracket
	Logger   Logger
}

// NewEngine creates an engine with the default bracket table and a no-op logger
func NewEngine() *Engine {
	return &Engine{
		Brackets: DefaultBrackets,
		Logger:   NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate dispatches in to the matching calculator
func (e *Engine) Calculate(in domain.Input) (domain.Result, error) {
	switch v := in.(type) {
	case domain.BasicFVInput:
		return e.BasicFV(v)
	case domain.CompoundInterestInput:
		return e.CompoundInterest(v)
	case domain.MonthlyContributionsInput:
		return e.MonthlyContributions(v)
	case domain.WithdrawalsInput:
		return e.Withdrawals(v)
	case domain.MutualFundInput:
		return e.MutualFund(v)
	case domain.HomeValueInput:
		return e.HomeValue(v)
	case domain.CarValueInput:
		return e.CarValue(v)
	case domain.InflationAdjustedInput:
		return e.InflationAdjusted(v)
	case domain.AnnuityInput:
		return e.Annuity(v)
	case domain.RetirementInput:
		return e.Retirement(v)
	case domain.SIPInput:
		return e.SIP(v)
	case nil:
		return nil, fmt.Errorf("no calculator input supplied")
	default:
		return nil, fmt.Errorf("unsupported calculator input %T", in)
	}
}

// Validate checks in against its documented domain without computing anything
func (e *Engine) Validate(in domain.Input) error {
	err := validateInput(in)
	if err != nil {
		e.logger().Debugf("validation failed: %v", err)
	}
	return err
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

func (e *Engine) brackets() []TaxBracket {
	if len(e.Brackets) == 0 {
		return DefaultBrackets
	}
	return e.Brackets
}

func validateInput(in domain.Input) error {
	switch v := in.(type) {
	case domain.BasicFVInput:
		return validateBasicFV(v)
	case domain.CompoundInterestInput:
		return validateCompoundInterest(v)
	case domain.MonthlyContributionsInput:
		return validateMonthlyContributions(v)
	case domain.WithdrawalsInput:
		return validateWithdrawals(v)
	case domain.MutualFundInput:
		return validateMutualFund(v)
	case domain.HomeValueInput:
		return validateHomeValue(v)
	case domain.CarValueInput:
		return validateCarValue(v)
	case domain.InflationAdjustedInput:
		return validateInflationAdjusted(v)
	case domain.AnnuityInput:
		return validateAnnuity(v)
	case domain.RetirementInput:
		return validateRetirement(v)
	case domain.SIPInput:
		return validateSIP(v)
	case nil:
		return fmt.Errorf("no calculator input supplied")
	default:
		return fmt.Errorf("unsupported calculator input %T", in)
	}
}
