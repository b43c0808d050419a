package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ValidationError reports an input field outside its documented domain
type ValidationError struct {
	Kind    domain.Kind
	Field   string
	Value   string
	Min     string
	Max     string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s must be between %s and %s, got %s", e.Kind, e.Field, e.Min, e.Max, e.Value)
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// validator collects the first domain violation for one input
type validator struct {
	kind domain.Kind
	err  *ValidationError
}

func newValidator(kind domain.Kind) *validator {
	return &validator{kind: kind}
}

// number checks value against the bounds of field
func (v *validator) number(field string, value decimal.Decimal) {
	if v.err != nil {
		return
	}
	b := boundsFor(v.kind, field)
	lo, hi := decimal.NewFromFloat(b.Min), decimal.NewFromFloat(b.Max)
	below := value.LessThan(lo)
	if b.MinExclusive {
		below = value.LessThanOrEqual(lo)
	}
	if below || value.GreaterThan(hi) {
		v.err = &ValidationError{Kind: v.kind, Field: field, Value: value.String(), Min: lo.String(), Max: hi.String()}
		if b.MinExclusive {
			v.err.Message = fmt.Sprintf("must be greater than %s and at most %s, got %s", lo, hi, value)
		}
	}
}

// integer checks value against the bounds of field, including its allowed choices
func (v *validator) integer(field string, value int) {
	if v.err != nil {
		return
	}
	b := boundsFor(v.kind, field)
	if len(b.Choices) > 0 {
		for _, c := range b.Choices {
			if value == c {
				return
			}
		}
		v.err = &ValidationError{
			Kind:    v.kind,
			Field:   field,
			Value:   fmt.Sprint(value),
			Message: fmt.Sprintf("must be one of %v, got %d", b.Choices, value),
		}
		return
	}
	v.intRange(field, value, int(b.Min), int(b.Max))
}

func (v *validator) intRange(field string, value, min, max int) {
	if v.err != nil {
		return
	}
	if value < min || value > max {
		v.err = &ValidationError{
			Kind:  v.kind,
			Field: field,
			Value: fmt.Sprint(value),
			Min:   fmt.Sprint(min),
			Max:   fmt.Sprint(max),
		}
	}
}

func (v *validator) fail(field, value, message string) {
	if v.err != nil {
		return
	}
	v.err = &ValidationError{Kind: v.kind, Field: field, Value: value, Message: message}
}

func (v *validator) result() error {
	if v.err == nil {
		return nil
	}
	return v.err
}
