package compare

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Variation is a what-if change to one input field, e.g. "annual_rate+1" or "years=30"
type Variation struct {
	Field   string
	Op      byte // one of + - * =
	Operand string
}

// ParseVariation parses "<field><op><value>". Multiplication and assignment accept
// any value; + and - need a number.
func ParseVariation(s string) (Variation, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, "+-*=")
	if i <= 0 || i == len(s)-1 {
		return Variation{}, fmt.Errorf("invalid variation %q: expected <field><op><value> with op one of + - * =", s)
	}
	v := Variation{Field: strings.TrimSpace(s[:i]), Op: s[i], Operand: strings.TrimSpace(s[i+1:])}
	if v.Op != '=' {
		if _, err := decimal.NewFromString(v.Operand); err != nil {
			return Variation{}, fmt.Errorf("invalid variation %q: %w", s, err)
		}
	}
	return v, nil
}

// String renders the variation the way it is parsed
func (v Variation) String() string {
	return v.Field + string(v.Op) + v.Operand
}

// Apply returns a copy of in with the variation applied. The result is not validated.
func (v Variation) Apply(in domain.Input) (domain.Input, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	raw, ok := fields[v.Field]
	if !ok {
		return nil, fmt.Errorf("%s has no field %q", in.Kind(), v.Field)
	}
	updated, err := v.applyRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("variation %s: %w", v, err)
	}
	fields[v.Field] = updated

	data, err = json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return domain.DecodeInput(in.Kind(), func(dst any) error { return json.Unmarshal(data, dst) })
}

// applyRaw handles the three JSON shapes an input field takes: quoted decimals,
// bare integers and enum strings
func (v Variation) applyRaw(raw json.RawMessage) (json.RawMessage, error) {
	var str string
	quoted := json.Unmarshal(raw, &str) == nil
	if !quoted {
		str = string(raw)
	}

	current, err := decimal.NewFromString(str)
	if err != nil {
		if v.Op != '=' {
			return nil, fmt.Errorf("field %s is not numeric", v.Field)
		}
		return json.Marshal(v.Operand)
	}

	var next decimal.Decimal
	if v.Op == '=' {
		next, err = decimal.NewFromString(v.Operand)
		if err != nil {
			return nil, fmt.Errorf("field %s needs a number", v.Field)
		}
	} else {
		operand := decimal.RequireFromString(v.Operand)
		switch v.Op {
		case '+':
			next = current.Add(operand)
		case '-':
			next = current.Sub(operand)
		case '*':
			next = current.Mul(operand)
		}
	}

	if quoted {
		return json.Marshal(next.String())
	}
	return json.RawMessage(next.Round(0).String()), nil
}
