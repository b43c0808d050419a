package scenes

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/tui/components"
	"github.com/shopspring/decimal"
)

type fieldKind int

const (
	fieldDecimal fieldKind = iota
	fieldInt
	fieldChoice // integer restricted to a list
	fieldEnum   // string restricted to a list
)

// field binds one slider to one input field
type field struct {
	slider *components.ParameterSlider
	kind   fieldKind
	values []string // raw values behind a selector
}

type enumField struct {
	name   string
	label  string
	values []string
	titles []string
}

func enumFields(kind domain.Kind) []enumField {
	switch kind {
	case domain.KindCarValue:
		f := enumField{name: "condition", label: "Condition"}
		for _, c := range domain.Conditions {
			f.values = append(f.values, string(c))
			f.titles = append(f.titles, strings.ToUpper(string(c[:1]))+string(c[1:]))
		}
		return []enumField{f}
	case domain.KindRetirement:
		f := enumField{name: "account_kind", label: "Account Type"}
		for _, a := range domain.AccountKinds {
			f.values = append(f.values, string(a))
			f.titles = append(f.titles, a.Title())
		}
		return []enumField{f}
	}
	return nil
}

// form maps a calculator input to sliders and back
type form struct {
	kind   domain.Kind
	seed   map[string]any
	fields []field
}

func inputValues(in domain.Input) (map[string]any, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	values := map[string]any{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func decimalsFor(step float64) int {
	if step >= 1 || step <= 0 {
		return 0
	}
	s := strconv.FormatFloat(step, 'f', -1, 64)
	return len(s) - strings.IndexByte(s, '.') - 1
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	}
	return 0
}

// newForm builds sliders for kind seeded from in
func newForm(kind domain.Kind, in domain.Input) (*form, error) {
	seed, err := inputValues(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s inputs: %w", kind, err)
	}
	f := &form{kind: kind, seed: seed}

	for _, b := range calculation.Bounds(kind) {
		current := seed[b.Field]
		if len(b.Choices) > 0 {
			options := make([]string, len(b.Choices))
			selected := 0
			for i, c := range b.Choices {
				options[i] = strconv.Itoa(c)
				if float64(c) == number(current) {
					selected = i
				}
			}
			s := components.NewSelector(b.Label, options, selected).WithField(b.Field)
			f.fields = append(f.fields, field{slider: s, kind: fieldChoice, values: options})
			continue
		}

		lo := b.Min
		if b.MinExclusive {
			lo += b.Step
		}
		s := components.NewParameterSlider(b.Label, number(current), lo, b.Max, b.Step).
			WithField(b.Field).
			WithUnit(b.Unit).
			WithFormat(fmt.Sprintf("%%.%df", decimalsFor(b.Step)))
		s.SetValue(s.Value)

		fk := fieldInt
		if _, isString := current.(string); isString {
			fk = fieldDecimal
		}
		f.fields = append(f.fields, field{slider: s, kind: fk})
	}

	for _, e := range enumFields(kind) {
		selected := 0
		for i, v := range e.values {
			if v == seed[e.name] {
				selected = i
			}
		}
		s := components.NewSelector(e.label, e.titles, selected).WithField(e.name)
		f.fields = append(f.fields, field{slider: s, kind: fieldEnum, values: e.values})
	}

	if len(f.fields) > 0 {
		f.fields[0].slider.SetFocused(true)
	}
	return f, nil
}

// Input reads the slider positions back into a calculator input
func (f *form) Input() (domain.Input, error) {
	values := make(map[string]any, len(f.seed))
	for k, v := range f.seed {
		values[k] = v
	}
	for _, fd := range f.fields {
		s := fd.slider
		switch fd.kind {
		case fieldDecimal:
			values[s.Field] = json.Number(decimal.NewFromFloat(s.Value).Round(4).String())
		case fieldInt:
			values[s.Field] = json.Number(strconv.Itoa(int(math.Round(s.Value))))
		case fieldChoice:
			values[s.Field] = json.Number(fd.values[int(s.Value)])
		case fieldEnum:
			values[s.Field] = fd.values[int(s.Value)]
		}
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return domain.DecodeInput(f.kind, func(v any) error {
		return json.Unmarshal(data, v)
	})
}

func (f *form) sliders() []*components.ParameterSlider {
	out := make([]*components.ParameterSlider, len(f.fields))
	for i, fd := range f.fields {
		out[i] = fd.slider
	}
	return out
}
