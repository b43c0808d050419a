package output

import (
	"encoding/json"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"gopkg.in/yaml.v3"
)

type structuredCalculation struct {
	Name     string        `json:"name,omitempty" yaml:"name,omitempty"`
	Kind     domain.Kind   `json:"kind" yaml:"kind"`
	Inputs   domain.Input  `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Result   domain.Result `json:"result" yaml:"result"`
	Warnings []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func structured(calcs []Calculation) []structuredCalculation {
	out := make([]structuredCalculation, 0, len(calcs))
	for _, c := range calcs {
		out = append(out, structuredCalculation{
			Name:     c.Name,
			Kind:     c.Result.Kind(),
			Inputs:   c.Input,
			Result:   c.Result,
			Warnings: Warnings(c.Result, DefaultCurrency),
		})
	}
	return out
}

// JSONFormatter writes the calculations as an indented JSON array
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(calcs []Calculation) ([]byte, error) {
	data, err := json.MarshalIndent(structured(calcs), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter writes the calculations as a YAML sequence
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(calcs []Calculation) ([]byte, error) {
	return yaml.Marshal(structured(calcs))
}
