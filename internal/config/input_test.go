package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_SingleYAML(t *testing.T) {
	path := writeFile(t, "basic.yaml", `
kind: basic_fv
name: savings bond
inputs:
  principal: 10000
  rate: 5
  years: 10
`)
	file, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, file.Calculations, 1)

	env := file.Calculations[0]
	assert.Equal(t, domain.KindBasicFV, env.Kind)
	assert.Equal(t, "savings bond", env.Name)

	in := env.Input.(domain.BasicFVInput)
	assert.True(t, in.Principal.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, 10, in.Years)
}

func TestLoadFromFile_YAMLList(t *testing.T) {
	path := writeFile(t, "plan.yml", `
calculations:
  - kind: Car Value
    name: commuter
    inputs:
      current_value: 25000
      age: 3
      years: 5
      annual_mileage: 15000
      condition: Good
      maintenance_budget: 800
      market_trend: -1
  - kind: retirement
    inputs:
      current_age: 35
      retirement_age: 67
      current_savings: 40000
      monthly_contribution: 1200
      expected_return: 7
      account_kind: roth_ira
      annual_income: 90000
`)
	file, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, file.Calculations, 2)

	car := file.Calculations[0].Input.(domain.CarValueInput)
	assert.Equal(t, domain.ConditionGood, car.Condition)
	assert.True(t, car.MarketTrend.Equal(decimal.NewFromInt(-1)))

	ret := file.Calculations[1].Input.(domain.RetirementInput)
	assert.Equal(t, domain.AccountRothIRA, ret.AccountKind)
	assert.Equal(t, 67, ret.RetirementAge)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, "sip.json", `{"kind": "sip", "inputs": {"monthly_investment": 500, "annual_rate": 12, "years": 15}}`)
	file, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	sip := file.Calculations[0].Input.(domain.SIPInput)
	assert.Equal(t, 15, sip.Years)
	assert.True(t, sip.MonthlyInvestment.Equal(decimal.NewFromInt(500)))
}

func TestLoadFromFile_SingleTOML(t *testing.T) {
	path := writeFile(t, "compound.toml", `
kind = "compound_interest"
name = "cd ladder"

[inputs]
principal = 10000
rate = 5.25
years = 10
compounding_frequency = 365
`)
	file, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, file.Calculations, 1)

	in := file.Calculations[0].Input.(domain.CompoundInterestInput)
	assert.Equal(t, 365, in.CompoundingFrequency)
	assert.True(t, in.Rate.Equal(decimal.NewFromFloat(5.25)), "rate %s", in.Rate)
	assert.Equal(t, "cd ladder", file.Calculations[0].Name)
}

func TestLoadFromFile_TOMLList(t *testing.T) {
	path := writeFile(t, "plan.toml", `
[[calculations]]
kind = "withdrawals"
[calculations.inputs]
initial_balance = 400000
monthly_withdrawal = 2500
annual_rate = 4
years = 25

[[calculations]]
kind = "annuity"
name = "pension top-up"
[calculations.inputs]
payment = 250
rate = 5
years = 20
frequency = 26
`)
	file, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, file.Calculations, 2)

	w := file.Calculations[0].Input.(domain.WithdrawalsInput)
	assert.Equal(t, 25, w.Years)
	a := file.Calculations[1].Input.(domain.AnnuityInput)
	assert.Equal(t, 26, a.Frequency)
	assert.Equal(t, "pension top-up", file.Calculations[1].Name)
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	bad := writeFile(t, "bad.yaml", "kind: [unclosed\n")
	_, err = parser.LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")

	empty := writeFile(t, "empty.yaml", "name: nothing here\n")
	_, err = parser.LoadFromFile(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no calculations found")

	unknown := writeFile(t, "unknown.yaml", "kind: lottery\ninputs: {}\n")
	_, err = parser.LoadFromFile(unknown)
	assert.Error(t, err)

	noKind := writeFile(t, "nokind.yaml", "calculations:\n  - name: x\n")
	_, err = parser.LoadFromFile(noKind)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind is required")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	path := writeFile(t, "invalid.yaml", `
kind: basic_fv
name: too long
inputs:
  principal: 10000
  rate: 5
  years: 80
`)
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input validation failed")
	assert.Contains(t, err.Error(), "too long")
	assert.True(t, calculation.IsValidationError(err), "error should unwrap to a ValidationError: %v", err)
}

func TestValidateFile_UsesTitleWithoutName(t *testing.T) {
	file := &CalculationFile{Calculations: []domain.Envelope{
		domain.NewEnvelope("", domain.SIPInput{MonthlyInvestment: decimal.NewFromInt(100), AnnualRate: decimal.NewFromInt(50), Years: 5}),
	}}
	err := NewInputParser().ValidateFile(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calculation 0 (SIP)")
}
