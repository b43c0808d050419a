package calculation

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotEmpty(t, engine.Brackets, "Should initialize bracket table")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)

	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_CalculateDispatchesEveryKind(t *testing.T) {
	engine := NewEngine()

	for _, kind := range domain.AllKinds() {
		t.Run(string(kind), func(t *testing.T) {
			in, err := domain.DefaultInput(kind)
			require.NoError(t, err)

			res, err := engine.Calculate(in)
			require.NoError(t, err, "default inputs should be valid")
			assert.Equal(t, kind, res.Kind(), "result should mirror the input kind")
		})
	}
}

func TestEngine_CalculateRejectsNil(t *testing.T) {
	engine := NewEngine()

	res, err := engine.Calculate(nil)

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestEngine_ValidationErrors(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name  string
		input domain.Input
		field string
	}{
		{"basic zero years", domain.BasicFVInput{Principal: decimal.NewFromInt(1000), Rate: decimal.NewFromInt(5), Years: 0}, "years"},
		{"basic rate too high", domain.BasicFVInput{Principal: decimal.NewFromInt(1000), Rate: decimal.NewFromInt(21), Years: 5}, "rate"},
		{"basic negative principal", domain.BasicFVInput{Principal: decimal.NewFromInt(-1), Rate: decimal.NewFromInt(5), Years: 5}, "principal"},
		{"compound odd frequency", domain.CompoundInterestInput{Principal: decimal.NewFromInt(1000), Rate: decimal.NewFromInt(5), Years: 5, CompoundingFrequency: 3}, "compounding_frequency"},
		{"annuity zero frequency", domain.AnnuityInput{Payment: decimal.NewFromInt(100), Rate: decimal.NewFromInt(5), Years: 5, Frequency: 0}, "frequency"},
		{"home zero value", domain.HomeValueInput{CurrentValue: decimal.Zero, Years: 5}, "current_value"},
		{"car unknown condition", domain.CarValueInput{CurrentValue: decimal.NewFromInt(20000), Years: 3, AnnualMileage: 12000, Condition: "mint"}, "condition"},
		{"withdrawal rate above 15", domain.WithdrawalsInput{InitialBalance: decimal.NewFromInt(1000), AnnualRate: decimal.NewFromInt(16), Years: 5}, "annual_rate"},
		{"mutual fund expense above 2", domain.MutualFundInput{Years: 5, ExpenseRatio: decimal.NewFromFloat(2.5)}, "expense_ratio"},
		{"sip too many years", domain.SIPInput{MonthlyInvestment: decimal.NewFromInt(100), AnnualRate: decimal.NewFromInt(10), Years: 31}, "years"},
		{"retirement age not after current", domain.RetirementInput{CurrentAge: 40, RetirementAge: 40, AccountKind: domain.Account401k}, "retirement_age"},
		{"retirement unknown account", domain.RetirementInput{CurrentAge: 30, RetirementAge: 60, AccountKind: "hsa"}, "account_kind"},
		{"inflation above 15", domain.InflationAdjustedInput{Principal: decimal.NewFromInt(1000), InflationRate: decimal.NewFromInt(16), Years: 5}, "inflation_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Calculate(tt.input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected a validation error, got %v", err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.input.Kind(), ve.Kind)
		})
	}
}

func TestEngine_ValidationLogsAtDebug(t *testing.T) {
	engine := NewEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	_, err := engine.BasicFV(domain.BasicFVInput{Years: 0})

	require.Error(t, err)
	assert.Contains(t, logger.messages, "DEBUG: validation failed: %v")
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
