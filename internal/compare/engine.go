package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/output"
)

// Scenario is a named input to compare
type Scenario struct {
	Name        string
	Description string
	Input       domain.Input
}

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
	Currency          string
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		Currency:          output.DefaultCurrency,
	}
}

// CompareScenarios computes base and every alternative and measures each against the base.
// All scenarios must be of the same calculator kind.
func (ce *CompareEngine) CompareScenarios(ctx context.Context, base Scenario, alternatives []Scenario) (*ComparisonSet, error) {
	if base.Input == nil {
		return nil, fmt.Errorf("base scenario has no input")
	}
	baseRes, err := ce.CalcEngine.Calculate(base.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseName := scenarioName(base, 0)
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, base.Input, baseRes)
	baseResult.Description = base.Description

	results := make([]ComparisonResult, 0, len(alternatives))
	for i, alt := range alternatives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := scenarioName(alt, i+1)
		if alt.Input == nil || alt.Input.Kind() != base.Input.Kind() {
			return nil, fmt.Errorf("scenario %s is not a %s calculation", name, base.Input.Kind())
		}
		res, err := ce.CalcEngine.Calculate(alt.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", name, err)
		}
		altResult := ce.MetricsCalculator.CalculateMetrics(name, alt.Input, res)
		altResult.Description = alt.Description
		results = append(results, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet, ce.Currency)
	return compSet, nil
}

// CompareVariations compares base against one alternative per variation
func (ce *CompareEngine) CompareVariations(ctx context.Context, base Scenario, variations []Variation) (*ComparisonSet, error) {
	if base.Input == nil {
		return nil, fmt.Errorf("base scenario has no input")
	}
	alternatives := make([]Scenario, 0, len(variations))
	for _, v := range variations {
		in, err := v.Apply(base.Input)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, Scenario{
			Name:        v.String(),
			Description: fmt.Sprintf("%s with %s", scenarioName(base, 0), v),
			Input:       in,
		})
	}
	return ce.CompareScenarios(ctx, base, alternatives)
}

func scenarioName(s Scenario, i int) string {
	if s.Name != "" {
		return s.Name
	}
	if i == 0 {
		return "Base"
	}
	return fmt.Sprintf("Scenario %d", i)
}
