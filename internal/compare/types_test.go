package compare

import (
	"context"
	"strings"
	"testing"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func bond() Scenario {
	return Scenario{
		Name:  "bond",
		Input: domain.BasicFVInput{Principal: d("10000"), Rate: d("5"), Years: 10},
	}
}

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()
	in := domain.BasicFVInput{Principal: d("10000"), Rate: d("5"), Years: 10}
	res, err := calculation.NewEngine().Calculate(in)
	if err != nil {
		t.Fatal(err)
	}

	result := calc.CalculateMetrics("Test Scenario", in, res)

	if result.ScenarioName != "Test Scenario" {
		t.Errorf("Expected scenario name 'Test Scenario', got %s", result.ScenarioName)
	}
	if result.Kind != domain.KindBasicFV {
		t.Errorf("Expected kind basic_fv, got %s", result.Kind)
	}
	if len(result.Metrics) != 2 {
		t.Fatalf("Expected 2 metrics, got %d", len(result.Metrics))
	}
	if m, ok := result.Metric("Future Value"); !ok || !m.Value.Equal(d("16288.95")) {
		t.Errorf("Expected future value 16288.95, got %v", m.Value)
	}
	if _, ok := result.Metric("Lifetime Income"); ok {
		t.Error("Expected no metric for an unknown label")
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{ScenarioName: "Base", Metrics: []MetricDelta{
		{Label: "Future Value", Value: d("16288.95")},
		{Label: "Interest Earned", Value: d("0")},
	}}
	alt := ComparisonResult{ScenarioName: "Alt", Metrics: []MetricDelta{
		{Label: "Future Value", Value: d("17908.48")},
		{Label: "Interest Earned", Value: d("100")},
		{Label: "Extra", Value: d("5")},
	}}

	result := calc.CalculateComparison(alt, base)

	if !result.Metrics[0].Diff.Equal(d("1619.53")) {
		t.Errorf("Expected diff 1619.53, got %s", result.Metrics[0].Diff)
	}
	if !result.Metrics[0].Pct.Equal(d("9.94")) {
		t.Errorf("Expected pct 9.94, got %s", result.Metrics[0].Pct)
	}
	if !result.Metrics[1].Pct.IsZero() {
		t.Errorf("Expected zero pct against a zero base, got %s", result.Metrics[1].Pct)
	}
	if !result.Metrics[2].Diff.IsZero() {
		t.Errorf("Expected no diff for a metric missing from base, got %s", result.Metrics[2].Diff)
	}
	if !alt.Metrics[0].Diff.IsZero() {
		t.Error("CalculateComparison must not modify its argument's metrics")
	}
}

func TestCompareEngine_CompareVariations(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())

	vars := []Variation{
		{Field: "rate", Op: '+', Operand: "1"},
		{Field: "years", Op: '=', Operand: "15"},
	}
	compSet, err := engine.CompareVariations(context.Background(), bond(), vars)
	if err != nil {
		t.Fatal(err)
	}

	if compSet.BaseScenarioName != "bond" {
		t.Errorf("Expected base name bond, got %s", compSet.BaseScenarioName)
	}
	if len(compSet.AlternativeResults) != 2 {
		t.Fatalf("Expected 2 alternatives, got %d", len(compSet.AlternativeResults))
	}

	faster := compSet.AlternativeResults[0]
	if faster.ScenarioName != "rate+1" {
		t.Errorf("Expected scenario named after its variation, got %s", faster.ScenarioName)
	}
	fv, _ := faster.Metric("Future Value")
	if !fv.Value.Equal(d("17908.48")) || !fv.Diff.Equal(d("1619.53")) {
		t.Errorf("Expected 17908.48 (+1619.53), got %s (%s)", fv.Value, fv.Diff)
	}

	longer := compSet.AlternativeResults[1]
	fv, _ = longer.Metric("Future Value")
	if !fv.Value.Equal(d("20789.28")) {
		t.Errorf("Expected 20789.28 over 15 years, got %s", fv.Value)
	}

	if len(compSet.Recommendations) != 1 || !strings.Contains(compSet.Recommendations[0], "Highest Future Value: years=15") {
		t.Errorf("Expected the 15-year scenario to be recommended, got %v", compSet.Recommendations)
	}
}

func TestCompareEngine_Errors(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	ctx := context.Background()

	other := Scenario{Name: "sip", Input: domain.SIPInput{MonthlyInvestment: d("100"), AnnualRate: d("12"), Years: 1}}
	if _, err := engine.CompareScenarios(ctx, bond(), []Scenario{other}); err == nil || !strings.Contains(err.Error(), "not a basic_fv calculation") {
		t.Errorf("Expected kind mismatch error, got %v", err)
	}

	if _, err := engine.CompareScenarios(ctx, Scenario{}, nil); err == nil {
		t.Error("Expected error for a base without input")
	}

	if _, err := engine.CompareVariations(ctx, bond(), []Variation{{Field: "years", Op: '=', Operand: "0"}}); !calculation.IsValidationError(err) {
		t.Errorf("Expected validation error for years=0, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := engine.CompareScenarios(cancelled, bond(), []Scenario{bond()}); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestGenerateRecommendations_Depletion(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	base := Scenario{Name: "drawdown", Input: domain.WithdrawalsInput{
		InitialBalance: d("12000"), MonthlyWithdrawal: d("1100"), AnnualRate: d("0"), Years: 1,
	}}

	compSet, err := engine.CompareVariations(context.Background(), base, []Variation{{Field: "monthly_withdrawal", Op: '=', Operand: "900"}})
	if err != nil {
		t.Fatal(err)
	}

	if months, depleted := compSet.BaseResult.Depleted(); !depleted || months != 11 {
		t.Errorf("Expected base depleted at month 11, got %d (%v)", months, depleted)
	}
	found := false
	for _, rec := range compSet.Recommendations {
		if strings.Contains(rec, "Longevity: monthly_withdrawal=900") && strings.Contains(rec, "after 11 months") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a longevity recommendation, got %v", compSet.Recommendations)
	}
}

func TestGenerateRecommendations_LowerIsBetter(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{ScenarioName: "base", Metrics: []MetricDelta{
			{Label: "Future Value", Value: d("1000")},
			{Label: "Total Fees", Value: d("50")},
		}},
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "cheap", Metrics: []MetricDelta{
				{Label: "Future Value", Value: d("900")},
				{Label: "Total Fees", Value: d("20")},
			}},
		},
	}

	recs := GenerateRecommendations(compSet, "USD")
	if len(recs) != 1 || recs[0] != "Lowest Fees: cheap saves $30" {
		t.Errorf("Unexpected recommendations %v", recs)
	}

	if recs := GenerateRecommendations(&ComparisonSet{BaseResult: compSet.BaseResult}, "USD"); len(recs) != 0 {
		t.Errorf("Expected no recommendations without alternatives, got %v", recs)
	}
}
