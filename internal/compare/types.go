package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/shopspring/decimal"
)

// MetricDelta is one headline value of a scenario and how it differs from the base
type MetricDelta struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Diff  decimal.Decimal `json:"diffFromBase"`
	Pct   decimal.Decimal `json:"pctFromBase"` // percent of the base value, 0 when the base is 0
	Unit  output.Unit     `json:"-"`
}

// ComparisonResult is one computed scenario with its headline metrics
type ComparisonResult struct {
	ScenarioName string        `json:"scenarioName"`
	Description  string        `json:"description,omitempty"`
	Kind         domain.Kind   `json:"kind"`
	Input        domain.Input  `json:"inputs"`
	Result       domain.Result `json:"result"`
	Metrics      []MetricDelta `json:"metrics"`
}

// Metric returns the metric with the given label
func (r *ComparisonResult) Metric(label string) (MetricDelta, bool) {
	for _, m := range r.Metrics {
		if m.Label == label {
			return m, true
		}
	}
	return MetricDelta{}, false
}

// Depleted reports whether a withdrawal scenario runs out of money
func (r *ComparisonResult) Depleted() (months int, depleted bool) {
	if w, ok := r.Result.(domain.WithdrawalsResult); ok && w.Depleted {
		return w.MonthsUntilDepletion, true
	}
	return 0, false
}

// ComparisonSet represents a base scenario and its alternatives
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	Source             string             `json:"source,omitempty"`
}

// MetricsCalculator extracts headline metrics and deltas from results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics builds the comparison entry of a computed scenario
func (mc *MetricsCalculator) CalculateMetrics(name string, in domain.Input, res domain.Result) ComparisonResult {
	result := ComparisonResult{
		ScenarioName: name,
		Kind:         res.Kind(),
		Input:        in,
		Result:       res,
	}
	for _, m := range output.Headlines(res) {
		result.Metrics = append(result.Metrics, MetricDelta{Label: m.Label, Value: m.Value, Unit: m.Unit})
	}
	return result
}

// CalculateComparison fills the deltas of scenario against base, matching metrics by label
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	metrics := make([]MetricDelta, len(scenario.Metrics))
	for i, m := range scenario.Metrics {
		if b, ok := base.Metric(m.Label); ok {
			m.Diff = m.Value.Sub(b.Value)
			if !b.Value.IsZero() {
				m.Pct = m.Diff.Div(b.Value.Abs()).Mul(decimal.NewFromInt(100)).Round(2)
			}
		}
		metrics[i] = m
	}
	scenario.Metrics = metrics
	return scenario
}

// lowerIsBetter lists headline labels where a smaller value is the better outcome
var lowerIsBetter = map[string]bool{
	"Total Fees":         true,
	"Total Depreciation": true,
	"Inflation Impact":   true,
	"Total Investment":   true,
}

// GenerateRecommendations names the alternatives that beat the base on the primary
// headline, on each lower-is-better metric and on depletion
func GenerateRecommendations(compSet *ComparisonSet, currency string) []string {
	recommendations := []string{}
	base := compSet.BaseResult
	if base == nil || len(compSet.AlternativeResults) == 0 || len(base.Metrics) == 0 {
		return recommendations
	}

	primary := base.Metrics[0]
	best, bestValue := base, primary.Value
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if m, ok := alt.Metric(primary.Label); ok && m.Value.GreaterThan(bestValue) {
			best, bestValue = alt, m.Value
		}
	}
	if best != base {
		diff := output.Metric{Value: bestValue.Sub(primary.Value), Unit: primary.Unit}
		recommendations = append(recommendations, fmt.Sprintf("Highest %s: %s adds %s over the base",
			primary.Label, best.ScenarioName, diff.Format(currency)))
	}

	for _, bm := range base.Metrics {
		if !lowerIsBetter[bm.Label] {
			continue
		}
		lowest, lowestValue := base, bm.Value
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if m, ok := alt.Metric(bm.Label); ok && m.Value.LessThan(lowestValue) {
				lowest, lowestValue = alt, m.Value
			}
		}
		if lowest != base {
			saved := output.Metric{Value: bm.Value.Sub(lowestValue), Unit: bm.Unit}
			recommendations = append(recommendations, fmt.Sprintf("Lowest %s: %s saves %s",
				strings.TrimPrefix(bm.Label, "Total "), lowest.ScenarioName, saved.Format(currency)))
		}
	}

	if months, depleted := base.Depleted(); depleted {
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if _, altDepleted := alt.Depleted(); !altDepleted {
				recommendations = append(recommendations, fmt.Sprintf("Longevity: %s lasts the full horizon; the base runs out after %d months",
					alt.ScenarioName, months))
			}
		}
	}

	return recommendations
}
