package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV, one row per scenario and metric
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Kind",
		"Metric",
		"Value",
		"Diff from Base",
		"% Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		for _, row := range cf.formatRows(compSet.BaseResult, "base") {
			if err := writer.Write(row); err != nil {
				return "", err
			}
		}
	}
	for i := range compSet.AlternativeResults {
		for _, row := range cf.formatRows(&compSet.AlternativeResults[i], "alternative") {
			if err := writer.Write(row); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRows formats a comparison result as one CSV row per metric
func (cf *CSVFormatter) formatRows(result *ComparisonResult, scenarioType string) [][]string {
	rows := make([][]string, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		rows = append(rows, []string{
			result.ScenarioName,
			scenarioType,
			string(result.Kind),
			m.Label,
			m.Value.StringFixed(2),
			m.Diff.StringFixed(2),
			m.Pct.StringFixed(2),
		})
	}
	return rows
}
