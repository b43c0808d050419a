package compare

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/fvgo/internal/output"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func testComparisonSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "Base Scenario",
		Source:           "/path/to/plan.yaml",
		BaseResult: &ComparisonResult{
			ScenarioName: "Base Scenario",
			Kind:         "monthly_contributions",
			Metrics: []MetricDelta{
				{Label: "Future Value", Value: d("1250000"), Unit: output.UnitMoney},
				{Label: "Total Contributions", Value: d("300000"), Unit: output.UnitMoney},
			},
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName: "Alternative 1",
				Description:  "Base Scenario with annual_rate+1",
				Kind:         "monthly_contributions",
				Metrics: []MetricDelta{
					{Label: "Future Value", Value: d("1400000"), Diff: d("150000"), Pct: d("12"), Unit: output.UnitMoney},
					{Label: "Total Contributions", Value: d("300000"), Unit: output.UnitMoney},
				},
			},
			{
				ScenarioName: "Alternative 2",
				Kind:         "monthly_contributions",
				Metrics: []MetricDelta{
					{Label: "Future Value", Value: d("1250000"), Unit: output.UnitMoney},
					{Label: "Total Contributions", Value: d("300000"), Unit: output.UnitMoney},
				},
			},
		},
		Recommendations: []string{"Highest Future Value: Alternative 1 adds $150,000 over the base"},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.Format(testComparisonSet())

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	for _, want := range []string{
		"CALCULATION COMPARISON",
		"Base Scenario: Base Scenario",
		"Source: /path/to/plan.yaml",
		"Base Scenario (base)",
		"$1.25M",
		"$300.0K",
		"Alternative 1",
		"(Base Scenario with annual_rate+1)",
		"+$150,000 (12.0%)",
		"No change from base",
		"RECOMMENDATIONS",
	} {
		if !contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}
	compSet := testComparisonSet()
	compSet.AlternativeResults = nil
	compSet.Recommendations = nil

	result := formatter.Format(compSet)

	if contains(result, "COMPARISON TO BASE") {
		t.Error("Did not expect a comparison section without alternatives")
	}
	if contains(result, "RECOMMENDATIONS") {
		t.Error("Did not expect recommendations section")
	}
}

func TestTableFormatter_Currency(t *testing.T) {
	formatter := &TableFormatter{Currency: "EUR"}
	result := formatter.Format(testComparisonSet())

	if !contains(result, "€1.25M") {
		t.Errorf("Expected euro symbol in output:\n%s", result)
	}
}

func TestTableFormatter_FormatDecimal(t *testing.T) {
	formatter := &TableFormatter{}
	tests := []struct {
		in   string
		want string
	}{
		{"999", "999"},
		{"1500", "1.5K"},
		{"2500000", "2.50M"},
		{"-1500", "-1.5K"},
	}
	for _, tt := range tests {
		if got := formatter.formatDecimal(d(tt.in)); got != tt.want {
			t.Errorf("formatDecimal(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.FormatCompact(testComparisonSet())

	want := "Base: Base Scenario | Alternative 1: +$150.0K | Alternative 2: ="
	if result != want {
		t.Errorf("FormatCompact() = %q, want %q", result, want)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	result, err := formatter.Format(testComparisonSet())
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 7 {
		t.Fatalf("Expected header plus 6 rows, got %d lines", len(lines))
	}
	if lines[0] != "Scenario,Type,Kind,Metric,Value,Diff from Base,% Change" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if lines[1] != "Base Scenario,base,monthly_contributions,Future Value,1250000.00,0.00,0.00" {
		t.Errorf("Unexpected base row %q", lines[1])
	}
	if lines[3] != "Alternative 1,alternative,monthly_contributions,Future Value,1400000.00,150000.00,12.00" {
		t.Errorf("Unexpected alternative row %q", lines[3])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}
		result, err := formatter.Format(testComparisonSet())
		if err != nil {
			t.Fatal(err)
		}

		var decoded map[string]any
		if err := json.Unmarshal([]byte(result), &decoded); err != nil {
			t.Fatalf("Expected valid JSON: %v", err)
		}
		if decoded["baseScenarioName"] != "Base Scenario" {
			t.Errorf("Expected base scenario name, got %v", decoded["baseScenarioName"])
		}
		if pretty != contains(result, "\n  ") {
			t.Errorf("Pretty=%v produced unexpected indentation", pretty)
		}
		if !contains(result, `"diffFromBase":`) {
			t.Error("Expected metric deltas in JSON output")
		}
	}
}
