package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct {
	Currency string
}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("CALCULATION COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", compSet.Source))
	}
	sb.WriteString("\n")

	base := compSet.BaseResult
	if base == nil {
		return sb.String()
	}

	nameWidth := 25
	numWidth := 16
	labels := make([]string, len(base.Metrics))
	for i, m := range base.Metrics {
		labels[i] = m.Label
	}

	sb.WriteString(fmt.Sprintf("%-*s", nameWidth, "Scenario"))
	for _, l := range labels {
		sb.WriteString(fmt.Sprintf(" %*s", numWidth, tf.truncate(l, numWidth)))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(base, labels, nameWidth, numWidth, true))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], labels, nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  (%s)\n", alt.Description))
			}
			changed := false
			for _, m := range alt.Metrics {
				if m.Diff.IsZero() {
					continue
				}
				changed = true
				sb.WriteString(fmt.Sprintf("  %-24s %s%s (%s%%)\n", m.Label+":",
					tf.deltaSymbol(m.Diff),
					output.Metric{Value: m.Diff.Abs(), Unit: m.Unit}.Format(tf.currency()),
					m.Pct.StringFixed(1)))
			}
			if !changed {
				sb.WriteString("  No change from base\n")
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, labels []string, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s", nameWidth, tf.truncate(name, nameWidth)))
	for _, l := range labels {
		cell := "-"
		if m, ok := result.Metric(l); ok {
			cell = tf.formatCompactValue(m)
		}
		sb.WriteString(fmt.Sprintf(" %*s", numWidth, cell))
	}
	if months, depleted := result.Depleted(); depleted {
		sb.WriteString(fmt.Sprintf("  depleted at month %d", months))
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatCompactValue shortens large money values to thousands or millions
func (tf *TableFormatter) formatCompactValue(m MetricDelta) string {
	if m.Unit != output.UnitMoney && m.Unit != output.UnitCents {
		return output.Metric{Value: m.Value, Unit: m.Unit}.Format(tf.currency())
	}
	symbol := output.CurrencySymbol(tf.currency())
	sign := ""
	if m.Value.IsNegative() {
		sign = "-"
	}
	return sign + symbol + tf.formatDecimal(m.Value.Abs())
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns + for gains and - for losses
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func (tf *TableFormatter) currency() string {
	if tf.Currency == "" {
		return output.DefaultCurrency
	}
	return tf.Currency
}

// FormatCompact creates a single-line summary of the primary metric per scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if len(alt.Metrics) > 0 {
			primary := alt.Metrics[0]
			if !primary.Diff.IsZero() {
				change = tf.deltaSymbol(primary.Diff) + tf.formatCompactValue(MetricDelta{Value: primary.Diff.Abs(), Unit: primary.Unit})
			}
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
