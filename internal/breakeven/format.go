package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fvgo/internal/output"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct {
	Currency string
}

// Format generates a formatted table for a solver result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN RESULTS\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Target:       %s\n", targetTitle(result.Target)))
	if result.Target == TargetRequiredContribution {
		sb.WriteString(fmt.Sprintf("Goal:         %s\n", output.FormatCurrency(result.Goal, tf.currency())))
	}
	sb.WriteString(fmt.Sprintf("Status:       %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:   %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:  %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Monthly amount: %s\n", output.FormatCents(result.Amount, tf.currency())))
	sb.WriteString("\n")

	if result.Outcome != nil {
		sb.WriteString("PROJECTED RESULTS\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, m := range output.Headlines(result.Outcome) {
			sb.WriteString(fmt.Sprintf("%-24s %s\n", m.Label+":", m.Format(tf.currency())))
		}
	}
	return sb.String()
}

// FormatLadder formats a contribution ladder, one line per goal
func (tf *TableFormatter) FormatLadder(ladder *Ladder) string {
	var sb strings.Builder
	sb.WriteString("REQUIRED MONTHLY CONTRIBUTION BY GOAL\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	for _, r := range ladder.Results {
		sb.WriteString(fmt.Sprintf("%-16s %s\n", output.FormatCurrency(r.Goal, tf.currency()), output.FormatCents(r.Amount, tf.currency())))
	}
	for _, g := range ladder.Unreachable {
		sb.WriteString(fmt.Sprintf("%-16s unreachable\n", output.FormatCurrency(g, tf.currency())))
	}
	return sb.String()
}

func (tf *TableFormatter) currency() string {
	if tf.Currency == "" {
		return output.DefaultCurrency
	}
	return tf.Currency
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func targetTitle(t Target) string {
	switch t {
	case TargetSustainableWithdrawal:
		return "Sustainable monthly withdrawal"
	case TargetRequiredContribution:
		return "Required monthly contribution"
	default:
		return string(t)
	}
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
