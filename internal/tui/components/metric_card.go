package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard displays one headline value of a result
type MetricCard struct {
	Label string
	Value string
	Trend *Trend
	Width int
}

// Trend is the move of a headline since the previous result
type Trend struct {
	IsPositive bool
	Change     string // e.g. "$5,234"
	Percent    string // e.g. "2.3%"; empty when the previous value was zero
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	lines := []string{
		tuistyles.MetricLabelStyle.Render(m.Label),
		tuistyles.MetricValueStyle.Render(m.Value),
	}
	if m.Trend != nil {
		text := fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Trend.IsPositive), m.Trend.Change)
		if m.Trend.Percent != "" {
			text += " (" + m.Trend.Percent + ")"
		}
		lines = append(lines, tuistyles.MetricTrendStyle(m.Trend.IsPositive).Render(text))
	}

	width := m.Width
	if width <= 0 {
		width = 24
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// MetricCards builds one card per headline. When previous holds the headlines of the
// prior result, cards whose value moved carry a trend.
func MetricCards(metrics, previous []output.Metric, currency string, width int) []*MetricCard {
	cards := make([]*MetricCard, 0, len(metrics))
	for i, m := range metrics {
		card := &MetricCard{Label: m.Label, Value: m.Format(currency), Width: width}
		if i < len(previous) && previous[i].Label == m.Label && !previous[i].Value.Equal(m.Value) {
			card.Trend = trendOf(m, previous[i].Value, currency)
		}
		cards = append(cards, card)
	}
	return cards
}

func trendOf(m output.Metric, before decimal.Decimal, currency string) *Trend {
	delta := m.Value.Sub(before)
	t := &Trend{
		IsPositive: delta.IsPositive(),
		Change:     output.Metric{Value: delta.Abs(), Unit: m.Unit}.Format(currency),
	}
	if !before.IsZero() && m.Unit != output.UnitPercent && m.Unit != output.UnitCount {
		t.Percent = output.FormatPercent(delta.Abs().Div(before.Abs()).Mul(decimal.NewFromInt(100)))
	}
	return t
}

// MetricGrid lays cards out in rows of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, c.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
