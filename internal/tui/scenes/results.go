package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/rgehrsitz/fvgo/internal/tui/components"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
)

// ResultsModel is the scrollable detail view of the current result
type ResultsModel struct {
	title    string
	result   domain.Result
	currency string
	symbol   string
	viewport viewport.Model
	width    int
	height   int
}

// NewResultsModel creates a new results scene model
func NewResultsModel(currency, symbol string) *ResultsModel {
	return &ResultsModel{
		currency: currency,
		symbol:   symbol,
		viewport: viewport.New(80, 20),
	}
}

// SetResult updates the result to display
func (m *ResultsModel) SetResult(title string, r domain.Result) {
	m.title, m.result = title, r
	m.viewport.SetContent(m.render())
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = max(20, width-2)
	m.viewport.Height = max(5, height-6)
	m.viewport.SetContent(m.render())
}

// Update scrolls the detail view
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.result == nil {
		return tuistyles.BorderStyle.Render("No results yet. Pick a calculator and adjust its parameters.")
	}
	help := tuistyles.HelpDescStyle.Render("↑↓ scroll • esc back")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), help)
}

func (m *ResultsModel) render() string {
	if m.result == nil {
		return ""
	}
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render(m.title))
	content.WriteString("\n\n")

	cards := components.MetricCards(output.Headlines(m.result), nil, m.currency, 26)
	content.WriteString(components.MetricGrid(cards, 3))
	content.WriteString("\n")

	for _, w := range output.Warnings(m.result, m.currency) {
		content.WriteString(tuistyles.ErrorStyle.Render("! " + w))
		content.WriteString("\n")
	}

	if contributed, total, ok := contributionShare(m.result); ok {
		bar := components.NewProgressBar(contributed.InexactFloat64(), total.InexactFloat64()).
			WithLabel("Share of the final value you contributed").
			WithWidth(40)
		content.WriteString("\n")
		content.WriteString(bar.Render())
		content.WriteString("\n")
	}

	if chart := components.TrajectoryChart(m.result, m.symbol); chart != nil {
		content.WriteString("\n")
		content.WriteString(chart.WithSize(max(40, min(100, m.width-4)), 12).Render())
		content.WriteString("\n")
	}

	if table := output.TrajectoryTable(m.result); table != nil {
		content.WriteString("\n")
		content.WriteString(renderTable(table, m.currency))
	}
	return content.String()
}

func renderTable(t *output.Table, currency string) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)).
		Headers(t.Labels()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuistyles.TableHeaderStyle.Padding(0, 1)
			}
			return tuistyles.TableCellStyle.Padding(0, 1).Align(lipgloss.Right)
		})
	for i := range t.Rows {
		tbl.Row(t.Cells(i, currency)...)
	}
	return tbl.Render()
}

// contributionShare returns the money put in against the final value for results that track both
func contributionShare(r domain.Result) (contributed, total decimal.Decimal, ok bool) {
	switch res := r.(type) {
	case domain.MonthlyContributionsResult:
		return res.TotalContributions, res.FutureValue, true
	case domain.AnnuityResult:
		return res.TotalContributions, res.FutureValue, true
	case domain.RetirementResult:
		return res.TotalContributions, res.FutureValue, true
	case domain.SIPResult:
		return res.TotalInvestment, res.FutureValue, true
	case domain.MutualFundResult:
		return res.TotalInvestment, res.FutureValue, true
	}
	return decimal.Zero, decimal.Zero, false
}
