package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fvgo/internal/breakeven"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
)

// BreakEvenModel runs the goal seek for the calculation on the parameter screen
type BreakEvenModel struct {
	input     domain.Input
	goalInput textinput.Model
	solving   bool
	result    *breakeven.Result
	err       error
	currency  string
	width     int
	height    int
}

// NewBreakEvenModel creates a new break-even scene model
func NewBreakEvenModel(currency string) *BreakEvenModel {
	ti := textinput.New()
	ti.Placeholder = "e.g., 250000"
	ti.CharLimit = 12
	ti.Width = 20

	return &BreakEvenModel{goalInput: ti, currency: currency}
}

// Supports reports whether kind has a break-even search
func Supports(kind domain.Kind) bool {
	return kind == domain.KindWithdrawals || kind == domain.KindMonthlyContributions
}

// SetInput resets the scene for in
func (m *BreakEvenModel) SetInput(in domain.Input) tea.Cmd {
	m.input, m.result, m.err, m.solving = in, nil, nil, false
	m.goalInput.SetValue("")
	if _, ok := in.(domain.MonthlyContributionsInput); ok {
		return m.goalInput.Focus()
	}
	m.goalInput.Blur()
	return nil
}

// Editing reports whether the goal field has focus and should receive all keys
func (m *BreakEvenModel) Editing() bool {
	return m.goalInput.Focused()
}

// SetResult shows a finished search
func (m *BreakEvenModel) SetResult(r *breakeven.Result, err error) {
	m.solving = false
	m.result, m.err = r, err
}

// SetSize updates the model dimensions
func (m *BreakEvenModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the break-even scene
func (m *BreakEvenModel) Update(msg tea.Msg) (*BreakEvenModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.Type == tea.KeyEnter {
		req, err := m.request()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.solving, m.err = true, nil
		return m, func() tea.Msg { return tuimsg.SolveRequestedMsg{Request: req} }
	}

	if m.goalInput.Focused() {
		var cmd tea.Cmd
		m.goalInput, cmd = m.goalInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BreakEvenModel) request() (breakeven.Request, error) {
	switch in := m.input.(type) {
	case domain.WithdrawalsInput:
		return breakeven.Request{Target: breakeven.TargetSustainableWithdrawal, Withdrawals: &in}, nil
	case domain.MonthlyContributionsInput:
		goal, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(m.goalInput.Value()), ",", ""))
		if err != nil || !goal.IsPositive() {
			return breakeven.Request{}, &breakeven.BreakEvenError{Operation: "goal", Message: "enter a positive goal amount"}
		}
		return breakeven.Request{Target: breakeven.TargetRequiredContribution, Contributions: &in, Goal: goal}, nil
	default:
		return breakeven.Request{}, &breakeven.BreakEvenError{Operation: "solve", Message: "break-even needs a withdrawals or monthly contributions calculation"}
	}
}

// View renders the break-even scene
func (m *BreakEvenModel) View() string {
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render("Break-Even"))
	content.WriteString("\n\n")

	switch m.input.(type) {
	case domain.WithdrawalsInput:
		content.WriteString("Find the largest monthly withdrawal that never empties the balance.\n")
		content.WriteString(tuistyles.SubtitleStyle.Render("Press enter to solve."))
	case domain.MonthlyContributionsInput:
		content.WriteString("Find the smallest monthly contribution that reaches a goal.\n\n")
		content.WriteString("Goal: " + m.goalInput.View() + "\n")
		content.WriteString(tuistyles.SubtitleStyle.Render("Type a goal and press enter."))
	default:
		content.WriteString(tuistyles.SubtitleStyle.Render("Available for Withdrawals and Monthly Contributions."))
	}
	content.WriteString("\n\n")

	switch {
	case m.solving:
		content.WriteString(tuistyles.InfoStyle.Render("Solving..."))
	case m.err != nil:
		content.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()))
	case m.result != nil:
		f := &breakeven.TableFormatter{Currency: m.currency}
		content.WriteString(f.Format(m.result))
	}
	return tuistyles.BorderStyle.Render(content.String())
}
