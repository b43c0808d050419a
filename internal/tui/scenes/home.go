package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
)

var kindBlurbs = map[domain.Kind]string{
	domain.KindBasicFV:              "Grow a lump sum at an annual rate",
	domain.KindCompoundInterest:     "Lump sum compounded n times a year",
	domain.KindMonthlyContributions: "Starting balance plus monthly deposits",
	domain.KindWithdrawals:          "Draw down a balance month by month",
	domain.KindMutualFund:           "Returns net of expense ratio and loads",
	domain.KindHomeValue:            "Appreciation, improvements and market swings",
	domain.KindCarValue:             "Depreciation by age, mileage and condition",
	domain.KindInflationAdjusted:    "Nominal growth against purchasing power",
	domain.KindAnnuity:              "Level payments into a growing account",
	domain.KindRetirement:           "Savings to retirement with limits and tax",
	domain.KindSIP:                  "Systematic monthly investment plan",
}

// HomeModel is the calculator picker
type HomeModel struct {
	kinds    []domain.Kind
	selected int
	width    int
	height   int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{kinds: domain.AllKinds()}
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted calculator
func (m *HomeModel) Selected() domain.Kind {
	return m.kinds[m.selected]
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selected < len(m.kinds)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		kind := m.Selected()
		return m, func() tea.Msg {
			return tuimsg.CalculatorSelectedMsg{Kind: kind}
		}
	}
	return m, nil
}

// View renders the calculator list
func (m *HomeModel) View() string {
	var content strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary)
	content.WriteString(sectionStyle.Render("Choose a calculator"))
	content.WriteString("\n\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for i, kind := range m.kinds {
		line := fmt.Sprintf("%-24s", kind.Title())
		if i == m.selected {
			content.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + line))
		} else {
			content.WriteString(tuistyles.UnselectedItemStyle.Render("  " + line))
		}
		content.WriteString(subtleStyle.Render(kindBlurbs[kind]))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("↑↓ select • enter open • v saved calculations"))
	return tuistyles.BorderStyle.Render(content.String())
}
