package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/rgehrsitz/fvgo/internal/tui/components"
	"github.com/rgehrsitz/fvgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
)

// ParametersModel is the slider screen with a live result panel
type ParametersModel struct {
	kind          domain.Kind
	name          string
	form          *form
	focusedSlider int
	currency      string
	result        domain.Result
	previous      []output.Metric
	err           error
	width         int
	height        int
}

// NewParametersModel creates a new parameters scene model
func NewParametersModel(currency string) *ParametersModel {
	return &ParametersModel{currency: currency}
}

// SetCalculator rebuilds the sliders for kind, seeded from in or the calculator defaults
func (m *ParametersModel) SetCalculator(kind domain.Kind, name string, in domain.Input) error {
	if in == nil {
		var err error
		if in, err = domain.DefaultInput(kind); err != nil {
			return err
		}
	}
	f, err := newForm(kind, in)
	if err != nil {
		return err
	}
	m.kind, m.name, m.form = kind, name, f
	m.focusedSlider = 0
	m.result, m.previous, m.err = nil, nil, nil
	return nil
}

// SetSize updates the model dimensions
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetResult shows the newest computation. The previous headlines are kept for trend arrows.
func (m *ParametersModel) SetResult(res domain.Result, err error) {
	if err != nil {
		m.err = err
		return
	}
	if m.result != nil {
		m.previous = output.Headlines(m.result)
	}
	m.result, m.err = res, nil
}

// Kind returns the calculator being edited
func (m *ParametersModel) Kind() domain.Kind { return m.kind }

// Name returns the calculation name, if it was loaded from a saved record
func (m *ParametersModel) Name() string { return m.name }

// Input reads the current slider positions
func (m *ParametersModel) Input() (domain.Input, error) {
	if m.form == nil {
		return nil, nil
	}
	return m.form.Input()
}

// Update handles messages for the parameters scene
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.form == nil || len(m.form.fields) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		m.moveFocus(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h"))):
		m.focused().Decrement()
		return m, m.inputChanged()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l"))):
		m.focused().Increment()
		return m, m.inputChanged()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("r"))):
		if err := m.SetCalculator(m.kind, "", nil); err != nil {
			return m, errorCmd(err)
		}
		return m, m.inputChanged()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+s"))):
		return m, func() tea.Msg { return tuimsg.SaveRequestedMsg{} }
	}
	return m, nil
}

func (m *ParametersModel) focused() *components.ParameterSlider {
	return m.form.fields[m.focusedSlider].slider
}

func (m *ParametersModel) moveFocus(delta int) {
	next := m.focusedSlider + delta
	if next < 0 || next >= len(m.form.fields) {
		return
	}
	m.focused().SetFocused(false)
	m.focusedSlider = next
	m.focused().SetFocused(true)
}

// inputChanged asks the root model to recompute
func (m *ParametersModel) inputChanged() tea.Cmd {
	in, err := m.form.Input()
	if err != nil {
		return errorCmd(err)
	}
	return func() tea.Msg { return tuimsg.InputChangedMsg{Input: in} }
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg { return tuimsg.ErrorMsg{Err: err} }
}

// View renders sliders on the left and the live result on the right
func (m *ParametersModel) View() string {
	if m.form == nil {
		return tuistyles.BorderStyle.Render("Choose a calculator first")
	}

	var left strings.Builder
	left.WriteString(tuistyles.TitleStyle.Render(m.kind.Title()))
	left.WriteString("\n\n")
	for _, s := range m.form.sliders() {
		left.WriteString(s.RenderCompact())
		left.WriteString("\n")
	}
	left.WriteString("\n")
	left.WriteString(tuistyles.HelpDescStyle.Render("↑↓ field • ←→ adjust • r reset • enter details • b break-even • ctrl+s save"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		tuistyles.BorderStyle.Render(left.String()),
		m.renderResult(),
	)
}

func (m *ParametersModel) renderResult() string {
	var content strings.Builder
	if m.err != nil {
		content.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()))
		content.WriteString("\n\n")
	}
	if m.result == nil {
		content.WriteString(tuistyles.SubtitleStyle.Render("Calculating..."))
		return tuistyles.BorderStyle.Render(content.String())
	}

	cards := components.MetricCards(output.Headlines(m.result), m.previous, m.currency, 24)
	content.WriteString(components.MetricGrid(cards, 2))
	for _, w := range output.Warnings(m.result, m.currency) {
		content.WriteString("\n")
		content.WriteString(tuistyles.ErrorStyle.Render("! " + w))
	}
	return tuistyles.BorderStyle.Render(content.String())
}
