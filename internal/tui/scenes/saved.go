package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/rgehrsitz/fvgo/internal/store"
	"github.com/rgehrsitz/fvgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
)

// SavedModel lists saved calculations
type SavedModel struct {
	records       []store.Record
	selectedIndex int
	currency      string
	err           error
	width         int
	height        int
}

// NewSavedModel creates a new saved calculations scene model
func NewSavedModel(currency string) *SavedModel {
	return &SavedModel{currency: currency}
}

// SetRecords replaces the list
func (m *SavedModel) SetRecords(records []store.Record, err error) {
	m.records, m.err = records, err
	if m.selectedIndex >= len(records) {
		m.selectedIndex = max(0, len(records)-1)
	}
}

// SetSize updates the model dimensions
func (m *SavedModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted record, if any
func (m *SavedModel) Selected() *store.Record {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.records) {
		return &m.records[m.selectedIndex]
	}
	return nil
}

// Update handles messages for the saved scene
func (m *SavedModel) Update(msg tea.Msg) (*SavedModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.records)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		if rec := m.Selected(); rec != nil {
			selected := tuimsg.CalculatorSelectedMsg{Kind: rec.Kind, Name: rec.Name, Input: rec.Inputs}
			return m, func() tea.Msg { return selected }
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("d", "delete"))):
		if rec := m.Selected(); rec != nil {
			id := rec.ID
			return m, func() tea.Msg { return tuimsg.DeleteRecordMsg{ID: id} }
		}
	}
	return m, nil
}

// View renders the saved list
func (m *SavedModel) View() string {
	var content strings.Builder
	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorSecondary).Render("Saved calculations"))
	content.WriteString("\n\n")

	if m.err != nil {
		content.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()))
		return tuistyles.BorderStyle.Render(content.String())
	}
	if len(m.records) == 0 {
		content.WriteString(tuistyles.SubtitleStyle.Render("Nothing saved yet. Press ctrl+s on the parameter screen to save."))
		return tuistyles.BorderStyle.Render(content.String())
	}

	subtle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	for i, rec := range m.records {
		headline := ""
		if metrics := output.Headlines(rec.Result); len(metrics) > 0 {
			headline = fmt.Sprintf("%s %s", metrics[0].Label, metrics[0].Format(m.currency))
		}
		line := fmt.Sprintf("%-28s %-22s", rec.Name, rec.Kind.Title())
		if i == m.selectedIndex {
			content.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + line))
		} else {
			content.WriteString(tuistyles.UnselectedItemStyle.Render("  " + line))
		}
		content.WriteString(subtle.Render(fmt.Sprintf(" %-24s %s", headline, rec.Timestamp.Local().Format("2006-01-02 15:04"))))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(subtle.Render("↑↓ select • enter open • d delete • esc back"))
	return tuistyles.BorderStyle.Render(content.String())
}
