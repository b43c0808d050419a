package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err)))
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneSaved:
		content = m.savedModel.View()
	case SceneBreakEven:
		content = m.breakEvenModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := m.height - 4 // Title (2) + status (2)

	contentContainer := lipgloss.NewStyle().
		Height(max(1, contentHeight)).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		contentContainer,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Future Value Calculator")

	breadcrumb := m.currentScene.String()
	if kind := m.parametersModel.Kind(); kind != "" && m.currentScene != SceneHome && m.currentScene != SceneSaved {
		breadcrumb = fmt.Sprintf("%s / %s", kind.Title(), breadcrumb)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(breadcrumb))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("esc", "back"),
		formatShortcut("v", "saved"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}
	statusText := strings.Join(shortcuts, " • ")

	if m.status != "" {
		note := InfoStyle.Render(m.status)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(note) - 4
		statusText = statusText + strings.Repeat(" ", max(1, width)) + note
	}
	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"↑/↓ k/j", "Move between calculators or fields"},
		{"←/→ h/l", "Adjust the focused field; option fields cycle"},
		{"enter", "Open a calculator, or show full results"},
		{"b", "Break-even search (Withdrawals, Monthly Contributions)"},
		{"r", "Reset fields to the calculator defaults"},
		{"ctrl+s", "Save the current calculation"},
		{"v", "Saved calculations (enter opens, d deletes)"},
		{"esc", "Go back"},
		{"q/ctrl+c", "Quit"},
	}

	var content strings.Builder
	content.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	content.WriteString("\n\n")
	for _, r := range rows {
		content.WriteString(HelpKeyStyle.Render(fmt.Sprintf("%-10s", r[0])))
		content.WriteString(" ")
		content.WriteString(HelpDescStyle.Render(r[1]))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(HelpDescStyle.Render("Results update as you move a slider. Each input is computed once and remembered."))
	return BorderStyle.Render(content.String())
}
