package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
)

// ProgressBar shows a part against a whole, e.g. the share of a final
// balance that came from contributions
type ProgressBar struct {
	Part  float64
	Whole float64
	Width int
	Label string
}

func NewProgressBar(part, whole float64) *ProgressBar {
	return &ProgressBar{Part: part, Whole: whole, Width: 40}
}

func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage returns the part as a percentage of the whole, clamped to [0, 100]
func (p *ProgressBar) Percentage() float64 {
	if p.Whole <= 0 {
		return 0
	}
	return min(max(p.Part/p.Whole*100, 0), 100)
}

// Render returns the optional label line followed by the bar and its percentage
func (p *ProgressBar) Render() string {
	pct := p.Percentage()
	filled := int(float64(p.Width) * pct / 100)

	bar := "[" +
		lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Render(strings.Repeat("░", p.Width-filled)) +
		"] " +
		lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true).Render(fmt.Sprintf("%.1f%%", pct))

	if p.Label == "" {
		return bar
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Bold(true).Render(p.Label) + "\n" + bar
}
