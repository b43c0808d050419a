package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
)

// ParameterSlider edits one numeric input field within [Min, Max].
// With Options set it is a selector instead, and Value holds the option index.
type ParameterSlider struct {
	Field     string
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // "$", "%", "yr" or ""
	Format    string
	Options   []string
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a numeric slider
func NewParameterSlider(label string, value, lo, hi, step float64) *ParameterSlider {
	return &ParameterSlider{Label: label, Value: value, Min: lo, Max: hi, Step: step, Format: "%.2f", Width: 30}
}

// NewSelector creates a slider that cycles through options
func NewSelector(label string, options []string, selected int) *ParameterSlider {
	s := NewParameterSlider(label, float64(selected), 0, float64(len(options)-1), 1)
	s.Options = options
	s.Format = "%.0f"
	return s
}

func (p *ParameterSlider) WithField(field string) *ParameterSlider {
	p.Field = field
	return p
}

func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// IsSelector reports whether the slider cycles through options
func (p *ParameterSlider) IsSelector() bool { return len(p.Options) > 0 }

// Selected returns the current option, or "" for numeric sliders
func (p *ParameterSlider) Selected() string {
	if !p.IsSelector() {
		return ""
	}
	return p.Options[p.index()]
}

func (p *ParameterSlider) index() int {
	return min(max(int(math.Round(p.Value)), 0), len(p.Options)-1)
}

// Increment moves one step up; selectors wrap around
func (p *ParameterSlider) Increment() { p.move(1) }

// Decrement moves one step down; selectors wrap around
func (p *ParameterSlider) Decrement() { p.move(-1) }

func (p *ParameterSlider) move(dir int) {
	if p.IsSelector() {
		n := len(p.Options)
		p.Value = float64((p.index() + dir + n) % n)
		return
	}
	p.SetValue(p.Value + float64(dir)*p.Step)
}

// SetValue sets the value, clamped to [Min, Max]
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// fraction is the value's position within the range, 0 to 1
func (p *ParameterSlider) fraction() float64 {
	if p.Max <= p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// FormatValue renders v with the slider's format and unit
func (p *ParameterSlider) FormatValue(v float64) string {
	s := fmt.Sprintf(p.Format, v)
	switch p.Unit {
	case "":
		return s
	case "$":
		return "$" + s
	case "yr":
		return s + " yr"
	default:
		return s + p.Unit
	}
}

func (p *ParameterSlider) display() string {
	if p.IsSelector() {
		return "◀ " + p.Selected() + " ▶"
	}
	return p.FormatValue(p.Value)
}

func (p *ParameterSlider) styles() (label, value, thumb lipgloss.Style) {
	label, value, thumb = tuistyles.ParameterLabelStyle, tuistyles.ParameterValueStyle, tuistyles.SliderThumbStyle
	if p.IsFocused {
		label = label.Foreground(tuistyles.ColorPrimary)
		value = value.Foreground(tuistyles.ColorAccent)
		thumb = thumb.Foreground(tuistyles.ColorAccent)
	}
	return label, value, thumb
}

// Render returns the slider as label, value, bar and range lines
func (p *ParameterSlider) Render() string {
	label, value, _ := p.styles()
	lines := []string{label.Render(p.Label), value.Render(p.display())}
	if !p.IsSelector() {
		lines = append(lines,
			p.bar(p.Width),
			lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).
				Render(p.FormatValue(p.Min)+"  ─  "+p.FormatValue(p.Max)))
	}
	return strings.Join(lines, "\n")
}

// RenderCompact returns a single line with a short bar
func (p *ParameterSlider) RenderCompact() string {
	label, value, _ := p.styles()
	marker := "  "
	if p.IsFocused {
		marker = tuistyles.SelectedItemStyle.Render("▸ ")
	}
	line := marker + label.Render(fmt.Sprintf("%-22s", p.Label)) + " " + value.Render(fmt.Sprintf("%-14s", p.display()))
	if !p.IsSelector() {
		line += " " + p.bar(16)
	}
	return line
}

// bar draws a track of width cells with the thumb at the value's position
func (p *ParameterSlider) bar(width int) string {
	_, _, thumb := p.styles()
	pos := int(math.Round(float64(width-1) * p.fraction()))

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(thumb.Render(strings.Repeat("━", pos) + "●"))
	b.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", width-1-pos)))
	b.WriteString("]")
	return b.String()
}
