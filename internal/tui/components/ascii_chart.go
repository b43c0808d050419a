package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/tui/tuistyles"
)

const yAxisWidth = 10

var seriesMarks = []rune{'●', '■', '▲', '♦'}

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots one or more series of yearly values
type ASCIIChart struct {
	Title  string
	Series []*DataSeries
	Labels []string // one per point
	Width  int
	Height int
	Symbol string // currency symbol for the Y-axis
}

// NewASCIIChart creates a 60x15 chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{Title: title, Width: 60, Height: 15, Symbol: "$"}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// scale maps values onto rows, row 0 being the top
type scale struct {
	lo, hi float64
	rows   int
}

func (c *ASCIIChart) scale() scale {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 0
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	return scale{lo: lo - pad, hi: hi + pad, rows: max(2, c.Height)}
}

func (s scale) row(v float64) int {
	r := int(math.Round((s.hi - v) / (s.hi - s.lo) * float64(s.rows-1)))
	return min(max(r, 0), s.rows-1)
}

func (s scale) value(row int) float64 {
	return s.hi - float64(row)/float64(s.rows-1)*(s.hi-s.lo)
}

// sample returns the series value under column col of cols, interpolating between points
func sample(points []float64, col, cols int) float64 {
	if len(points) == 1 || cols <= 1 {
		return points[0]
	}
	pos := float64(col) / float64(cols-1) * float64(len(points)-1)
	i := int(pos)
	if i >= len(points)-1 {
		return points[len(points)-1]
	}
	frac := pos - float64(i)
	return points[i] + (points[i+1]-points[i])*frac
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	sc := c.scale()
	cols := max(10, c.Width-yAxisWidth-3)
	grid := make([][]rune, sc.rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}

	// later series draw first so the primary series stays on top
	for i := len(c.Series) - 1; i >= 0; i-- {
		s := c.Series[i]
		if len(s.Points) == 0 {
			continue
		}
		mark := seriesMarks[i%len(seriesMarks)]
		prev := -1
		for col := 0; col < cols; col++ {
			r := sc.row(sample(s.Points, col, cols))
			grid[r][col] = mark
			// fill steep steps so the line reads as connected
			if prev >= 0 && abs(r-prev) > 1 {
				step := 1
				if r < prev {
					step = -1
				}
				for fill := prev + step; fill != r; fill += step {
					grid[fill][col] = '│'
				}
			}
			prev = r
		}
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		out.WriteString("\n\n")
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	for r, row := range grid {
		label := ""
		if r == 0 || r == sc.rows-1 || r == sc.rows/2 {
			label = formatChartValue(sc.value(r), c.Symbol)
		}
		out.WriteString(axis.Render(label))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth) + " └" + strings.Repeat("─", cols+1) + "\n")
	out.WriteString(c.renderXAxisLabels(cols))

	if len(c.Series) > 1 {
		out.WriteString("\n\n")
		out.WriteString(c.renderLegend())
	}
	return out.String()
}

// renderXAxisLabels places the first, last and up to three middle labels under their columns
func (c *ASCIIChart) renderXAxisLabels(cols int) string {
	n := len(c.Labels)
	if n == 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", cols+8))
	picks := []int{0}
	for _, f := range []float64{0.25, 0.5, 0.75} {
		if i := int(f * float64(n-1)); i > picks[len(picks)-1] && i < n-1 {
			picks = append(picks, i)
		}
	}
	if n > 1 {
		picks = append(picks, n-1)
	}

	next := 0
	for _, i := range picks {
		col := 0
		if n > 1 {
			col = int(float64(i) / float64(n-1) * float64(cols-1))
		}
		col = max(col, next)
		label := []rune(c.Labels[i])
		if col+len(label) > len(line) {
			continue
		}
		copy(line[col:], label)
		next = col + len(label) + 1
	}

	style := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth+3) + style.Render(strings.TrimRight(string(line), " "))
}

// renderLegend renders the chart legend
func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		mark := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesMarks[i%len(seriesMarks)]))
		items = append(items, mark+" "+s.Name)
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("Legend: " + strings.Join(items, " • "))
}

// formatChartValue abbreviates an axis value, e.g. "$12K"
func formatChartValue(value float64, symbol string) string {
	switch a := math.Abs(value); {
	case a >= 1_000_000:
		return fmt.Sprintf("%s%.1fM", symbol, value/1_000_000)
	case a >= 1_000:
		return fmt.Sprintf("%s%.0fK", symbol, value/1_000)
	default:
		return fmt.Sprintf("%s%.0f", symbol, value)
	}
}

// TrajectoryChart charts a result's year-end balances. Inflation results chart
// nominal against real value; results with contributions add the running total invested.
// It returns nil for results without a trajectory.
func TrajectoryChart(r domain.Result, symbol string) *ASCIIChart {
	chart := NewASCIIChart("Balance by Year")
	chart.Symbol = symbol

	if infl, ok := r.(domain.InflationAdjustedResult); ok {
		if len(infl.Trajectory) == 0 {
			return nil
		}
		var nominal, realValues []float64
		for _, s := range infl.Trajectory {
			nominal = append(nominal, s.Nominal.InexactFloat64())
			realValues = append(realValues, s.Real.InexactFloat64())
			chart.Labels = append(chart.Labels, fmt.Sprintf("Y%d", s.Year))
		}
		chart.Title = "Nominal vs Real Value"
		return chart.AddSeries("Nominal", nominal, tuistyles.ColorChartLine1).
			AddSeries("Real", realValues, tuistyles.ColorChartLine3)
	}

	snaps := domain.Snapshots(r)
	if len(snaps) == 0 {
		return nil
	}
	var balances, invested []float64
	var running float64
	anyContribution := false
	for _, s := range snaps {
		balances = append(balances, s.Balance.InexactFloat64())
		running += s.Contribution.InexactFloat64()
		invested = append(invested, running)
		if s.Contribution.IsPositive() {
			anyContribution = true
		}
		chart.Labels = append(chart.Labels, fmt.Sprintf("Y%d", s.Period))
	}
	chart.AddSeries("Balance", balances, tuistyles.ColorChartLine1)
	if anyContribution {
		chart.AddSeries("Contributed", invested, tuistyles.ColorChartLine2)
	}
	return chart
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
