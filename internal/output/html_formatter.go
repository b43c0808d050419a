package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct {
	Currency string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"bar": barWidth,
}).Parse(htmlTemplateSource))

type htmlSection struct {
	Title     string
	Kind      string
	Headlines []htmlCell
	Warnings  []string
	Columns   []string
	Rows      [][]string
	Bars      []htmlBar
}

type htmlCell struct {
	Label string
	Value string
}

type htmlBar struct {
	Label   string
	Value   string
	Percent float64
}

func (h HTMLFormatter) Format(calcs []Calculation) ([]byte, error) {
	currency := h.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	sections := make([]htmlSection, 0, len(calcs))
	for _, calc := range calcs {
		s := htmlSection{
			Title:    calc.Title(),
			Kind:     calc.Result.Kind().Title(),
			Warnings: Warnings(calc.Result, currency),
		}
		for _, m := range Headlines(calc.Result) {
			s.Headlines = append(s.Headlines, htmlCell{m.Label, m.Format(currency)})
		}
		if table := TrajectoryTable(calc.Result); table != nil {
			s.Columns = table.Labels()
			peak := decimal.Zero
			for _, row := range table.Rows {
				peak = decimal.Max(peak, row[balanceColumn(table)])
			}
			for i, row := range table.Rows {
				s.Rows = append(s.Rows, table.Cells(i, currency))
				v := row[balanceColumn(table)]
				s.Bars = append(s.Bars, htmlBar{
					Label:   row[0].String(),
					Value:   FormatCurrency(v, currency),
					Percent: ratio(v, peak),
				})
			}
		}
		sections = append(sections, s)
	}

	data := struct {
		Generated   string
		Sections    []htmlSection
		Assumptions []string
	}{time.Now().Format("January 2, 2006"), sections, DefaultAssumptions}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// balanceColumn is the first money column of a trajectory table
func balanceColumn(t *Table) int {
	for i, c := range t.Columns {
		if c.Unit == UnitMoney {
			return i
		}
	}
	return 0
}

func ratio(v, peak decimal.Decimal) float64 {
	if !peak.IsPositive() || !v.IsPositive() {
		return 0
	}
	f, _ := v.Div(peak).Float64()
	return f
}

func barWidth(p float64) string {
	return decimal.NewFromFloat(p*100).StringFixed(1) + "%"
}
