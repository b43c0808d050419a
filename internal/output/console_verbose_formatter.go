package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

// ConsoleFormatter prints only the headline values of each calculation
type ConsoleFormatter struct {
	Currency string
}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(calcs []Calculation) ([]byte, error) {
	var buf bytes.Buffer
	if len(calcs) == 0 {
		fmt.Fprintln(&buf, "No calculations.")
		return buf.Bytes(), nil
	}
	for i, calc := range calcs {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintf(&buf, "%s\n", calc.Title())
		writeHeadlines(&buf, calc, c.Currency)
	}
	return buf.Bytes(), nil
}

// ConsoleVerboseFormatter renders headlines, warnings and the year-by-year trajectory
type ConsoleVerboseFormatter struct {
	Currency string
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(calcs []Calculation) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, "FUTURE VALUE PROJECTIONS")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf)

	for i, calc := range calcs {
		fmt.Fprintf(&buf, "CALCULATION %d: %s (%s)\n", i+1, calc.Title(), calc.Result.Kind().Title())
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		writeHeadlines(&buf, calc, c.Currency)

		for _, w := range Warnings(calc.Result, c.Currency) {
			fmt.Fprintf(&buf, "  ! %s\n", w)
		}

		if table := TrajectoryTable(calc.Result); table != nil {
			fmt.Fprintln(&buf)
			tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, strings.Join(table.Labels(), "\t")+"\t")
			for r := range table.Rows {
				fmt.Fprintln(tw, strings.Join(table.Cells(r, c.Currency), "\t")+"\t")
			}
			tw.Flush()
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeHeadlines(buf *bytes.Buffer, calc Calculation, currency string) {
	if calc.Result == nil {
		return
	}
	for _, m := range Headlines(calc.Result) {
		fmt.Fprintf(buf, "  %-26s %s\n", m.Label+":", m.Format(currency))
	}
}
