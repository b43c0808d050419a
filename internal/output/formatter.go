package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/fvgo/internal/domain"
)

// Calculation is one computed result together with what produced it
type Calculation struct {
	Name   string
	Input  domain.Input
	Result domain.Result
}

// Title is the calculation name, or the calculator title when unnamed
func (c Calculation) Title() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Result != nil {
		return c.Result.Kind().Title()
	}
	return "Calculation"
}

// Formatter renders calculations in one output format
type Formatter interface {
	Name() string
	Format(calcs []Calculation) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(calcs []Calculation) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(calcs []Calculation) ([]byte, error) { return f.F(calcs) }

var formatters = map[string]func(currency string) Formatter{
	"console":      func(c string) Formatter { return ConsoleVerboseFormatter{Currency: c} },
	"console-lite": func(c string) Formatter { return ConsoleFormatter{Currency: c} },
	"csv":          func(c string) Formatter { return CSVSummarizer{} },
	"detailed-csv": func(c string) Formatter { return TrajectoryCSV{} },
	"json":         func(c string) Formatter { return JSONFormatter{} },
	"yaml":         func(c string) Formatter { return YAMLFormatter{} },
	"html":         func(c string) Formatter { return HTMLFormatter{Currency: c} },
}

var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"table":           "console-lite",
	"yml":             "yaml",
	"trajectory-csv":  "detailed-csv",
}

// NewFormatter returns the formatter registered under name (or one of its aliases),
// rendering money in currency. It returns nil for unknown names.
func NewFormatter(name, currency string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	ctor, ok := formatters[name]
	if !ok {
		return nil
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return ctor(currency)
}

// GetFormatterByName returns the named formatter using the default currency
func GetFormatterByName(name string) Formatter {
	return NewFormatter(name, DefaultCurrency)
}

// AvailableFormatterNames lists the registered formatter names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for a := range formatAliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	return aliases
}

// WriteFormatted formats calcs and writes them to a timestamped file in the working directory
func WriteFormatted(f Formatter, calcs []Calculation, ext string) (string, error) {
	data, err := f.Format(calcs)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("fv_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
