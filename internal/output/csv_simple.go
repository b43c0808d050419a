package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVSummarizer writes one row per headline metric
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(calcs []Calculation) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Calculation", "Kind", "Metric", "Value"}); err != nil {
		return nil, err
	}
	for _, calc := range calcs {
		for _, m := range Headlines(calc.Result) {
			row := []string{calc.Title(), string(calc.Result.Kind()), m.Label, csvValue(m)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// TrajectoryCSV writes the year-by-year trajectory of every calculation that has one
type TrajectoryCSV struct{}

func (c TrajectoryCSV) Name() string { return "detailed-csv" }

func (c TrajectoryCSV) Format(calcs []Calculation) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	for _, calc := range calcs {
		table := TrajectoryTable(calc.Result)
		if table == nil {
			continue
		}
		if err := w.Write(append([]string{"Calculation"}, table.Labels()...)); err != nil {
			return nil, err
		}
		for _, row := range table.Rows {
			record := []string{calc.Title()}
			for j, v := range row {
				record = append(record, csvValue(Metric{Value: v, Unit: table.Columns[j].Unit}))
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func csvValue(m Metric) string {
	switch m.Unit {
	case UnitCount:
		return strconv.FormatInt(m.Value.Round(0).IntPart(), 10)
	case UnitMoney:
		return m.Value.StringFixed(0)
	default:
		return m.Value.StringFixed(2)
	}
}
