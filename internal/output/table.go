package output

import (
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Column describes one trajectory table column
type Column struct {
	Label string
	Unit  Unit
}

// Table is a year-by-year view of a result's trajectory
type Table struct {
	Columns []Column
	Rows    [][]decimal.Decimal
}

// Cells renders row i for display
func (t *Table) Cells(i int, currency string) []string {
	cells := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		cells[j] = Metric{Value: t.Rows[i][j], Unit: col.Unit}.Format(currency)
	}
	return cells
}

// Labels returns the column headers
func (t *Table) Labels() []string {
	labels := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = c.Label
	}
	return labels
}

// TrajectoryTable lays out a result's trajectory. It returns nil for results without one.
func TrajectoryTable(r domain.Result) *Table {
	if infl, ok := r.(domain.InflationAdjustedResult); ok {
		if len(infl.Trajectory) == 0 {
			return nil
		}
		t := &Table{Columns: []Column{
			{"Year", UnitCount}, {"Nominal", UnitMoney}, {"Real", UnitMoney}, {"Impact", UnitMoney},
		}}
		for _, s := range infl.Trajectory {
			t.Rows = append(t.Rows, []decimal.Decimal{decimal.NewFromInt(int64(s.Year)), s.Nominal, s.Real, s.Impact})
		}
		return t
	}

	snaps := domain.Snapshots(r)
	if len(snaps) == 0 {
		return nil
	}

	year := func(s domain.PeriodSnapshot) decimal.Decimal { return decimal.NewFromInt(int64(s.Period)) }
	age := func(s domain.PeriodSnapshot) decimal.Decimal { return decimal.NewFromInt(int64(s.Age)) }

	var t *Table
	var row func(domain.PeriodSnapshot) []decimal.Decimal
	switch r.Kind() {
	case domain.KindCarValue:
		t = &Table{Columns: []Column{{"Year", UnitCount}, {"Vehicle Age", UnitCount}, {"Value", UnitMoney}, {"Depreciation", UnitMoney}}}
		row = func(s domain.PeriodSnapshot) []decimal.Decimal {
			return []decimal.Decimal{year(s), age(s), s.Balance, s.Withdrawal}
		}
	case domain.KindWithdrawals:
		t = &Table{Columns: []Column{{"Year", UnitCount}, {"Balance", UnitMoney}, {"Withdrawals", UnitMoney}, {"Growth", UnitMoney}}}
		row = func(s domain.PeriodSnapshot) []decimal.Decimal {
			return []decimal.Decimal{year(s), s.Balance, s.Withdrawal, s.Growth}
		}
	case domain.KindMutualFund:
		t = &Table{Columns: []Column{{"Year", UnitCount}, {"Balance", UnitMoney}, {"Invested", UnitMoney}, {"Fees", UnitMoney}, {"Growth", UnitMoney}}}
		row = func(s domain.PeriodSnapshot) []decimal.Decimal {
			return []decimal.Decimal{year(s), s.Balance, s.Contribution, s.Withdrawal, s.Growth}
		}
	case domain.KindRetirement:
		t = &Table{Columns: []Column{{"Year", UnitCount}, {"Age", UnitCount}, {"Balance", UnitMoney}, {"Contributions", UnitMoney}, {"Growth", UnitMoney}}}
		row = func(s domain.PeriodSnapshot) []decimal.Decimal {
			return []decimal.Decimal{year(s), age(s), s.Balance, s.Contribution, s.Growth}
		}
	default:
		t = &Table{Columns: []Column{{"Year", UnitCount}, {"Balance", UnitMoney}, {"Contributions", UnitMoney}, {"Growth", UnitMoney}}}
		row = func(s domain.PeriodSnapshot) []decimal.Decimal {
			return []decimal.Decimal{year(s), s.Balance, s.Contribution, s.Growth}
		}
	}
	for _, s := range snaps {
		t.Rows = append(t.Rows, row(s))
	}
	return t
}
