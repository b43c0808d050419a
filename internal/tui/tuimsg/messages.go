// Package tuimsg defines the messages scenes send to the root model
package tuimsg

import (
	"github.com/rgehrsitz/fvgo/internal/breakeven"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/store"
)

// CalculatorSelectedMsg opens the parameter screen for a calculator.
// Input seeds the sliders; nil means the calculator defaults.
type CalculatorSelectedMsg struct {
	Kind  domain.Kind
	Name  string
	Input domain.Input
}

// InputChangedMsg asks for a recompute after a slider moved
type InputChangedMsg struct {
	Input domain.Input
}

// CalculationCompleteMsg carries a finished computation
type CalculationCompleteMsg struct {
	Key    string
	Input  domain.Input
	Result domain.Result
	Err    error
}

// SaveRequestedMsg asks for the current calculation to be stored
type SaveRequestedMsg struct{}

// SavedMsg reports the outcome of a save
type SavedMsg struct {
	Record *store.Record
	Err    error
}

// RecordsLoadedMsg carries the saved calculations
type RecordsLoadedMsg struct {
	Records []store.Record
	Err     error
}

// DeleteRecordMsg asks for a saved calculation to be removed
type DeleteRecordMsg struct {
	ID string
}

// SolveRequestedMsg asks for a break-even search
type SolveRequestedMsg struct {
	Request breakeven.Request
}

// SolveCompleteMsg carries a finished break-even search
type SolveCompleteMsg struct {
	Result *breakeven.Result
	Err    error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
