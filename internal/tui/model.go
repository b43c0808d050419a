package tui

import (
	"context"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/patrickmn/go-cache"

	"github.com/rgehrsitz/fvgo/internal/breakeven"
	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/rgehrsitz/fvgo/internal/store"
	"github.com/rgehrsitz/fvgo/internal/tui/scenes"
	"github.com/rgehrsitz/fvgo/internal/tui/tuimsg"
)

const (
	memoTTL      = 10 * time.Minute
	solveTimeout = 10 * time.Second
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	engine   *calculation.Engine
	solver   *breakeven.Solver
	store    store.Store // nil disables saving
	memo     *cache.Cache
	currency string

	// The calculation on the parameter screen; pendingKey is the newest requested input
	input      domain.Input
	result     domain.Result
	pendingKey string

	homeModel       *scenes.HomeModel
	parametersModel *scenes.ParametersModel
	resultsModel    *scenes.ResultsModel
	savedModel      *scenes.SavedModel
	breakEvenModel  *scenes.BreakEvenModel

	status string
	err    error
}

// NewModel creates a new application model. st may be nil.
func NewModel(engine *calculation.Engine, st store.Store, currency string) Model {
	if currency == "" {
		currency = output.DefaultCurrency
	}
	return Model{
		currentScene:    SceneHome,
		engine:          engine,
		solver:          breakeven.NewDefaultSolver(engine),
		store:           st,
		memo:            cache.New(memoTTL, 2*memoTTL),
		currency:        currency,
		homeModel:       scenes.NewHomeModel(),
		parametersModel: scenes.NewParametersModel(currency),
		resultsModel:    scenes.NewResultsModel(currency, output.CurrencySymbol(currency)),
		savedModel:      scenes.NewSavedModel(currency),
		breakEvenModel:  scenes.NewBreakEvenModel(currency),
		width:           100,
		height:          30,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// memoKey identifies an input for the result memo
func memoKey(in domain.Input) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return string(in.Kind()) + ":" + string(data), nil
}

// calculateCmd computes in off the update loop
func calculateCmd(engine *calculation.Engine, key string, in domain.Input) tea.Cmd {
	return func() tea.Msg {
		res, err := engine.Calculate(in)
		return tuimsg.CalculationCompleteMsg{Key: key, Input: in, Result: res, Err: err}
	}
}

func saveCmd(st store.Store, name string, in domain.Input, res domain.Result) tea.Cmd {
	return func() tea.Msg {
		rec, err := st.Save(context.Background(), name, in, res)
		return tuimsg.SavedMsg{Record: rec, Err: err}
	}
}

func loadRecordsCmd(st store.Store) tea.Cmd {
	return func() tea.Msg {
		records, err := st.List(context.Background())
		return tuimsg.RecordsLoadedMsg{Records: records, Err: err}
	}
}

func deleteRecordCmd(st store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := st.Delete(ctx, id); err != nil {
			return tuimsg.RecordsLoadedMsg{Err: err}
		}
		records, err := st.List(ctx)
		return tuimsg.RecordsLoadedMsg{Records: records, Err: err}
	}
}

func solveCmd(solver *breakeven.Solver, req breakeven.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
		defer cancel()
		res, err := solver.Solve(ctx, req)
		return tuimsg.SolveCompleteMsg{Result: res, Err: err}
	}
}
