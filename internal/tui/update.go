package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/tui/scenes"
	"github.com/rgehrsitz/fvgo/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := max(5, msg.Height-4)
		m.homeModel.SetSize(msg.Width, contentHeight)
		m.parametersModel.SetSize(msg.Width, contentHeight)
		m.resultsModel.SetSize(msg.Width, contentHeight)
		m.savedModel.SetSize(msg.Width, contentHeight)
		m.breakEvenModel.SetSize(msg.Width, contentHeight)
		return m, nil

	case NavigateMsg:
		return m.navigate(msg.Scene)

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.CalculatorSelectedMsg:
		if err := m.parametersModel.SetCalculator(msg.Kind, msg.Name, msg.Input); err != nil {
			m.err = err
			return m, nil
		}
		m.result = nil
		m, _ = m.switchTo(SceneParameters)
		in, err := m.parametersModel.Input()
		if err != nil {
			m.err = err
			return m, nil
		}
		return m.recompute(in)

	case tuimsg.InputChangedMsg:
		return m.recompute(msg.Input)

	case tuimsg.CalculationCompleteMsg:
		if msg.Err == nil {
			m.memo.SetDefault(msg.Key, msg.Result)
		}
		if msg.Key != m.pendingKey {
			// a newer input superseded this one
			return m, nil
		}
		m.applyResult(msg.Input, msg.Result, msg.Err)
		return m, nil

	case tuimsg.SaveRequestedMsg:
		switch {
		case m.store == nil:
			m.status = "Saving is unavailable: no store configured"
			return m, nil
		case m.result == nil:
			m.status = "Nothing to save yet"
			return m, nil
		}
		return m, saveCmd(m.store, m.parametersModel.Name(), m.input, m.result)

	case tuimsg.SavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = fmt.Sprintf("Saved %q", msg.Record.Name)
		return m, nil

	case tuimsg.RecordsLoadedMsg:
		m.savedModel.SetRecords(msg.Records, msg.Err)
		return m, nil

	case tuimsg.DeleteRecordMsg:
		if m.store == nil {
			return m, nil
		}
		return m, deleteRecordCmd(m.store, msg.ID)

	case tuimsg.SolveRequestedMsg:
		return m, solveCmd(m.solver, msg.Request)

	case tuimsg.SolveCompleteMsg:
		m.breakEvenModel.SetResult(msg.Result, msg.Err)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// recompute shows the memoised result for in, or starts a calculation
func (m Model) recompute(in domain.Input) (tea.Model, tea.Cmd) {
	key, err := memoKey(in)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.pendingKey = key
	if cached, ok := m.memo.Get(key); ok {
		m.applyResult(in, cached.(domain.Result), nil)
		return m, nil
	}
	return m, calculateCmd(m.engine, key, in)
}

func (m *Model) applyResult(in domain.Input, res domain.Result, err error) {
	m.parametersModel.SetResult(res, err)
	if err != nil {
		// out-of-domain slider combinations (e.g. retirement age below current age) keep the last result
		return
	}
	m.input, m.result = in, res
	title := m.parametersModel.Name()
	if title == "" {
		title = in.Kind().Title()
	}
	m.resultsModel.SetResult(title, res)
}

// navigate handles scene changes that need data
func (m Model) navigate(scene Scene) (tea.Model, tea.Cmd) {
	switch scene {
	case SceneSaved:
		if m.store == nil {
			m.status = "Saved calculations are unavailable: no store configured"
			return m, nil
		}
		m, _ = m.switchTo(scene)
		return m, loadRecordsCmd(m.store)
	case SceneBreakEven:
		if !scenes.Supports(m.parametersModel.Kind()) || m.input == nil {
			m.status = "Break-even is available for Withdrawals and Monthly Contributions"
			return m, nil
		}
		m, _ = m.switchTo(scene)
		return m, m.breakEvenModel.SetInput(m.input)
	case SceneResults, SceneParameters:
		if m.parametersModel.Kind() == "" {
			m.status = "Choose a calculator first"
			return m, nil
		}
	}
	return m.switchTo(scene)
}

func (m Model) switchTo(scene Scene) (Model, tea.Cmd) {
	if scene != m.currentScene {
		m.previousScene = m.currentScene
		m.currentScene = scene
	}
	m.err = nil
	return m, nil
}

// parentScene is where esc leads from each scene
func (m Model) parentScene() Scene {
	switch m.currentScene {
	case SceneResults, SceneBreakEven:
		return SceneParameters
	case SceneHelp:
		return m.previousScene
	default:
		return SceneHome
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.err != nil {
		// any key dismisses the error
		m.err = nil
		return m, nil
	}
	m.status = ""

	// the goal field takes every key except esc
	if m.currentScene == SceneBreakEven && m.breakEvenModel.Editing() && msg.Type != tea.KeyEsc {
		return m.updateCurrentScene(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		return m.switchTo(SceneHelp)
	case "esc":
		if m.currentScene != SceneHome {
			return m.switchTo(m.parentScene())
		}
		return m, nil
	case "v":
		return m.navigate(SceneSaved)
	}

	if m.currentScene == SceneParameters {
		switch msg.String() {
		case "enter":
			return m.navigate(SceneResults)
		case "b":
			return m.navigate(SceneBreakEven)
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneParameters:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneSaved:
		m.savedModel, cmd = m.savedModel.Update(msg)
	case SceneBreakEven:
		m.breakEvenModel, cmd = m.breakEvenModel.Update(msg)
	}
	return m, cmd
}
