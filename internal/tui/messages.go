package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneParameters
	SceneResults
	SceneSaved
	SceneBreakEven
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// statusMsg shows a transient line in the status bar
type statusMsg string

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Calculators"
	case SceneParameters:
		return "Parameters"
	case SceneResults:
		return "Results"
	case SceneSaved:
		return "Saved"
	case SceneBreakEven:
		return "Break-Even"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
