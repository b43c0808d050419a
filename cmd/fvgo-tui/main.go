package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/config"
	"github.com/rgehrsitz/fvgo/internal/store"
	"github.com/rgehrsitz/fvgo/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML settings file")
	noStore := flag.Bool("no-store", false, "Run without saving calculations")
	flag.Parse()

	if err := run(*configPath, *noStore); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, noStore bool) error {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}

	var st store.Store
	if !noStore {
		sqlite, err := store.NewSQLiteStore(settings.StorePath)
		if err != nil {
			return err
		}
		defer sqlite.Close()
		st = sqlite
	}

	model := tui.NewModel(calculation.NewEngine(), st, settings.Currency)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
