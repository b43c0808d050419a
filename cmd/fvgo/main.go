package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/config"
	"github.com/rgehrsitz/fvgo/internal/store"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// slogLogger implements calculation.Logger on top of log/slog
type slogLogger struct {
	l *slog.Logger
}

func newSlogLogger(w io.Writer, level string) slogLogger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slogLogger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))}
}

func (s slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s slogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s slogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }

// app carries what every subcommand needs once the persistent flags are parsed
type app struct {
	configPath string
	debug      bool

	settings config.Settings
	logger   calculation.Logger
	engine   *calculation.Engine
}

// setup loads settings and builds the engine before any subcommand runs
func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		settings.LogLevel = "debug"
	}
	a.settings = settings
	a.logger = newSlogLogger(cmd.ErrOrStderr(), settings.LogLevel)
	a.engine = calculation.NewEngine()
	a.engine.SetLogger(a.logger)
	a.logger.Debugf("settings: store=%s currency=%s", settings.StorePath, settings.Currency)
	return nil
}

func (a *app) openStore() (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(a.settings.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "fvgo",
		Short:         "Future value calculator CLI",
		Long:          "Projects savings, investments, assets and retirement accounts forward in time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a TOML settings file (default ~/.fvgo/config.toml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		calculateCmd(a),
		validateCmd(a),
		compareCmd(a),
		savedCmd(a),
		exportCmd(a),
		breakEvenCmd(a),
		serveCmd(a),
		termsCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// settings are not needed to print the version
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fvgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
