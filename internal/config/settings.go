package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const envPrefix = "FVGO_"

// Settings holds the application settings shared by the CLI, the TUI and the HTTP server
type Settings struct {
	StorePath string  `toml:"store_path"`
	Currency  string  `toml:"currency"`
	LogLevel  string  `toml:"log_level"`
	Listen    string  `toml:"listen"`
	RateLimit float64 `toml:"rate_limit"` // API requests per second
	RateBurst int     `toml:"rate_burst"`
}

// DefaultSettings returns the built-in settings
func DefaultSettings() Settings {
	return Settings{
		StorePath: filepath.Join(defaultHome(), "calculations.db"),
		Currency:  "USD",
		LogLevel:  "info",
		Listen:    ":8080",
		RateLimit: 10,
		RateBurst: 20,
	}
}

// DefaultSettingsPath is where LoadSettings looks when no path is given
func DefaultSettingsPath() string {
	return filepath.Join(defaultHome(), "config.toml")
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fvgo"
	}
	return filepath.Join(home, ".fvgo")
}

// LoadSettings layers defaults, the TOML settings file and FVGO_* environment
// variables, in that order. A missing settings file is not an error unless path
// was given explicitly. A .env file in the working directory is loaded first.
func LoadSettings(path string) (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load .env: %w", err)
	}

	s := DefaultSettings()
	explicit := path != ""
	if !explicit {
		path = DefaultSettingsPath()
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings validation failed: %w", err)
	}
	return s, nil
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "STORE_PATH"); ok && v != "" {
		s.StorePath = v
	}
	if v, ok := lookup(envPrefix + "CURRENCY"); ok && v != "" {
		s.Currency = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok && v != "" {
		s.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "LISTEN"); ok && v != "" {
		s.Listen = v
	}
	if v, ok := lookup(envPrefix + "RATE_LIMIT"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sRATE_LIMIT %q: %w", envPrefix, v, err)
		}
		s.RateLimit = f
	}
	if v, ok := lookup(envPrefix + "RATE_BURST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sRATE_BURST %q: %w", envPrefix, v, err)
		}
		s.RateBurst = n
	}
	return nil
}

// Validate checks the settings for obviously unusable values
func (s Settings) Validate() error {
	if strings.TrimSpace(s.StorePath) == "" {
		return fmt.Errorf("store_path is required")
	}
	if len(s.Currency) != 3 {
		return fmt.Errorf("currency must be a three-letter ISO code, got %q", s.Currency)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", s.LogLevel)
	}
	if s.RateLimit <= 0 || s.RateBurst <= 0 {
		return fmt.Errorf("rate_limit and rate_burst must be positive")
	}
	return nil
}
