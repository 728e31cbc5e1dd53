// Package config provides configuration types and defaults for talkboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kestrelab/talkboard/internal/board"
)

// HistoryConfig holds utterance history options.
type HistoryConfig struct {
	// Enabled controls whether selections are recorded to the history
	// database.
	Enabled bool `mapstructure:"enabled"`

	// Path is the history database location.
	// If empty, DefaultHistoryPath() is used.
	Path string `mapstructure:"path"`
}

// Config holds all configuration options for talkboard.
type Config struct {
	// BoardPath is the default board file, used when --board is not given.
	BoardPath string `mapstructure:"board_path"`

	// ReselectPolicy controls what selecting the already-active category
	// does. Valid values: "error" (default) or "noop".
	ReselectPolicy string `mapstructure:"reselect_policy"`

	// AutoReload reloads the board when the file changes (watch command).
	AutoReload bool `mapstructure:"auto_reload"`

	// AutoReloadDebounce is the quiet period before a reload fires.
	AutoReloadDebounce time.Duration `mapstructure:"auto_reload_debounce"`

	History HistoryConfig   `mapstructure:"history"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		ReselectPolicy:     string(board.ReselectError),
		AutoReload:         true,
		AutoReloadDebounce: time.Second,
		History: HistoryConfig{
			Enabled: false, // Opt-in; recording speech is a privacy decision
			Path:    "",    // Derived from the user data dir at runtime
		},
	}
}

// DefaultHistoryPath returns the default history database location.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".local", "share", "talkboard", "history.db")
}

// HistoryPath returns the configured history database path, falling back
// to the default location.
func (c Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return DefaultHistoryPath()
}

// BoardOptions maps the configuration onto board construction options.
func (c Config) BoardOptions() []board.Option {
	var opts []board.Option
	if p := board.ReselectPolicy(c.ReselectPolicy); p.IsValid() {
		opts = append(opts, board.WithReselectPolicy(p))
	}
	return opts
}

// ValidateReselectPolicy checks the configured reselect policy value.
func ValidateReselectPolicy(policy string) error {
	if policy == "" {
		return nil // Empty means default
	}
	if !board.ReselectPolicy(policy).IsValid() {
		return fmt.Errorf("invalid reselect_policy %q: must be %q or %q",
			policy, board.ReselectError, board.ReselectNoop)
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateReselectPolicy(c.ReselectPolicy); err != nil {
		return err
	}
	if c.AutoReloadDebounce < 0 {
		return fmt.Errorf("auto_reload_debounce cannot be negative")
	}
	return nil
}
