// Package config holds the immutable run configuration shared by every
// component, and loads it from defaults, an optional YAML file, MEMOEXPORT_*
// environment variables, and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwulff/memoexport/internal/db"
)

// DefaultDateFormat is the strftime pattern used for --date_in_name.
const DefaultDateFormat = "%Y-%m-%d-%H-%M-%S_"

// Config is passed by value; components never read ambient state.
type Config struct {
	DBPath     string `mapstructure:"db-path"`
	ExportPath string `mapstructure:"export-path"`
	All        bool   `mapstructure:"all"`
	DateInName bool   `mapstructure:"date-in-name"`
	DateFormat string `mapstructure:"date-in-name-format"`
	NoFinder   bool   `mapstructure:"no-finder"`
	Verbose    bool   `mapstructure:"verbose"`
	ConfigPath string `mapstructure:"-"` // not from config file
}

// DefaultExportPath returns ~/Voice Memos Export.
func DefaultExportPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Voice Memos Export")
}

// DefaultConfigPath returns ~/.config/memoexport/config.yml.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "memoexport", "config.yml")
}

// DefaultConfig returns a Config populated with built-in defaults.
func DefaultConfig() Config {
	return Config{
		DBPath:     db.DefaultDBPath(),
		ExportPath: DefaultExportPath(),
		DateFormat: DefaultDateFormat,
	}
}

// DBDir returns the directory relative ZPATH values are resolved against.
func (c Config) DBDir() string {
	return filepath.Dir(c.DBPath)
}

// Interactive reports whether each recording needs a keystroke.
func (c Config) Interactive() bool {
	return !c.All
}

// Validate checks that required fields are set.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if strings.TrimSpace(c.ExportPath) == "" {
		errs = append(errs, errors.New("export path is required"))
	}
	if c.DateInName && c.DateFormat == "" {
		errs = append(errs, errors.New("date format is required when date_in_name is set"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
