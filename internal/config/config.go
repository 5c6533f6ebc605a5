// Package config loads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/todocat/internal/domain"
)

// Config holds everything the binary needs to start a session.
type Config struct {
	// DefaultCategory is preselected for new tasks.
	DefaultCategory domain.Category
	// InitialFilter is the filter shown at startup.
	InitialFilter domain.Category

	// LogFile receives structured use-case logs. Empty disables logging,
	// since the TUI owns the terminal.
	LogFile  string
	LogLevel slog.Level

	AltScreen bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultCategory: domain.DefaultNewCategory,
		InitialFilter:   domain.CategoryAll,
		LogLevel:        slog.LevelInfo,
		AltScreen:       true,
	}
}

// LoadConfig reads TODOCAT_* environment variables, keeping defaults for
// any value that is unset or invalid.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TODOCAT_CATEGORY"); v != "" {
		if c, ok := domain.ParseCategory(v); ok && c.Assignable() {
			cfg.DefaultCategory = c
		}
	}
	if v := os.Getenv("TODOCAT_FILTER"); v != "" {
		if c, ok := domain.ParseCategory(v); ok {
			cfg.InitialFilter = c
		}
	}
	if v := os.Getenv("TODOCAT_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODOCAT_LOG_LEVEL"); v != "" {
		if lvl, ok := ParseLevel(v); ok {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("TODOCAT_ALT_SCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AltScreen = b
		}
	}

	return cfg
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, false
	}
	return lvl, true
}
