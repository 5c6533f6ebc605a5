package cli

import (
	"fmt"

	"github.com/alexanderramin/todocat/internal/config"
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/spf13/pflag"
)

// registerFlags declares the config flags with defaults taken from cfg.
func registerFlags(fs *pflag.FlagSet, cfg config.Config) {
	fs.String("category", string(cfg.DefaultCategory), "Default category for new tasks")
	fs.String("filter", string(cfg.InitialFilter), "Category shown at startup (all for every task)")
	fs.String("log-file", cfg.LogFile, "Append structured logs to this file")
	fs.String("log-level", cfg.LogLevel.String(), "Log level: debug, info, warn, error")
	fs.Bool("alt-screen", cfg.AltScreen, "Use the terminal's alternate screen")
}

// applyFlagOverrides copies explicitly set flags onto cfg. Flags left at
// their defaults keep the environment-derived values.
func applyFlagOverrides(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("category") {
		v, _ := fs.GetString("category")
		c, ok := domain.ParseCategory(v)
		if !ok || !c.Assignable() {
			return fmt.Errorf("--category %q: %w", v, ErrUnknownCategory)
		}
		cfg.DefaultCategory = c
	}
	if fs.Changed("filter") {
		v, _ := fs.GetString("filter")
		c, ok := domain.ParseCategory(v)
		if !ok {
			return fmt.Errorf("--filter %q: %w", v, ErrUnknownCategory)
		}
		cfg.InitialFilter = c
	}
	if fs.Changed("log-file") {
		cfg.LogFile, _ = fs.GetString("log-file")
	}
	if fs.Changed("log-level") {
		v, _ := fs.GetString("log-level")
		lvl, ok := config.ParseLevel(v)
		if !ok {
			return fmt.Errorf("--log-level %q: unknown level", v)
		}
		cfg.LogLevel = lvl
	}
	if fs.Changed("alt-screen") {
		cfg.AltScreen, _ = fs.GetBool("alt-screen")
	}
	return nil
}
