package config

import (
	"fmt"

	"github.com/Gaurav-Gosain/rubberband/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Nerd Font icons
	ASCIIOnly bool

	// BorderStyle overrides the cell border style
	BorderStyle string

	// ThemeName is the theme to load
	ThemeName string

	// Button overrides the pointer button that starts a drag
	Button string

	// Source overrides the item source
	Source string

	// Count overrides the number of items (0 means use config)
	Count int

	// Columns overrides the column count (nil means use config, 0 is auto)
	Columns *int

	// Debug forces the log level to debug
	Debug bool
}

// ApplyOverrides merges CLI flag overrides into a copy of userConfig and
// applies the appearance settings to the package globals and the theme
// registry. A nil userConfig starts from DefaultConfig. Theme load failures
// are returned as warnings; the program still runs with standard colors.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) (*UserConfig, []ValidationError) {
	cfg := DefaultConfig()
	if userConfig != nil {
		merged := *userConfig
		cfg = &merged
	}
	var warnings []ValidationError

	// ASCII Only - OR of CLI flag and user config
	UseASCIIOnly = overrides.ASCIIOnly || cfg.Appearance.ASCIIOnly
	cfg.Appearance.ASCIIOnly = UseASCIIOnly

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		cfg.Appearance.BorderStyle = overrides.BorderStyle
	}
	if cfg.Appearance.BorderStyle != "" {
		BorderStyle = cfg.Appearance.BorderStyle
	}

	if overrides.Button != "" {
		cfg.Selection.Button = overrides.Button
	}
	if overrides.Source != "" {
		cfg.Grid.Source = overrides.Source
	}
	if overrides.Count > 0 {
		cfg.Grid.Count = min(overrides.Count, MaxCount)
	}
	if overrides.Columns != nil {
		cfg.Grid.Columns = *overrides.Columns
	}
	if overrides.Debug {
		cfg.Log.Level = "debug"
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	if overrides.ThemeName != "" {
		cfg.Appearance.Theme = overrides.ThemeName
	}
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		warnings = append(warnings, ValidationError{
			Field:   "appearance",
			Key:     "theme",
			Message: fmt.Sprintf("failed to load theme %q: %v", cfg.Appearance.Theme, err),
		})
	}

	return cfg, warnings
}
