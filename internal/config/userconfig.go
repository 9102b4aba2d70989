package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/rubberband/internal/grid"
)

// configRelPath is the config file location relative to the XDG config home.
const configRelPath = "rubberband/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Selection  SelectionConfig  `toml:"selection"`
	Grid       GridConfig       `toml:"grid"`
	Log        LogConfig        `toml:"log"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme       string `toml:"theme"`        // Color theme name (e.g., dracula, nord, my-custom-theme)
	BorderStyle string `toml:"border_style"` // Border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block
	ASCIIOnly   bool   `toml:"ascii_only"`   // Use ASCII characters instead of Nerd Font icons
}

// SelectionConfig holds rubberband settings
type SelectionConfig struct {
	Button string `toml:"button"` // Pointer button that starts a drag: left, middle, right (default: left)
}

// GridConfig holds cell layout and content settings
type GridConfig struct {
	Columns    int    `toml:"columns"`     // Cells per row, 0 fits the terminal width
	CellWidth  int    `toml:"cell_width"`  // Cell width including border (min: 3)
	CellHeight int    `toml:"cell_height"` // Cell height including border (min: 1)
	Gap        int    `toml:"gap"`         // Space between cells
	Source     string `toml:"source"`      // Item source: demo, processes (default: demo)
	Count      int    `toml:"count"`       // Number of items to load (default: 48)
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"` // Log level: off, debug, info, warn, error (default: off)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:       "",
			BorderStyle: "rounded",
			ASCIIOnly:   false,
		},
		Selection: SelectionConfig{
			Button: ButtonLeft,
		},
		Grid: GridConfig{
			Columns:    0,
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
			Gap:        DefaultGap,
			Source:     grid.SourceDemo,
			Count:      DefaultCount,
		},
		Log: LogConfig{
			Level: "off",
		},
	}
}

// Layout converts the grid settings into a grid.Layout.
func (c *UserConfig) Layout() grid.Layout {
	l := grid.DefaultLayout()
	l.Columns = c.Grid.Columns
	l.CellWidth = c.Grid.CellWidth
	l.CellHeight = c.Grid.CellHeight
	l.Gap = c.Grid.Gap
	return l
}

// LoadUserConfig loads the user configuration from the XDG config directory,
// writing a commented default file on first run. Validation warnings are
// returned so the caller can log them once logging is set up.
func LoadUserConfig() (*UserConfig, []ValidationError, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		path, err := xdg.ConfigFile(configRelPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get config path: %w", err)
		}
		cfg, err := writeDefaultConfig(path)
		return cfg, nil, err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads, fills and validates the config at path.
func LoadConfigFile(path string) (*UserConfig, []ValidationError, error) {
	// #nosec G304 - path comes from the XDG search or the caller, reading user config is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingSelection(&cfg, defaultCfg)
	fillMissingGrid(&cfg, defaultCfg)
	fillMissingLog(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, err := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", err.Field, err.Key, err.Message)
		}
		return nil, nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}

	return &cfg, validation.Warnings, nil
}

// ResetConfig overwrites the config file with the defaults.
func ResetConfig() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := writeDefaultConfig(path); err != nil {
		return "", err
	}
	return path, nil
}

// writeDefaultConfig creates a default config file at configPath
func writeDefaultConfig(configPath string) (*UserConfig, error) {
	cfg := DefaultConfig()

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# rubberband Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# Reset with: rubberband config reset\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   Custom themes: ~/.config/rubberband/themes/*.json\n")
	sb.WriteString("#\n")
	sb.WriteString("# border_style: Cell and container border style\n")
	sb.WriteString("#   Options: " + strings.Join(BorderStyles, ", ") + "\n")
	sb.WriteString("#   Default: rounded\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# SELECTION\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# button: Pointer button that starts a drag\n")
	sb.WriteString("#   Options: " + strings.Join(Buttons, ", ") + "\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# GRID\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# columns: Cells per row, 0 fits as many as the terminal allows\n")
	sb.WriteString("# source: Where cell labels come from\n")
	sb.WriteString("#   Options: " + strings.Join(grid.Sources, ", ") + "\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# LOG\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# level: " + strings.Join(LogLevels, ", ") + "\n")
	sb.WriteString("#   Logs go to ~/.local/state/rubberband/rubberband.log\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
}

func fillMissingSelection(cfg, defaultCfg *UserConfig) {
	if cfg.Selection.Button == "" {
		cfg.Selection.Button = defaultCfg.Selection.Button
	}
}

// fillMissingGrid fills unset grid settings. Columns and Gap keep their zero
// value since zero is meaningful for both.
func fillMissingGrid(cfg, defaultCfg *UserConfig) {
	if cfg.Grid.CellWidth == 0 {
		cfg.Grid.CellWidth = defaultCfg.Grid.CellWidth
	}
	if cfg.Grid.CellHeight == 0 {
		cfg.Grid.CellHeight = defaultCfg.Grid.CellHeight
	}
	if cfg.Grid.Source == "" {
		cfg.Grid.Source = defaultCfg.Grid.Source
	}
	if cfg.Grid.Count == 0 {
		cfg.Grid.Count = defaultCfg.Grid.Count
	}
}

func fillMissingLog(cfg, defaultCfg *UserConfig) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultCfg.Log.Level
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
