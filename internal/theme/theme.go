// Package theme provides the colors used to draw the grid, the rubberband
// overlay and the status bar.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and standard terminal colors are used.
// An unknown name falls back to the default theme and returns an error.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if themesDir, err := GetThemesDir(); err == nil {
		loaded, err := LoadCustomThemes(themesDir)
		if err != nil {
			log.Warn("error loading custom themes", "dir", themesDir, "err", err)
		} else if len(loaded) > 0 {
			log.Debug("loaded custom themes", "ids", loaded)
		}
	}

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q", themeName)
	}
	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// IDs returns every registered theme ID, including custom themes.
func IDs() []string {
	if err := Initialize("default"); err != nil {
		return nil
	}
	return tint.TintIDs()
}

// ContainerBorder returns the border color of the grid container.
func ContainerBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("8")
	}
	return t.BrightBlack
}

// ContainerBorderActive returns the container border color while a drag runs.
func ContainerBorderActive() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// CellBorder returns the border color of unselected cells.
func CellBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("7")
	}
	return t.White
}

// CellFg returns the label color of unselected cells.
func CellFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// CellSelected returns border and label colors for selected cells.
func CellSelected() (border color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AAFFAA"), lipgloss.Color("#00ff00")
	}
	return t.BrightGreen, t.Green
}

// CellDetail returns the color for the secondary text of a cell.
func CellDetail() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("8")
	}
	return t.BrightBlack
}

// Overlay returns the rubberband rectangle's border color.
func Overlay() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// StatusBar returns background and foreground colors for the status bar.
func StatusBar() (bg color.Color, fg color.Color) {
	return lipgloss.Color("#2a2a3e"), lipgloss.Color("#a0a0a8")
}

// StatusAccent returns the color for the selected count in the status bar.
func StatusAccent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// StatusDragging returns the color for the drag indicator in the status bar.
func StatusDragging() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.Yellow
}

// HelpBorder returns the border color for the help overlay.
func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// HelpKey returns the color for key names in the help overlay.
func HelpKey() color.Color {
	return lipgloss.Color("11")
}

// HelpText returns the color for descriptions in the help overlay.
func HelpText() color.Color {
	return lipgloss.Color("7")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Palette returns the named colors of the active theme in display order.
// It is used by the themes preview command.
func Palette() []NamedColor {
	selBorder, selFg := CellSelected()
	statusBg, statusFg := StatusBar()
	return []NamedColor{
		{Name: "container", Color: ContainerBorder()},
		{Name: "container (drag)", Color: ContainerBorderActive()},
		{Name: "cell border", Color: CellBorder()},
		{Name: "cell text", Color: CellFg()},
		{Name: "selected border", Color: selBorder},
		{Name: "selected text", Color: selFg},
		{Name: "overlay", Color: Overlay()},
		{Name: "status bg", Color: statusBg},
		{Name: "status fg", Color: statusFg},
		{Name: "status count", Color: StatusAccent()},
	}
}

// NamedColor pairs a role with its color.
type NamedColor struct {
	Name  string
	Color color.Color
}
