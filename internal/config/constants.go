// Package config provides layout constants, runtime appearance settings and
// the user configuration file.
package config

import (
	"charm.land/lipgloss/v2"
)

// =============================================================================
// Grid Defaults
// =============================================================================

const (
	// DefaultCellWidth is the width of a cell including its border
	DefaultCellWidth = 16

	// DefaultCellHeight is the height of a cell including its border
	DefaultCellHeight = 3

	// DefaultGap is the space between neighbouring cells
	DefaultGap = 1

	// DefaultCount is the number of items loaded from a source
	DefaultCount = 48

	// MinCellWidth is the narrowest cell that still fits a border and a glyph
	MinCellWidth = 3

	// MaxCount caps how many items a source may produce
	MaxCount = 10000
)

// =============================================================================
// FPS and Layout
// =============================================================================

const (
	// NormalFPS is the refresh rate of the program
	NormalFPS = 60

	// StatusBarHeight is the height of the status line at the bottom
	StatusBarHeight = 1

	// HelpWidth is the width of the help overlay
	HelpWidth = 44
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexBase is the z-index for the blank layer that sizes the canvas
	ZIndexBase = -1

	// ZIndexContainer is the z-index for the grid container border
	ZIndexContainer = 0

	// ZIndexCells is the z-index for cells
	ZIndexCells = 1

	// ZIndexOverlay is the z-index for the rubberband rectangle
	ZIndexOverlay = 500

	// ZIndexStatus is the z-index for the status bar
	ZIndexStatus = 1000

	// ZIndexHelp is the z-index for the help overlay
	ZIndexHelp = 1001
)

// =============================================================================
// Status Icons
// =============================================================================

const (
	// SelectedIcon marks selected cells (Nerd Font: nf-fa-check)
	SelectedIcon = string(rune(0xf00c))

	// DraggingIcon is shown in the status bar during a drag (Nerd Font: nf-md-selection_drag)
	DraggingIcon = string(rune(0xf0a6c))

	// StatusSeparator is the separator between status bar sections
	StatusSeparator = "  "

	// SelectedIconASCII is the ASCII fallback for SelectedIcon
	SelectedIconASCII = "*"

	// DraggingIconASCII is the ASCII fallback for DraggingIcon
	DraggingIconASCII = "[]"

	// StatusSeparatorASCII is the ASCII fallback separator
	StatusSeparatorASCII = " | "
)

// Pointer buttons accepted in [selection] button.
const (
	ButtonLeft   = "left"
	ButtonMiddle = "middle"
	ButtonRight  = "right"
)

// Buttons lists the valid pointer button names.
var Buttons = []string{ButtonLeft, ButtonMiddle, ButtonRight}

// BorderStyles lists the valid border style names.
var BorderStyles = []string{
	"rounded", "normal", "thick", "double", "hidden", "block", "ascii",
	"outer-half-block", "inner-half-block",
}

// LogLevels lists the valid [log] level values.
var LogLevels = []string{"off", "debug", "info", "warn", "error"}

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use ASCII fallback characters instead of Nerd Fonts
// Set via --ascii-only or [appearance] ascii_only
var UseASCIIOnly = false

// BorderStyle is the border drawn around cells and the container
var BorderStyle = "rounded"

// GetSelectedIcon returns the marker drawn in selected cells
func GetSelectedIcon() string {
	if UseASCIIOnly {
		return SelectedIconASCII
	}
	return SelectedIcon
}

// GetDraggingIcon returns the status bar drag indicator
func GetDraggingIcon() string {
	if UseASCIIOnly {
		return DraggingIconASCII
	}
	return DraggingIcon
}

// GetStatusSeparator returns the status bar separator
func GetStatusSeparator() string {
	if UseASCIIOnly {
		return StatusSeparatorASCII
	}
	return StatusSeparator
}

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "outer-half-block":
		return lipgloss.OuterHalfBlockBorder()
	case "inner-half-block":
		return lipgloss.InnerHalfBlockBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}
