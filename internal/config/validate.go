package config

import (
	"fmt"
	"slices"

	"github.com/Gaurav-Gosain/rubberband/internal/grid"
)

// ValidationError describes one problem in the config file.
type ValidationError struct {
	Field   string // Section name, e.g. "grid"
	Key     string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Field, e.Key, e.Message)
}

// ValidationResult collects errors (fatal) and warnings (logged).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors reports whether any fatal problem was found.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether any non-fatal problem was found.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *ValidationResult) addError(field, key, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidateConfig checks cfg after defaults were filled in.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	r := &ValidationResult{}

	if !slices.Contains(BorderStyles, cfg.Appearance.BorderStyle) {
		r.addError("appearance", "border_style", "unknown style %q, expected one of %v", cfg.Appearance.BorderStyle, BorderStyles)
	}

	if !slices.Contains(Buttons, cfg.Selection.Button) {
		r.addError("selection", "button", "unknown button %q, expected one of %v", cfg.Selection.Button, Buttons)
	}

	g := cfg.Grid
	if g.Columns < 0 {
		r.addError("grid", "columns", "must be 0 (auto) or positive, got %d", g.Columns)
	}
	if g.CellWidth < MinCellWidth {
		r.addError("grid", "cell_width", "must be at least %d, got %d", MinCellWidth, g.CellWidth)
	}
	if g.CellHeight < 1 {
		r.addError("grid", "cell_height", "must be at least 1, got %d", g.CellHeight)
	} else if g.CellHeight < 3 {
		r.addWarning("grid", "cell_height", "cells shorter than 3 rows are drawn without a border")
	}
	if g.Gap < 0 {
		r.addError("grid", "gap", "must not be negative, got %d", g.Gap)
	}
	if !slices.Contains(grid.Sources, g.Source) {
		r.addError("grid", "source", "unknown source %q, expected one of %v", g.Source, grid.Sources)
	}
	if g.Count < 0 {
		r.addError("grid", "count", "must not be negative, got %d", g.Count)
	} else if g.Count > MaxCount {
		r.addWarning("grid", "count", "%d items requested, only %d will be loaded", g.Count, MaxCount)
	}

	if !slices.Contains(LogLevels, cfg.Log.Level) {
		r.addError("log", "level", "unknown level %q, expected one of %v", cfg.Log.Level, LogLevels)
	}

	return r
}
