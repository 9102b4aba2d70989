package config

import (
	"testing"

	"github.com/adrg/xdg"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(func() {
		UseASCIIOnly = false
		BorderStyle = "rounded"
		xdg.Reload()
	})
}

func TestApplyOverridesPrecedence(t *testing.T) {
	resetGlobals(t)

	user := DefaultConfig()
	user.Appearance.BorderStyle = "double"
	user.Grid.Columns = 6
	user.Grid.Source = "processes"
	user.Grid.Count = 20

	cols := 0
	cfg, warnings := ApplyOverrides(Overrides{
		BorderStyle: "thick",
		Button:      ButtonRight,
		Count:       MaxCount * 2,
		Columns:     &cols,
		Debug:       true,
	}, user)

	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if BorderStyle != "thick" || cfg.Appearance.BorderStyle != "thick" {
		t.Errorf("border style flag ignored: global=%s cfg=%s", BorderStyle, cfg.Appearance.BorderStyle)
	}
	if cfg.Selection.Button != ButtonRight {
		t.Errorf("Button = %s", cfg.Selection.Button)
	}
	if cfg.Grid.Count != MaxCount {
		t.Errorf("Count = %d, want clamp to %d", cfg.Grid.Count, MaxCount)
	}
	if cfg.Grid.Columns != 0 {
		t.Errorf("explicit --columns 0 should select auto, got %d", cfg.Grid.Columns)
	}
	if cfg.Grid.Source != "processes" {
		t.Errorf("unset flag overwrote Source: %s", cfg.Grid.Source)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %s", cfg.Log.Level)
	}

	if user.Appearance.BorderStyle != "double" || user.Grid.Columns != 6 {
		t.Error("ApplyOverrides mutated the caller's config")
	}
}

func TestApplyOverridesZeroValueKeepsConfig(t *testing.T) {
	resetGlobals(t)

	user := DefaultConfig()
	user.Appearance.ASCIIOnly = true
	user.Grid.Columns = 3

	cfg, _ := ApplyOverrides(Overrides{}, user)
	if !UseASCIIOnly {
		t.Error("ascii_only from config not applied")
	}
	if cfg.Grid.Columns != 3 {
		t.Errorf("Columns = %d, want 3", cfg.Grid.Columns)
	}
	if GetSelectedIcon() != SelectedIconASCII {
		t.Error("ASCII icon expected")
	}
}

func TestApplyOverridesNilConfig(t *testing.T) {
	resetGlobals(t)

	cfg, _ := ApplyOverrides(Overrides{ASCIIOnly: true}, nil)
	if cfg == nil {
		t.Fatal("nil config should fall back to defaults")
	}
	if cfg.Grid.CellWidth != DefaultCellWidth {
		t.Errorf("CellWidth = %d", cfg.Grid.CellWidth)
	}
	if !UseASCIIOnly || !cfg.Appearance.ASCIIOnly {
		t.Error("ascii flag not applied")
	}
}

func TestApplyOverridesUnknownThemeWarns(t *testing.T) {
	resetGlobals(t)

	_, warnings := ApplyOverrides(Overrides{ThemeName: "definitely-not-a-theme"}, nil)
	if len(warnings) != 1 || warnings[0].Key != "theme" {
		t.Errorf("warnings = %v, want one theme warning", warnings)
	}
}

func TestGetBorderForStyle(t *testing.T) {
	resetGlobals(t)

	BorderStyle = "double"
	if got := GetBorderForStyle().TopLeft; got != "╔" {
		t.Errorf("double TopLeft = %q", got)
	}
	UseASCIIOnly = true
	if got := GetBorderForStyle().TopLeft; got != "+" {
		t.Errorf("ascii TopLeft = %q", got)
	}
}
