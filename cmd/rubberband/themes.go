package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/Gaurav-Gosain/rubberband/internal/theme"
)

func listThemes() error {
	if err := theme.Initialize("default"); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}
	for _, id := range theme.IDs() {
		fmt.Println(id)
	}
	return nil
}

func themeCompletions() []string {
	if err := theme.Initialize("default"); err != nil {
		return nil
	}
	return theme.IDs()
}

// previewThemeColors prints every color role of a theme with a swatch. When
// stdout cannot show color only the hex values are printed.
func previewThemeColors(name string) error {
	if err := theme.Initialize(name); err != nil {
		return err
	}

	profile := colorprofile.Detect(os.Stdout, os.Environ())
	swatches := profile > colorprofile.Ascii

	fmt.Printf("Theme: %s\n\n", name)
	w := colorprofile.NewWriter(os.Stdout, os.Environ())
	for _, nc := range theme.Palette() {
		hex := theme.ColorToString(nc.Color)
		line := fmt.Sprintf("  %-18s %s", nc.Name, hex)
		if swatches {
			swatch := lipgloss.NewStyle().Background(nc.Color).Render(strings.Repeat(" ", 6))
			line = fmt.Sprintf("  %s %-18s %s", swatch, nc.Name, hex)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
