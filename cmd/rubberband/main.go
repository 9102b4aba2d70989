// Package main implements rubberband, a terminal grid where cells are
// selected by dragging a rectangle across them with the mouse.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode   bool
	asciiOnly   bool
	themeName   string
	borderStyle string
	source      string
	count       int
	columns     int
	button      string
	printOnExit bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rubberband",
		Short: "Drag-to-select cells in the terminal",
		Long: `rubberband - drag-to-select cells in the terminal

Lays items out as a grid of cells. Press the mouse on empty space inside the
grid and drag to draw a rectangle; every cell the rectangle touches is
selected. Pressing on a cell does not start a drag.`,
		Example: `  # Run with numbered demo cells
  rubberband

  # One cell per running process
  rubberband --source processes

  # Fixed four columns, drag with the right button
  rubberband --columns 4 --button right

  # Print the selected items after quitting
  rubberband --print

  # Run with a specific theme and debug logging
  rubberband --theme dracula --debug

  # Edit configuration
  rubberband config edit`,
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocal(cmd.Context(), cmd.Flags().Changed("columns"))
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Unicode icons")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Cell border style: rounded, normal, thick, double, hidden, block, ascii (default: from config or rounded)")
	rootCmd.Flags().StringVar(&source, "source", "", "Item source: demo, processes (default: from config or demo)")
	rootCmd.Flags().IntVar(&count, "count", 0, "Number of items to load (default: from config or 48)")
	rootCmd.Flags().IntVar(&columns, "columns", 0, "Cells per row, 0 fits the terminal width (default: from config or 0)")
	rootCmd.Flags().StringVar(&button, "button", "", "Mouse button that starts a drag: left, middle, right (default: from config or left)")
	rootCmd.Flags().BoolVar(&printOnExit, "print", false, "Print the selected items to stdout on exit")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rubberband configuration",
		Long:  `Manage the rubberband configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the rubberband configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the rubberband configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi and nano in that order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return editConfigFile(cmd.Context())
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the rubberband configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List and preview color themes",
	}

	themesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all available themes",
		Example: `  # Interactively select a theme with fzf and preview
  rubberband --theme $(rubberband themes list | fzf --preview 'rubberband themes preview {}')`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listThemes()
		},
	}

	themesPreviewCmd := &cobra.Command{
		Use:   "preview <name>",
		Short: "Preview the colors a theme assigns",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return previewThemeColors(args[0])
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return themeCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
	}

	themesCmd.AddCommand(themesListCmd, themesPreviewCmd)

	_ = rootCmd.RegisterFlagCompletionFunc("theme", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return themeCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("source", cobra.FixedCompletions([]string{"demo", "processes"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("button", cobra.FixedCompletions([]string{"left", "middle", "right"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(configCmd, themesCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
