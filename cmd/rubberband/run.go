package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/rubberband/internal/app"
	"github.com/Gaurav-Gosain/rubberband/internal/config"
	"github.com/Gaurav-Gosain/rubberband/internal/grid"
	"github.com/Gaurav-Gosain/rubberband/internal/input"
	"github.com/Gaurav-Gosain/rubberband/internal/logging"
	"github.com/Gaurav-Gosain/rubberband/internal/selection"
)

var errNotTerminal = errors.New("rubberband needs an interactive terminal")

func runLocal(ctx context.Context, columnsSet bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	userConfig, warnings, err := config.LoadUserConfig()
	if err != nil {
		return err
	}

	level := userConfig.Log.Level
	if debugMode {
		level = "debug"
	}
	logger, closer, err := logging.New(level)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	for _, w := range warnings {
		logger.Warn("config", "field", w.Field, "key", w.Key, "msg", w.Message)
	}

	overrides := config.Overrides{
		ASCIIOnly:   asciiOnly,
		BorderStyle: borderStyle,
		ThemeName:   themeName,
		Button:      button,
		Source:      source,
		Count:       count,
		Debug:       debugMode,
	}
	if columnsSet {
		overrides.Columns = &columns
	}
	cfg, themeWarnings := config.ApplyOverrides(overrides, userConfig)
	for _, w := range themeWarnings {
		logger.Warn("theme", "msg", w.Message)
	}

	// Flags bypass the file validation, so check the merged result again.
	if result := config.ValidateConfig(cfg); result.HasErrors() {
		return fmt.Errorf("invalid option: %w", result.Errors[0])
	}

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logPath, _ := logging.Path()
		logger.Debug("starting", "version", version, "config", configPath, "log", logPath)
	}

	items, err := grid.LoadItems(ctx, cfg.Grid.Source, cfg.Grid.Count)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}
	logger.Info("items loaded", "source", cfg.Grid.Source, "count", len(items))

	app.SetInputHandler(input.HandleInput)

	model, err := app.New(app.Options{
		Layout: cfg.Layout(),
		Items:  items,
		Button: input.ParseButton(cfg.Selection.Button),
		Source: cfg.Grid.Source,
		Count:  cfg.Grid.Count,
		Logger: logger,
		OnSelect: func(s selection.Selection) {
			logger.Debug("selection", "count", s.Len())
		},
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(input.FilterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	final, ok := finalModel.(*app.Model)
	if !ok {
		return nil
	}
	final.Controller.Close()
	selected := final.SelectedCells()
	logger.Info("exiting", "selected", len(selected))

	if printOnExit {
		for _, c := range selected {
			fmt.Println(c.Text)
		}
	}
	return nil
}

