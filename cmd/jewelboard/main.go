// Package main provides the entry point for the jewelboard terminal
// dashboard.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/rterry/jewelboard/internal/app"
	"github.com/rterry/jewelboard/internal/model"
	"github.com/rterry/jewelboard/internal/store"
	"github.com/rterry/jewelboard/internal/theme"
)

func main() {
	// Load .env file if it exists.
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("JEWELBOARD_CONFIG")
	if configPath == "" {
		configPath = model.DefaultConfigPath()
	}

	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// First run: persist the resolved defaults so the user has a file
	// to edit.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := model.SaveConfig(configPath, cfg); err != nil {
			return fmt.Errorf("writing initial config: %w", err)
		}
	}

	theme.Use(cfg.Theme)

	customStore, err := store.Open(cfg.CustomFile(), cfg.Variant, model.CategoryCustom)
	if err != nil {
		return fmt.Errorf("opening custom jobs: %w", err)
	}

	repairStore, err := store.Open(cfg.RepairFile(), cfg.Variant, model.CategoryRepair)
	if err != nil {
		return fmt.Errorf("opening repair jobs: %w", err)
	}

	history, err := store.OpenHistory(cfg.HistoryFile())
	if err != nil {
		return fmt.Errorf("opening history journal: %w", err)
	}
	defer history.Close()

	p := tea.NewProgram(
		app.New(cfg, customStore, repairStore, history),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
