package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/calcterm/internal/logger"
	"github.com/alexisbeaulieu97/calcterm/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// stdoutIsTerminal is swapped in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	if !stdoutIsTerminal() {
		return newCommandError("launch calculator", "interactive mode needs a terminal", errNotTerminal, "Use 'calcterm eval' to drive the calculator from scripts.")
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The TUI owns the screen, so logs go to a file.
	logPath := cfg.LogFile()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return newCommandError("launch calculator", "creating log directory", err, "Check permissions on the data directory.")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newCommandError("launch calculator", "opening log file "+logPath, err, "Set log.file in the configuration to a writable path.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Writer: logFile, Component: "calcterm"})
	if err != nil {
		_ = logFile.Close()
		return fmt.Errorf("create logger: %w", err)
	}

	app, err := newAppContext(cfg, log)
	if err != nil {
		_ = logFile.Close()
		return err
	}
	app.AddCloser(logFile)
	defer app.Close()

	log.Info("launching calculator", "storage", cfg.Storage, "locale", cfg.Locale)

	p := tea.NewProgram(tui.NewModel(app.NewSession()), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "calculator execution failed")
		return fmt.Errorf("failed to run calculator: %w", err)
	}

	log.Info("calculator closed")
	return nil
}
