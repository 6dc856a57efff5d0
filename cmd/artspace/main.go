package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/artspace/artspace/internal/app"
	"github.com/artspace/artspace/internal/config"
	"github.com/artspace/artspace/internal/gallery"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg.DebugLogFile())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	catalog, err := cfg.BuildCatalog()
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	nav := gallery.NewNavigator(catalog)
	nav.Seek(cfg.StartIndex)

	// Run the TUI
	p := tea.NewProgram(
		app.New(nav, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

// newLogger writes debug logs to path via tea.LogToFile, or discards them
// when path is empty. The TUI owns stdout, so logs never go there.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := tea.LogToFile(path, "artspace")
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, func() { _ = f.Close() }, nil
}
