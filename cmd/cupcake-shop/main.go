// Command cupcake-shop runs the interactive storefront in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lucas178/cupcake-shop/internal/app"
	"github.com/lucas178/cupcake-shop/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cupcake-shop:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	lg, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, lg)
	if err != nil {
		return err
	}

	lg.Info("storefront starting", zap.String("log_file", cfg.LogFile))
	p := tea.NewProgram(tui.New(a), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		lg.Error("ui error", zap.Error(err))
		return err
	}
	lg.Info("storefront closed")
	return nil
}

// newLogger builds a zap logger writing to the given file. The terminal
// itself belongs to the UI.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
