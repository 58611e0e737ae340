package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/purser-dev/purser/internal/engine"
	"github.com/purser-dev/purser/internal/wallet"
)

// Run starts the interactive chat session and blocks until the user quits.
func Run(ctx context.Context, eng *engine.Engine, store *wallet.Store) error {
	if eng == nil {
		return fmt.Errorf("engine is required")
	}
	if store == nil {
		return fmt.Errorf("wallet store is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	program := tea.NewProgram(
		newModel(ctx, eng, store),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
