package tui

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"
)

// Run starts the screen and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, model Model, logger zerolog.Logger) error {
	// Size the first frame before bubbletea reports the window.
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		model.width = w
		model.height = h
	} else {
		logger.Debug().Err(err).Msg("terminal size unavailable")
	}

	program := tea.NewProgram(model)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle context cancellation
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	_, err := program.Run()

	// Signal cancellation and wait for goroutines
	cancel()
	wg.Wait()

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
