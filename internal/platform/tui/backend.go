package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/registry"
)

// BackendName is the registry name of the Bubble Tea backend.
const BackendName = registry.DefaultBackend

func init() {
	registry.Register(BackendName, func() registry.Backend { return Backend{} })
}

// Backend runs the game as a full-screen Bubble Tea program.
type Backend struct{}

// Name returns the registry name.
func (Backend) Name() string { return BackendName }

// Title returns a human-readable description.
func (Backend) Title() string { return "Bubble Tea terminal (lipgloss colours)" }

// Run blocks until the player quits or ctx is cancelled.
func (Backend) Run(ctx context.Context, cfg snake.Config, opts registry.RunOptions) error {
	model, err := NewModel(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := model.Close(); err != nil {
			opts.Log().Error("close failed", "err", err)
		}
	}()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
