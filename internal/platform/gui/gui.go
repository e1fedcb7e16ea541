// Package gui hosts the snake game in a desktop window through ebiten.
// The window is only compiled with the 'ebiten' build tag; the default
// build registers a backend that reports ErrNotBuilt.
package gui

import (
	"context"
	"errors"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/registry"
)

// ErrNotBuilt is returned by Run in builds without the 'ebiten' tag.
var ErrNotBuilt = errors.New("gui: ebiten backend requires building with -tags ebiten")

// BackendName is the registry name of the window backend.
const BackendName = "ebiten"

func init() {
	registry.Register(BackendName, func() registry.Backend { return Backend{} })
}

// Backend runs the game in a window.
type Backend struct{}

// Name returns the registry name.
func (Backend) Name() string { return BackendName }

// Title returns a human-readable description.
func (Backend) Title() string {
	if !Available {
		return "ebiten window (not built; rebuild with -tags ebiten)"
	}
	return "ebiten window"
}

// Run blocks until the window closes or ctx is cancelled.
func (Backend) Run(ctx context.Context, cfg snake.Config, opts registry.RunOptions) error {
	return run(ctx, cfg, opts)
}

// parseColor converts a hex colour, falling back when it does not parse.
func parseColor(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}
