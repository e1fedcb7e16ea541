//go:build !ebiten

package gui

import (
	"context"

	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/registry"
)

// Available reports whether the window backend was compiled in.
const Available = false

func run(context.Context, snake.Config, registry.RunOptions) error {
	return ErrNotBuilt
}
