package snake

import (
	"context"

	"github.com/vovakirdan/snake/internal/core"
)

// Renderer draws the board. Backends (terminal, termbox, ebiten) implement it;
// the Game never branches on which one is active.
type Renderer interface {
	// Initialize prepares the backend. The Game waits for it before the first
	// render; an error aborts setup.
	Initialize(ctx context.Context) error
	Clear()
	DrawSnake(segments []core.Position)
	DrawFood(p core.Position)
	Destroy() error
}

// InputSource delivers already-translated input. Each registration returns a
// func that removes the handler.
type InputSource interface {
	OnDirectionChange(fn func(core.Direction)) (unsubscribe func())
	OnGameToggle(fn func()) (unsubscribe func())
}

// UI shows score and play state next to the board.
type UI interface {
	UpdateScore(score int)
	UpdateStartButton(playing bool)
	ShowGameOver(score int)
	Reset()
}

// Scheduler runs callbacks on display frames, like requestAnimationFrame.
// *core.FrameLoop implements it.
type Scheduler interface {
	RequestFrame(fn core.FrameFunc) core.FrameID
	CancelFrame(id core.FrameID)
}
