package termbox

import (
	"context"
	"fmt"
	"time"

	tb "github.com/nsf/termbox-go"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/registry"
)

// BackendName is the registry name of the termbox backend.
const BackendName = "termbox"

func init() {
	registry.Register(BackendName, func() registry.Backend { return Backend{} })
}

// Backend runs the game on a raw terminal.
type Backend struct{}

// Name returns the registry name.
func (Backend) Name() string { return BackendName }

// Title returns a human-readable description.
func (Backend) Title() string { return "termbox raw terminal (24-bit colour)" }

// Run blocks until the player quits or ctx is cancelled. Key events arrive
// from a polling goroutine; the game itself only runs on the select loop.
func (Backend) Run(ctx context.Context, cfg snake.Config, opts registry.RunOptions) error {
	logger := opts.Log()

	if err := tb.Init(); err != nil {
		return fmt.Errorf("termbox: init: %w", err)
	}
	defer tb.Close()
	tb.SetInputMode(tb.InputEsc)
	tb.SetOutputMode(tb.OutputRGB)

	screen := NewScreen(cfg)
	loop := core.NewFrameLoop()
	input := core.NewDispatcher()

	gameOpts := append([]snake.Option{snake.WithLogger(logger)}, opts.GameOptions...)
	game, err := snake.New(cfg, screen, input, screen, loop, gameOpts...)
	if err != nil {
		return err
	}
	if err := game.Init(ctx); err != nil {
		return err
	}
	defer func() {
		if err := game.Close(); err != nil {
			logger.Error("close failed", "err", err)
		}
	}()
	//nolint:errcheck // Best-effort first paint
	screen.Flush()

	events := make(chan tb.Event)
	done := make(chan struct{})
	go func() {
		for {
			ev := tb.PollEvent()
			if ev.Type == tb.EventInterrupt {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	defer close(done)
	// Unblocks PollEvent so the goroutine exits
	defer tb.Interrupt()

	ticker := time.NewTicker(time.Second / time.Duration(opts.FrameRate()))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev.Type {
			case tb.EventError:
				return fmt.Errorf("termbox: %w", ev.Err)
			case tb.EventResize:
				//nolint:errcheck // Best-effort repaint
				tb.Sync()
				continue
			case tb.EventKey:
			default:
				continue
			}

			switch action := MapKey(ev); action {
			case core.ActionQuit:
				logger.Info("quit requested", "score", game.Score())
				return nil
			case core.ActionReset:
				game.Reset()
			default:
				input.Dispatch(action)
			}
			if err := screen.Flush(); err != nil {
				return fmt.Errorf("termbox: flush: %w", err)
			}

		case now := <-ticker.C:
			if loop.Fire(now) == 0 {
				continue
			}
			if err := screen.Flush(); err != nil {
				return fmt.Errorf("termbox: flush: %w", err)
			}
		}
	}
}
