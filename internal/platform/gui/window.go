//go:build ebiten

package gui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/registry"
)

// Available reports whether the window backend was compiled in.
const Available = true

var background = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeySpace, core.ActionToggle},
	{ebiten.KeyR, core.ActionReset},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// window adapts the game to the ebiten.Game interface. It is also the
// game's renderer and UI: draw calls record what Draw paints next.
type window struct {
	ctx   context.Context
	cfg   snake.Config
	game  *snake.Game
	loop  *core.FrameLoop
	input *core.Dispatcher

	snakeColor color.Color
	foodColor  color.Color

	segments []core.Position
	food     core.Position

	score    int
	playing  bool
	gameOver bool
	final    int
	quit     bool
}

func run(ctx context.Context, cfg snake.Config, opts registry.RunOptions) error {
	logger := opts.Log()
	w := &window{
		ctx:        ctx,
		cfg:        cfg,
		loop:       core.NewFrameLoop(),
		input:      core.NewDispatcher(),
		snakeColor: parseColor(cfg.SnakeColor, color.RGBA{G: 0xc0, A: 0xff}),
		foodColor:  parseColor(cfg.FoodColor, color.RGBA{R: 0xff, A: 0xff}),
	}

	gameOpts := append([]snake.Option{snake.WithLogger(logger)}, opts.GameOptions...)
	game, err := snake.New(cfg, w, w.input, w, w.loop, gameOpts...)
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
	w.game = game

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(opts.FrameRate())

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

// Update reads the keyboard and fires one display frame.
func (w *window) Update() error {
	if w.quit || w.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, ka := range keyActions {
		if !inpututil.IsKeyJustPressed(ka.key) {
			continue
		}
		switch ka.action {
		case core.ActionQuit:
			w.quit = true
			return ebiten.Termination
		case core.ActionReset:
			w.game.Reset()
		default:
			w.input.Dispatch(ka.action)
		}
	}

	w.loop.Fire(time.Now())
	return nil
}

// Draw paints the last rendered board and the score line.
func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	size := float32(w.cfg.CellSize)
	for _, p := range w.segments {
		vector.DrawFilledRect(screen, float32(p.X)*size, float32(p.Y)*size, size-1, size-1, w.snakeColor, false)
	}
	vector.DrawFilledRect(screen, float32(w.food.X)*size, float32(w.food.Y)*size, size-1, size-1, w.foodColor, false)

	ebitenutil.DebugPrint(screen, w.status())
}

// Layout returns the logical screen size.
func (w *window) Layout(int, int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

func (w *window) status() string {
	if w.gameOver {
		return fmt.Sprintf("GAME OVER  Score: %d\n[space] new game  [q] quit", w.final)
	}
	label := "start"
	if w.playing {
		label = "pause"
	}
	return fmt.Sprintf("Score: %d\n[space] %s  [r] reset", w.score, label)
}

func (w *window) Initialize(ctx context.Context) error { return ctx.Err() }
func (w *window) Clear()                               { w.segments = nil }
func (w *window) DrawSnake(segments []core.Position)   { w.segments = segments }
func (w *window) DrawFood(p core.Position)             { w.food = p }
func (w *window) Destroy() error                       { return nil }

func (w *window) UpdateScore(score int) { w.score = score }
func (w *window) Reset()                { w.score = 0 }

func (w *window) UpdateStartButton(playing bool) {
	w.playing = playing
	if playing {
		w.gameOver = false
	}
}

func (w *window) ShowGameOver(score int) {
	w.gameOver = true
	w.final = score
	w.playing = false
}
