package snake

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vovakirdan/snake/internal/core"
)

// callLog records collaborator calls in order across fakes.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) reset() {
	l.calls = nil
}

type fakeRenderer struct {
	log       *callLog
	initErr   error
	inits     int
	destroyed int
	segments  []core.Position
	food      core.Position
	frames    int
}

func (r *fakeRenderer) Initialize(context.Context) error {
	r.inits++
	r.log.add("init")
	return r.initErr
}

func (r *fakeRenderer) Clear() {
	r.frames++
	r.log.add("clear")
}

func (r *fakeRenderer) DrawSnake(segments []core.Position) {
	r.segments = segments
	r.log.add("snake %v", segments)
}

func (r *fakeRenderer) DrawFood(p core.Position) {
	r.food = p
	r.log.add("food")
}

func (r *fakeRenderer) Destroy() error {
	r.destroyed++
	r.log.add("destroy")
	return nil
}

type fakeUI struct {
	log       *callLog
	scores    []int
	buttons   []bool
	gameOvers []int
	resets    int
}

func (u *fakeUI) UpdateScore(score int) {
	u.scores = append(u.scores, score)
	u.log.add("score %d", score)
}

func (u *fakeUI) UpdateStartButton(playing bool) {
	u.buttons = append(u.buttons, playing)
	u.log.add("button %v", playing)
}

func (u *fakeUI) ShowGameOver(score int) {
	u.gameOvers = append(u.gameOvers, score)
	u.log.add("gameover %d", score)
}

func (u *fakeUI) Reset() {
	u.resets++
	u.log.add("ui-reset")
}

// reset forgets every recorded call.
func (u *fakeUI) reset() {
	u.scores = nil
	u.buttons = nil
	u.gameOvers = nil
	u.resets = 0
}

type harness struct {
	game     *Game
	renderer *fakeRenderer
	ui       *fakeUI
	input    *core.Dispatcher
	loop     *core.FrameLoop
	log      *callLog
	now      time.Time
}

func newHarness(t *testing.T, cfg Config, opts ...Option) *harness {
	t.Helper()

	log := &callLog{}
	h := &harness{
		renderer: &fakeRenderer{log: log},
		ui:       &fakeUI{log: log},
		input:    core.NewDispatcher(),
		loop:     core.NewFrameLoop(),
		log:      log,
		now:      time.Unix(1700000000, 0),
	}

	opts = append([]Option{WithSeed(42)}, opts...)
	g, err := New(cfg, h.renderer, h.input, h.ui, h.loop, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := g.Init(context.Background()); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	h.game = g
	log.reset()
	h.ui.reset()
	return h
}

// frame advances the fake clock by d and fires one display frame.
func (h *harness) frame(d time.Duration) {
	h.now = h.now.Add(d)
	h.loop.Fire(h.now)
}

// place puts the snake and food in a known layout.
func (h *harness) place(segments []core.Position, dir core.Direction, food core.Position) {
	h.game.snake.segments = append([]core.Position(nil), segments...)
	h.game.snake.dir = dir
	h.game.food.pos = food
}
