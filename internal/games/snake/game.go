// Package snake implements the grid snake game-state machine: the snake and
// food entities, the fixed-interval tick, and the collision rules that end a
// round. Drawing, input capture and score display are injected collaborators.
package snake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake/internal/core"
)

// RunState says whether ticks are being scheduled.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
)

func (s RunState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Game owns the snake, the food, the score and the run state, and drives
// them from display frames. All methods must be called from the goroutine
// that fires the scheduler; Game does no locking.
type Game struct {
	cfg   Config
	snake *Snake
	food  *Food
	score int
	state RunState

	renderer Renderer
	input    InputSource
	ui       UI
	sched    Scheduler

	frameID       core.FrameID
	gate          *core.IntervalGate
	collides      CollisionRule
	blockReversal bool
	unsubscribe   []func()
	initialized   bool

	logger *log.Logger
	rng    *rand.Rand

	// Round bookkeeping
	round     int
	roundID   string
	ticks     uint64
	lastCause Cause
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed seeds food placement for reproducible games.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithCollisionRule replaces the self-collision predicate chosen by the config.
func WithCollisionRule(rule CollisionRule) Option {
	return func(g *Game) {
		if rule != nil {
			g.collides = rule
		}
	}
}

// WithReversalGuard overrides Config.BlockReversal.
func WithReversalGuard(on bool) Option {
	return func(g *Game) {
		g.blockReversal = on
	}
}

// New validates cfg and builds an idle game. Call Init before starting it.
func New(cfg Config, renderer Renderer, input InputSource, ui UI, sched Scheduler, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil || input == nil || ui == nil || sched == nil {
		return nil, errors.New("snake: renderer, input, ui and scheduler are required")
	}

	g := &Game{
		cfg:           cfg,
		renderer:      renderer,
		input:         input,
		ui:            ui,
		sched:         sched,
		gate:          core.NewIntervalGate(cfg.TickInterval),
		collides:      StrictSelfCollision,
		blockReversal: cfg.BlockReversal,
		logger:        log.New(io.Discard),
	}
	if cfg.TailVacates {
		g.collides = TailVacatingSelfCollision
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.snake = NewSnake(cfg.InitialPosition, cfg.InitialDirection)
	g.food = NewFood(cfg.Cols(), cfg.Rows(), cfg.MaxFoodAttempts, g.rng)
	if err := g.food.Regenerate(g.snake); err != nil {
		return nil, fmt.Errorf("snake: cannot place initial food: %w", err)
	}
	g.newRound()

	return g, nil
}

// Init waits for the renderer, subscribes to input and draws the first frame.
func (g *Game) Init(ctx context.Context) error {
	if g.initialized {
		return nil
	}
	if err := g.renderer.Initialize(ctx); err != nil {
		g.logger.Error("renderer initialization failed", "err", err)
		return fmt.Errorf("snake: renderer initialization failed: %w", err)
	}
	g.initialized = true

	g.unsubscribe = append(g.unsubscribe,
		g.input.OnGameToggle(g.Toggle),
		g.input.OnDirectionChange(g.changeDirection),
	)
	g.ui.UpdateStartButton(false)
	g.render()

	g.logger.Info("game ready",
		"cols", g.cfg.Cols(),
		"rows", g.cfg.Rows(),
		"interval", g.cfg.TickInterval,
		"round", g.roundID,
	)
	return nil
}

// Close stops the loop, drops input handlers and releases the renderer.
func (g *Game) Close() error {
	g.Pause()
	for _, unsub := range g.unsubscribe {
		unsub()
	}
	g.unsubscribe = nil

	if !g.initialized {
		return nil
	}
	g.initialized = false
	if err := g.renderer.Destroy(); err != nil {
		return fmt.Errorf("snake: renderer destroy failed: %w", err)
	}
	return nil
}

// Toggle starts an idle game or pauses a running one, and updates the UI.
func (g *Game) Toggle() {
	if g.state == StateIdle {
		g.Start()
		g.ui.UpdateStartButton(true)
		return
	}
	g.Pause()
	g.ui.UpdateStartButton(false)
}

// Start schedules the frame loop. No-op when already running.
func (g *Game) Start() {
	if g.state == StateRunning {
		return
	}
	g.state = StateRunning
	g.gate.Reset()
	g.frameID = g.sched.RequestFrame(g.onFrame)
	g.logger.Info("game started", "round", g.roundID, "score", g.score)
}

// Pause cancels the scheduled frame. No-op when already idle.
func (g *Game) Pause() {
	if g.state == StateIdle {
		return
	}
	g.sched.CancelFrame(g.frameID)
	g.frameID = 0
	g.state = StateIdle
	g.logger.Info("game paused", "round", g.roundID, "score", g.score)
}

// Reset restores the initial snake, zeroes the score, moves the food and
// redraws. It does not change the run state.
func (g *Game) Reset() {
	g.snake.Reset()
	g.score = 0
	if err := g.food.Regenerate(g.snake); err != nil {
		// Validate guarantees a free cell next to a one-segment snake
		g.logger.Error("cannot place food after reset", "err", err)
	}
	g.ui.Reset()
	g.newRound()
	g.render()
}

// onFrame is the scheduled callback. It advances the game at most once per
// tick interval and keeps itself scheduled while running.
func (g *Game) onFrame(now time.Time) {
	if g.state != StateRunning {
		return
	}
	if g.gate.Due(now) {
		g.update()
		g.gate.Commit(now)
	}
	if g.state == StateRunning {
		g.frameID = g.sched.RequestFrame(g.onFrame)
	}
}

// update performs one tick: move, collide, eat or shrink, render.
func (g *Game) update() {
	head := g.nextHead()

	if cause := g.collision(head); cause != CauseNone {
		g.gameOver(cause)
		return
	}

	g.snake.CommitMove(head)
	g.ticks++

	if head == g.food.Position() {
		g.score += g.cfg.ScoreIncrement
		g.ui.UpdateScore(g.score)
		g.logger.Debug("food eaten", "at", head, "score", g.score, "length", g.snake.Len())
		if err := g.food.Regenerate(g.snake); err != nil {
			g.logger.Warn("no free cell left for food", "err", err, "length", g.snake.Len())
			g.gameOver(CauseBoardFull)
			return
		}
	} else {
		g.snake.ShrinkTail()
	}

	g.render()
}

func (g *Game) nextHead() core.Position {
	return g.snake.Head().Add(g.snake.Direction().Delta())
}

// collision classifies a candidate head. Walls are checked first.
func (g *Game) collision(head core.Position) Cause {
	if !g.cfg.Bounds().ContainsPosition(head) {
		return CauseWall
	}
	if g.collides(g.snake, head) {
		return CauseSelf
	}
	return CauseNone
}

func (g *Game) gameOver(cause Cause) {
	g.Pause()
	g.lastCause = cause
	g.logger.Info("game over",
		"cause", cause,
		"score", g.score,
		"length", g.snake.Len(),
		"ticks", g.ticks,
		"round", g.roundID,
	)
	g.ui.ShowGameOver(g.score)
	g.Reset()
}

func (g *Game) changeDirection(d core.Direction) {
	if g.blockReversal && g.reverses(d) {
		g.logger.Debug("reversal ignored", "direction", d)
		return
	}
	g.snake.SetDirection(d)
	g.logger.Debug("direction changed", "direction", d)
}

// reverses reports whether heading d would step back onto the neck.
func (g *Game) reverses(d core.Direction) bool {
	neck, ok := g.snake.Neck()
	if !ok {
		return false
	}
	return g.snake.Head().Add(d.Delta()) == neck
}

func (g *Game) render() {
	g.renderer.Clear()
	g.renderer.DrawSnake(g.snake.Segments())
	g.renderer.DrawFood(g.food.Position())
}

func (g *Game) newRound() {
	g.round++
	g.roundID = uuid.NewString()
	g.ticks = 0
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// State returns the run state.
func (g *Game) State() RunState {
	return g.state
}

// Running reports whether the frame loop is scheduled.
func (g *Game) Running() bool {
	return g.state == StateRunning
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}
