package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/registry"
)

var (
	statusStyle   = lipgloss.NewStyle().Bold(true).PaddingLeft(1)
	gameOverStyle = lipgloss.NewStyle().Bold(true).PaddingLeft(1).Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model hosting one game. Display ticks fire the
// frame loop; the game decides when a logic tick is due.
type Model struct {
	game   *snake.Game
	board  *Board
	loop   *core.FrameLoop
	input  *core.Dispatcher
	keys   KeyMap
	help   help.Model
	styles Styles
	fps    int
	logger *log.Logger

	quitting bool
}

// NewModel builds and initializes a game on a terminal board.
func NewModel(ctx context.Context, cfg snake.Config, opts registry.RunOptions) (Model, error) {
	return newModel(ctx, cfg, opts, NewBoard(cfg.Cols(), cfg.Rows()))
}

func newModel(ctx context.Context, cfg snake.Config, opts registry.RunOptions, board *Board) (Model, error) {
	loop := core.NewFrameLoop()
	input := core.NewDispatcher()
	logger := opts.Log()

	gameOpts := append([]snake.Option{snake.WithLogger(logger)}, opts.GameOptions...)
	game, err := snake.New(cfg, board, input, board, loop, gameOpts...)
	if err != nil {
		return Model{}, err
	}
	if err := game.Init(ctx); err != nil {
		return Model{}, err
	}

	return Model{
		game:   game,
		board:  board,
		loop:   loop,
		input:  input,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(cfg),
		fps:    opts.FrameRate(),
		logger: logger,
	}, nil
}

// Init starts the display tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.loop.Fire(time.Time(msg))
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit requested", "score", m.game.Score())
		return m, tea.Quit
	}

	if action == core.ActionReset {
		m.game.Reset()
		return m, nil
	}
	m.input.Dispatch(action)
	return m, nil
}

// View renders the board, the score panel and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.board.Screen(), m.styles))
	sb.WriteRune('\n')
	if m.board.GameOver() {
		sb.WriteString(gameOverStyle.Render(m.board.Status()))
	} else {
		sb.WriteString(statusStyle.Render(m.board.Status()))
	}
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Game returns the hosted game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Close releases the game.
func (m Model) Close() error {
	if err := m.game.Close(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
