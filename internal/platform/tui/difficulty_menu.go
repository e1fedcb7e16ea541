package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake/internal/config"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true)
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuKeyMap defines the key bindings for the difficulty menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"), // vim-style k for up
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"), // vim-style j for down
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	file     config.File
	presets  []config.DifficultyPreset
	cursor   int
	width    int
	keys     MenuKeyMap
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates a menu with the cursor on the file's preset.
func NewDifficultyModel(file config.File, width int) DifficultyModel {
	m := DifficultyModel{
		file:    file,
		presets: config.Presets(),
		width:   width,
		keys:    DefaultMenuKeyMap(),
	}
	current, err := config.ParsePreset(string(file.Difficulty))
	if err != nil {
		current = config.DifficultyNormal
	}
	for i, p := range m.presets {
		if p == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list with the resulting tick interval.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		interval := config.ScaleInterval(m.file.Gameplay.TickInterval, p)
		line := fmt.Sprintf("  %-6s  %v per step", p, interval)
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %-6s  %v per step", p, interval))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset, or false if the user quit.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return m.presets[m.cursor], true
}

// centerText pads text to the middle of width, ignoring ANSI styling.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// RunDifficultySelector shows the menu and returns the chosen preset.
// ok is false when the user quit without choosing.
func RunDifficultySelector(file config.File) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(file, 80),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: %w", err)
	}

	m, isMenu := finalModel.(DifficultyModel)
	if !isMenu {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
