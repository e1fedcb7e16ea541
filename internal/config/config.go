// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
)

// File is the on-disk configuration.
type File struct {
	Board      BoardConfig      `yaml:"board"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Rules      RulesConfig      `yaml:"rules"`
	Colors     ColorsConfig     `yaml:"colors"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the board size in pixels.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// GameplayConfig defines timing, scoring and the starting layout.
type GameplayConfig struct {
	TickInterval    time.Duration  `yaml:"tick_interval"`
	ScoreIncrement  int            `yaml:"score_increment"`
	Start           PositionConfig `yaml:"start"`
	StartDirection  core.Direction `yaml:"start_direction"`
	MaxFoodAttempts int            `yaml:"max_food_attempts"`
}

// PositionConfig is a grid cell.
type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RulesConfig toggles the optional movement rules.
type RulesConfig struct {
	TailVacates   bool `yaml:"tail_vacates"`
	BlockReversal bool `yaml:"block_reversal"`
}

// ColorsConfig holds hex colours used by the backends.
type ColorsConfig struct {
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
}

// FromGame builds a File that describes cfg at the normal difficulty.
func FromGame(cfg snake.Config) File {
	return File{
		Board: BoardConfig{
			Width:    cfg.Width,
			Height:   cfg.Height,
			CellSize: cfg.CellSize,
		},
		Gameplay: GameplayConfig{
			TickInterval:    cfg.TickInterval,
			ScoreIncrement:  cfg.ScoreIncrement,
			Start:           PositionConfig{X: cfg.InitialPosition.X, Y: cfg.InitialPosition.Y},
			StartDirection:  cfg.InitialDirection,
			MaxFoodAttempts: cfg.MaxFoodAttempts,
		},
		Rules: RulesConfig{
			TailVacates:   cfg.TailVacates,
			BlockReversal: cfg.BlockReversal,
		},
		Colors: ColorsConfig{
			Snake: cfg.SnakeColor,
			Food:  cfg.FoodColor,
		},
		Difficulty: DifficultyNormal,
	}
}

// Game converts the file into a validated game config, with the difficulty
// preset applied to the tick interval.
func (f File) Game() (snake.Config, error) {
	preset, err := ParsePreset(string(f.Difficulty))
	if err != nil {
		return snake.Config{}, err
	}

	cfg := snake.Config{
		Width:            f.Board.Width,
		Height:           f.Board.Height,
		CellSize:         f.Board.CellSize,
		TickInterval:     ScaleInterval(f.Gameplay.TickInterval, preset),
		ScoreIncrement:   f.Gameplay.ScoreIncrement,
		InitialPosition:  core.Pos(f.Gameplay.Start.X, f.Gameplay.Start.Y),
		InitialDirection: f.Gameplay.StartDirection,
		MaxFoodAttempts:  f.Gameplay.MaxFoodAttempts,
		TailVacates:      f.Rules.TailVacates,
		BlockReversal:    f.Rules.BlockReversal,
		SnakeColor:       f.Colors.Snake,
		FoodColor:        f.Colors.Food,
	}
	if err := cfg.Validate(); err != nil {
		return snake.Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the file as YAML.
func (f File) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
