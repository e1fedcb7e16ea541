package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/platform/tui"
	"github.com/vovakirdan/snake/internal/registry"
)

var (
	flagConfig        string
	flagDifficulty    string
	flagBackend       string
	flagSeed          int64
	flagFPS           int
	flagBlockReversal bool
	flagTailVacates   bool
	flagMenu          bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the chosen renderer backend.

Controls:
  Arrows/WASD  - Steer
  Space        - Start/Pause
  R            - Reset
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 1.5x the configured tick interval
  normal - the configured tick interval
  hard   - 0.6x the configured tick interval

Examples:
  snake play
  snake play --difficulty hard
  snake play --backend termbox
  snake play --config ./my-snake.yaml --seed 7
  snake play --block-reversal --tail-vacates
  snake play --menu`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
	playCmd.Flags().StringVar(&flagBackend, "backend", registry.DefaultBackend, "Renderer backend (see 'snake backends')")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for food placement (0 = random based on time)")
	playCmd.Flags().IntVar(&flagFPS, "fps", registry.DefaultFPS, "Display refresh rate (frames per second)")
	playCmd.Flags().BoolVar(&flagBlockReversal, "block-reversal", false, "Ignore turns straight back into the body")
	playCmd.Flags().BoolVar(&flagTailVacates, "tail-vacates", false, "Allow the head to enter the cell the tail is leaving")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick the difficulty from a menu before playing")
}

// addConfigFlags registers the flags shared by play and config.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadConfig resolves the config file and applies the command-line overrides.
func loadConfig(cmd *cobra.Command) (config.File, string, error) {
	file, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.File{}, "", err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.File{}, "", err
		}
		config.ApplyPreset(&file, preset)
	}
	if f := cmd.Flags().Lookup("block-reversal"); f != nil && f.Changed {
		file.Rules.BlockReversal = flagBlockReversal
	}
	if f := cmd.Flags().Lookup("tail-vacates"); f != nil && f.Changed {
		file.Rules.TailVacates = flagTailVacates
	}
	return file, source, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command) error {
	backend, err := registry.Create(flagBackend)
	if err != nil {
		return fmt.Errorf("%w\nRun 'snake backends' to see available backends", err)
	}

	file, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagMenu {
		preset, ok, err := tui.RunDifficultySelector(file)
		if err != nil {
			return err
		}
		// User quit the menu
		if !ok {
			return nil
		}
		config.ApplyPreset(&file, preset)
	}
	cfg, err := file.Game()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		//nolint:errcheck // Best-effort close on exit
		closeLog()
	}()

	logger.Info("starting",
		"backend", backend.Name(),
		"config", source,
		"difficulty", file.Difficulty,
		"grid", fmt.Sprintf("%dx%d", cfg.Cols(), cfg.Rows()),
		"interval", cfg.TickInterval,
	)

	var gameOpts []snake.Option
	if flagSeed != 0 {
		gameOpts = append(gameOpts, snake.WithSeed(flagSeed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = backend.Run(ctx, cfg, registry.RunOptions{
		FPS:         flagFPS,
		Logger:      logger,
		GameOptions: gameOpts,
	})
	if err != nil {
		logger.Error("backend failed", "backend", backend.Name(), "err", err)
		return err
	}
	return nil
}
