package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/snake/internal/config"
)

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}

	path := filepath.Join(t.TempDir(), "snake.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("food eaten", "score", 10)
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "food eaten") || !strings.Contains(string(data), "snake") {
		t.Errorf("log file = %q, expected prefixed debug line", data)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  tail_vacates: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		flagBlockReversal, flagTailVacates = false, false
	})
	flagConfig = path
	flagDifficulty = "hard"

	if err := playCmd.Flags().Set("block-reversal", "true"); err != nil {
		t.Fatal(err)
	}

	file, source, err := loadConfig(playCmd)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if file.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", file.Difficulty)
	}

	cfg, err := file.Game()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.TailVacates {
		t.Error("TailVacates from the file was lost")
	}
	if !cfg.BlockReversal {
		t.Error("--block-reversal was not applied")
	}
	if cfg.TickInterval != 60*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 60ms", cfg.TickInterval)
	}

	flagDifficulty = "insane"
	if _, _, err := loadConfig(playCmd); err == nil {
		t.Error("loadConfig() should reject an unknown difficulty")
	}
}
