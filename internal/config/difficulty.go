package config

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from slowest to fastest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset resolves a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", name)
}

// IntervalScaleForPreset returns the tick interval multiplier for a preset.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ScaleInterval applies a preset to a tick interval. A positive interval
// never scales below one millisecond.
func ScaleInterval(interval time.Duration, preset DifficultyPreset) time.Duration {
	if interval <= 0 {
		return interval
	}
	scaled := time.Duration(math.Round(float64(interval) * IntervalScaleForPreset(preset)))
	if scaled < time.Millisecond {
		return time.Millisecond
	}
	return scaled
}

// ApplyPreset sets the file's difficulty. The interval is scaled when the
// file is converted with Game.
func ApplyPreset(f *File, preset DifficultyPreset) {
	f.Difficulty = preset
}
