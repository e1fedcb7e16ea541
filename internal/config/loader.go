package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultYAML returns the embedded default configuration.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// Default returns the embedded default configuration.
func Default() File {
	var cfg File
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return FromGame(snake.DefaultConfig()) // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Load loads the snake configuration. Keys missing from a file keep their
// default values.
// Search order: customPath -> ~/.snake/snake.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (File, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the config came from:
// a file path or "embedded".
func LoadWithSource(customPath string) (File, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return File{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return File{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "snake.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	return Default(), "embedded", nil
}

// parse decodes data over the defaults.
func parse(data []byte) (File, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return File{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
