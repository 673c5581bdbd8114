package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnakeWithSource loads Snake configuration, validates it and reports
// which file was used.
// Search order: customPath -> ~/.snake/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. A customPath that cannot be read or parsed is an error; the other
// locations are skipped when missing or malformed. The source is "embedded"
// when no file was found.
func LoadSnakeWithSource(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeSnake(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	candidates := []string{}
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", "snake.yaml"))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeSnake(data); err == nil {
			return validated(cfg, path)
		}
	}

	// Use embedded default YAML
	cfg, err := decodeSnake(defaultSnakeYAML)
	if err != nil {
		return validated(DefaultSnakeConfig(), "builtin")
	}
	return validated(cfg, "embedded")
}

// decodeSnake unmarshals data over the hardcoded defaults.
func decodeSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

func validated(cfg SnakeConfig, source string) (SnakeConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
