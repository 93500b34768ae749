package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg := DefaultT2048Config()
	err := load("t2048.yaml", customPath, defaultT2048YAML, &cfg)
	if err != nil {
		return DefaultT2048Config(), err
	}
	return cfg, nil
}

// LoadTetris loads falling-block configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	err := load("tetris.yaml", customPath, defaultTetrisYAML, &cfg)
	if err != nil {
		return DefaultTetrisConfig(), err
	}
	return cfg, nil
}

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	err := load("snake.yaml", customPath, defaultSnakeYAML, &cfg)
	if err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// load fills out from the first source found. A custom path that cannot be
// read or parsed is an error; user and local files that fail to parse are
// skipped. Fields missing from a document keep the values already in out.
func load[T validator](filename, customPath string, embedded []byte, out *T) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fromFile := *out
		if err := decode(data, &fromFile); err == nil {
			*out = fromFile
			return nil
		}
	}

	if err := decode(embedded, out); err != nil {
		return fmt.Errorf("failed to parse embedded %s: %w", filename, err)
	}
	return nil
}

// decode unmarshals YAML and validates the result.
func decode[T validator](data []byte, out *T) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return err
	}
	return (*out).Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
