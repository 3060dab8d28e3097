package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.bricks/config.yaml -> ./configs/bricks.yaml
// -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/bricks.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fall back to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the per-user config path, empty if home is
// unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks", "config.yaml")
}

// normalize fills derived defaults that a sparse user config may omit.
func normalize(cfg Config) Config {
	if cfg.Physics.MinYVelocity == 0 {
		cfg.Physics.MinYVelocity = cfg.Physics.InitialBallSpeed
	}
	if cfg.Field.BrickValue == 0 {
		cfg.Field.BrickValue = 1
	}
	return cfg
}
