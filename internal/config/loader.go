package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a game variant.
// Search order: customPath -> ~/.reciclamack/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// Files overlay the variant's hardcoded defaults, so a partial file only
// changes the keys it names. Only an explicit customPath can fail; the other
// locations are skipped when missing or invalid.
func Load(variant, customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFor(variant), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(variant, data)
		if err != nil {
			return DefaultFor(variant), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(variant, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := Parse(variant, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(variant); data != nil {
		if cfg, err := Parse(variant, data); err == nil {
			return cfg, nil
		}
	}
	return DefaultFor(variant), nil // Fallback to hardcoded if embed fails
}

// Parse validates a YAML document and decodes it over the variant defaults.
func Parse(variant string, data []byte) (Config, error) {
	cfg := DefaultFor(variant)
	if err := Validate(data); err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultFor(variant), fmt.Errorf("config: parse: %w", err)
	}
	if cfg.Items.SpawnOffsetMax < cfg.Items.SpawnOffsetMin {
		return DefaultFor(variant), fmt.Errorf("config: spawn_offset_max %.1f is below spawn_offset_min %.1f",
			cfg.Items.SpawnOffsetMax, cfg.Items.SpawnOffsetMin)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reciclamack", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust pace based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.Lives = 5
		cfg.Spawning.InitialInterval = 1.3
		cfg.Spawning.InitialFallSpeed = 100
		cfg.Collector.Speed = 460
	case DifficultyHard:
		cfg.Scoring.Lives = 2
		cfg.Spawning.InitialInterval = 0.8
		cfg.Spawning.InitialFallSpeed = 160
		if cfg.Difficulty.Floor > 0.2 {
			cfg.Difficulty.Floor = 0.2
		}
	}
}
