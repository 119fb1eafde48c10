package config

import (
	_ "embed"
)

// Variant IDs with an embedded default configuration.
const (
	VariantClassic = "reciclamack"
	VariantRush    = "reciclamack_rush"
)

//go:embed defaults/reciclamack.yaml
var defaultClassicYAML []byte

//go:embed defaults/reciclamack_rush.yaml
var defaultRushYAML []byte

//go:embed defaults/reciclamack.schema.json
var schemaJSON []byte

// DefaultConfig returns the classic configuration.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  720,
			Height: 900,
		},
		Collector: CollectorConfig{
			Width:        120,
			Height:       22,
			Speed:        420,
			BottomOffset: 80,
			Hitbox: HitboxConfig{
				WidthFrac:  0.55,
				HeightFrac: 0.48,
				BottomFrac: 0.04,
				MinSide:    12,
			},
		},
		Items: ItemsConfig{
			Size:           36,
			SideMargin:     10,
			SpawnOffsetMin: 10,
			SpawnOffsetMax: 80,
		},
		Spawning: SpawningConfig{
			InitialInterval:  1.0,
			InitialFallSpeed: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			Decay:          0.996,
			Floor:          0.25,
			SpeedMode:      SpeedAdditive,
			SpeedIncrement: 2,
			SpeedFactor:    1.0,
		},
		Scoring: ScoringConfig{
			Lives:       3,
			MissPenalty: 1,
			ClampScore:  true,
		},
		Timing: TimingConfig{
			MaxDelta: 0.25,
		},
	}
}

// RushConfig returns the rush configuration: faster interval decay and a
// multiplicative fall speed ramp.
func RushConfig() Config {
	cfg := DefaultConfig()
	cfg.Difficulty.Decay = 0.985
	cfg.Difficulty.Floor = 0.2
	cfg.Difficulty.SpeedMode = SpeedMultiplicative
	cfg.Difficulty.SpeedIncrement = 0
	cfg.Difficulty.SpeedFactor = 1.01
	return cfg
}

// DefaultFor returns the hardcoded configuration of a variant.
// Unknown variants get the classic configuration.
func DefaultFor(variant string) Config {
	if variant == VariantRush {
		return RushConfig()
	}
	return DefaultConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClassic:
		return defaultClassicYAML
	case VariantRush:
		return defaultRushYAML
	default:
		return nil
	}
}
