// Package config provides YAML-based game configuration loading, schema
// validation and difficulty presets for ReciclaMack.
package config

// Config contains all tunables of one game variant.
// Distances are world pixels, speeds are pixels per second, times are seconds.
type Config struct {
	World      WorldConfig      `yaml:"world" json:"world"`
	Collector  CollectorConfig  `yaml:"collector" json:"collector"`
	Items      ItemsConfig      `yaml:"items" json:"items"`
	Spawning   SpawningConfig   `yaml:"spawning" json:"spawning"`
	Difficulty DifficultyConfig `yaml:"difficulty" json:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring" json:"scoring"`
	Timing     TimingConfig     `yaml:"timing" json:"timing"`
}

// WorldConfig defines the logical play field.
type WorldConfig struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// CollectorConfig defines the player-controlled collector.
type CollectorConfig struct {
	Width        float64      `yaml:"width" json:"width"`
	Height       float64      `yaml:"height" json:"height"`
	Speed        float64      `yaml:"speed" json:"speed"`
	BottomOffset float64      `yaml:"bottom_offset" json:"bottom_offset"` // Y = world height - offset
	Hitbox       HitboxConfig `yaml:"hitbox" json:"hitbox"`
}

// HitboxConfig defines the inset collision rectangle of the collector.
type HitboxConfig struct {
	WidthFrac  float64 `yaml:"width_frac" json:"width_frac"`
	HeightFrac float64 `yaml:"height_frac" json:"height_frac"`
	BottomFrac float64 `yaml:"bottom_frac" json:"bottom_frac"`
	MinSide    float64 `yaml:"min_side" json:"min_side"`
}

// ItemsConfig defines falling item geometry and spawn placement.
type ItemsConfig struct {
	Size           float64 `yaml:"size" json:"size"`
	SideMargin     float64 `yaml:"side_margin" json:"side_margin"`
	SpawnOffsetMin float64 `yaml:"spawn_offset_min" json:"spawn_offset_min"`
	SpawnOffsetMax float64 `yaml:"spawn_offset_max" json:"spawn_offset_max"`
}

// SpawningConfig defines the starting pace of a session.
type SpawningConfig struct {
	InitialInterval  float64 `yaml:"initial_interval" json:"initial_interval"`
	InitialFallSpeed float64 `yaml:"initial_fall_speed" json:"initial_fall_speed"`
}

// Speed ramp modes.
const (
	SpeedAdditive       = "additive"
	SpeedMultiplicative = "multiplicative"
)

// DifficultyConfig defines how pace increases on every spawn.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled" json:"enabled"`
	Decay          float64 `yaml:"decay" json:"decay"` // interval multiplier, in (0, 1)
	Floor          float64 `yaml:"floor" json:"floor"` // minimum interval
	SpeedMode      string  `yaml:"speed_mode" json:"speed_mode"`
	SpeedIncrement float64 `yaml:"speed_increment" json:"speed_increment"`
	SpeedFactor    float64 `yaml:"speed_factor" json:"speed_factor"`
}

// ScoringConfig defines lives and the miss penalty.
type ScoringConfig struct {
	Lives       int  `yaml:"lives" json:"lives"`
	MissPenalty int  `yaml:"miss_penalty" json:"miss_penalty"`
	ClampScore  bool `yaml:"clamp_score" json:"clamp_score"`
}

// TimingConfig bounds a single tick.
type TimingConfig struct {
	MaxDelta float64 `yaml:"max_delta" json:"max_delta"` // 0 disables the cap
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset returns the preset with the given name.
// Empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
