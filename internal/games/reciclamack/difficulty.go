package reciclamack

import (
	"math"

	"github.com/vovakirdan/reciclamack/internal/config"
)

// Difficulty ramps the spawn interval and fall speed once per spawn.
type Difficulty struct {
	cfg config.DifficultyConfig
}

// NewDifficulty creates a difficulty controller.
func NewDifficulty(cfg config.DifficultyConfig) Difficulty {
	return Difficulty{cfg: cfg}
}

// Enabled reports whether the ramp is active.
func (d Difficulty) Enabled() bool {
	return d.cfg.Enabled
}

// Advance returns the interval and speed after one spawn event.
// The interval never drops below the floor and the speed never decreases.
func (d Difficulty) Advance(interval, speed float64) (float64, float64) {
	if !d.cfg.Enabled {
		return interval, speed
	}

	interval = math.Max(d.cfg.Floor, interval*d.cfg.Decay)

	switch d.cfg.SpeedMode {
	case config.SpeedMultiplicative:
		if d.cfg.SpeedFactor > 1 {
			speed *= d.cfg.SpeedFactor
		}
	default:
		if d.cfg.SpeedIncrement > 0 {
			speed += d.cfg.SpeedIncrement
		}
	}
	return interval, speed
}
