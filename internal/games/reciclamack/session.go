package reciclamack

import (
	"github.com/vovakirdan/reciclamack/internal/config"
)

// Session is the state of one play-through from start to game over.
// The game owns exactly one session at a time.
type Session struct {
	Score     int
	Lives     int
	HighScore int

	SpawnInterval float64 // seconds between spawns, never below the floor
	FallSpeed     float64 // pixels per second, never decreases
	SpawnTimer    float64 // seconds since the last spawn
	Spawns        int     // number of spawn events
	Elapsed       float64 // seconds spent playing

	Items     []Item
	Collector *Collector
}

// NewSession creates a fresh session. The high score carries over.
func NewSession(cfg config.Config, highScore int) *Session {
	interval := cfg.Spawning.InitialInterval
	if cfg.Difficulty.Enabled && interval < cfg.Difficulty.Floor {
		interval = cfg.Difficulty.Floor
	}
	return &Session{
		Lives:         cfg.Scoring.Lives,
		HighScore:     highScore,
		SpawnInterval: interval,
		FallSpeed:     cfg.Spawning.InitialFallSpeed,
		Items:         make([]Item, 0, 32),
		Collector:     NewCollector(cfg.Collector, cfg.World),
	}
}

// Alive reports whether the session still has lives.
func (s *Session) Alive() bool {
	return s.Lives > 0
}
