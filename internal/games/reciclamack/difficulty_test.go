package reciclamack

import (
	"testing"

	"github.com/vovakirdan/reciclamack/internal/config"
)

func TestDifficultyFloor(t *testing.T) {
	for _, cfg := range []config.Config{config.DefaultConfig(), config.RushConfig()} {
		d := NewDifficulty(cfg.Difficulty)
		interval, speed := cfg.Spawning.InitialInterval, cfg.Spawning.InitialFallSpeed

		for i := 0; i < 10000; i++ {
			prevSpeed := speed
			interval, speed = d.Advance(interval, speed)
			if interval < cfg.Difficulty.Floor {
				t.Fatalf("spawn %d: interval %v below floor %v", i, interval, cfg.Difficulty.Floor)
			}
			if speed < prevSpeed {
				t.Fatalf("spawn %d: speed decreased %v -> %v", i, prevSpeed, speed)
			}
		}
		if interval != cfg.Difficulty.Floor {
			t.Errorf("interval should settle at the floor, got %v", interval)
		}
	}
}

func TestDifficultyModes(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.DifficultyConfig
		interval  float64
		speed     float64
		wantInt   float64
		wantSpeed float64
	}{
		{
			name:     "additive",
			cfg:      config.DifficultyConfig{Enabled: true, Decay: 0.5, Floor: 0.1, SpeedMode: config.SpeedAdditive, SpeedIncrement: 2},
			interval: 1, speed: 120, wantInt: 0.5, wantSpeed: 122,
		},
		{
			name:     "multiplicative",
			cfg:      config.DifficultyConfig{Enabled: true, Decay: 0.5, Floor: 0.1, SpeedMode: config.SpeedMultiplicative, SpeedFactor: 1.5},
			interval: 1, speed: 100, wantInt: 0.5, wantSpeed: 150,
		},
		{
			name:     "floor clamps",
			cfg:      config.DifficultyConfig{Enabled: true, Decay: 0.5, Floor: 0.4, SpeedMode: config.SpeedAdditive},
			interval: 0.6, speed: 100, wantInt: 0.4, wantSpeed: 100,
		},
		{
			name:     "disabled",
			cfg:      config.DifficultyConfig{Enabled: false, Decay: 0.5, Floor: 0.1, SpeedIncrement: 5},
			interval: 1, speed: 100, wantInt: 1, wantSpeed: 100,
		},
		{
			name:     "factor below one ignored",
			cfg:      config.DifficultyConfig{Enabled: true, Decay: 0.9, Floor: 0.1, SpeedMode: config.SpeedMultiplicative, SpeedFactor: 0.5},
			interval: 1, speed: 100, wantInt: 0.9, wantSpeed: 100,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotInt, gotSpeed := NewDifficulty(tc.cfg).Advance(tc.interval, tc.speed)
			if gotInt != tc.wantInt || gotSpeed != tc.wantSpeed {
				t.Errorf("Advance() = (%v, %v), expected (%v, %v)", gotInt, gotSpeed, tc.wantInt, tc.wantSpeed)
			}
		})
	}
}
