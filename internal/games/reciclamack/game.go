// Package reciclamack implements a falling-object arcade game.
// The player moves a collector along the bottom of the world to catch
// recyclable items while avoiding batteries. The simulation is driven by
// explicit time deltas and has no display or device dependencies.
package reciclamack

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/registry"
)

// HighScoreStore persists the best score across runs.
// Load never fails; a missing or corrupt store reads as 0. SaveIfHigher
// compares against the stored value, not a cached one, and returns the
// best score after the call.
type HighScoreStore interface {
	Load() int
	SaveIfHigher(score int) (best int, saved bool, err error)
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// defaultStores picks the store of games created through the registry
var defaultStores func(variant string) HighScoreStore

// defaultLogger is used by games created through the registry
var defaultLogger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetHighScoreStores sets how registry-created games find their store.
// Each variant keeps its own high score.
func SetHighScoreStores(f func(variant string) HighScoreStore) {
	defaultStores = f
}

// SetLogger sets the logger used by registry-created games.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading the variant's configuration.
func WithConfig(cfg config.Config) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedCfg = true
	}
}

// WithHighScoreStore sets the high-score store.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game implements the ReciclaMack game logic and the phase machine around it.
type Game struct {
	variant string
	title   string

	cfg      config.Config
	fixedCfg bool
	runtime  core.RuntimeConfig

	phase      core.Phase
	session    *Session
	spawner    *Spawner
	difficulty Difficulty
	sessions   int // sessions started since Reset, used to derive seeds

	showHitbox bool
	newHigh    bool // last session beat the high score

	store  HighScoreStore
	logger *log.Logger
}

// New creates a classic game instance.
func New(opts ...Option) *Game {
	return newVariant(config.VariantClassic, "ReciclaMack", opts...)
}

// NewRush creates a rush game instance.
func NewRush(opts ...Option) *Game {
	return newVariant(config.VariantRush, "ReciclaMack Rush", opts...)
}

func newVariant(variant, title string, opts ...Option) *Game {
	g := &Game{
		variant: variant,
		title:   title,
		logger:  defaultLogger,
	}
	if defaultStores != nil {
		g.store = defaultStores(variant)
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the active configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset loads configuration and returns the game to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.Load(g.variant, configPath)
		if err != nil {
			g.logger.Warn("using default config", "game", g.variant, "error", err)
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = NewDifficulty(g.cfg.Difficulty)
	g.sessions = 0
	g.newHigh = false

	high := 0
	if g.store != nil {
		high = g.store.Load()
	}
	g.session = NewSession(g.cfg, high)
	g.phase = core.PhaseMenu
}

// Step applies one frame of input and then advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	events := g.HandleInput(in)
	events = append(events, g.Tick(dt)...)
	return core.StepResult{State: g.State(), Events: events}
}

// Tick advances the simulation by dt seconds. Outside PLAYING it does nothing.
// Non-positive or non-finite deltas are ignored.
func (g *Game) Tick(dt float64) []core.Event {
	if g.phase != core.PhasePlaying || g.session == nil {
		return nil
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil
	}
	if limit := g.cfg.Timing.MaxDelta; limit > 0 && dt > limit {
		dt = limit
	}

	s := g.session
	s.Elapsed += dt

	// 1. Collector movement
	s.Collector.Move(dt, g.cfg.World.Width)

	// 2. Spawning
	s.SpawnTimer += dt
	if s.SpawnTimer >= s.SpawnInterval {
		s.SpawnTimer = 0
		s.SpawnInterval, s.FallSpeed = g.difficulty.Advance(s.SpawnInterval, s.FallSpeed)
		s.Items = append(s.Items, g.spawner.Spawn())
		s.Spawns++
	}

	// 3-4. Fall, resolve and apply effects
	events := s.resolveItems(s.FallSpeed*dt, g.cfg.World.Height, g.cfg.Scoring)

	if !s.Alive() {
		events = append(events, g.endSession())
	}
	return events
}

// startSession begins a fresh session, keeping the high score.
func (g *Game) startSession() core.Event {
	high := 0
	var held *Collector
	if g.session != nil {
		high = g.session.HighScore
		held = g.session.Collector
	}
	g.session = NewSession(g.cfg, high)
	g.session.Collector.HoldFrom(held)
	g.spawner = NewSpawner(g.runtime.Seed+int64(g.sessions), g.cfg.Items, g.cfg.World.Width)
	g.sessions++
	g.newHigh = false
	g.phase = core.PhasePlaying
	return core.Event{Kind: core.EventStarted}
}

// endSession moves to GAME_OVER and persists a beaten high score.
func (g *Game) endSession() core.Event {
	s := g.session
	g.phase = core.PhaseGameOver
	g.newHigh = s.Score > s.HighScore

	// Another game may have raised the stored score since Reset.
	if g.store != nil && s.Score > 0 {
		best, saved, err := g.store.SaveIfHigher(s.Score)
		if err != nil {
			g.logger.Warn("cannot save high score", "score", s.Score, "error", err)
		} else {
			g.newHigh = saved
			s.HighScore = max(s.HighScore, best)
		}
	}
	if g.newHigh {
		s.HighScore = s.Score
	}
	g.logger.Debug("game over", "game", g.variant, "score", s.Score, "spawns", s.Spawns, "new_high", g.newHigh)

	return core.Event{Kind: core.EventGameOver, Score: s.Score, NewHigh: g.newHigh}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.phase == core.PhasePaused,
	}
	if g.session != nil {
		st.Score = g.session.Score
		st.Lives = g.session.Lives
		st.HighScore = g.session.HighScore
	}
	return st
}

// Phase returns the current phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// Session returns the current session. It is nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// HitboxVisible reports whether the hitbox overlay is on.
func (g *Game) HitboxVisible() bool {
	return g.showHitbox
}

// NewHighScore reports whether the last finished session set a high score.
func (g *Game) NewHighScore() bool {
	return g.newHigh
}

// Register the games with the registry
func init() {
	registry.Register(config.VariantClassic, func() registry.Game {
		return New()
	})
	registry.Register(config.VariantRush, func() registry.Game {
		return NewRush()
	})
}
