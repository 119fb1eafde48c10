// Package window runs a game in a desktop window using Ebitengine.
// Unlike the terminal host it sees real key releases and draws the world
// in pixels.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/reciclamack/internal/audio"
	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

// Publisher receives game snapshots for spectators.
type Publisher interface {
	Publish(snapshot any)
}

// FrameRecorder receives every frame passed to the game.
type FrameRecorder interface {
	Record(in core.InputFrame, dt float64) error
}

// Options are the optional services the window host drives.
type Options struct {
	Store    *storage.Store
	Audio    audio.Player
	Watch    Publisher
	Recorder FrameRecorder
	Logger   *log.Logger
}

// binding maps a physical key to the actions sent on press and release.
type binding struct {
	key     ebiten.Key
	press   core.Action
	release core.Action
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ActionMoveLeftStart, core.ActionMoveLeftStop},
	{ebiten.KeyA, core.ActionMoveLeftStart, core.ActionMoveLeftStop},
	{ebiten.KeyArrowRight, core.ActionMoveRightStart, core.ActionMoveRightStop},
	{ebiten.KeyD, core.ActionMoveRightStart, core.ActionMoveRightStop},
	{ebiten.KeyEnter, core.ActionStart, core.ActionNone},
	{ebiten.KeySpace, core.ActionStart, core.ActionNone},
	{ebiten.KeyP, core.ActionPause, core.ActionNone},
	{ebiten.KeyEscape, core.ActionPause, core.ActionNone},
	{ebiten.KeyR, core.ActionRestart, core.ActionNone},
	{ebiten.KeyH, core.ActionToggleHitbox, core.ActionNone},
}

// Host adapts a game to ebiten.Game.
type Host struct {
	game  *reciclamack.Game
	opts  Options
	clock core.FrameClock
	input core.InputFrame
	ticks int
}

// NewHost creates a window host for g. The game must already be Reset.
func NewHost(g *reciclamack.Game, opts Options) *Host {
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Host{game: g, opts: opts, input: core.NewInputFrame()}
}

// Update polls the keyboard and advances the game by the measured frame time.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.opts.Audio.StopMusic()
		return ebiten.Termination
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			h.input.Set(b.press)
		}
		if b.release != core.ActionNone && inpututil.IsKeyJustReleased(b.key) {
			h.input.Set(b.release)
		}
	}

	dt, _ := h.clock.Delta(time.Now())
	h.step(dt)
	return nil
}

// step runs one frame through the game and its services.
func (h *Host) step(dt float64) {
	if h.opts.Recorder != nil {
		if err := h.opts.Recorder.Record(h.input, dt); err != nil {
			h.opts.Logger.Warn("replay recording stopped", "error", err)
			h.opts.Recorder = nil
		}
	}

	result := h.game.Step(h.input, dt)
	h.input.Clear()

	audio.HandleEvents(h.opts.Audio, result.Events)

	for _, e := range result.Events {
		if e.Kind == core.EventGameOver && e.Score > 0 && h.opts.Store != nil {
			snap := h.game.Snapshot()
			entry := storage.ScoreEntry{
				GameID:   h.game.ID(),
				Score:    e.Score,
				Spawns:   snap.Spawns,
				Duration: time.Duration(snap.Elapsed * float64(time.Second)),
			}
			if _, err := h.opts.Store.SaveScore(entry); err != nil {
				h.opts.Logger.Warn("cannot save score", "game", h.game.ID(), "error", err)
			}
		}
	}

	h.ticks++
	if h.opts.Watch != nil && (len(result.Events) > 0 || h.ticks%3 == 0) {
		h.opts.Watch.Publish(h.game.Snapshot())
	}
}

// Layout keeps the world's logical size; the window scales it.
func (h *Host) Layout(_, _ int) (int, int) {
	w := h.game.Config().World
	return int(w.Width), int(w.Height)
}

// Run opens a window and plays g until the window closes or Q is pressed.
func Run(g *reciclamack.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.Reset(cfg)

	w := g.Config().World
	ebiten.SetWindowSize(int(w.Width), int(w.Height))
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(NewHost(g, opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
