package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reciclamack/internal/audio"
	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
	"github.com/vovakirdan/reciclamack/internal/registry"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

// publishEvery is how many ticks pass between spectator snapshots.
const publishEvery = 3

// Publisher receives game snapshots for spectators.
type Publisher interface {
	Publish(snapshot any)
}

// FrameRecorder receives every frame passed to the game.
type FrameRecorder interface {
	Record(in core.InputFrame, dt float64) error
}

// snapshotter is implemented by games that can describe their state.
type snapshotter interface {
	Snapshot() reciclamack.Snapshot
}

// Options are the optional services a Model drives.
type Options struct {
	Store    *storage.Store
	Audio    audio.Player
	Watch    Publisher
	Recorder FrameRecorder
	Logger   *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	clock      *core.FrameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	left       keyHold
	right      keyHold
	ticks      int
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		clock:      &core.FrameClock{},
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.opts.Audio.StopMusic()
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionMoveLeftStart:
		if m.right.release() {
			m.inputFrame.Set(core.ActionMoveRightStop)
		}
		if m.left.press(now) {
			m.inputFrame.Set(core.ActionMoveLeftStart)
		}
	case core.ActionMoveRightStart:
		if m.left.release() {
			m.inputFrame.Set(core.ActionMoveLeftStop)
		}
		if m.right.press(now) {
			m.inputFrame.Set(core.ActionMoveRightStart)
		}
	case core.ActionBack:
		// Only leave from screens where nothing is in flight
		if m.gameState.Phase == core.PhaseMenu || m.gameState.GameOver {
			m.opts.Audio.StopMusic()
			m.backToMenu = true
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game scales its world to the screen, so the session survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.left.expire(now) {
		m.inputFrame.Set(core.ActionMoveLeftStop)
	}
	if m.right.expire(now) {
		m.inputFrame.Set(core.ActionMoveRightStop)
	}

	dt, _ := m.clock.Delta(now)

	if m.opts.Recorder != nil {
		if err := m.opts.Recorder.Record(m.inputFrame, dt); err != nil {
			m.opts.Logger.Warn("replay recording stopped", "error", err)
			m.opts.Recorder = nil
		}
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	audio.HandleEvents(m.opts.Audio, result.Events)

	for _, e := range result.Events {
		if e.Kind == core.EventGameOver {
			m.saveScore(e)
		}
	}

	m.ticks++
	if m.opts.Watch != nil && (len(result.Events) > 0 || m.ticks%publishEvery == 0) {
		if snap, ok := m.game.(snapshotter); ok {
			m.opts.Watch.Publish(snap.Snapshot())
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished session in the scores database.
// Empty sessions are not recorded.
func (m Model) saveScore(e core.Event) {
	if m.opts.Store == nil || e.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{GameID: m.game.ID(), Score: e.Score}
	if snap, ok := m.game.(snapshotter); ok {
		s := snap.Snapshot()
		entry.Spawns = s.Spawns
		entry.Duration = time.Duration(s.Elapsed * float64(time.Second))
	}
	if _, err := m.opts.Store.SaveScore(entry); err != nil {
		m.opts.Logger.Warn("cannot save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".reciclamack", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the game menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
