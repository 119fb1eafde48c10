package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

// scriptedGame records its inputs and emits queued events.
type scriptedGame struct {
	inputs []core.InputFrame
	dts    []float64
	queue  [][]core.Event
	state  core.GameState
}

func (g *scriptedGame) ID() string                 { return "scripted" }
func (g *scriptedGame) Title() string              { return "Scripted" }
func (g *scriptedGame) Reset(_ core.RuntimeConfig) { g.state = core.GameState{Phase: core.PhaseMenu} }
func (g *scriptedGame) Render(dst *core.Screen)    { dst.Clear() }
func (g *scriptedGame) State() core.GameState      { return g.state }

func (g *scriptedGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.dts = append(g.dts, dt)
	var events []core.Event
	if len(g.queue) > 0 {
		events, g.queue = g.queue[0], g.queue[1:]
	}
	for _, e := range events {
		if e.Kind == core.EventGameOver {
			g.state = core.GameState{Phase: core.PhaseGameOver, GameOver: true, Score: e.Score}
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *scriptedGame) Snapshot() reciclamack.Snapshot {
	return reciclamack.Snapshot{Game: "scripted", Score: g.state.Score, Spawns: 12, Elapsed: 30}
}

type fakeAudio struct {
	collects, explosions, starts, stops int
}

func (a *fakeAudio) PlayCollect()   { a.collects++ }
func (a *fakeAudio) PlayExplosion() { a.explosions++ }
func (a *fakeAudio) StartMusic()    { a.starts++ }
func (a *fakeAudio) StopMusic()     { a.stops++ }
func (a *fakeAudio) Close()         {}

type fakePublisher struct{ published []any }

func (p *fakePublisher) Publish(s any) { p.published = append(p.published, s) }

type fakeRecorder struct {
	frames []core.InputFrame
	dts    []float64
}

func (r *fakeRecorder) Record(in core.InputFrame, dt float64) error {
	r.frames = append(r.frames, in.Clone())
	r.dts = append(r.dts, dt)
	return nil
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelTickUsesFrameClock(t *testing.T) {
	g := &scriptedGame{}
	rec := &fakeRecorder{}
	m := NewModel(g, testConfig(), Options{Recorder: rec, Logger: quietLogger()})
	m.Init()

	t0 := time.Unix(1000, 0)
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(20*time.Millisecond)))

	if len(g.dts) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(g.dts))
	}
	if g.dts[0] != 0 {
		t.Errorf("first dt = %v, expected 0", g.dts[0])
	}
	if g.dts[1] < 0.019 || g.dts[1] > 0.021 {
		t.Errorf("second dt = %v, expected 0.02", g.dts[1])
	}
	if len(rec.dts) != 2 || rec.dts[1] != g.dts[1] {
		t.Errorf("recorder saw %v, game saw %v", rec.dts, g.dts)
	}
}

func TestModelKeysReachGameOnce(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testConfig(), Options{Logger: quietLogger()})
	m.Init()

	t0 := time.Unix(1000, 0)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	if !g.inputs[0].Has(core.ActionStart) {
		t.Error("start should reach the first step")
	}
	if !g.inputs[1].Empty() {
		t.Errorf("input should be cleared after a step, got %v", g.inputs[1].List())
	}
}

func TestModelSynthesizesKeyRelease(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testConfig(), Options{Logger: quietLogger()})
	m.Init()

	now := time.Now()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg(now))
	if !g.inputs[0].Has(core.ActionMoveLeftStart) {
		t.Fatal("left press should start movement")
	}

	m = update(t, m, TickMsg(now.Add(holdInitialTimeout+time.Second)))
	if !g.inputs[1].Has(core.ActionMoveLeftStop) {
		t.Error("left should be released once presses stop arriving")
	}
}

func TestModelOppositeKeyReleasesFirst(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testConfig(), Options{Logger: quietLogger()})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg(time.Now()))

	in := g.inputs[0]
	if !in.Has(core.ActionMoveLeftStop) || !in.Has(core.ActionMoveRightStart) {
		t.Errorf("expected left stop and right start, got %v", in.List())
	}
}

func TestModelEventsDriveServices(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{queue: [][]core.Event{
		{{Kind: core.EventStarted}},
		{{Kind: core.EventCaught, Score: 1}, {Kind: core.EventExplosion, Score: 0}},
		{{Kind: core.EventGameOver, Score: 42}},
	}}
	snd := &fakeAudio{}
	pub := &fakePublisher{}
	m := NewModel(g, testConfig(), Options{Store: store, Audio: snd, Watch: pub, Logger: quietLogger()})
	m.Init()

	t0 := time.Unix(1000, 0)
	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg(t0.Add(time.Duration(i)*16*time.Millisecond)))
	}

	if snd.starts != 1 || snd.collects != 1 || snd.explosions != 1 || snd.stops != 1 {
		t.Errorf("audio calls = %+v", *snd)
	}
	if len(pub.published) != 3 {
		t.Errorf("published %d snapshots, expected one per eventful tick", len(pub.published))
	}
	if !m.State().GameOver {
		t.Error("model should track the game over state")
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Score != 42 || scores[0].Spawns != 12 || scores[0].Duration != 30*time.Second {
		t.Errorf("saved entry = %+v", scores[0])
	}
}

func TestModelQuitAndBack(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testConfig(), Options{Logger: quietLogger()})
	m.Init()

	// Back works from the title screen
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b on the title screen should return to the game menu")
	}
	if m.View() != "" {
		t.Error("view should be empty once leaving")
	}

	m = NewModel(g, testConfig(), Options{Logger: quietLogger()})
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelBackIgnoredWhilePlaying(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testConfig(), Options{Logger: quietLogger()})
	m.Init()
	g.state = core.GameState{Phase: core.PhasePlaying}

	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("b should not leave a running session")
	}
}

func TestModelRunsRealGame(t *testing.T) {
	g := reciclamack.New(reciclamack.WithLogger(quietLogger()), reciclamack.WithHighScoreStore(nil))
	m := NewModel(g, testConfig(), Options{Logger: quietLogger()})
	m.Init()

	t0 := time.Unix(1000, 0)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	if g.Phase() != core.PhasePlaying {
		t.Errorf("phase = %v, expected PLAYING", g.Phase())
	}
	if m.View() == "" {
		t.Error("view should render the game")
	}
}
