package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

func TestBlurb(t *testing.T) {
	if got := blurb(config.DefaultConfig()); got != "3 lives, steady climb" {
		t.Errorf("classic blurb = %q", got)
	}
	if got := blurb(config.RushConfig()); got != "3 lives, runaway speed" {
		t.Errorf("rush blurb = %q", got)
	}

	flat := config.DefaultConfig()
	flat.Difficulty.Enabled = false
	if got := blurb(flat); !strings.HasSuffix(got, "no ramp") {
		t.Errorf("disabled blurb = %q", got)
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: config.VariantClassic, Score: 12345}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	view := m.View()
	if !strings.Contains(view, "best 12,345") {
		t.Error("menu should show the classic best score")
	}
	if !strings.Contains(view, "no score yet") {
		t.Error("rush has no score yet")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.cursor)
	}
	for range m.items {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected last item", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil || m.Selected() == nil || m.Selected().GameID != m.items[len(m.items)-1].GameID {
		t.Error("enter should pick the highlighted mode")
	}
}
