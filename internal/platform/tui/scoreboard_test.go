package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

func TestScoreboardModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	for _, s := range []int{120, 4500} {
		if _, err := store.SaveScore(storage.ScoreEntry{GameID: config.VariantRush, Score: s, Spawns: 9, Duration: 75 * time.Second}); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 40)
	if len(m.scores) != 0 {
		t.Fatalf("classic board should be empty, got %d rows", len(m.scores))
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty board should show the placeholder")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.modes[m.current].ID; got != config.VariantRush {
		t.Fatalf("mode = %q, expected %q", got, config.VariantRush)
	}
	if len(m.scores) != 2 || m.scores[0].Score != 4500 {
		t.Fatalf("scores = %+v", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 2 {
		t.Fatalf("stats = %+v", m.stats)
	}
	view := m.View()
	for _, want := range []string{"4,500", "1:15", "2 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// Wraps back to the first mode.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.current != 0 {
		t.Errorf("current = %d, expected wrap to 0", m.current)
	}
}

func TestScoreboardQuitAndBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || sb.IsQuitting() || cmd == nil {
		t.Error("esc should go back to the menu")
	}

	next, _ = m.Update(runeKey('q'))
	if sb := next.(ScoreboardModel); !sb.IsQuitting() || sb.View() != "" {
		t.Error("q should quit with an empty view")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59*time.Second + 600*time.Millisecond, "1:00"},
		{75 * time.Second, "1:15"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
