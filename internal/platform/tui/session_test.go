package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(testConfig(), Options{Logger: quietLogger()})
	if len(m.menu.items) == 0 {
		t.Fatal("menu should list the registered variants")
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, expected game after selecting", m.view)
	}
	if m.gameModel.game.ID() != m.menu.items[0].GameID {
		t.Errorf("started %q, expected %q", m.gameModel.game.ID(), m.menu.items[0].GameID)
	}

	// The game starts on its title screen, where b leaves
	m = updateSession(t, m, runeKey('b'))
	if m.view != viewMenu {
		t.Errorf("view = %v, expected menu after back", m.view)
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(testConfig(), Options{Logger: quietLogger()})

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("view = %v, expected scores", m.view)
	}
	if m.View() == "" {
		t.Error("scoreboard should render without a store")
	}

	m = updateSession(t, m, runeKey('b'))
	if m.view != viewMenu {
		t.Errorf("view = %v, expected menu", m.view)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testConfig(), Options{Logger: quietLogger()})
	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}
