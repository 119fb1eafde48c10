package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reciclamack/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeftStart, false},
		{"a", runeKey('a'), core.ActionMoveLeftStart, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRightStart, false},
		{"d", runeKey('d'), core.ActionMoveRightStart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"h", runeKey('h'), core.ActionToggleHitbox, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyHold(t *testing.T) {
	var h keyHold
	t0 := time.Unix(0, 0)

	if !h.press(t0) {
		t.Fatal("first press should start the hold")
	}
	if h.press(t0.Add(10 * time.Millisecond)) {
		t.Error("repeat press should not restart the hold")
	}

	// Repeat presses shorten the timeout
	if h.expire(t0.Add(100 * time.Millisecond)) {
		t.Error("hold expired before repeat timeout")
	}
	if !h.expire(t0.Add(200 * time.Millisecond)) {
		t.Error("hold should expire after repeat timeout")
	}
	if h.expire(t0.Add(300 * time.Millisecond)) {
		t.Error("expire should report only once")
	}
}

func TestKeyHoldInitialDelay(t *testing.T) {
	var h keyHold
	t0 := time.Unix(0, 0)
	h.press(t0)

	// Covers the terminal's delay before auto-repeat starts
	if h.expire(t0.Add(400 * time.Millisecond)) {
		t.Error("hold expired during the initial repeat delay")
	}
	if !h.expire(t0.Add(holdInitialTimeout + time.Millisecond)) {
		t.Error("hold should expire after the initial timeout")
	}
}

func TestKeyHoldRelease(t *testing.T) {
	var h keyHold
	if h.release() {
		t.Error("release of an idle key should report false")
	}
	h.press(time.Unix(0, 0))
	if !h.release() {
		t.Error("release of a held key should report true")
	}
}
