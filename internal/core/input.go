package core

import "sort"

// Action represents a semantic game action, abstracted from physical key presses.
// Movement is expressed as start/stop pairs so hosts with real key-release
// events (window) and hosts that only see presses (terminal) drive the game
// the same way.
type Action int

const (
	ActionNone           Action = iota
	ActionMoveLeftStart         // Left arrow, A pressed
	ActionMoveLeftStop          // Left arrow, A released
	ActionMoveRightStart        // Right arrow, D pressed
	ActionMoveRightStop         // Right arrow, D released
	ActionPause                 // P, Escape - toggle pause while playing
	ActionRestart               // R - back to the title after game over
	ActionStart                 // Enter, Space - start a session
	ActionToggleHitbox          // H - debug hitbox overlay
	ActionBack                  // B - back to the game menu
	ActionQuit                  // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:           "None",
	ActionMoveLeftStart:  "MoveLeftStart",
	ActionMoveLeftStop:   "MoveLeftStop",
	ActionMoveRightStart: "MoveRightStart",
	ActionMoveRightStop:  "MoveRightStop",
	ActionPause:          "Pause",
	ActionRestart:        "Restart",
	ActionStart:          "Start",
	ActionToggleHitbox:   "ToggleHitbox",
	ActionBack:           "Back",
	ActionQuit:           "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an input frame with the given actions set.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// List returns the set actions in ascending order.
func (f InputFrame) List() []Action {
	out := make([]Action, 0, len(f.Actions))
	for a, v := range f.Actions {
		if v {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
