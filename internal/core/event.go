package core

// EventKind identifies something that happened during a tick.
// Hosts react to events with sound, logging or persistence.
type EventKind int

const (
	EventStarted   EventKind = iota // A new session began
	EventCaught                     // A scoring item was caught
	EventExplosion                  // A battery was caught
	EventMissed                     // An item left the bottom of the world
	EventPaused
	EventResumed
	EventGameOver // Lives reached zero
	EventMenu     // Returned to the title screen
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventCaught:
		return "caught"
	case EventExplosion:
		return "explosion"
	case EventMissed:
		return "missed"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	case EventMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by a tick.
type Event struct {
	Kind    EventKind
	Item    string // Item type name for caught/missed/explosion
	Score   int    // Score after the event
	NewHigh bool   // Set on game over when the high score was beaten
}

// HasEvent reports whether events contain one of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
