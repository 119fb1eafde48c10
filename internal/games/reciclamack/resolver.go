package reciclamack

import (
	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/core"
)

// Outcome is the fate of an item after it moved this tick.
type Outcome int

const (
	OutcomeFalling Outcome = iota // still in play
	OutcomeMissed                 // left the bottom of the world
	OutcomeCaught                 // overlaps the collector hitbox
)

// Classify decides an item's outcome. Leaving the world wins over a catch.
func Classify(it Item, hitbox core.Rect, worldH float64) Outcome {
	if it.Y > worldH {
		return OutcomeMissed
	}
	if it.Bounds().Intersects(hitbox) {
		return OutcomeCaught
	}
	return OutcomeFalling
}

// resolveItems moves every item by dy, applies catch and miss effects, and
// compacts the slice in place. Processing stops as soon as the session runs
// out of lives; items after that point are kept as they were.
func (s *Session) resolveItems(dy, worldH float64, scoring config.ScoringConfig) []core.Event {
	var events []core.Event
	hitbox := s.Collector.Hitbox()

	kept := s.Items[:0]
	for i := 0; i < len(s.Items); i++ {
		it := s.Items[i]
		if !s.Alive() {
			kept = append(kept, it)
			continue
		}

		it.Fall(dy)
		switch Classify(it, hitbox, worldH) {
		case OutcomeMissed:
			s.Score -= scoring.MissPenalty
			if scoring.ClampScore && s.Score < 0 {
				s.Score = 0
			}
			events = append(events, core.Event{Kind: core.EventMissed, Item: it.Type.String(), Score: s.Score})
		case OutcomeCaught:
			events = append(events, s.applyCatch(it.Type))
		default:
			kept = append(kept, it)
		}
	}

	// Clear the tail so removed items are not retained
	for i := len(kept); i < len(s.Items); i++ {
		s.Items[i] = Item{}
	}
	s.Items = kept
	return events
}

func (s *Session) applyCatch(t ItemType) core.Event {
	eff := t.Effect()
	s.Score += eff.Score
	s.Lives += eff.Lives
	if s.Lives < 0 {
		s.Lives = 0
	}

	kind := core.EventCaught
	if t.Hazard() {
		kind = core.EventExplosion
	}
	return core.Event{Kind: kind, Item: t.String(), Score: s.Score}
}
