package reciclamack

import "github.com/vovakirdan/reciclamack/internal/core"

// HandleInput applies one frame of logical input.
// Movement and the hitbox toggle are accepted in every phase so a key
// released while paused is not left stuck. At most one phase transition
// happens per frame; inputs that do not apply to the current phase are ignored.
func (g *Game) HandleInput(in core.InputFrame) []core.Event {
	if g.session == nil {
		return nil
	}

	c := g.session.Collector
	if in.Has(core.ActionMoveLeftStart) {
		c.SetLeft(true)
	}
	if in.Has(core.ActionMoveLeftStop) {
		c.SetLeft(false)
	}
	if in.Has(core.ActionMoveRightStart) {
		c.SetRight(true)
	}
	if in.Has(core.ActionMoveRightStop) {
		c.SetRight(false)
	}
	if in.Has(core.ActionToggleHitbox) {
		g.showHitbox = !g.showHitbox
	}

	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionStart) {
			return []core.Event{g.startSession()}
		}
	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePaused
			return []core.Event{{Kind: core.EventPaused, Score: g.session.Score}}
		}
	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePlaying
			return []core.Event{{Kind: core.EventResumed, Score: g.session.Score}}
		}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.session = NewSession(g.cfg, g.session.HighScore)
			g.session.Collector.HoldFrom(c)
			g.phase = core.PhaseMenu
			return []core.Event{{Kind: core.EventMenu}}
		}
		if in.Has(core.ActionStart) {
			return []core.Event{g.startSession()}
		}
	}
	return nil
}
