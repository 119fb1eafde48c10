// Package audio plays the game's sound effects and background music.
package audio

import "github.com/vovakirdan/reciclamack/internal/core"

// Player is the sound surface the hosts drive.
type Player interface {
	PlayCollect()
	PlayExplosion()
	StartMusic()
	StopMusic()
	Close()
}

// Silent is a Player that produces no sound. Used with --mute, over SSH,
// and when the audio device cannot be opened.
type Silent struct{}

func (Silent) PlayCollect()   {}
func (Silent) PlayExplosion() {}
func (Silent) StartMusic()    {}
func (Silent) StopMusic()     {}
func (Silent) Close()         {}

// HandleEvents maps game events to sounds.
// Music runs only while a session is being played.
func HandleEvents(p Player, events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventCaught:
			p.PlayCollect()
		case core.EventExplosion:
			p.PlayExplosion()
		case core.EventStarted, core.EventResumed:
			p.StartMusic()
		case core.EventPaused, core.EventGameOver, core.EventMenu:
			p.StopMusic()
		}
	}
}
