package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays synthesized sounds through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	music       *beep.Ctrl
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager. volume scales every sound, 0..1.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Open returns an initialized SoundManager, or Silent if the device is
// unavailable. The failure is logged.
func Open(volume float64, logger *log.Logger) Player {
	sm := NewSoundManager(volume)
	if err := sm.Initialize(); err != nil {
		if logger == nil {
			logger = log.Default()
		}
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return Silent{}
	}
	return sm
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.music != nil {
		sm.music.Paused = true
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer keeps the device silent
	sm.initialized = false
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayCollect plays a short rising chime.
func (sm *SoundManager) PlayCollect() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(beep.Take(sampleRate.N(time.Millisecond*160), NewChimeGenerator(sampleRate, sm.volume)))
}

// PlayExplosion plays a noise burst with a low rumble.
func (sm *SoundManager) PlayExplosion() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(beep.Take(sampleRate.N(time.Millisecond*450), NewExplosionGenerator(sampleRate, sm.volume)))
}

// StartMusic starts or resumes the background loop.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = false
		speaker.Unlock()
		return
	}

	// MusicGenerator never ends
	ctrl := &beep.Ctrl{Streamer: NewMusicGenerator(sampleRate, sm.volume), Paused: false}
	sm.music = ctrl
	sm.add(ctrl)
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}
