// Package audio plays the game's synthesized sound cues.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager mixes cues into the speaker. The zero value is silent until
// Initialize succeeds.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// Option configures a Manager.
type Option func(*Manager)

// Muted starts the manager without opening the speaker.
func Muted(m bool) Option {
	return func(sm *Manager) {
		sm.muted = m
	}
}

// NewManager creates a sound manager.
func NewManager(opts ...Option) *Manager {
	sm := &Manager{mixer: &beep.Mixer{}}
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// Initialize opens the speaker. Muted managers do nothing.
func (sm *Manager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences every playing cue.
func (sm *Manager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts the named cue. Unknown names and an uninitialized manager
// are ignored.
func (sm *Manager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Cue(name, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
