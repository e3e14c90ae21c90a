// Package audio plays the short cue emitted when the bubble comes to rest.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/float-bubble/parameter"
	"github.com/lixenwraith/float-bubble/physics"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SnapTone returns the base frequency for a snap side
func SnapTone(side physics.Side) float64 {
	if side == physics.SideRight {
		return parameter.SnapToneRight
	}
	return parameter.SnapToneLeft
}

// SnapSound builds the settle cue for side at volume: a triangle note then a
// sine a fifth above, shaped by a single envelope
func SnapSound(side physics.Side, volume float64, rate beep.SampleRate) beep.Streamer {
	base := SnapTone(side)
	n := rate.N(parameter.SnapSoundDuration)

	cue := tone([]note{
		{freq: base, wave: triangle, samples: n},
		{freq: base * parameter.SnapOvertoneRatio, wave: sine, samples: n},
	}, rate)
	cue = shape(cue, 2*n, rate.N(parameter.SnapSoundAttack), rate.N(parameter.SnapSoundRelease))

	// Gain scales by 1+Gain, so volume 0 is silence
	return &effects.Gain{Streamer: cue, Gain: volume - 1}
}

// Player owns the speaker and mixes cues into it
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player, Initialize must succeed before cues are audible
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker, safe to call more than once
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the speaker is open
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlaySnap queues the settle cue, no-op when the speaker is not open
func (p *Player) PlaySnap(side physics.Side) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := SnapSound(side, p.volume, sampleRate)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
