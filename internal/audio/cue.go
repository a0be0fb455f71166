// Package audio issues the short fire-and-forget sound cues of the game.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/spacegarbage/internal/draw"
)

// Cue plays a sound without blocking the caller.
type Cue interface {
	Play()
}

// Sound modes accepted by New.
const (
	ModeBell = "bell"
	ModeTone = "tone"
	ModeOff  = "off"
)

// Bell rings the terminal bell of a surface.
type Bell struct {
	Surface draw.Surface
}

// Play implements Cue.
func (b Bell) Play() {
	b.Surface.Beep()
}

// Silent discards cues.
type Silent struct{}

// Play implements Cue.
func (Silent) Play() {}

const sampleRate = beep.SampleRate(44100)

// Tone plays a short synthesized sine beep through the system speaker.
type Tone struct {
	freq     float64
	duration time.Duration
}

// NewTone initializes the speaker. Only one Tone should be live at a time.
func NewTone(freq float64, duration time.Duration) (*Tone, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Tone{freq: freq, duration: duration}, nil
}

// Play implements Cue.
func (t *Tone) Play() {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

// Close releases the speaker.
func (t *Tone) Close() {
	speaker.Close()
}

// New builds the cue for mode. The returned closer is never nil.
// An unavailable speaker falls back to the surface bell.
func New(mode string, surface draw.Surface) (Cue, func(), error) {
	switch mode {
	case ModeOff:
		return Silent{}, func() {}, nil
	case ModeTone:
		tone, err := NewTone(880, 50*time.Millisecond)
		if err != nil {
			return Bell{Surface: surface}, func() {}, err
		}
		return tone, tone.Close, nil
	case ModeBell, "":
		return Bell{Surface: surface}, func() {}, nil
	}
	return Bell{Surface: surface}, func() {}, fmt.Errorf("unknown sound mode %q", mode)
}
