// Package audio plays the short cues that accompany a countdown.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	tickFreq  = 660.0
	finalFreq = 990.0
	tickLen   = 60 * time.Millisecond
	finalLen  = 180 * time.Millisecond
	volume    = -1.5
)

// Tone returns a sine tone of freq Hz lasting d, attenuated to cue volume.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Countdown returns the cue for digit n; the last digit rings longer and higher.
func Countdown(rate beep.SampleRate, n int) (beep.Streamer, error) {
	if n <= 1 {
		return Tone(rate, finalFreq, finalLen)
	}
	return Tone(rate, tickFreq, tickLen)
}

// Player mixes cues onto the speaker. A Player that failed to initialize
// stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Countdown plays the cue for digit n.
func (p *Player) Countdown(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s, err := Countdown(sampleRate, n)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
