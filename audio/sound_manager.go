package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDuration = 100 * time.Millisecond

	bumpDuration     = 120 * time.Millisecond
	bumpFrequencyHz  = 110.0
	bumpAmplitude    = 0.2
	bumpAttackSec    = 0.01
	blipDuration     = 60 * time.Millisecond
	blipFrequencyHz  = 440.0
	blipAmplitude    = 0.15
	blipDecayPerSec  = 40.0
	maxPendingSounds = 8
)

// Sound names a feedback effect
type Sound uint8

const (
	// SoundBump plays when a moving shape is stopped by the view edge
	SoundBump Sound = iota
	// SoundMove plays when movement starts
	SoundMove
)

func (s Sound) String() string {
	switch s {
	case SoundBump:
		return "bump"
	case SoundMove:
		return "move"
	default:
		return "unknown"
	}
}

// SoundManager mixes short feedback sounds onto the speaker.
// Every method is safe before Initialize and after Cleanup; sounds are then dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Fails on hosts without an audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds and stops accepting new ones
func (sm *SoundManager) Cleanup() {
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

// Play queues s. Sounds beyond maxPendingSounds are dropped
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.mixer.Len() < maxPendingSounds {
		sm.mixer.Add(Stream(s))
	}
	speaker.Unlock()
}

// Stream returns the finite sample stream for s
func Stream(s Sound) beep.Streamer {
	switch s {
	case SoundBump:
		return beep.Take(sampleRate.N(bumpDuration), NewBuzzGenerator(sampleRate, bumpFrequencyHz))
	default:
		return beep.Take(sampleRate.N(blipDuration), NewBlipGenerator(sampleRate, blipFrequencyHz))
	}
}

// BuzzGenerator generates a low-pitch buzz
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/bumpAttackSec, 1.0)
		sample *= envelope * bumpAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// BlipGenerator generates a sine ping with exponential decay
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := blipAmplitude * math.Exp(-t*blipDecayPerSec) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
