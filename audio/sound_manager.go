package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the sample rate of every sound generated by this package.
const SampleRate = beep.SampleRate(48000)

// SoundManager mixes the slide sounds of every character into one stream. The stream is
// handed to a speaker by the caller, which keeps this package usable headless.
type SoundManager struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	voices []*Voice
}

// NewSoundManager creates a sound manager with an empty mixer.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Streamer returns the mixed stream of all voices. It is safe to stream from another
// goroutine, such as the speaker's, while voices play and stop.
func (sm *SoundManager) Streamer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		return sm.mixer.Stream(samples)
	})
}

// Voice creates the slide voice of a single character.
func (sm *SoundManager) Voice() *Voice {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	v := &Voice{sm: sm, seed: uint32(len(sm.voices)+1)*2654435761 + 1}
	sm.voices = append(sm.voices, v)
	return v
}

// Active returns the amount of streamers currently in the mixer.
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Len()
}

// Cleanup stops and removes every sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.mixer.Clear()
	for _, v := range sm.voices {
		v.ctrl = nil
	}
}

// Voice is the looping slide sound of one character. It implements slide.AudioProvider.
type Voice struct {
	sm   *SoundManager
	ctrl *beep.Ctrl
	seed uint32
}

// PlaySlide starts the slide loop. If already playing, it isn't restarted.
func (v *Voice) PlaySlide() {
	v.sm.mu.Lock()
	defer v.sm.mu.Unlock()

	if v.ctrl != nil {
		v.ctrl.Paused = false
		return
	}
	v.ctrl = &beep.Ctrl{Streamer: NewSlideGenerator(SampleRate, v.seed), Paused: false}
	v.sm.mixer.Add(v.ctrl)
}

// StopSlide pauses the slide loop.
func (v *Voice) StopSlide() {
	v.sm.mu.Lock()
	defer v.sm.mu.Unlock()

	if v.ctrl != nil {
		v.ctrl.Paused = true
	}
}

// SlidePlaying returns whether the slide loop is currently audible.
func (v *Voice) SlidePlaying() bool {
	v.sm.mu.Lock()
	defer v.sm.mu.Unlock()
	return v.ctrl != nil && !v.ctrl.Paused
}

// SlideGenerator generates an endless scraping noise, low-passed and slowly swelling.
type SlideGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	state   uint32
	last    float64
}

// NewSlideGenerator creates a slide sound generator. The seed varies the noise so that
// several characters sliding at once do not phase.
func NewSlideGenerator(sr beep.SampleRate, seed uint32) *SlideGenerator {
	if seed == 0 {
		seed = 1
	}
	return &SlideGenerator{
		sr:      sr,
		samples: sr.N(time.Second), // 1 second swell cycle
		state:   seed,
	}
}

func (g *SlideGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		// xorshift32 white noise.
		g.state ^= g.state << 13
		g.state ^= g.state >> 17
		g.state ^= g.state << 5
		noise := float64(g.state)/float64(math.MaxUint32)*2 - 1

		g.last += 0.08 * (noise - g.last)
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		amplitude := 0.25 * (0.8 + 0.2*math.Sin(cyclePos*math.Pi*2))
		sample := amplitude * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SlideGenerator) Err() error {
	return nil
}
