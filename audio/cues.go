package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cues plays the short lifecycle sounds of a run. A disabled or failed audio
// device degrades every method to a no-op
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCues creates an idle cue player
func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device and attaches the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences and detaches everything. The speaker itself has no close;
// clearing the mixer is enough to stop output
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Start plays the run-start chime, an ascending pair
func (c *Cues) Start() {
	c.play(
		tone(440, 80*time.Millisecond, WaveSine, sampleRate),
		tone(660, 120*time.Millisecond, WaveSine, sampleRate),
	)
}

// GameOver plays the descending defeat cue
func (c *Cues) GameOver() {
	c.play(
		tone(330, 120*time.Millisecond, WaveSquare, sampleRate),
		tone(220, 160*time.Millisecond, WaveSquare, sampleRate),
		tone(110, 240*time.Millisecond, WaveSquare, sampleRate),
	)
}

// Restart plays a short blip
func (c *Cues) Restart() {
	c.play(tone(880, 60*time.Millisecond, WaveSine, sampleRate))
}

// Strike plays a short percussive hit
func (c *Cues) Strike() {
	c.play(tone(160, 50*time.Millisecond, WaveSquare, sampleRate))
}

func (c *Cues) play(notes ...beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(beep.Seq(notes...))
	speaker.Unlock()
}
