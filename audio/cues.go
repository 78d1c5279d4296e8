package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues plays short feedback tones for player outcomes. A Cues that
// failed to initialize plays nothing and reports no errors.
type Cues struct {
	ready bool
}

// NewCues opens the speaker. Initialization failure is non-fatal; the
// game runs silent.
func NewCues() (*Cues, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return &Cues{}, err
	}
	return &Cues{ready: true}, nil
}

// Eat chirps on a berry or mouse taken
func (c *Cues) Eat() { c.tone(880, 50*time.Millisecond) }

// Kill rings lower and longer on a snake kill
func (c *Cues) Kill() { c.tone(440, 150*time.Millisecond) }

// Block thuds when the mongoose runs into something it cannot pass
func (c *Cues) Block() { c.tone(110, 80*time.Millisecond) }

func (c *Cues) tone(freq float64, d time.Duration) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
