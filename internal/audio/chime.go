// Package audio plays a short cue when a new galaxy is installed.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	chimeFreq     = 660.0
	chimeDuration = 120 * time.Millisecond
	chimeVolume   = 0.2
)

// Chime plays a soft sine blip through the default speaker.
type Chime struct{}

// NewChime initialises the speaker. It must be called at most once.
func NewChime() (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{}, nil
}

// Play queues the blip and returns immediately. A nil Chime is silent.
func (c *Chime) Play() {
	if c == nil {
		return
	}
	speaker.Play(Tone(SampleRate, chimeFreq, chimeDuration, chimeVolume))
}

// Tone returns a sine at freq Hz lasting d, with a linear fade out so it
// ends without a click.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && pos < total; n++ {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * env * volume
			samples[n][0], samples[n][1] = v, v
			pos++
		}
		return n, true
	})
}
