package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToneLengthAndLevel(t *testing.T) {
	s := Tone(SampleRate, 440, 50*time.Millisecond, 0.5)
	want := SampleRate.N(50 * time.Millisecond)

	got := 0
	peak := 0.0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			assert.Equal(t, smp[0], smp[1])
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		got += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, got)
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.3)
	assert.NoError(t, s.Err())
}

func TestNilChimeIsSilent(t *testing.T) {
	var c *Chime
	assert.NotPanics(t, c.Play)
}
