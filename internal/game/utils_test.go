package game

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/galaxy-visualization/internal/galaxy"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "2500", formatValue(2500, 200))
	assert.Equal(t, "3", formatValue(3, 1))
	assert.Equal(t, "0.010", formatValue(0.01, 0.001))
	assert.Equal(t, "0.20", formatValue(0.2, 0.01))
	assert.Equal(t, "4.0", formatValue(4, 0.1))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.50ms", formatDuration(1500*time.Microsecond))
}

func TestHsvToRgb(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, hsvToRgb(0, 1, 1))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, hsvToRgb(360, 1, 1))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, hsvToRgb(-120, 1, 1))
	assert.Equal(t, color.RGBA{A: 255}, hsvToRgb(90, 0.5, 0))
}

func TestWithHue(t *testing.T) {
	red := galaxy.Color{R: 1}
	green := withHue(red, 120)
	assert.InDelta(t, 0, green.R, 1e-9)
	assert.InDelta(t, 1, green.G, 1e-9)
	assert.InDelta(t, 0, green.B, 1e-9)
	assert.InDelta(t, 120, hueOf(green), 1)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 0.5, clamp01(0.5))
	assert.Equal(t, 1.0, clamp01(2))
}

func TestWithHueTintsGreys(t *testing.T) {
	for _, c := range []galaxy.Color{{R: 1, G: 1, B: 1}, {R: 0.5, G: 0.5, B: 0.5}, {}} {
		tinted := withHue(c, 240)
		assert.NotEqual(t, c, tinted)
		assert.InDelta(t, 240, hueOf(tinted), 2)
		assert.Greater(t, tinted.B, tinted.R)
	}
}
