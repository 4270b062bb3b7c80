package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/crazy3lf/colorconv"

	"github.com/iburimskiy/galaxy-visualization/internal/galaxy"
)

// hsvToRgb converts HSV to RGB (hue: degrees, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b, err := colorconv.HSVToRGB(h, clamp01(s), clamp01(v))
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hueOf returns the hue of c in degrees.
func hueOf(c galaxy.Color) float64 {
	r, g, b := c.Clamped().RGB255()
	h, _, _ := colorconv.RGBToHSV(r, g, b)
	return h
}

// Floors applied while dragging a hue so greys, white and black pick up
// the new hue instead of staying colorless.
const (
	minHueSaturation = 0.25
	minHueValue      = 0.25
)

// withHue keeps the saturation and value of c, raised to the floors above,
// and replaces its hue.
func withHue(c galaxy.Color, hue float64) galaxy.Color {
	r, g, b := c.Clamped().RGB255()
	_, s, v := colorconv.RGBToHSV(r, g, b)
	s = max(s, minHueSaturation)
	v = max(v, minHueValue)
	return galaxy.ColorFrom(hsvToRgb(hue, s, v))
}

func toRGBA(c galaxy.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatValue prints v with as many decimals as step needs.
func formatValue(v, step float64) string {
	decimals := 0
	for s := step; decimals < 4 && s-math.Floor(s) > 1e-9; s *= 10 {
		decimals++
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

// formatDuration formats a duration as milliseconds
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
