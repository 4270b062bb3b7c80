package galaxy

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with channels in [0, 1].
type Color = colorful.Color

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// MustParseColor is ParseColor for constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Mix interpolates from inside to outside in RGB space. Mix(a, b, 0) == a
// and Mix(a, b, 1) == b exactly.
func Mix(inside, outside Color, t float64) Color {
	return Color{
		R: inside.R*(1-t) + outside.R*t,
		G: inside.G*(1-t) + outside.G*t,
		B: inside.B*(1-t) + outside.B*t,
	}
}

// ColorFrom converts any color.Color, ignoring alpha.
func ColorFrom(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// un-premultiply
	return Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
}
