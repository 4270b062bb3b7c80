package galaxy

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParametersValid(t *testing.T) {
	p := DefaultParameters()
	require.NoError(t, p.Validate())
	assert.Equal(t, p, p.Clamp())
	assert.Equal(t, "#ff6030", p.InsideColor.Hex())
	assert.Equal(t, "#1b3984", p.OutsideColor.Hex())
}

func TestValidateAcceptsContractMinimum(t *testing.T) {
	p := DefaultParameters()
	p.Count = 1
	p.Branches = 1
	p.RandomnessPower = 1
	p.Randomness = 0
	assert.NoError(t, p.Validate())
}

func TestValidateNamesField(t *testing.T) {
	p := DefaultParameters()
	p.Branches = 0
	err := p.Validate()
	require.ErrorIs(t, err, ErrInvalidParameters)
	assert.Contains(t, err.Error(), "branches")
}

func TestClamp(t *testing.T) {
	p := Parameters{
		Count:           1,
		Size:            5,
		Radius:          -2,
		Branches:        42,
		Spin:            -9,
		Randomness:      3,
		RandomnessPower: 0,
		InsideColor:     Color{R: 1.5, G: -1, B: 0.5},
	}
	c := p.Clamp()
	assert.Equal(t, 1000, c.Count)
	assert.Equal(t, 0.1, c.Size)
	assert.Equal(t, 0.1, c.Radius)
	assert.Equal(t, 8, c.Branches)
	assert.Equal(t, -3.0, c.Spin)
	assert.Equal(t, 2.0, c.Randomness)
	assert.Equal(t, 3.0, c.RandomnessPower)
	assert.Equal(t, Color{R: 1, G: 0, B: 0.5}, c.InsideColor)
	assert.NoError(t, c.Validate())
}

func TestRangeSnap(t *testing.T) {
	assert.Equal(t, 2600.0, Bounds.Count.Snap(2650))
	assert.Equal(t, 2400.0, Bounds.Count.Snap(2499))
	assert.Equal(t, 10000.0, Bounds.Count.Snap(12000))
	assert.Equal(t, 5.0, Bounds.Branches.Snap(4.6))
	assert.InDelta(t, 0.3, Bounds.Radius.Snap(0.33), 1e-9)
	assert.Equal(t, 7.0, Range{Min: 0, Max: 10}.Snap(7))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#fff")
	require.NoError(t, err)
	assert.InDelta(t, 1, c.R, 1e-9)
	assert.InDelta(t, 1, c.G, 1e-9)
	assert.InDelta(t, 1, c.B, 1e-9)

	_, err = ParseColor("orange")
	assert.Error(t, err)
	assert.Panics(t, func() { MustParseColor("#zz0000") })
}

func TestMix(t *testing.T) {
	a := MustParseColor("#ff6030")
	b := MustParseColor("#1b3984")
	assert.Equal(t, a, Mix(a, b, 0))
	assert.Equal(t, b, Mix(a, b, 1))

	mid := Mix(Color{}, Color{R: 1, G: 1, B: 1}, 0.25)
	assert.InDelta(t, 0.25, mid.R, 1e-12)
	assert.InDelta(t, 0.25, mid.G, 1e-12)
	assert.InDelta(t, 0.25, mid.B, 1e-12)
}

func TestColorFrom(t *testing.T) {
	c := ColorFrom(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	assert.Equal(t, Color{R: 1, G: 0, B: 1}, c)
	assert.Equal(t, Color{}, ColorFrom(color.RGBA{}))
}
