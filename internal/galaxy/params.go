package galaxy

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters is wrapped by every error Validate returns.
var ErrInvalidParameters = errors.New("invalid galaxy parameters")

// Parameters controls one galaxy generation. Size is not used by the
// generator; it is carried along for the renderer.
type Parameters struct {
	Count           int
	Size            float64
	Radius          float64
	Branches        int
	Spin            float64
	Randomness      float64
	RandomnessPower float64
	InsideColor     Color
	OutsideColor    Color
}

// Range is the inclusive slider range and step of one parameter.
type Range struct {
	Min, Max, Step float64
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Snap rounds v to the nearest step counted from Min and clamps the result.
func (r Range) Snap(v float64) float64 {
	if r.Step <= 0 {
		return r.Clamp(v)
	}
	steps := math.Round((v - r.Min) / r.Step)
	return r.Clamp(r.Min + steps*r.Step)
}

// Bounds are the user-facing domains of the numeric parameters.
var Bounds = struct {
	Count, Size, Radius, Branches, Spin, Randomness, RandomnessPower Range
}{
	Count:           Range{1000, 10000, 200},
	Size:            Range{0.001, 0.1, 0.001},
	Radius:          Range{0.1, 4, 0.1},
	Branches:        Range{3, 8, 1},
	Spin:            Range{-3, 3, 0.001},
	Randomness:      Range{0, 2, 0.01},
	RandomnessPower: Range{3, 10, 0.001},
}

// DefaultParameters returns the startup parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		Count:           2500,
		Size:            0.01,
		Radius:          4,
		Branches:        3,
		Spin:            1,
		Randomness:      0.2,
		RandomnessPower: 3,
		InsideColor:     MustParseColor("#ff6030"),
		OutsideColor:    MustParseColor("#1b3984"),
	}
}

// Clamp returns p with every numeric field limited to Bounds.
func (p Parameters) Clamp() Parameters {
	p.Count = int(Bounds.Count.Clamp(float64(p.Count)))
	p.Size = Bounds.Size.Clamp(p.Size)
	p.Radius = Bounds.Radius.Clamp(p.Radius)
	p.Branches = int(Bounds.Branches.Clamp(float64(p.Branches)))
	p.Spin = Bounds.Spin.Clamp(p.Spin)
	p.Randomness = Bounds.Randomness.Clamp(p.Randomness)
	p.RandomnessPower = Bounds.RandomnessPower.Clamp(p.RandomnessPower)
	p.InsideColor = p.InsideColor.Clamped()
	p.OutsideColor = p.OutsideColor.Clamped()
	return p
}

// Validate reports whether p can be generated without producing NaN or
// infinite output. It is looser than Bounds: a single particle or a single
// branch is accepted.
func (p Parameters) Validate() error {
	switch {
	case p.Count < 1:
		return invalid("count", p.Count, "must be at least 1")
	case p.Branches < 1:
		return invalid("branches", p.Branches, "must be at least 1")
	case !finite(p.Radius) || p.Radius <= 0:
		return invalid("radius", p.Radius, "must be positive")
	case !finite(p.Size) || p.Size <= 0:
		return invalid("size", p.Size, "must be positive")
	case !finite(p.Spin):
		return invalid("spin", p.Spin, "must be finite")
	case !finite(p.Randomness) || p.Randomness < 0:
		return invalid("randomness", p.Randomness, "must not be negative")
	case !finite(p.RandomnessPower) || p.RandomnessPower < 1:
		return invalid("randomness power", p.RandomnessPower, "must be at least 1")
	case !p.InsideColor.IsValid():
		return invalid("inside color", p.InsideColor, "channels must be in [0, 1]")
	case !p.OutsideColor.IsValid():
		return invalid("outside color", p.OutsideColor, "channels must be in [0, 1]")
	}
	return nil
}

func invalid(field string, v any, why string) error {
	return fmt.Errorf("%w: %s %v %s", ErrInvalidParameters, field, v, why)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
