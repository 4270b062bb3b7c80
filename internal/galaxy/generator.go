package galaxy

import (
	"math"
	"math/rand/v2"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// SourceFunc adapts a function to Source.
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 { return f() }

// Generator fills particle buffers. It keeps no reference to the buffers
// it returns.
type Generator struct {
	src Source
}

// NewGenerator returns a generator drawing from src, or from the unseeded
// global source when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = SourceFunc(rand.Float64)
	}
	return &Generator{src: src}
}

// BranchAngle is the arm angle of particle i; arms are assigned round robin.
func BranchAngle(i, branches int) float64 {
	return float64(i%branches) / float64(branches) * 2 * math.Pi
}

// Generate returns a fresh buffer of p.Count particles.
//
// Per particle the source is consumed in this order: radius, then a
// magnitude and a sign for each of x, y and z.
func (g *Generator) Generate(p Parameters) (*Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	buf := newBuffer(p.Count)
	for i := 0; i < p.Count; i++ {
		radius := g.src.Float64() * p.Radius
		angle := BranchAngle(i, p.Branches) + radius*p.Spin

		jx := g.jitter(p)
		jy := g.jitter(p)
		jz := g.jitter(p)

		x := math.Cos(angle)*radius + jx
		z := math.Sin(angle)*radius + jz

		buf.set(i, x, jy, z, Mix(p.InsideColor, p.OutsideColor, radius/p.Radius))
	}
	return buf, nil
}

// jitter is a signed power-law offset; a higher power pulls it toward zero.
func (g *Generator) jitter(p Parameters) float64 {
	mag := math.Pow(g.src.Float64(), p.RandomnessPower)
	if g.src.Float64() >= 0.5 {
		mag = -mag
	}
	return mag * p.Randomness
}
