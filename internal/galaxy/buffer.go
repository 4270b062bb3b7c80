package galaxy

// Buffer is one generated galaxy: flat xyz positions and rgb colors,
// three floats per particle, index aligned.
type Buffer struct {
	Positions []float32
	Colors    []float32
}

func newBuffer(count int) *Buffer {
	return &Buffer{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
	}
}

// Len returns the number of particles.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Positions) / 3
}

// Position returns the coordinates of particle i.
func (b *Buffer) Position(i int) (x, y, z float32) {
	i3 := i * 3
	return b.Positions[i3], b.Positions[i3+1], b.Positions[i3+2]
}

// Color returns the color of particle i.
func (b *Buffer) Color(i int) (r, g, bl float32) {
	i3 := i * 3
	return b.Colors[i3], b.Colors[i3+1], b.Colors[i3+2]
}

func (b *Buffer) set(i int, x, y, z float64, c Color) {
	i3 := i * 3
	b.Positions[i3] = float32(x)
	b.Positions[i3+1] = float32(y)
	b.Positions[i3+2] = float32(z)
	b.Colors[i3] = float32(c.R)
	b.Colors[i3+1] = float32(c.G)
	b.Colors[i3+2] = float32(c.B)
}
