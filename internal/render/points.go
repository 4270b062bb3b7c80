package render

import (
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/galaxy-visualization/internal/galaxy"
)

// maxBatch keeps every DrawTriangles call below the uint16 index limit.
const maxBatch = (1<<16 - 1) / 4

var live atomic.Int64

// Live returns how many meshes have been created and not yet disposed.
func Live() int {
	return int(live.Load())
}

// Points is a drawable galaxy: it owns one particle buffer and the vertex
// batch the buffer is projected into each frame.
type Points struct {
	buf      *galaxy.Buffer
	size     float32
	vertices []ebiten.Vertex
	indices  []uint16
	disposed bool
}

// NewPoints takes ownership of buf. size is the point diameter in world units.
func NewPoints(buf *galaxy.Buffer, size float64) *Points {
	n := buf.Len()
	batch := min(n, maxBatch)
	indices := make([]uint16, 0, batch*6)
	for q := 0; q < batch; q++ {
		v := uint16(q * 4)
		indices = append(indices, v, v+1, v+2, v+1, v+3, v+2)
	}
	live.Add(1)
	return &Points{
		buf:      buf,
		size:     float32(size),
		vertices: make([]ebiten.Vertex, 0, n*4),
		indices:  indices,
	}
}

// Len returns the number of particles, zero once disposed.
func (p *Points) Len() int {
	if p == nil {
		return 0
	}
	return p.buf.Len()
}

// Size returns the point diameter in world units.
func (p *Points) Size() float32 { return p.size }

// Buffer returns the particle data, nil once disposed.
func (p *Points) Buffer() *galaxy.Buffer { return p.buf }

// Disposed reports whether Dispose has been called.
func (p *Points) Disposed() bool { return p.disposed }

// Dispose drops the particle buffer and vertex batch. Further calls do nothing.
func (p *Points) Dispose() {
	if p == nil || p.disposed {
		return
	}
	p.disposed = true
	p.buf = nil
	p.vertices = nil
	p.indices = nil
	live.Add(-1)
}

// appendQuad adds a screen-space square centred on (x, y) sampling the
// whole sprite, tinted with the particle color.
func (p *Points) appendQuad(x, y, half, sprite float32, r, g, b float32) {
	for _, c := range [4][4]float32{
		{-1, -1, 0, 0},
		{1, -1, sprite, 0},
		{-1, 1, 0, sprite},
		{1, 1, sprite, sprite},
	} {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX:   x + c[0]*half,
			DstY:   y + c[1]*half,
			SrcX:   c[2],
			SrcY:   c[3],
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: 1,
		})
	}
}
