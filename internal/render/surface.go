package render

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/galaxy-visualization/internal/config"
)

const spriteSize = 16

// Surface draws the single live galaxy mesh.
type Surface struct {
	points *Points
	sprite *ebiten.Image
}

// NewSurface returns a surface with no galaxy installed.
func NewSurface() *Surface {
	return &Surface{}
}

// Points returns the installed mesh, or nil.
func (s *Surface) Points() *Points { return s.points }

// Install replaces the current mesh. The previous one is disposed before p
// becomes visible, so a frame never mixes two generations.
func (s *Surface) Install(p *Points) {
	if s.points == p {
		return
	}
	s.points.Dispose()
	s.points = p
}

// Dispose releases the installed mesh.
func (s *Surface) Dispose() {
	s.points.Dispose()
	s.points = nil
}

// Draw renders the galaxy rotated by rotationY radians about the Y axis as
// additive point sprites with perspective size attenuation.
func (s *Surface) Draw(screen *ebiten.Image, cam *Camera, rotationY float32) {
	p := s.points
	if p.Len() == 0 {
		return
	}
	if s.sprite == nil {
		s.sprite = ebiten.NewImageFromImage(spriteImage(spriteSize))
	}

	bounds := screen.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	if w == 0 || h == 0 {
		return
	}
	view := cam.View().Mul4(mgl32.HomogRotate3DY(rotationY))
	proj := cam.Projection(w / h)

	p.vertices = p.vertices[:0]
	buf := p.buf
	for i := 0; i < buf.Len(); i++ {
		x, y, z := buf.Position(i)
		sx, sy, depth, ok := project(view, proj, w, h, mgl32.Vec3{x, y, z})
		if !ok {
			continue
		}
		r, g, b := buf.Color(i)
		p.appendQuad(sx, sy, pointRadius(p.size, h, depth), spriteSize, r, g, b)
	}

	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendLighter}
	for _, b := range batches(len(p.vertices)) {
		screen.DrawTriangles(p.vertices[b.start:b.end], p.indices[:b.quads*6], s.sprite, op)
	}
}

// batch is a vertex range drawn with one DrawTriangles call.
type batch struct {
	start, end, quads int
}

// batches splits a quad vertex count into ranges of at most maxBatch quads.
func batches(vertices int) []batch {
	var out []batch
	for start := 0; start < vertices; start += maxBatch * 4 {
		end := min(start+maxBatch*4, vertices)
		out = append(out, batch{start: start, end: end, quads: (end - start) / 4})
	}
	return out
}

// project maps a world point through view and projection into screen
// pixels. depth is the distance in front of the camera; ok is false for
// points outside the near and far planes or the viewport.
func project(view, proj mgl32.Mat4, w, h float32, pos mgl32.Vec3) (sx, sy, depth float32, ok bool) {
	eye := view.Mul4x1(pos.Vec4(1))
	depth = -eye.Z()
	if depth < config.CameraNear || depth > config.CameraFar {
		return 0, 0, depth, false
	}
	clip := proj.Mul4x1(eye)
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	if math32.Abs(nx) > 1.05 || math32.Abs(ny) > 1.05 {
		return 0, 0, depth, false
	}
	return (nx + 1) / 2 * w, (1 - ny) / 2 * h, depth, true
}

// pointRadius converts a world-space point size to a half extent in
// pixels, never smaller than half a pixel.
func pointRadius(size, viewportH, depth float32) float32 {
	return math32.Max(0.5, size*viewportH/2/depth/2)
}

// spriteImage is a white disc with a soft quadratic falloff.
func spriteImage(n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	c := float32(n) / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx, dy := (float32(x)+0.5-c)/c, (float32(y)+0.5-c)/c
			a := 1 - (dx*dx + dy*dy)
			if a <= 0 {
				continue
			}
			v := uint8(a * a * 255)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return img
}
