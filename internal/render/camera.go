package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/galaxy-visualization/internal/config"
)

const minPolar = 0.01

// Camera orbits the origin. Angles follow the usual spherical convention:
// Polar is measured from +Y, Azimuth around Y starting at +Z.
type Camera struct {
	Azimuth  float32
	Polar    float32
	Distance float32

	// pending rotation, bled off by Update
	dAzimuth float32
	dPolar   float32
}

// NewCamera returns a camera on +Z looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		Polar:    math32.Pi / 2,
		Distance: config.CameraDistance,
	}
}

// Orbit queues a rotation for a pointer drag of (dx, dy) pixels.
func (c *Camera) Orbit(dx, dy float32) {
	c.dAzimuth -= dx * config.OrbitSpeed
	c.dPolar -= dy * config.OrbitSpeed
}

// Zoom moves the camera along its view ray. Positive wheel values move in.
func (c *Camera) Zoom(wheel float32) {
	c.Distance *= math32.Pow(1-config.ZoomSpeed, wheel)
	c.Distance = clamp32(c.Distance, config.MinCameraDistance, config.MaxCameraDistance)
}

// Update applies a damped share of the pending rotation. Call once per tick.
func (c *Camera) Update() {
	c.Azimuth += c.dAzimuth * config.CameraDamping
	c.Polar += c.dPolar * config.CameraDamping
	c.Polar = clamp32(c.Polar, minPolar, math32.Pi-minPolar)

	c.dAzimuth *= 1 - config.CameraDamping
	c.dPolar *= 1 - config.CameraDamping
}

// Eye returns the camera position.
func (c *Camera) Eye() mgl32.Vec3 {
	sinPolar := math32.Sin(c.Polar)
	return mgl32.Vec3{
		c.Distance * sinPolar * math32.Sin(c.Azimuth),
		c.Distance * math32.Cos(c.Polar),
		c.Distance * sinPolar * math32.Cos(c.Azimuth),
	}
}

// View returns the world to camera transform.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection for a viewport aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(config.CameraFOV), aspect, config.CameraNear, config.CameraFar)
}

func clamp32(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
