package graphics

import (
	"math"

	"voxel-terrain/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a fixed target at a fixed distance and height.
type Camera struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	Target   mgl32.Vec3
	Distance float32
	Height   float32

	settings *config.RenderSettings
	angle    float32
}

// NewCamera creates an orbit camera for a viewport of the given size.
func NewCamera(width, height int, settings *config.RenderSettings) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Distance:    40,
		Height:      25,
		settings:    settings,
	}
}

// SetViewport updates the aspect ratio.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

// Update advances the orbit by dt seconds.
func (c *Camera) Update(dt float64) {
	c.angle += c.settings.OrbitSpeed() * float32(dt)
	if c.angle > 2*math.Pi {
		c.angle -= 2 * math.Pi
	}
}

// Eye returns the camera position.
func (c *Camera) Eye() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(c.angle))
	return c.Target.Add(mgl32.Vec3{
		c.Distance * float32(cos),
		c.Height,
		c.Distance * float32(sin),
	})
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.settings.FOV()), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}
