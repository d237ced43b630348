package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyMerge is returned by Builder.Merge when there is nothing to merge.
var ErrEmptyMerge = errors.New("scene: merge of zero geometries")

// Material describes the surface shared by faces.
type Material struct {
	Name  string
	Color mgl32.Vec3
}

// Grass is the only terrain material.
var Grass = Material{Name: "grass", Color: mgl32.Vec3{0.36, 0.62, 0.24}}

// Geometry is a handle to a renderable primitive owned by a Builder.
type Geometry interface {
	Tag() string
	SetPosition(p mgl32.Vec3)
	SetRotation(r mgl32.Vec3) // euler angles in radians
	SetMaterial(m Material)
	SetCheckCollisions(enabled bool)
	SetReceiveShadows(enabled bool)
}

// Builder creates and merges geometry.
type Builder interface {
	// CreatePlane returns a unit plane centered at the origin facing -Z.
	CreatePlane(tag string) Geometry
	// Merge bakes every part into a single geometry. It returns
	// ErrEmptyMerge when parts is empty.
	Merge(tag string, parts []Geometry) (Geometry, error)
}

// Sink accepts finished chunk geometry for display.
type Sink interface {
	Attach(g Geometry) error
}

// VertexSource is implemented by geometry that can expose baked vertices
// (interleaved pos.xyz + normal.xyz).
type VertexSource interface {
	Vertices() []float32
}
