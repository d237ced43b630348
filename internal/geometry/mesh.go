package geometry

import (
	"voxel-terrain/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz)
const VertexStride = 6

// planeVertices is a unit quad in the XY plane facing -Z, two triangles
// wound counter-clockwise when viewed from the -Z side.
var planeVertices = []float32{
	0.5, -0.5, 0, 0, 0, -1,
	-0.5, -0.5, 0, 0, 0, -1,
	-0.5, 0.5, 0, 0, 0, -1,
	-0.5, 0.5, 0, 0, 0, -1,
	0.5, 0.5, 0, 0, 0, -1,
	0.5, -0.5, 0, 0, 0, -1,
}

// Mesh is a CPU-side triangle list with a pending transform.
type Mesh struct {
	tag      string
	local    []float32
	position mgl32.Vec3
	rotation mgl32.Vec3

	Material        scene.Material
	CheckCollisions bool
	ReceiveShadows  bool
}

func (m *Mesh) Tag() string { return m.tag }
func (m *Mesh) SetPosition(p mgl32.Vec3) { m.position = p }
func (m *Mesh) SetRotation(r mgl32.Vec3) { m.rotation = r }
func (m *Mesh) SetMaterial(mat scene.Material) { m.Material = mat }
func (m *Mesh) SetCheckCollisions(enabled bool) { m.CheckCollisions = enabled }
func (m *Mesh) SetReceiveShadows(enabled bool) { m.ReceiveShadows = enabled }
func (m *Mesh) Position() mgl32.Vec3 { return m.position }
func (m *Mesh) Rotation() mgl32.Vec3 { return m.rotation }
func (m *Mesh) VertexCount() int { return len(m.local) / VertexStride }

// Transform returns the model matrix: translation * Ry * Rx * Rz.
func (m *Mesh) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(m.position.X(), m.position.Y(), m.position.Z()).
		Mul4(m.rotationMatrix())
}

func (m *Mesh) rotationMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(m.rotation.Y()).
		Mul4(mgl32.HomogRotate3DX(m.rotation.X())).
		Mul4(mgl32.HomogRotate3DZ(m.rotation.Z()))
}

// Vertices returns the interleaved vertices with the transform applied.
func (m *Mesh) Vertices() []float32 {
	out := make([]float32, len(m.local))
	model := m.Transform()
	rot := m.rotationMatrix()
	for i := 0; i+VertexStride <= len(m.local); i += VertexStride {
		p := model.Mul4x1(mgl32.Vec4{m.local[i], m.local[i+1], m.local[i+2], 1})
		n := rot.Mul4x1(mgl32.Vec4{m.local[i+3], m.local[i+4], m.local[i+5], 0})
		out[i] = snap(p.X())
		out[i+1] = snap(p.Y())
		out[i+2] = snap(p.Z())
		out[i+3] = snap(n.X())
		out[i+4] = snap(n.Y())
		out[i+5] = snap(n.Z())
	}
	return out
}

// snap rounds away trigonometric noise so that faces land exactly on the
// half-unit grid (sin(pi) is not zero in float32).
func snap(v float32) float32 {
	const q = 1 << 12
	r := float32(int64(v*q+sign(v)*0.5)) / q
	if r == 0 {
		return 0
	}
	return r
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
