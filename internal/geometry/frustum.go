package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min, Max mgl32.Vec3
}

// Grow returns the box inflated by margin on every side.
func (b AABB) Grow(margin float32) AABB {
	d := mgl32.Vec3{margin, margin, margin}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Bounds returns the box enclosing the positions of interleaved vertices.
// ok is false when there are none.
func Bounds(vertices []float32) (box AABB, ok bool) {
	if len(vertices) < VertexStride {
		return AABB{}, false
	}
	box.Min = mgl32.Vec3{vertices[0], vertices[1], vertices[2]}
	box.Max = box.Min
	for i := VertexStride; i+VertexStride <= len(vertices); i += VertexStride {
		for axis := 0; axis < 3; axis++ {
			v := vertices[i+axis]
			box.Min[axis] = min(box.Min[axis], v)
			box.Max[axis] = max(box.Max[axis], v)
		}
	}
	return box, true
}

// Bounds returns the world-space box of the baked mesh.
func (m *Mesh) Bounds() (AABB, bool) {
	return Bounds(m.Vertices())
}

type plane struct {
	a, b, c, d float32
}

func (p plane) normalized() plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// Frustum is the six clip planes of a projection*view matrix, in the order
// left, right, bottom, top, near, far.
type Frustum [6]plane

// NewFrustum extracts the planes of clip. mgl32 matrices are column-major.
func NewFrustum(clip mgl32.Mat4) Frustum {
	row := func(r int) [4]float32 {
		return [4]float32{clip[r], clip[4+r], clip[8+r], clip[12+r]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	combine := func(a [4]float32, sign float32) plane {
		return plane{
			r3[0] + sign*a[0],
			r3[1] + sign*a[1],
			r3[2] + sign*a[2],
			r3[3] + sign*a[3],
		}.normalized()
	}
	return Frustum{
		combine(r0, 1), combine(r0, -1),
		combine(r1, 1), combine(r1, -1),
		combine(r2, 1), combine(r2, -1),
	}
}

// Intersects reports whether any part of box may be inside the frustum.
func (f Frustum) Intersects(box AABB) bool {
	for _, p := range f {
		// positive vertex: the box corner furthest along the plane normal
		px, py, pz := box.Max.X(), box.Max.Y(), box.Max.Z()
		if p.a < 0 {
			px = box.Min.X()
		}
		if p.b < 0 {
			py = box.Min.Y()
		}
		if p.c < 0 {
			pz = box.Min.Z()
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}
