package geometry

import (
	"fmt"
	"sync"

	"voxel-terrain/internal/scene"
)

// Builder is an in-process scene.Builder that produces CPU meshes.
// It is safe for concurrent use.
type Builder struct {
	mu     sync.Mutex
	planes int
	merges int
}

// NewBuilder creates a new geometry builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// CreatePlane returns a unit plane facing -Z.
func (b *Builder) CreatePlane(tag string) scene.Geometry {
	b.mu.Lock()
	b.planes++
	b.mu.Unlock()

	local := make([]float32, len(planeVertices))
	copy(local, planeVertices)
	return &Mesh{tag: tag, local: local}
}

// Merge bakes the transforms of parts into one mesh. Material and flags are
// taken from the first part.
func (b *Builder) Merge(tag string, parts []scene.Geometry) (scene.Geometry, error) {
	if len(parts) == 0 {
		return nil, scene.ErrEmptyMerge
	}

	meshes := make([]*Mesh, 0, len(parts))
	total := 0
	for i, p := range parts {
		m, ok := p.(*Mesh)
		if !ok || m == nil {
			return nil, fmt.Errorf("geometry: merge %q: part %d is %T, not *geometry.Mesh", tag, i, p)
		}
		meshes = append(meshes, m)
		total += len(m.local)
	}

	out := &Mesh{
		tag:             tag,
		local:           make([]float32, 0, total),
		Material:        meshes[0].Material,
		CheckCollisions: meshes[0].CheckCollisions,
		ReceiveShadows:  meshes[0].ReceiveShadows,
	}
	for _, m := range meshes {
		out.local = append(out.local, m.Vertices()...)
	}

	b.mu.Lock()
	b.merges++
	b.mu.Unlock()
	return out, nil
}

// Stats returns the number of planes created and merges performed.
func (b *Builder) Stats() (planes, merges int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.planes, b.merges
}
