package world

import (
	"fmt"
	"testing"

	"voxel-terrain/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

type stubFace struct{ tag string }

func (f *stubFace) Tag() string { return f.tag }
func (f *stubFace) SetPosition(mgl32.Vec3) {}
func (f *stubFace) SetRotation(mgl32.Vec3) {}
func (f *stubFace) SetMaterial(scene.Material) {}
func (f *stubFace) SetCheckCollisions(bool) {}
func (f *stubFace) SetReceiveShadows(bool) {}

// recordingBuilder remembers every face it was asked to build.
type recordingBuilder struct {
	built []string
}

func (b *recordingBuilder) BuildFace(pos Coord, d Direction) scene.Geometry {
	tag := fmt.Sprintf("%s@%d,%d,%d", d, pos.X, pos.Y, pos.Z)
	b.built = append(b.built, tag)
	return &stubFace{tag: tag}
}

// stepNoise gives height 10 inside the world box [x0,x1)×[z0,z1) and 12
// everywhere else when sampled with scale 1.
func stepNoise(x0, x1, z0, z1 int) NoiseSource {
	return NoiseFunc(func(u, v float64) float64 {
		if u >= float64(x0) && u < float64(x1) && v >= float64(z0) && v < float64(z1) {
			return -1
		}
		return 0
	})
}

func generated(t *testing.T, h *HeightField, fb FaceBuilder, size, depth, xOff, zOff int) *Chunk {
	t.Helper()
	c := NewChunk(size, depth, xOff, zOff)
	if err := c.Generate(h, fb); err != nil {
		t.Fatalf("Generate chunk at (%d,%d): %v", xOff, zOff, err)
	}
	return c
}

// boundarySets snapshots the direction set of every solid boundary cell.
func boundarySets(c *Chunk) map[Coord]DirectionSet {
	out := make(map[Coord]DirectionSet)
	c.eachBoundaryColumn(func(x, z int) {
		for y := 0; y < c.Depth(); y++ {
			if f := c.Faces(x, y, z); f != nil {
				out[Coord{x, y, z}] = f.Directions()
			}
		}
	})
	return out
}
