package meshing

import (
	"fmt"
	"math"

	"voxel-terrain/internal/scene"
	"voxel-terrain/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// placement positions a unit plane (facing -Z) on one face of a unit cell.
type placement struct {
	offset   mgl32.Vec3
	rotation mgl32.Vec3 // euler radians
}

var placements = map[world.Direction]placement{
	world.Top:    {offset: mgl32.Vec3{0, 0.5, 0}, rotation: mgl32.Vec3{halfPi, 0, 0}},
	world.Bottom: {offset: mgl32.Vec3{0, -0.5, 0}, rotation: mgl32.Vec3{-halfPi, 0, 0}},
	world.Right:  {offset: mgl32.Vec3{0.5, 0, 0}, rotation: mgl32.Vec3{0, -halfPi, 0}},
	world.Left:   {offset: mgl32.Vec3{-0.5, 0, 0}, rotation: mgl32.Vec3{0, halfPi, 0}},
	world.Back:   {offset: mgl32.Vec3{0, 0, 0.5}, rotation: mgl32.Vec3{0, math.Pi, 0}},
	world.Front:  {offset: mgl32.Vec3{0, 0, -0.5}},
}

const halfPi = math.Pi / 2

// CellMesher turns cell faces into geometry through a scene.Builder.
// It implements world.FaceBuilder.
type CellMesher struct {
	builder  scene.Builder
	material scene.Material
}

// NewCellMesher creates a mesher that gives every face material m.
func NewCellMesher(b scene.Builder, m scene.Material) *CellMesher {
	return &CellMesher{builder: b, material: m}
}

// FaceTag names the plane for face d of the cell at world position pos.
func FaceTag(pos world.Coord, d world.Direction) string {
	return fmt.Sprintf("%sx%dy%dz%d", d, pos.X, pos.Y, pos.Z)
}

// BuildFace creates one oriented unit plane on face d of the cell centered at pos.
func (m *CellMesher) BuildFace(pos world.Coord, d world.Direction) scene.Geometry {
	p, ok := placements[d]
	if !ok {
		return nil
	}
	g := m.builder.CreatePlane(FaceTag(pos, d))
	center := mgl32.Vec3{float32(pos.X), float32(pos.Y), float32(pos.Z)}
	g.SetPosition(center.Add(p.offset))
	g.SetRotation(p.rotation)
	g.SetMaterial(m.material)
	g.SetCheckCollisions(true)
	g.SetReceiveShadows(true)
	return g
}

// BuildCell builds a face for every direction in dirs and merges them into one
// cell mesh. An empty set yields scene.ErrEmptyMerge.
func (m *CellMesher) BuildCell(pos world.Coord, dirs world.DirectionSet) (scene.Geometry, error) {
	parts := make([]scene.Geometry, 0, dirs.Len())
	for _, d := range dirs.Slice() {
		if g := m.BuildFace(pos, d); g != nil {
			parts = append(parts, g)
		}
	}
	return m.builder.Merge(cellTag(pos), parts)
}

// MergeCell merges the faces already built for one cell.
func (m *CellMesher) MergeCell(f *world.CellFaces) (scene.Geometry, error) {
	return m.builder.Merge(cellTag(f.Position()), f.Walls())
}

// MergeChunk merges every cell of c into a single chunk mesh tagged tag.
// Cells without faces are skipped; a chunk with no faces at all yields
// scene.ErrEmptyMerge.
func (m *CellMesher) MergeChunk(tag string, c *world.Chunk) (scene.Geometry, error) {
	var (
		cells []scene.Geometry
		err   error
	)
	c.EachFaces(func(f *world.CellFaces) {
		if err != nil || f.Directions() == 0 {
			return
		}
		g, mergeErr := m.MergeCell(f)
		if mergeErr != nil {
			err = fmt.Errorf("merge cell %v: %w", f.Position(), mergeErr)
			return
		}
		cells = append(cells, g)
	})
	if err != nil {
		return nil, err
	}
	return m.builder.Merge(tag, cells)
}

func cellTag(pos world.Coord) string {
	return fmt.Sprintf("cellx%dy%dz%d", pos.X, pos.Y, pos.Z)
}
