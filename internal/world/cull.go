package world

import (
	"voxel-terrain/internal/scene"
)

// FaceBuilder builds the geometry of one face of the cell at a world coordinate.
type FaceBuilder interface {
	BuildFace(pos Coord, d Direction) scene.Geometry
}

// CellFaces is the set of visible directions of a solid cell together with
// the geometry built for each of them.
type CellFaces struct {
	pos   Coord
	set   DirectionSet
	walls [numDirections]scene.Geometry
}

// Position returns the world coordinate of the cell.
func (f *CellFaces) Position() Coord { return f.pos }

// Directions returns the directions that have a face.
func (f *CellFaces) Directions() DirectionSet { return f.set }

// Geometry returns the face built for d, or nil.
func (f *CellFaces) Geometry(d Direction) scene.Geometry {
	if d >= numDirections {
		return nil
	}
	return f.walls[d]
}

// Walls returns the built faces in build order.
func (f *CellFaces) Walls() []scene.Geometry {
	out := make([]scene.Geometry, 0, f.set.Len())
	for _, d := range Directions {
		if f.set.Has(d) && f.walls[d] != nil {
			out = append(out, f.walls[d])
		}
	}
	return out
}

// add builds and records faces for dirs not already present. It never
// removes a face.
func (f *CellFaces) add(dirs DirectionSet, fb FaceBuilder) int {
	added := 0
	for _, d := range dirs.Without(f.set).Slice() {
		var g scene.Geometry
		if fb != nil {
			g = fb.BuildFace(f.pos, d)
		}
		f.walls[d] = g
		f.set = f.set.With(d)
		added++
	}
	return added
}

// VisibleFaces returns the directions in which the cell at local coordinates
// borders an empty cell. Empty and out-of-range cells have no faces.
func (c *Chunk) VisibleFaces(x, y, z int) DirectionSet {
	if !c.inBounds(x, y, z) || c.cells[c.index(x, y, z)].IsEmpty() {
		return 0
	}
	var s DirectionSet
	for _, d := range Directions {
		o := d.Offset()
		if c.IsEmpty(x+o.X, y+o.Y, z+o.Z) {
			s = s.With(d)
		}
	}
	return s
}

// Generate runs the terrain pass and local face culling. Neighbors are not
// consulted, so boundary faces towards other chunks are left out until
// Stitch runs.
func (c *Chunk) Generate(h *HeightField, fb FaceBuilder) error {
	if err := c.Populate(h); err != nil {
		return err
	}
	for x := 0; x < c.size; x++ {
		for y := 0; y < c.depth; y++ {
			for z := 0; z < c.size; z++ {
				i := c.index(x, y, z)
				if c.cells[i].IsEmpty() {
					continue
				}
				f := &CellFaces{pos: c.WorldCoord(x, y, z)}
				f.add(c.VisibleFaces(x, y, z), fb)
				c.faces[i] = f
			}
		}
	}
	c.generated = true
	return nil
}
