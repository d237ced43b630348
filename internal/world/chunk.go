package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for direct cell access outside the chunk box.
	ErrOutOfRange = errors.New("world: coordinate out of chunk range")
	// ErrAlreadyPopulated is returned when the terrain pass runs twice.
	ErrAlreadyPopulated = errors.New("world: chunk already populated")
	// ErrNotGenerated is returned when stitching runs before the chunk or one
	// of its neighbors has finished local generation.
	ErrNotGenerated = errors.New("world: chunk not generated")
	// ErrDimensionMismatch is returned when linking chunks of different sizes.
	ErrDimensionMismatch = errors.New("world: neighbor dimensions differ")
)

// Neighbors holds non-owning links to the four horizontally adjacent chunks.
// Any of them may be nil.
type Neighbors struct {
	PrevX, NextX *Chunk
	PrevZ, NextZ *Chunk
}

func (n Neighbors) each(fn func(*Chunk) error) error {
	for _, c := range [...]*Chunk{n.PrevX, n.NextX, n.PrevZ, n.NextZ} {
		if c == nil {
			continue
		}
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

// Chunk is a size×depth×size block of cells at a fixed world offset.
//
// Cell states are written once by the terrain pass. Cell faces are written by
// local culling and then only grown by stitching.
type Chunk struct {
	size, depth      int
	xOffset, zOffset int

	cells []CellState
	faces []*CellFaces

	neighbors Neighbors
	populated bool
	generated bool
}

// NewChunk allocates a chunk. Offsets are in world cells.
func NewChunk(size, depth, xOffset, zOffset int) *Chunk {
	if size < 1 {
		size = 1
	}
	if depth < 1 {
		depth = 1
	}
	volume := size * depth * size
	return &Chunk{
		size:    size,
		depth:   depth,
		xOffset: xOffset,
		zOffset: zOffset,
		cells:   make([]CellState, volume),
		faces:   make([]*CellFaces, volume),
	}
}

func (c *Chunk) Size() int  { return c.size }
func (c *Chunk) Depth() int { return c.depth }

// Offset returns the world X and Z of local cell (0, *, 0).
func (c *Chunk) Offset() (x, z int) { return c.xOffset, c.zOffset }

// Neighbors returns the currently linked neighbors.
func (c *Chunk) Neighbors() Neighbors { return c.neighbors }

// Generated reports whether local generation has completed.
func (c *Chunk) Generated() bool { return c.generated }

// index converts local coordinates to a flat index. Callers must check bounds.
func (c *Chunk) index(x, y, z int) int {
	return (x*c.depth+y)*c.size + z
}

func (c *Chunk) inBounds(x, y, z int) bool {
	return x >= 0 && x < c.size && y >= 0 && y < c.depth && z >= 0 && z < c.size
}

// Cell returns the state at local coordinates.
func (c *Chunk) Cell(x, y, z int) (CellState, error) {
	if !c.inBounds(x, y, z) {
		return Empty, fmt.Errorf("cell (%d,%d,%d) in %dx%dx%d chunk: %w", x, y, z, c.size, c.depth, c.size, ErrOutOfRange)
	}
	return c.cells[c.index(x, y, z)], nil
}

// WorldCoord converts a local coordinate into world space.
func (c *Chunk) WorldCoord(x, y, z int) Coord {
	return Coord{X: x + c.xOffset, Y: y, Z: z + c.zOffset}
}

// Populate runs the terrain pass: one solid cell per column at the surface
// height. Columns whose height falls outside the chunk stay empty.
func (c *Chunk) Populate(h *HeightField) error {
	if c.populated {
		return ErrAlreadyPopulated
	}
	for z := 0; z < c.size; z++ {
		for x := 0; x < c.size; x++ {
			y := h.Height(x+c.xOffset, z+c.zOffset)
			if y < 0 || y >= c.depth {
				continue
			}
			c.cells[c.index(x, y, z)] = Solid(MaterialGrass)
		}
	}
	c.populated = true
	return nil
}

// IsEmpty reports whether the cell at local coordinates is empty, looking one
// step into a linked neighbor when x or z is just outside the chunk. Anything
// that cannot be resolved counts as solid.
func (c *Chunk) IsEmpty(x, y, z int) bool {
	if c.inBounds(x, y, z) {
		return c.cells[c.index(x, y, z)].IsEmpty()
	}
	if y < 0 || y >= c.depth {
		return false
	}

	xIn := x >= 0 && x < c.size
	zIn := z >= 0 && z < c.size

	var n *Chunk
	switch {
	case x == -1 && zIn:
		n, x = c.neighbors.PrevX, c.size-1
	case x == c.size && zIn:
		n, x = c.neighbors.NextX, 0
	case z == -1 && xIn:
		n, z = c.neighbors.PrevZ, c.size-1
	case z == c.size && xIn:
		n, z = c.neighbors.NextZ, 0
	}
	if n == nil || !n.populated {
		return false
	}
	return n.cells[n.index(x, y, z)].IsEmpty()
}

// Link records the neighbor set used by cross-boundary queries.
func (c *Chunk) Link(n Neighbors) error {
	err := n.each(func(o *Chunk) error {
		if o.size != c.size || o.depth != c.depth {
			return fmt.Errorf("link %dx%d chunk at (%d,%d) to %dx%d chunk at (%d,%d): %w",
				c.size, c.depth, c.xOffset, c.zOffset, o.size, o.depth, o.xOffset, o.zOffset, ErrDimensionMismatch)
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.neighbors = n
	return nil
}

// Faces returns the face record of the solid cell at local coordinates, or
// nil for empty cells and out-of-range coordinates.
func (c *Chunk) Faces(x, y, z int) *CellFaces {
	if !c.inBounds(x, y, z) {
		return nil
	}
	return c.faces[c.index(x, y, z)]
}

// EachFaces calls fn for every solid cell's face record in x, y, z order.
func (c *Chunk) EachFaces(fn func(f *CellFaces)) {
	for _, f := range c.faces {
		if f != nil {
			fn(f)
		}
	}
}

// SolidCount returns the number of solid cells.
func (c *Chunk) SolidCount() int {
	n := 0
	for _, s := range c.cells {
		if !s.IsEmpty() {
			n++
		}
	}
	return n
}

// FaceCount returns the number of built faces.
func (c *Chunk) FaceCount() int {
	n := 0
	c.EachFaces(func(f *CellFaces) { n += f.set.Len() })
	return n
}
