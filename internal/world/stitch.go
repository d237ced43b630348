package world

import "fmt"

// Stitch links n and re-derives visibility for every solid cell on the
// chunk's x/z boundary shell, building faces that the neighbors reveal.
// Existing faces are kept even when a neighbor now hides them, so a second
// call with the same neighbors adds nothing. It returns the number of faces
// added.
func (c *Chunk) Stitch(n Neighbors, fb FaceBuilder) (int, error) {
	if !c.generated {
		return 0, fmt.Errorf("stitch chunk at (%d,%d): %w", c.xOffset, c.zOffset, ErrNotGenerated)
	}
	err := n.each(func(o *Chunk) error {
		if !o.generated {
			return fmt.Errorf("stitch chunk at (%d,%d): neighbor at (%d,%d): %w",
				c.xOffset, c.zOffset, o.xOffset, o.zOffset, ErrNotGenerated)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if err := c.Link(n); err != nil {
		return 0, err
	}

	added := 0
	c.eachBoundaryColumn(func(x, z int) {
		for y := 0; y < c.depth; y++ {
			f := c.faces[c.index(x, y, z)]
			if f == nil {
				continue
			}
			added += f.add(c.VisibleFaces(x, y, z), fb)
		}
	})
	return added, nil
}

// eachBoundaryColumn visits every column with x or z on the chunk edge once.
func (c *Chunk) eachBoundaryColumn(fn func(x, z int)) {
	last := c.size - 1
	for x := 0; x < c.size; x++ {
		for z := 0; z < c.size; z++ {
			if x == 0 || x == last || z == 0 || z == last {
				fn(x, z)
			}
		}
	}
}
