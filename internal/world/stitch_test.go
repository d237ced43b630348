package world

import (
	"errors"
	"testing"
)

func TestStitchRevealsFacesAcrossX(t *testing.T) {
	h := NewHeightField(stepNoise(-100, 4, -100, 100), 1, 10)
	fb := &recordingBuilder{}
	a := generated(t, h, fb, 4, 20, 0, 0) // height 10
	b := generated(t, h, fb, 4, 20, 4, 0) // height 12

	added, err := a.Stitch(Neighbors{NextX: b}, fb)
	if err != nil {
		t.Fatalf("stitch a: %v", err)
	}
	if added != 4 {
		t.Errorf("a: added %d faces, want 4", added)
	}
	for z := 0; z < 4; z++ {
		if !a.Faces(3, 10, z).Directions().Has(Right) {
			t.Errorf("a (3,10,%d) missing RIGHT after stitch", z)
		}
		if a.Faces(3, 10, z).Geometry(Right) == nil {
			t.Errorf("a (3,10,%d) has no geometry for RIGHT", z)
		}
	}

	added, err = b.Stitch(Neighbors{PrevX: a}, fb)
	if err != nil {
		t.Fatalf("stitch b: %v", err)
	}
	if added != 4 {
		t.Errorf("b: added %d faces, want 4", added)
	}
	for z := 0; z < 4; z++ {
		if !b.Faces(0, 12, z).Directions().Has(Left) {
			t.Errorf("b (0,12,%d) missing LEFT after stitch", z)
		}
	}
}

func TestStitchCoversWholeBoundaryShell(t *testing.T) {
	// Center chunk at height 10, all four neighbors at 12: every perimeter
	// cell gains one face per open side, corners two.
	const size = 5
	h := NewHeightField(stepNoise(0, size, 0, size), 1, 10)
	fb := &recordingBuilder{}
	center := generated(t, h, fb, size, 20, 0, 0)
	n := Neighbors{
		PrevX: generated(t, h, fb, size, 20, -size, 0),
		NextX: generated(t, h, fb, size, 20, size, 0),
		PrevZ: generated(t, h, fb, size, 20, 0, -size),
		NextZ: generated(t, h, fb, size, 20, 0, size),
	}

	added, err := center.Stitch(n, fb)
	if err != nil {
		t.Fatalf("Stitch: %v", err)
	}
	if added != 4*size {
		t.Errorf("added %d faces, want %d", added, 4*size)
	}
	for x := 0; x < size; x++ {
		if !center.Faces(x, 10, 0).Directions().Has(Front) {
			t.Errorf("(%d,10,0) missing FRONT", x)
		}
		if !center.Faces(x, 10, size-1).Directions().Has(Back) {
			t.Errorf("(%d,10,%d) missing BACK", x, size-1)
		}
	}
	for z := 0; z < size; z++ {
		if !center.Faces(0, 10, z).Directions().Has(Left) {
			t.Errorf("(0,10,%d) missing LEFT", z)
		}
		if !center.Faces(size-1, 10, z).Directions().Has(Right) {
			t.Errorf("(%d,10,%d) missing RIGHT", size-1, z)
		}
	}
	if got := center.Faces(2, 10, 2).Directions(); got != NewDirectionSet(Top, Bottom) {
		t.Errorf("interior cell changed by stitching: %v", got)
	}
}

func TestStitchIsMonotonicAndIdempotent(t *testing.T) {
	h := NewHeightField(NewSimplex(99), 6, 10)
	fb := &recordingBuilder{}
	grid := [3][3]*Chunk{}
	for i := range grid {
		for j := range grid[i] {
			grid[i][j] = generated(t, h, fb, 6, 20, 6*i, 6*j)
		}
	}
	c := grid[1][1]
	n := Neighbors{PrevX: grid[0][1], NextX: grid[2][1], PrevZ: grid[1][0], NextZ: grid[1][2]}

	before := boundarySets(c)
	if _, err := c.Stitch(n, fb); err != nil {
		t.Fatalf("first Stitch: %v", err)
	}
	after := boundarySets(c)
	for p, s := range before {
		if !after[p].Contains(s) {
			t.Errorf("cell %v lost faces: before %v, after %v", p, s, after[p])
		}
	}

	builtBefore := len(fb.built)
	added, err := c.Stitch(n, fb)
	if err != nil {
		t.Fatalf("second Stitch: %v", err)
	}
	if added != 0 || len(fb.built) != builtBefore {
		t.Errorf("second Stitch added %d faces (%d builds), want none", added, len(fb.built)-builtBefore)
	}
}

func TestStitchNeverRetractsFaces(t *testing.T) {
	h := NewHeightField(stepNoise(-100, 4, -100, 100), 1, 10)
	fb := &recordingBuilder{}
	a := generated(t, h, fb, 4, 20, 0, 0)
	high := generated(t, h, fb, 4, 20, 4, 0) // height 12

	flat := NewChunk(4, 20, 4, 0)
	if err := flat.Generate(NewHeightField(ConstantNoise(-1), 1, 10), fb); err != nil {
		t.Fatalf("Generate flat: %v", err)
	}

	if _, err := a.Stitch(Neighbors{NextX: high}, fb); err != nil {
		t.Fatalf("Stitch with high: %v", err)
	}
	added, err := a.Stitch(Neighbors{NextX: flat}, fb)
	if err != nil {
		t.Fatalf("Stitch with flat: %v", err)
	}
	if added != 0 {
		t.Errorf("added %d faces against a solid neighbor", added)
	}
	for z := 0; z < 4; z++ {
		if a.VisibleFaces(3, 10, z).Has(Right) {
			t.Fatalf("flat neighbor should hide RIGHT at (3,10,%d)", z)
		}
		if !a.Faces(3, 10, z).Directions().Has(Right) {
			t.Errorf("RIGHT at (3,10,%d) was retracted", z)
		}
	}
}

func TestStitchRequiresGeneratedChunks(t *testing.T) {
	h := NewHeightField(ConstantNoise(0), 80, 10)
	fresh := NewChunk(4, 20, 0, 0)
	if _, err := fresh.Stitch(Neighbors{}, nil); !errors.Is(err, ErrNotGenerated) {
		t.Errorf("Stitch of ungenerated chunk: err = %v, want ErrNotGenerated", err)
	}

	c := generated(t, h, nil, 4, 20, 0, 0)
	pending := NewChunk(4, 20, 4, 0)
	if _, err := c.Stitch(Neighbors{NextX: pending}, nil); !errors.Is(err, ErrNotGenerated) {
		t.Errorf("Stitch with ungenerated neighbor: err = %v, want ErrNotGenerated", err)
	}
	if c.Neighbors().NextX != nil {
		t.Errorf("rejected neighbor was linked")
	}
}
