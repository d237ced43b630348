package world

import "testing"

func TestVisibleFacesFlatIsolatedChunk(t *testing.T) {
	h := NewHeightField(ConstantNoise(-1), 80, 10)
	fb := &recordingBuilder{}
	c := generated(t, h, fb, 4, 20, 0, 0)

	want := NewDirectionSet(Top, Bottom)
	for x := 0; x < 4; x++ {
		for z := 0; z < 4; z++ {
			f := c.Faces(x, 10, z)
			if f == nil {
				t.Fatalf("no faces recorded for solid cell (%d,10,%d)", x, z)
			}
			if f.Directions() != want {
				t.Errorf("cell (%d,10,%d) faces = %v, want %v", x, z, f.Directions(), want)
			}
			if f.Position() != (Coord{x, 10, z}) {
				t.Errorf("cell (%d,10,%d) position = %v", x, z, f.Position())
			}
		}
	}
	if got := len(fb.built); got != 32 {
		t.Errorf("built %d faces, want 32", got)
	}
	if got := c.FaceCount(); got != 32 {
		t.Errorf("FaceCount = %d, want 32", got)
	}
}

func TestIsolatedChunkNeverFacesMissingNeighbor(t *testing.T) {
	// Chunk surface at 10 surrounded by higher terrain: in a full world every
	// edge cell would get a side face, but with no neighbors none may appear.
	h := NewHeightField(stepNoise(0, 4, 0, 4), 1, 10)
	c := generated(t, h, &recordingBuilder{}, 4, 20, 0, 0)
	for x := 0; x < 4; x++ {
		for z := 0; z < 4; z++ {
			f := c.Faces(x, 10, z)
			if x == 0 && f.Directions().Has(Left) ||
				x == 3 && f.Directions().Has(Right) ||
				z == 0 && f.Directions().Has(Front) ||
				z == 3 && f.Directions().Has(Back) {
				t.Errorf("cell (%d,10,%d) has a face towards a missing neighbor: %v", x, z, f.Directions())
			}
		}
	}
}

func TestVisibleFacesInsideChunkSteps(t *testing.T) {
	// Left half of the chunk at height 10, right half at 12.
	h := NewHeightField(stepNoise(-100, 2, -100, 100), 1, 10)
	c := generated(t, h, &recordingBuilder{}, 4, 20, 0, 0)

	if got, want := c.VisibleFaces(1, 10, 1), NewDirectionSet(Top, Bottom, Right); got != want {
		t.Errorf("low step edge faces = %v, want %v", got, want)
	}
	if got, want := c.VisibleFaces(2, 12, 1), NewDirectionSet(Top, Bottom, Left); got != want {
		t.Errorf("high step edge faces = %v, want %v", got, want)
	}
	if got := c.VisibleFaces(2, 10, 1); got != 0 {
		t.Errorf("empty cell faces = %v, want none", got)
	}
	if got := c.VisibleFaces(9, 10, 1); got != 0 {
		t.Errorf("out-of-range cell faces = %v, want none", got)
	}
}

func TestTopCellHasNoTopFace(t *testing.T) {
	h := NewHeightField(ConstantNoise(1), 80, 10) // height 14
	c := generated(t, h, nil, 2, 15, 0, 0)
	if got, want := c.VisibleFaces(0, 14, 0), NewDirectionSet(Bottom); got != want {
		t.Errorf("faces at the top layer = %v, want %v", got, want)
	}
}

func TestDirectionSet(t *testing.T) {
	s := NewDirectionSet(Top, Left, Top)
	if s.Len() != 2 || !s.Has(Top) || !s.Has(Left) || s.Has(Right) {
		t.Fatalf("unexpected set %v", s)
	}
	if got := AllDirections.Without(s); got.Len() != 4 || got.Has(Top) {
		t.Errorf("Without = %v", got)
	}
	if !AllDirections.Contains(s) || s.Contains(AllDirections) {
		t.Errorf("Contains is wrong for %v", s)
	}
	if got := s.String(); got != "{TOP,LEFT}" {
		t.Errorf("String = %q, want {TOP,LEFT}", got)
	}
	for _, d := range Directions {
		o, back := d.Offset(), d.Opposite().Offset()
		if o.Add(back) != (Coord{}) {
			t.Errorf("%v and its opposite do not cancel: %v + %v", d, o, back)
		}
	}
}
