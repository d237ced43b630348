package world

// MaterialID identifies what a solid cell is made of.
type MaterialID uint8

const (
	MaterialGrass MaterialID = iota + 1
)

func (m MaterialID) String() string {
	switch m {
	case MaterialGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// CellState is either Empty or Solid(material). The zero value is Empty.
type CellState struct {
	solid    bool
	material MaterialID
}

// Empty is the state of a cell with nothing in it.
var Empty = CellState{}

// Solid returns a solid cell state of material m.
func Solid(m MaterialID) CellState {
	return CellState{solid: true, material: m}
}

// IsEmpty reports whether the cell holds nothing.
func (c CellState) IsEmpty() bool { return !c.solid }

// Material returns the material of a solid cell; ok is false for Empty.
func (c CellState) Material() (m MaterialID, ok bool) {
	return c.material, c.solid
}

func (c CellState) String() string {
	if !c.solid {
		return "Empty"
	}
	return "Solid(" + c.material.String() + ")"
}

// Coord is an integer cell coordinate, chunk-local or world depending on use.
type Coord struct {
	X, Y, Z int
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}
