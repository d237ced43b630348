package world

import "strings"

// Direction identifies a face of a cell.
type Direction uint8

const (
	Top Direction = iota
	Bottom
	Left
	Right
	Front
	Back

	numDirections = 6
)

// Directions lists every direction in the order faces are tested and built.
var Directions = [numDirections]Direction{Top, Bottom, Right, Left, Back, Front}

var directionOffsets = [numDirections]Coord{
	Top:    {0, 1, 0},
	Bottom: {0, -1, 0},
	Left:   {-1, 0, 0},
	Right:  {1, 0, 0},
	Front:  {0, 0, -1},
	Back:   {0, 0, 1},
}

var directionNames = [numDirections]string{
	Top:    "TOP",
	Bottom: "BOTTOM",
	Left:   "LEFT",
	Right:  "RIGHT",
	Front:  "FRONT",
	Back:   "BACK",
}

// Offset returns the unit step towards the neighbor across this face.
func (d Direction) Offset() Coord {
	if d >= numDirections {
		return Coord{}
	}
	return directionOffsets[d]
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	case Front:
		return Back
	default:
		return Front
	}
}

func (d Direction) String() string {
	if d >= numDirections {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// DirectionSet is an unordered set of directions.
type DirectionSet uint8

// NewDirectionSet returns a set holding dirs.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// AllDirections is the set of all six faces.
const AllDirections DirectionSet = 1<<numDirections - 1

func (s DirectionSet) Has(d Direction) bool { return s&(1<<d) != 0 }

// With returns s plus d.
func (s DirectionSet) With(d Direction) DirectionSet {
	if d >= numDirections {
		return s
	}
	return s | 1<<d
}

// Without returns the directions of s that are not in o.
func (s DirectionSet) Without(o DirectionSet) DirectionSet { return s &^ o }

// Contains reports whether every direction of o is in s.
func (s DirectionSet) Contains(o DirectionSet) bool { return o&^s == 0 }

func (s DirectionSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Slice returns the directions in build order.
func (s DirectionSet) Slice() []Direction {
	out := make([]Direction, 0, s.Len())
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirectionSet) String() string {
	names := make([]string, 0, s.Len())
	for _, d := range s.Slice() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
