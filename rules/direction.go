package rules

import "strings"

// Direction is one of the four unit steps a snake can take.
type Direction int

// The four directions, in the order the latch reports them.
const (
	Right Direction = iota
	Left
	Down
	Up
)

// Directions lists every direction.
var Directions = []Direction{Right, Left, Down, Up}

var directionNames = map[Direction]string{
	Right: "right",
	Left:  "left",
	Down:  "down",
	Up:    "up",
}

// ParseDirection maps "right", "left", "down" and "up" (any case) to a
// Direction. Any other input is not a direction.
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return d, true
		}
	}
	return 0, false
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Delta returns the unit step vector of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Down:
		return 0, 1
	case Up:
		return 0, -1
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Down:
		return Up
	default:
		return Down
	}
}

// IsOpposite reports whether d and other are a right/left or down/up pair.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && other.Valid() && d.Opposite() == other
}
