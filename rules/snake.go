package rules

import "github.com/pkg/errors"

// InitialBody is the body every session starts with, laid out horizontally
// with the head on the right.
var InitialBody = []Point{
	{X: 4, Y: 4},
	{X: 3, Y: 4},
	{X: 2, Y: 4},
	{X: 1, Y: 4},
}

// Snake is the ordered list of body segments, head first. Heading is the
// direction of the last advance and is kept in step with the body.
type Snake struct {
	Body    []Point
	Heading Direction

	grow bool
}

// NewSnake builds a snake from a body, deriving its heading from the
// head and neck.
func NewSnake(body []Point) (*Snake, error) {
	s := &Snake{Body: append([]Point(nil), body...)}
	d, err := s.Direction()
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(s.Body); i++ {
		if !adjacent(s.Body[i-1], s.Body[i]) {
			return nil, errors.Wrapf(ErrInvalidSnake, "segments %d and %d are not adjacent", i-1, i)
		}
	}
	s.Heading = d
	return s, nil
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Direction derives the direction the snake is moving from the vector
// between the head and the neck.
func (s *Snake) Direction() (Direction, error) {
	if len(s.Body) < 2 {
		return 0, errors.Wrapf(ErrInvalidSnake, "length %d", len(s.Body))
	}
	head, neck := s.Body[0], s.Body[1]
	if !adjacent(head, neck) {
		return 0, errors.Wrapf(ErrInvalidSnake, "head %v neck %v", head, neck)
	}
	switch {
	case neck.X < head.X:
		return Right, nil
	case neck.X > head.X:
		return Left, nil
	case neck.Y < head.Y:
		return Down, nil
	default:
		return Up, nil
	}
}

// Grow marks the snake to keep its tail on the next advance.
func (s *Snake) Grow() {
	s.grow = true
}

// Growing reports whether the next advance will grow the snake.
func (s *Snake) Growing() bool {
	return s.grow
}

// Advance moves the head one step in d. The tail is dropped unless the
// snake was marked to grow, in which case the mark is cleared instead.
func (s *Snake) Advance(d Direction) {
	next := s.Head().Step(d)
	s.Body = append([]Point{next}, s.Body...)
	if s.grow {
		s.grow = false
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}
	s.Heading = d
}

// HeadCollides reports whether the head sits on any other segment.
func (s *Snake) HeadCollides() bool {
	return containsPoint(s.Body[1:], s.Head())
}

// SelfIntersects reports whether any two segments an even distance of at
// least 4 apart share a cell. On a grid, segments an odd distance apart
// always sit on different checkerboard colours and segments 2 apart can
// only meet by reversing, so this covers every reachable overlap.
func (s *Snake) SelfIntersects() bool {
	for n1 := 0; n1 < len(s.Body)-1; n1++ {
		for n2 := n1 + 4; n2 < len(s.Body); n2 += 2 {
			if s.Body[n1].Equal(s.Body[n2]) {
				return true
			}
		}
	}
	return false
}

func adjacent(a, b Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}
