package rules

import "github.com/pkg/errors"

// SegmentKind is the piece used to draw a body cell.
type SegmentKind string

// Segment kinds.
const (
	SegmentHead     SegmentKind = "head"
	SegmentTail     SegmentKind = "tail"
	SegmentStraight SegmentKind = "straight"
	SegmentTurn     SegmentKind = "turn"
)

// Segment is a body cell together with the piece and clockwise rotation, in
// degrees, a renderer should draw there.
//
// Unrotated pieces are: a head facing right, a tail whose body continues
// upward, a horizontal straight, and a turn joining the right and bottom
// edges of the cell.
type Segment struct {
	Point    Point       `json:"point"`
	Kind     SegmentKind `json:"kind"`
	Rotation int         `json:"rotation"`
}

// Segments computes the piece and orientation for every cell of body.
func Segments(body []Point) ([]Segment, error) {
	if len(body) < 2 {
		return nil, errors.Wrapf(ErrInvalidSnake, "length %d", len(body))
	}
	segments := make([]Segment, 0, len(body))
	for i := range body {
		seg, err := segmentAt(body, i)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func segmentAt(body []Point, i int) (Segment, error) {
	curr := body[i]
	invalid := errors.Wrapf(ErrInvalidSnake, "segment %d at %v", i, curr)

	if i == 0 {
		next := body[1]
		rotation, ok := headRotation(curr, next)
		if !ok {
			return Segment{}, invalid
		}
		return Segment{Point: curr, Kind: SegmentHead, Rotation: rotation}, nil
	}

	prev := body[i-1]
	if i == len(body)-1 {
		rotation, ok := tailRotation(curr, prev)
		if !ok {
			return Segment{}, invalid
		}
		return Segment{Point: curr, Kind: SegmentTail, Rotation: rotation}, nil
	}

	next := body[i+1]
	if prev.X == next.X {
		return Segment{Point: curr, Kind: SegmentStraight, Rotation: 90}, nil
	}
	if prev.Y == next.Y {
		return Segment{Point: curr, Kind: SegmentStraight, Rotation: 0}, nil
	}
	rotation, ok := turnRotation(curr, prev, next)
	if !ok {
		return Segment{}, invalid
	}
	return Segment{Point: curr, Kind: SegmentTurn, Rotation: rotation}, nil
}

func headRotation(curr, next Point) (int, bool) {
	switch {
	case next.X == curr.X && next.Y > curr.Y:
		return 270, true
	case next.X == curr.X && next.Y < curr.Y:
		return 90, true
	case next.Y == curr.Y && next.X > curr.X:
		return 180, true
	case next.Y == curr.Y && next.X < curr.X:
		return 0, true
	}
	return 0, false
}

func tailRotation(curr, prev Point) (int, bool) {
	switch {
	case prev.X == curr.X && prev.Y > curr.Y:
		return 180, true
	case prev.X == curr.X && prev.Y < curr.Y:
		return 0, true
	case prev.Y == curr.Y && prev.X > curr.X:
		return 90, true
	case prev.Y == curr.Y && prev.X < curr.X:
		return 270, true
	}
	return 0, false
}

func turnRotation(curr, prev, next Point) (int, bool) {
	for _, pair := range [][2]Point{{prev, next}, {next, prev}} {
		a, b := pair[0], pair[1]
		if a.X < curr.X {
			if b.Y < curr.Y {
				return 180, true
			}
			if b.Y > curr.Y {
				return 90, true
			}
		}
		if a.X > curr.X {
			if b.Y < curr.Y {
				return 270, true
			}
			if b.Y > curr.Y {
				return 0, true
			}
		}
	}
	return 0, false
}
