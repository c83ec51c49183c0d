package rules

// Grid is the fixed rows x cols board. It is set once when a game is
// created and never changes.
type Grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Cols && p.Y < g.Rows
}

// Points enumerates every cell, row by row.
func (g Grid) Points() []Point {
	points := make([]Point, 0, g.Rows*g.Cols)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// Even reports whether p is on an even square of the checkerboard.
func (g Grid) Even(p Point) bool {
	return (p.X+p.Y)%2 == 0
}
