package rules

import "math/rand"

// Spawner places bits on free cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a spawner drawing from the given source.
func NewSpawner(src rand.Source) *Spawner {
	return &Spawner{rng: rand.New(src)}
}

// Spawn picks a cell uniformly among those not covered by the snake or an
// active bit. It returns false when there is no such cell.
func (sp *Spawner) Spawn(grid Grid, snake *Snake, bits []Point) (Point, bool) {
	open := unoccupiedPoints(grid, snake, bits)
	if len(open) == 0 {
		return Point{}, false
	}
	return open[sp.rng.Intn(len(open))], true
}

func unoccupiedPoints(grid Grid, snake *Snake, bits []Point) []Point {
	var body []Point
	if snake != nil {
		body = snake.Body
	}

	candidates := make([]Point, 0, grid.Rows*grid.Cols)
	for _, p := range grid.Points() {
		if containsPoint(body, p) || containsPoint(bits, p) {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}
