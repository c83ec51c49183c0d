package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head runs into the body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)

// Death records when and why a session ended.
type Death struct {
	Turn  int64  `json:"turn"`
	Cause string `json:"cause"`
}

// CollisionCheck selects how self collision is detected.
type CollisionCheck string

const (
	// CollisionFull compares the head against every other segment.
	CollisionFull CollisionCheck = "full"
	// CollisionParity compares every pair of segments an even distance of
	// at least 4 apart.
	CollisionParity CollisionCheck = "parity"
)

// checkForDeath looks at the snake after it moved and returns the death, if
// any. Running off the board is checked before self collision.
func checkForDeath(grid Grid, snake *Snake, check CollisionCheck, turn int64) *Death {
	if deathByOutOfBounds(grid, snake.Head()) {
		return &Death{Turn: turn, Cause: DeathCauseWallCollision}
	}
	if deathBySelfCollision(snake, check) {
		return &Death{Turn: turn, Cause: DeathCauseSnakeSelfCollision}
	}
	return nil
}

func deathByOutOfBounds(grid Grid, head Point) bool {
	return !grid.Contains(head)
}

func deathBySelfCollision(snake *Snake, check CollisionCheck) bool {
	if check == CollisionParity {
		return snake.SelfIntersects()
	}
	return snake.HeadCollides()
}
