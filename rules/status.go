package rules

// GameStatus is the state of a session.
type GameStatus string

const (
	// GameStatusSetup is a game that has not started its first session
	GameStatusSetup GameStatus = "setup"
	// GameStatusPlaying represents a running session
	GameStatusPlaying GameStatus = "playing"
	// GameStatusDead is a session that ended with the snake dying
	GameStatusDead GameStatus = "dead"
	// GameStatusWon is a session where the snake covered the whole board
	GameStatusWon GameStatus = "won"
	// GameStatusError represents a session that ended because of an error
	GameStatusError GameStatus = "error"
)

// Over reports whether the session has ended.
func (s GameStatus) Over() bool {
	return s == GameStatusDead || s == GameStatusWon || s == GameStatusError
}
