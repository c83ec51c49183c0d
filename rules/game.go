package rules

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Config holds the settings fixed for the lifetime of a game.
type Config struct {
	Rows      int
	Cols      int
	Collision CollisionCheck
	// Seed feeds the bit spawner. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig is the 16x16 board with full collision checks.
func DefaultConfig() Config {
	return Config{Rows: 16, Cols: 16, Collision: CollisionFull}
}

// Validate checks the board can hold the initial snake and at least one bit.
func (c Config) Validate() error {
	grid := Grid{Rows: c.Rows, Cols: c.Cols}
	for _, p := range InitialBody {
		if !grid.Contains(p) {
			return errors.Wrapf(ErrInvalidConfig, "%dx%d board cannot hold the initial snake", c.Rows, c.Cols)
		}
	}
	if c.Rows*c.Cols <= len(InitialBody) {
		return errors.Wrapf(ErrInvalidConfig, "%dx%d board has no room for a bit", c.Rows, c.Cols)
	}
	switch c.Collision {
	case CollisionFull, CollisionParity, "":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown collision check %q", c.Collision)
	}
	return nil
}

// Game is the whole state of a play session: the board, the snake, the
// input latch, the active bit and the status. A Game is created once and
// reset for every new session.
type Game struct {
	ID     string
	Grid   Grid
	Snake  *Snake
	Latch  Latch
	Bits   []Point
	Status GameStatus
	Turn   int64
	Death  *Death

	collision CollisionCheck
	spawner   *Spawner
}

// NewGame creates a game in the setup state.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	collision := cfg.Collision
	if collision == "" {
		collision = CollisionFull
	}
	return &Game{
		Grid:      Grid{Rows: cfg.Rows, Cols: cfg.Cols},
		Status:    GameStatusSetup,
		collision: collision,
		spawner:   NewSpawner(rand.NewSource(seed)),
	}, nil
}

// Reset starts a new session: a fresh snake, one bit and a cleared latch.
func (g *Game) Reset() error {
	snake, err := NewSnake(InitialBody)
	if err != nil {
		return err
	}
	g.ID = uuid.NewV4().String()
	g.Snake = snake
	g.Bits = nil
	g.Latch.Clear()
	g.Turn = 0
	g.Death = nil
	g.Status = GameStatusPlaying

	bit, ok := g.spawner.Spawn(g.Grid, g.Snake, g.Bits)
	if !ok {
		return errors.Wrap(ErrInvalidConfig, "no room for the first bit")
	}
	g.Bits = append(g.Bits, bit)
	return nil
}

// Press latches a direction key for the current tick.
func (g *Game) Press(d Direction) {
	g.Latch.Press(d)
}

// Frame is a snapshot of a game after a tick.
type Frame struct {
	GameID   string     `json:"gameId"`
	Turn     int64      `json:"turn"`
	Status   GameStatus `json:"status"`
	Grid     Grid       `json:"grid"`
	Snake    []Point    `json:"snake"`
	Segments []Segment  `json:"segments"`
	Bits     []Point    `json:"bits"`
	Death    *Death     `json:"death,omitempty"`
}

// Frame snapshots the current state. A game in setup has no snake and
// yields a frame with only the board and status.
func (g *Game) Frame() (*Frame, error) {
	f := &Frame{
		GameID: g.ID,
		Turn:   g.Turn,
		Status: g.Status,
		Grid:   g.Grid,
		Bits:   append([]Point(nil), g.Bits...),
	}
	if g.Death != nil {
		d := *g.Death
		f.Death = &d
	}
	if g.Snake == nil {
		return f, nil
	}
	segments, err := Segments(g.Snake.Body)
	if err != nil {
		return nil, err
	}
	f.Snake = append([]Point(nil), g.Snake.Body...)
	f.Segments = segments
	return f, nil
}
