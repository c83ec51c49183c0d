package rules

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newPlayingGame(t *testing.T, bits ...Point) *Game {
	g, err := NewGame(Config{Rows: 16, Cols: 16, Collision: CollisionFull, Seed: 7})
	require.NoError(t, err)
	require.Equal(t, GameStatusSetup, g.Status)
	require.NoError(t, g.Reset())
	require.Len(t, g.Bits, 1)
	if len(bits) > 0 {
		g.Bits = bits
	}
	return g
}

func TestGameTickNoInput(t *testing.T) {
	g := newPlayingGame(t, Point{X: 10, Y: 10})

	frame, err := GameTick(g)
	require.NoError(t, err)
	require.Equal(t, []Point{{X: 5, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 4}}, frame.Snake)
	require.Equal(t, int64(1), frame.Turn)
	require.Equal(t, GameStatusPlaying, frame.Status)
	require.Equal(t, []Point{{X: 10, Y: 10}}, frame.Bits)
}

func TestGameTickIgnoresReverse(t *testing.T) {
	g := newPlayingGame(t, Point{X: 10, Y: 10})
	g.Press(Left)

	frame, err := GameTick(g)
	require.NoError(t, err)
	require.Equal(t, []Point{{X: 5, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 4}}, frame.Snake)
	require.Equal(t, Right, g.Snake.Heading)
}

func TestGameTickTurns(t *testing.T) {
	g := newPlayingGame(t, Point{X: 10, Y: 10})
	g.Press(Down)

	frame, err := GameTick(g)
	require.NoError(t, err)
	require.Equal(t, Point{X: 4, Y: 5}, frame.Snake[0])
	require.Equal(t, Down, g.Snake.Heading)
	require.False(t, g.Latch.Pressed(Down), "latch not cleared")

	// the turn does not carry over without a new press
	frame, err = GameTick(g)
	require.NoError(t, err)
	require.Equal(t, Point{X: 4, Y: 6}, frame.Snake[0])
}

func TestGameTickAmbiguousInput(t *testing.T) {
	g := newPlayingGame(t, Point{X: 10, Y: 10})
	g.Press(Down)
	g.Press(Up)

	frame, err := GameTick(g)
	require.NoError(t, err)
	require.Equal(t, Point{X: 5, Y: 4}, frame.Snake[0])
}

func TestGameTickSnakeEats(t *testing.T) {
	g := newPlayingGame(t, Point{X: 5, Y: 4})

	frame, err := GameTick(g)
	require.NoError(t, err)
	require.Len(t, frame.Snake, 4)
	require.True(t, g.Snake.Growing())
	require.Len(t, frame.Bits, 1, spew.Sdump(frame))
	bit := frame.Bits[0]
	require.False(t, bit.Equal(Point{X: 5, Y: 4}))
	require.False(t, containsPoint(frame.Snake, bit))

	frame, err = GameTick(g)
	require.NoError(t, err)
	require.Len(t, frame.Snake, 5)
	require.Equal(t, Point{X: 2, Y: 4}, frame.Snake[4])
}

func TestGameTickWallCollision(t *testing.T) {
	g := newPlayingGame(t, Point{X: 0, Y: 0})
	g.Snake.Body = []Point{{X: 15, Y: 4}, {X: 14, Y: 4}}

	frame, err := GameTick(g)
	require.NoError(t, err)
	require.Equal(t, GameStatusDead, frame.Status)
	require.NotNil(t, frame.Death)
	require.Equal(t, DeathCauseWallCollision, frame.Death.Cause)
	require.Equal(t, int64(1), frame.Death.Turn)
	require.Equal(t, Point{X: 16, Y: 4}, frame.Snake[0])
	require.Equal(t, []Point{{X: 0, Y: 0}}, frame.Bits)

	_, err = GameTick(g)
	require.Equal(t, ErrNotPlaying, errors.Cause(err))
}

func TestGameTickSelfCollision(t *testing.T) {
	for _, check := range []CollisionCheck{CollisionFull, CollisionParity} {
		t.Run(string(check), func(t *testing.T) {
			g := newPlayingGame(t, Point{X: 0, Y: 0})
			g.collision = check
			snake, err := NewSnake([]Point{
				{X: 5, Y: 5},
				{X: 5, Y: 6},
				{X: 4, Y: 6},
				{X: 4, Y: 5},
				{X: 4, Y: 4},
				{X: 4, Y: 3},
			})
			require.NoError(t, err)
			require.Equal(t, Up, snake.Heading)
			g.Snake = snake
			g.Press(Left)

			frame, err := GameTick(g)
			require.NoError(t, err)
			require.Equal(t, GameStatusDead, frame.Status)
			require.Equal(t, DeathCauseSnakeSelfCollision, frame.Death.Cause)
		})
	}
}

func TestGameTickChasesTail(t *testing.T) {
	g := newPlayingGame(t, Point{X: 0, Y: 0})
	snake, err := NewSnake([]Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 4, Y: 6},
		{X: 4, Y: 5},
	})
	require.NoError(t, err)
	g.Snake = snake
	g.Press(Left)

	frame, err := GameTick(g)
	require.NoError(t, err)
	require.Equal(t, GameStatusPlaying, frame.Status)
}

func TestGameTickBoardFull(t *testing.T) {
	g := &Game{
		Grid:      Grid{Rows: 1, Cols: 3},
		Snake:     &Snake{Body: []Point{{X: 1, Y: 0}, {X: 0, Y: 0}}, Heading: Right, grow: true},
		Bits:      []Point{{X: 2, Y: 0}},
		Status:    GameStatusPlaying,
		collision: CollisionFull,
		spawner:   NewSpawner(rand.NewSource(1)),
	}

	frame, err := GameTick(g)
	require.NoError(t, err)
	require.Equal(t, GameStatusWon, frame.Status)
	require.Empty(t, frame.Bits)
	require.Len(t, frame.Snake, 3)
}

func TestGameTickNotPlaying(t *testing.T) {
	g, err := NewGame(DefaultConfig())
	require.NoError(t, err)

	_, err = GameTick(g)
	require.Equal(t, ErrNotPlaying, errors.Cause(err))
}

func TestGameTickInvalidSnake(t *testing.T) {
	g := newPlayingGame(t)
	g.Snake.Body = g.Snake.Body[:1]

	_, err := GameTick(g)
	require.Equal(t, ErrInvalidSnake, errors.Cause(err))
	require.Equal(t, GameStatusError, g.Status)
}

func TestGameResetStartsFreshSession(t *testing.T) {
	g := newPlayingGame(t, Point{X: 10, Y: 10})
	firstID := g.ID
	g.Press(Up)
	_, err := GameTick(g)
	require.NoError(t, err)

	g.Press(Down)
	require.NoError(t, g.Reset())
	require.NotEqual(t, firstID, g.ID)
	require.Equal(t, InitialBody, g.Snake.Body)
	require.Equal(t, int64(0), g.Turn)
	require.Nil(t, g.Death)
	require.False(t, g.Latch.Pressed(Down))
	require.Len(t, g.Bits, 1)
	require.False(t, containsPoint(g.Snake.Body, g.Bits[0]))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{Rows: 4, Cols: 16},
		{Rows: 16, Cols: 4},
		{Rows: 16, Cols: 16, Collision: "sometimes"},
	}
	for _, cfg := range bad {
		err := cfg.Validate()
		require.Equal(t, ErrInvalidConfig, errors.Cause(err), "config %+v", cfg)
	}
}

// Random legal walks: both self collision checks must agree on every tick.
func TestCollisionChecksAgree(t *testing.T) {
	grid := Grid{Rows: 12, Cols: 12}
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		snake, err := NewSnake(InitialBody)
		require.NoError(t, err)

		for tick := 0; tick < 300; tick++ {
			var l Latch
			l.Press(Directions[rng.Intn(len(Directions))])
			if rng.Intn(4) == 0 {
				snake.Grow()
			}
			snake.Advance(l.Resolve(snake.Heading))
			if !grid.Contains(snake.Head()) {
				break
			}
			full, parity := snake.HeadCollides(), snake.SelfIntersects()
			require.Equal(t, full, parity, "seed %d tick %d\n%s", seed, tick, spew.Sdump(snake.Body))
			if full {
				break
			}
		}
	}
}
