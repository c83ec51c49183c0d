package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GameTick runs the game one tick and updates the state
func GameTick(g *Game) (*Frame, error) {
	if g.Status != GameStatusPlaying {
		return nil, errors.Wrapf(ErrNotPlaying, "status %s", g.Status)
	}
	if g.Snake == nil || g.Snake.Len() < 2 {
		g.Status = GameStatusError
		return nil, errors.Wrap(ErrInvalidSnake, "snake missing or too short")
	}

	// 1. resolve the latched keys against the current heading
	dir := g.Latch.Resolve(g.Snake.Heading)
	// 2. move the snake, growing it if it ate last tick
	g.Snake.Advance(dir)
	// 3. check for death
	//    a - wall collision
	//    b - self collision
	// 4. eat and replace the bit
	if death := checkForDeath(g.Grid, g.Snake, g.collision, g.Turn+1); death != nil {
		g.Death = death
		g.Status = GameStatusDead
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   death.Turn,
			"Head":   g.Snake.Head(),
			"Cause":  death.Cause,
		}).Info("snake died")
	} else {
		g.updateBits()
	}
	// 5. the latch only covers one tick
	g.Latch.Clear()
	g.Turn++

	frame, err := g.Frame()
	if err != nil {
		g.Status = GameStatusError
		log.WithError(err).WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn,
		}).Error("invalid snake after tick")
		return nil, err
	}
	return frame, nil
}

// updateBits removes a bit under the head, marks the snake to grow and
// spawns the replacement in the same tick. A board with no free cell left
// ends the session as won.
func (g *Game) updateBits() {
	head := g.Snake.Head()
	eaten := -1
	for i, bit := range g.Bits {
		if bit.Equal(head) {
			eaten = i
			break
		}
	}
	if eaten < 0 {
		return
	}

	g.Snake.Grow()
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn + 1,
		"Bit":    head,
	}).Info("snake ate")

	next, ok := g.spawner.Spawn(g.Grid, g.Snake, g.Bits)
	g.Bits = append(g.Bits[:eaten], g.Bits[eaten+1:]...)
	if !ok {
		g.Status = GameStatusWon
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Turn":   g.Turn + 1,
			"Length": g.Snake.Len() + 1,
		}).Info("board full")
		return
	}
	g.Bits = append(g.Bits, next)
}
