// Package loop drives a game: it owns the session, ticks it at a fixed
// interval, feeds it input and calls the renderer after every change. It
// also implements the Setup -> Playing -> Dead life cycle and the start and
// restart controls.
package loop

import (
	"context"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/rules"
	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultTickInterval is the time between two ticks.
const DefaultTickInterval = 200 * time.Millisecond

// ErrInvalidTransition is returned when a control is triggered in a state
// that does not offer it.
var ErrInvalidTransition = errors.New("loop: invalid state transition")

// State is the loop life cycle state.
type State string

// Loop states.
const (
	StateSetup   State = "setup"
	StatePlaying State = "playing"
	StateDead    State = "dead"
)

// Options configure a Loop.
type Options struct {
	Game         rules.Config
	Renderer     Renderer
	Clock        clock.Clock
	TickInterval time.Duration
}

// Loop is the game loop. All methods are safe to call from any goroutine;
// input and ticks are serialized so a press never lands in the middle of a
// tick.
type Loop struct {
	renderer Renderer
	clock    clock.Clock
	interval time.Duration

	mu    sync.Mutex
	game  *rules.Game
	state State
	frame *rules.Frame
}

// New creates a loop in the setup state and shows the start control.
func New(opts Options) (*Loop, error) {
	game, err := rules.NewGame(opts.Game)
	if err != nil {
		return nil, err
	}
	if opts.Renderer == nil {
		return nil, errors.New("loop: renderer is required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	l := &Loop{
		renderer: opts.Renderer,
		clock:    opts.Clock,
		interval: opts.TickInterval,
		game:     game,
		state:    StateSetup,
	}
	if l.frame, err = game.Frame(); err != nil {
		return nil, err
	}
	if err := l.renderer.ShowControl(ControlStart); err != nil {
		return nil, errors.Wrap(err, "show start control")
	}
	return l, nil
}

// State returns the current life cycle state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Snapshot returns the frame of the last tick or reset.
func (l *Loop) Snapshot() *rules.Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame
}

// Start begins the first session.
func (l *Loop) Start() error {
	return l.begin(StateSetup)
}

// Restart begins a new session once the previous one has ended.
func (l *Loop) Restart() error {
	return l.begin(StateDead)
}

func (l *Loop) begin(from State) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != from {
		return errors.Wrapf(ErrInvalidTransition, "cannot leave %s from %s", from, l.state)
	}
	if err := l.game.Reset(); err != nil {
		return err
	}
	frame, err := l.game.Frame()
	if err != nil {
		return err
	}
	l.frame = frame
	l.state = StatePlaying
	sessionsStarted.Inc()

	log.WithFields(log.Fields{
		"GameID": l.game.ID,
		"Rows":   l.game.Grid.Rows,
		"Cols":   l.game.Grid.Cols,
	}).Info("session started")

	if err := l.renderer.DrawSnake(frame.Segments); err != nil {
		return errors.Wrap(err, "draw snake")
	}
	return errors.Wrap(l.renderer.DrawBits(frame.Bits), "draw bits")
}

// Press latches a direction for the next tick. Presses outside a session
// are dropped.
func (l *Loop) Press(d rules.Direction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StatePlaying {
		return
	}
	l.game.Press(d)
}

// Step runs one tick when a session is in progress and renders the result.
// An error means the session was aborted by a broken invariant.
func (l *Loop) Step() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StatePlaying {
		return nil
	}
	defer instrumentTick()()

	frame, err := rules.GameTick(l.game)
	if err != nil {
		if endErr := l.end(); endErr != nil {
			log.WithError(endErr).WithField("GameID", l.game.ID).Warn("unable to render aborted session")
		}
		return err
	}
	l.frame = frame
	if l.game.Snake.Growing() {
		bitsEaten.Inc()
	}

	drawErr := errors.Wrap(l.renderer.DrawSnake(frame.Segments), "draw snake")
	if frame.Status.Over() {
		// the session is over even when the last draw failed
		endErr := l.end()
		if drawErr != nil {
			return drawErr
		}
		return endErr
	}
	if drawErr != nil {
		return drawErr
	}
	return errors.Wrap(l.renderer.DrawBits(frame.Bits), "draw bits")
}

// end moves to the dead state: bits are cleared and restart is offered.
// Called with the lock held.
func (l *Loop) end() error {
	l.state = StateDead

	cause := ""
	if l.game.Death != nil {
		cause = l.game.Death.Cause
	}
	sessionsEnded.WithLabelValues(string(l.game.Status), cause).Inc()
	log.WithFields(log.Fields{
		"GameID": l.game.ID,
		"Turn":   l.game.Turn,
		"Status": l.game.Status,
		"Length": l.game.Snake.Len(),
	}).Info("session ended")

	if err := l.renderer.ClearBits(); err != nil {
		return errors.Wrap(err, "clear bits")
	}
	return errors.Wrap(l.renderer.ShowControl(ControlRestart), "show restart control")
}

// Run ticks the loop every interval until ctx is cancelled or a tick
// fails. Ticks arriving outside a session do nothing.
func (l *Loop) Run(ctx context.Context) error {
	t := l.clock.Ticker(l.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := l.Step(); err != nil {
				log.WithError(err).Error("tick failed")
				return err
			}
		}
	}
}
