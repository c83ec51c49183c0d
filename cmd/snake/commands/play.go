package commands

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logFile   = "snake.log"
	playWatch = ""
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	RunE: func(c *cobra.Command, args []string) error {
		prometheus()
		closeLog, err := redirectLog(logFile)
		if err != nil {
			return err
		}
		defer closeLog()

		if err := playGame(); err != nil {
			log.WithError(err).Error("game aborted")
			return err
		}
		return nil
	},
}

// redirectLog keeps log lines off the board.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close log file")
		}
	}, nil
}

func playGame() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	term := newTermRenderer(termboxScreen{}, rules.Grid{Rows: rows, Cols: cols})
	var renderer loop.Renderer = term
	hub := api.NewHub()
	if playWatch != "" {
		renderer = loop.Renderers(term, hub)
	}

	l, err := loop.New(loopOptions(renderer))
	if err != nil {
		return err
	}

	if playWatch != "" {
		srv := api.New(playWatch, l, hub, api.Options{
			InputRate:  config.InputRate,
			InputBurst: config.InputBurst,
		})
		go func() {
			if err := srv.WaitForExit(); err != nil {
				log.WithError(err).WithField("listen", playWatch).Error("api server failed")
			}
		}()
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				log.WithError(err).Warn("api server shutdown failed")
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errs := make(chan error, 1)
	go func() { errs <- l.Run(ctx) }()

	eventQueue := setupEventQueue()
	for {
		select {
		case ev := <-eventQueue:
			quit, err := handleEvent(l, term, ev)
			if err != nil || quit {
				return err
			}
		case err := <-errs:
			return err
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

// controls is what the keyboard drives.
type controls interface {
	State() loop.State
	Start() error
	Restart() error
	Press(rules.Direction)
}

var arrowKeys = map[termbox.Key]rules.Direction{
	termbox.KeyArrowRight: rules.Right,
	termbox.KeyArrowLeft:  rules.Left,
	termbox.KeyArrowDown:  rules.Down,
	termbox.KeyArrowUp:    rules.Up,
}

// handleEvent applies one terminal event. It reports true when the player
// asked to quit.
func handleEvent(c controls, term *termRenderer, ev termbox.Event) (bool, error) {
	switch ev.Type {
	case termbox.EventError:
		return true, ev.Err
	case termbox.EventResize:
		return false, term.Redraw()
	case termbox.EventKey:
	default:
		return false, nil
	}

	if d, ok := arrowKeys[ev.Key]; ok {
		c.Press(d)
		return false, nil
	}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true, nil
	case termbox.KeyEnter, termbox.KeySpace:
		return false, trigger(c)
	}
	if ev.Ch == 'q' {
		return true, nil
	}
	return false, nil
}

// trigger fires whichever of start and restart is on offer.
func trigger(c controls) error {
	var err error
	switch c.State() {
	case loop.StateSetup:
		err = c.Start()
	case loop.StateDead:
		err = c.Restart()
	}
	if errors.Cause(err) == loop.ErrInvalidTransition {
		// the state moved on between reading it and acting
		return nil
	}
	return err
}
