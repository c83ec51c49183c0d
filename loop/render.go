package loop

import "github.com/battlesnakeio/snake/rules"

// Control is a user triggerable action shown by the renderer.
type Control string

const (
	// ControlStart begins the first session.
	ControlStart Control = "start"
	// ControlRestart begins a new session after the last one ended.
	ControlRestart Control = "restart"
)

// Renderer draws the game. The loop calls it after every state change and
// never reads anything back.
type Renderer interface {
	// DrawSnake replaces the drawn snake with the given segments, head
	// first. Segments off the board should not be drawn.
	DrawSnake(segments []rules.Segment) error
	// DrawBits draws the active bits.
	DrawBits(bits []rules.Point) error
	// ClearBits removes every drawn bit.
	ClearBits() error
	// ShowControl offers a start or restart action to the user.
	ShowControl(c Control) error
}

// Renderers fans every call out to each renderer in order, stopping at the
// first error.
func Renderers(rs ...Renderer) Renderer {
	return multiRenderer(rs)
}

type multiRenderer []Renderer

func (m multiRenderer) DrawSnake(segments []rules.Segment) error {
	for _, r := range m {
		if err := r.DrawSnake(segments); err != nil {
			return err
		}
	}
	return nil
}

func (m multiRenderer) DrawBits(bits []rules.Point) error {
	for _, r := range m {
		if err := r.DrawBits(bits); err != nil {
			return err
		}
	}
	return nil
}

func (m multiRenderer) ClearBits() error {
	for _, r := range m {
		if err := r.ClearBits(); err != nil {
			return err
		}
	}
	return nil
}

func (m multiRenderer) ShowControl(c Control) error {
	for _, r := range m {
		if err := r.ShowControl(c); err != nil {
			return err
		}
	}
	return nil
}
