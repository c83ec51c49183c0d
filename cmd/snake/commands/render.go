package commands

import (
	"fmt"
	"sync"

	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	bitColor     = termbox.ColorYellow
	oddCellColor = termbox.ColorBlack

	boardLeft = 2
	boardTop  = 2
)

// screen is the subset of termbox the renderer draws with.
type screen interface {
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
}

type termboxScreen struct{}

func (termboxScreen) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }
func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}
func (termboxScreen) Flush() error { return termbox.Flush() }

// termRenderer implements loop.Renderer on a terminal. It keeps what is
// on screen and repaints the whole board on every call.
type termRenderer struct {
	sync.Mutex
	out     screen
	grid    rules.Grid
	snake   []rules.Segment
	bits    []rules.Point
	control loop.Control
}

func newTermRenderer(out screen, grid rules.Grid) *termRenderer {
	return &termRenderer{out: out, grid: grid}
}

func (r *termRenderer) DrawSnake(segments []rules.Segment) error {
	r.Lock()
	defer r.Unlock()
	r.snake = segments
	r.control = ""
	return r.render()
}

func (r *termRenderer) DrawBits(bits []rules.Point) error {
	r.Lock()
	defer r.Unlock()
	r.bits = bits
	return r.render()
}

func (r *termRenderer) ClearBits() error {
	r.Lock()
	defer r.Unlock()
	r.bits = nil
	return r.render()
}

func (r *termRenderer) ShowControl(c loop.Control) error {
	r.Lock()
	defer r.Unlock()
	r.control = c
	return r.render()
}

// Redraw repaints the current view, after a terminal resize.
func (r *termRenderer) Redraw() error {
	r.Lock()
	defer r.Unlock()
	return r.render()
}

func (r *termRenderer) render() error {
	if err := r.out.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	bottom := boardTop + r.grid.Rows + 1
	r.renderTitle()
	r.renderBoard(bottom)
	r.renderBits()
	r.renderSnake()
	r.renderControl(bottom + 1)

	return r.out.Flush()
}

func (r *termRenderer) renderTitle() {
	text := "Snake!"
	if len(r.snake) > 0 {
		text = fmt.Sprintf("Snake! - Length %d", len(r.snake))
	}
	r.print(boardLeft, boardTop-1, defaultColor, defaultColor, text)
}

func (r *termRenderer) renderBoard(bottom int) {
	right := boardLeft + r.grid.Cols
	for i := boardTop + 1; i < bottom; i++ {
		r.out.SetCell(boardLeft-1, i, '│', defaultColor, bgColor)
		r.out.SetCell(right, i, '│', defaultColor, bgColor)
	}

	r.out.SetCell(boardLeft-1, boardTop, '┌', defaultColor, bgColor)
	r.out.SetCell(boardLeft-1, bottom, '└', defaultColor, bgColor)
	r.out.SetCell(right, boardTop, '┐', defaultColor, bgColor)
	r.out.SetCell(right, bottom, '┘', defaultColor, bgColor)

	for x := boardLeft; x < right; x++ {
		r.out.SetCell(x, boardTop, '─', defaultColor, bgColor)
		r.out.SetCell(x, bottom, '─', defaultColor, bgColor)
	}

	for _, p := range r.grid.Points() {
		bg := bgColor
		if !r.grid.Even(p) {
			bg = oddCellColor
		}
		r.setCell(p, ' ', defaultColor, bg)
	}
}

func (r *termRenderer) renderBits() {
	for _, b := range r.bits {
		r.setCell(b, '●', bitColor, r.cellBackground(b))
	}
}

func (r *termRenderer) renderSnake() {
	for _, s := range r.snake {
		if !r.grid.Contains(s.Point) {
			continue
		}
		r.setCell(s.Point, segmentRune(s), snakeColor, r.cellBackground(s.Point))
	}
}

func (r *termRenderer) renderControl(y int) {
	switch r.control {
	case loop.ControlStart:
		r.print(boardLeft, y, defaultColor, defaultColor, "Press Enter to start, Esc to quit")
	case loop.ControlRestart:
		r.print(boardLeft, y, termbox.ColorRed, defaultColor, "Game over! Press Enter to restart")
	}
}

func (r *termRenderer) cellBackground(p rules.Point) termbox.Attribute {
	if r.grid.Even(p) {
		return bgColor
	}
	return oddCellColor
}

// setCell draws at board coordinates. The border takes the first row, so
// board row y is screen row boardTop+y+1.
func (r *termRenderer) setCell(p rules.Point, ch rune, fg, bg termbox.Attribute) {
	r.out.SetCell(boardLeft+p.X, boardTop+p.Y+1, ch, fg, bg)
}

func (r *termRenderer) print(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		r.out.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

var (
	headRunes = map[int]rune{0: '>', 90: 'v', 180: '<', 270: '^'}
	tailRunes = map[int]rune{0: '╵', 90: '╶', 180: '╷', 270: '╴'}
	turnRunes = map[int]rune{0: '┌', 90: '┐', 180: '┘', 270: '└'}
)

// segmentRune picks the glyph for a segment. Heads point the way the snake
// moves and tails and turns open towards their neighbours.
func segmentRune(s rules.Segment) rune {
	var set map[int]rune
	switch s.Kind {
	case rules.SegmentHead:
		set = headRunes
	case rules.SegmentTail:
		set = tailRunes
	case rules.SegmentTurn:
		set = turnRunes
	case rules.SegmentStraight:
		if s.Rotation == 90 {
			return '│'
		}
		return '─'
	}
	if r, ok := set[s.Rotation]; ok {
		return r
	}
	return '#'
}
