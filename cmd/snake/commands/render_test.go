package commands

import (
	"testing"

	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

type cell struct {
	ch rune
	fg termbox.Attribute
}

type fakeScreen struct {
	cells   map[[2]int]cell
	flushes int
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: map[[2]int]cell{}}
}

func (s *fakeScreen) Clear(fg, bg termbox.Attribute) error {
	s.cells = map[[2]int]cell{}
	return nil
}

func (s *fakeScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	s.cells[[2]int{x, y}] = cell{ch: ch, fg: fg}
}

func (s *fakeScreen) Flush() error {
	s.flushes++
	return nil
}

func (s *fakeScreen) at(p rules.Point) cell {
	return s.cells[[2]int{boardLeft + p.X, boardTop + p.Y + 1}]
}

func (s *fakeScreen) line(y int) string {
	var out []rune
	for x := 0; ; x++ {
		c, ok := s.cells[[2]int{boardLeft + x, y}]
		if !ok {
			break
		}
		out = append(out, c.ch)
	}
	return string(out)
}

func TestRenderSnake(t *testing.T) {
	out := newFakeScreen()
	r := newTermRenderer(out, rules.Grid{Rows: 8, Cols: 8})

	segments, err := rules.Segments(rules.InitialBody)
	require.NoError(t, err)
	require.NoError(t, r.DrawSnake(segments))

	require.Equal(t, '>', out.at(rules.Point{X: 4, Y: 4}).ch)
	require.Equal(t, '─', out.at(rules.Point{X: 3, Y: 4}).ch)
	require.Equal(t, '─', out.at(rules.Point{X: 2, Y: 4}).ch)
	require.Equal(t, '╶', out.at(rules.Point{X: 1, Y: 4}).ch)
	require.Equal(t, snakeColor, out.at(rules.Point{X: 4, Y: 4}).fg)
	require.Equal(t, "Snake! - Length 4", out.line(boardTop-1))
	require.Equal(t, 1, out.flushes)
}

func TestRenderSkipsOffBoardHead(t *testing.T) {
	out := newFakeScreen()
	r := newTermRenderer(out, rules.Grid{Rows: 4, Cols: 4})

	body := []rules.Point{{X: 4, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}}
	segments, err := rules.Segments(body)
	require.NoError(t, err)
	require.NoError(t, r.DrawSnake(segments))

	// the right border stays intact
	require.Equal(t, '│', out.at(rules.Point{X: 4, Y: 1}).ch)
	require.Equal(t, '─', out.at(rules.Point{X: 3, Y: 1}).ch)
}

func TestRenderBitsAndControl(t *testing.T) {
	out := newFakeScreen()
	r := newTermRenderer(out, rules.Grid{Rows: 4, Cols: 4})

	require.NoError(t, r.ShowControl(loop.ControlStart))
	require.Equal(t, "Press Enter to start, Esc to quit", out.line(boardTop+4+2))

	require.NoError(t, r.DrawBits([]rules.Point{{X: 1, Y: 2}}))
	require.Equal(t, '●', out.at(rules.Point{X: 1, Y: 2}).ch)
	require.Equal(t, bitColor, out.at(rules.Point{X: 1, Y: 2}).fg)

	require.NoError(t, r.ClearBits())
	require.Equal(t, ' ', out.at(rules.Point{X: 1, Y: 2}).ch)

	require.NoError(t, r.ShowControl(loop.ControlRestart))
	require.Equal(t, "Game over! Press Enter to restart", out.line(boardTop+4+2))

	segments, err := rules.Segments(rules.InitialBody)
	require.NoError(t, err)
	require.NoError(t, r.DrawSnake(segments))
	require.Equal(t, "", out.line(boardTop+4+2))
}

func TestSegmentRune(t *testing.T) {
	tests := []struct {
		seg  rules.Segment
		want rune
	}{
		{rules.Segment{Kind: rules.SegmentHead, Rotation: 0}, '>'},
		{rules.Segment{Kind: rules.SegmentHead, Rotation: 90}, 'v'},
		{rules.Segment{Kind: rules.SegmentHead, Rotation: 180}, '<'},
		{rules.Segment{Kind: rules.SegmentHead, Rotation: 270}, '^'},
		{rules.Segment{Kind: rules.SegmentTail, Rotation: 0}, '╵'},
		{rules.Segment{Kind: rules.SegmentTail, Rotation: 180}, '╷'},
		{rules.Segment{Kind: rules.SegmentStraight, Rotation: 0}, '─'},
		{rules.Segment{Kind: rules.SegmentStraight, Rotation: 90}, '│'},
		{rules.Segment{Kind: rules.SegmentTurn, Rotation: 0}, '┌'},
		{rules.Segment{Kind: rules.SegmentTurn, Rotation: 180}, '┘'},
		{rules.Segment{Kind: rules.SegmentTurn, Rotation: 45}, '#'},
	}
	for _, tt := range tests {
		require.Equal(t, string(tt.want), string(segmentRune(tt.seg)), "%+v", tt.seg)
	}
}
