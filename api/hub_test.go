package api

import (
	"testing"

	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/rules"
	"github.com/stretchr/testify/require"
)

func TestHubReplaysCurrentView(t *testing.T) {
	h := NewHub()
	segments, err := rules.Segments(rules.InitialBody)
	require.NoError(t, err)

	require.NoError(t, h.ShowControl(loop.ControlStart))
	require.NoError(t, h.DrawSnake(segments))
	require.NoError(t, h.DrawBits([]rules.Point{{X: 1, Y: 1}}))

	sub := h.Subscribe()
	require.Equal(t, 1, h.Count())
	require.Len(t, sub.C, 2, "control should be gone once the snake is drawn")
	require.Equal(t, MessageSnake, (<-sub.C).Type)
	require.Equal(t, MessageBits, (<-sub.C).Type)

	require.NoError(t, h.ClearBits())
	require.NoError(t, h.ShowControl(loop.ControlRestart))
	require.Equal(t, MessageClearBits, (<-sub.C).Type)
	m := <-sub.C
	require.Equal(t, MessageControl, m.Type)
	require.Equal(t, loop.ControlRestart, m.Control)

	late := h.Subscribe()
	require.Len(t, late.C, 2)
	require.Equal(t, MessageControl, (<-late.C).Type)
	require.Equal(t, MessageSnake, (<-late.C).Type)

	h.Unsubscribe(sub)
	h.Unsubscribe(sub)
	_, ok := <-sub.C
	require.False(t, ok)
	require.Equal(t, 1, h.Count())
}

func TestHubDropsSlowViewer(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe()

	for i := 0; i <= subscriberBuffer; i++ {
		require.NoError(t, h.DrawBits(nil))
	}
	require.Equal(t, 0, h.Count())

	n := 0
	for range sub.C {
		n++
	}
	require.Equal(t, subscriberBuffer, n)
}
