package api

import (
	"sync"

	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
)

const subscriberBuffer = 64

// Hub is a loop.Renderer that forwards every draw call to the connected
// browsers. It keeps the current view so a browser connecting mid game
// starts from what is on screen.
type Hub struct {
	mu      sync.Mutex
	subs    map[*Subscriber]struct{}
	snake   *Message
	bits    *Message
	control *Message
}

// Subscriber receives the view messages of one viewer.
type Subscriber struct {
	C chan Message
}

// NewHub returns a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: map[*Subscriber]struct{}{}}
}

// Subscribe registers a new viewer. Its channel is primed with the current
// view and closed when the viewer falls too far behind or unsubscribes.
func (h *Hub) Subscribe() *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscriber{C: make(chan Message, subscriberBuffer)}
	for _, m := range []*Message{h.control, h.snake, h.bits} {
		if m != nil {
			sub.C <- *m
		}
	}
	h.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a viewer and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.C)
	}
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// DrawSnake implements loop.Renderer.
func (h *Hub) DrawSnake(segments []rules.Segment) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	m := Message{Type: MessageSnake, Segments: segments}
	h.snake = &m
	// the start and restart controls go away once a session draws
	h.control = nil
	h.broadcast(m)
	return nil
}

// DrawBits implements loop.Renderer.
func (h *Hub) DrawBits(bits []rules.Point) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	m := Message{Type: MessageBits, Bits: bits}
	h.bits = &m
	h.broadcast(m)
	return nil
}

// ClearBits implements loop.Renderer.
func (h *Hub) ClearBits() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.bits = nil
	h.broadcast(Message{Type: MessageClearBits})
	return nil
}

// ShowControl implements loop.Renderer.
func (h *Hub) ShowControl(c loop.Control) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	m := Message{Type: MessageControl, Control: c}
	h.control = &m
	h.broadcast(m)
	return nil
}

// broadcast is called with the lock held.
func (h *Hub) broadcast(m Message) {
	for sub := range h.subs {
		select {
		case sub.C <- m:
		default:
			log.WithField("type", m.Type).Warn("dropping slow viewer")
			delete(h.subs, sub)
			close(sub.C)
		}
	}
}
