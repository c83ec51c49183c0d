package api

import (
	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/rules"
)

// Message types sent over the socket, one per renderer call.
const (
	MessageSnake     = "snake"
	MessageBits      = "bits"
	MessageClearBits = "clear-bits"
	MessageControl   = "control"
	MessageFrame     = "frame"
)

// Message is the server to browser message format.
type Message struct {
	Type     string          `json:"type"`
	Segments []rules.Segment `json:"segments,omitempty"`
	Bits     []rules.Point   `json:"bits,omitempty"`
	Control  loop.Control    `json:"control,omitempty"`
	Frame    *rules.Frame    `json:"frame,omitempty"`
}

// ClientMessage is what the browser sends: either a direction key or a
// start/restart action.
type ClientMessage struct {
	Direction string `json:"direction,omitempty"`
	Action    string `json:"action,omitempty"`
}

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
