// Package api is the browser side of the game: it serves the controls and
// the current frame over HTTP and streams every draw call over a
// websocket, taking direction keys back from the browser.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/rules"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const writeWait = 2 * time.Second

// Controller is the part of the game loop the api drives.
type Controller interface {
	Start() error
	Restart() error
	Press(rules.Direction)
	Snapshot() *rules.Frame
}

// Server is the api server.
type Server struct {
	hs    *http.Server
	ctrl  Controller
	hub   *Hub
	limit rate.Limit
	burst int
	input *rate.Limiter
}

// Options tune the input rate limiting. Zero values allow 20 presses a
// second with a burst of 4.
type Options struct {
	InputRate  rate.Limit
	InputBurst int
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// New creates a new api server listening on addr.
func New(addr string, ctrl Controller, hub *Hub, opts Options) *Server {
	if opts.InputRate <= 0 {
		opts.InputRate = 20
	}
	if opts.InputBurst <= 0 {
		opts.InputBurst = 4
	}

	s := &Server{
		ctrl:  ctrl,
		hub:   hub,
		limit: opts.InputRate,
		burst: opts.InputBurst,
		input: rate.NewLimiter(opts.InputRate, opts.InputBurst),
	}

	router := httprouter.New()
	router.GET("/status", s.status)
	router.POST("/start", s.start)
	router.POST("/restart", s.restart)
	router.POST("/move/:direction", s.move)
	router.GET("/socket", s.socket)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// WaitForExit starts up the server and blocks until the server shuts down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("snake api listening")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting for in flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.ctrl.Snapshot())
}

func (s *Server) start(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.control(w, s.ctrl.Start)
}

func (s *Server) restart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.control(w, s.ctrl.Restart)
}

func (s *Server) control(w http.ResponseWriter, trigger func() error) {
	if err := trigger(); err != nil {
		code := http.StatusInternalServerError
		if errors.Cause(err) == loop.ErrInvalidTransition {
			code = http.StatusConflict
		}
		writeError(w, code, err)
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.Snapshot())
}

func (s *Server) move(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	d, ok := rules.ParseDirection(ps.ByName("direction"))
	if !ok {
		writeError(w, http.StatusBadRequest, errors.Errorf("unknown direction %q", ps.ByName("direction")))
		return
	}
	if !s.input.Allow() {
		writeError(w, http.StatusTooManyRequests, errors.New("too many key presses"))
		return
	}
	s.ctrl.Press(d)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("failed to close websocket")
		}
	}()

	sub := s.hub.Subscribe()
	defer s.hub.Unsubscribe(sub)

	if err := s.write(c, Message{Type: MessageFrame, Frame: s.ctrl.Snapshot()}); err != nil {
		return
	}

	done := make(chan struct{})
	go s.readClient(c, done)

	for {
		select {
		case m, ok := <-sub.C:
			if !ok {
				return
			}
			if err := s.write(c, m); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (s *Server) write(c *websocket.Conn, m Message) error {
	if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	err := c.WriteJSON(m)
	if err != nil {
		log.WithError(err).WithField("type", m.Type).Warn("unable to write to websocket")
	}
	return err
}

// readClient applies browser input until the connection closes. Each
// connection gets its own rate limit.
func (s *Server) readClient(c *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	limiter := rate.NewLimiter(s.limit, s.burst)

	for {
		var msg ClientMessage
		if err := c.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("websocket read ended")
			}
			return
		}
		s.handleClient(msg, limiter)
	}
}

func (s *Server) handleClient(msg ClientMessage, limiter *rate.Limiter) {
	if msg.Direction != "" {
		d, ok := rules.ParseDirection(msg.Direction)
		if !ok || !limiter.Allow() {
			return
		}
		s.ctrl.Press(d)
		return
	}

	var err error
	switch msg.Action {
	case "start":
		err = s.ctrl.Start()
	case "restart":
		err = s.ctrl.Restart()
	default:
		return
	}
	if err != nil {
		log.WithError(err).WithField("action", msg.Action).Warn("control rejected")
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, ErrorResponse{Error: err.Error()})
}
