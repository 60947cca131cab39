// Package ws serves duels over plain websockets, one engine per connection.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gorilla/websocket"
	"github.com/heroiclabs/nakama-common/runtime"

	"trumpduel/internal/app"
)

// TickInterval is how often a session advances its scheduler.
const TickInterval = 50 * time.Millisecond

// Server message types.
const (
	TypeState = "state"
	TypeEvent = "event"
	TypeError = "error"
)

// Conn is the subset of *websocket.Conn a session needs.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// Message is a server push.
type Message struct {
	Type  string        `json:"type"`
	State *app.Snapshot `json:"state,omitempty"`
	Event *app.Event    `json:"event,omitempty"`
	Error *ErrorBody    `json:"error,omitempty"`
}

// ErrorBody describes a refused client message.
type ErrorBody struct {
	Command app.CommandKind `json:"command,omitempty"`
	Message string          `json:"message"`
}

type inbound struct {
	cmd app.Command
	err error
}

// Session binds one connection to one engine. Every engine call happens on
// the goroutine running Run.
type Session struct {
	conn   Conn
	engine *app.Engine
	sched  *app.QueueScheduler
	logger runtime.Logger
}

// NewSession creates the engine for conn. opts.Scheduler is replaced by the
// session's own queue.
func NewSession(conn Conn, opts app.Options, logger runtime.Logger) (*Session, error) {
	sched := app.NewQueueScheduler()
	opts.Scheduler = sched
	engine, err := app.NewEngine(opts)
	if err != nil {
		return nil, err
	}
	engine.Events()
	return &Session{
		conn:   conn,
		engine: engine,
		sched:  sched,
		logger: logger.WithField("game_id", engine.GameID()),
	}, nil
}

// Engine exposes the session's engine for inspection.
func (s *Session) Engine() *app.Engine { return s.engine }

// Handle executes cmd. A refused command is reported to the client; only
// write failures are returned.
func (s *Session) Handle(cmd app.Command) error {
	if err := s.engine.Execute(cmd); err != nil {
		s.logger.Debug("command %s refused: %v", cmd.Kind, err)
		if werr := s.conn.WriteJSON(Message{Type: TypeError, Error: &ErrorBody{Command: cmd.Kind, Message: err.Error()}}); werr != nil {
			return werr
		}
	}
	return s.Flush()
}

// Tick moves the scheduler clock to elapsed and flushes what happened.
func (s *Session) Tick(elapsed time.Duration) error {
	s.sched.Advance(elapsed)
	return s.Flush()
}

// Flush pushes drained events, followed by a snapshot when there were any.
func (s *Session) Flush() error {
	events := s.engine.Events()
	if len(events) == 0 {
		return nil
	}
	for i := range events {
		if err := s.conn.WriteJSON(Message{Type: TypeEvent, Event: &events[i]}); err != nil {
			return err
		}
	}
	return s.SendState()
}

// SendState pushes a fresh snapshot.
func (s *Session) SendState() error {
	snap := s.engine.Snapshot()
	return s.conn.WriteJSON(Message{Type: TypeState, State: &snap})
}

// Run serves the connection until the client goes away or ctx ends. The
// connection is closed on return.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	if err := s.SendState(); err != nil {
		return err
	}

	in := make(chan inbound)
	go s.read(ctx, in)

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-in:
			if msg.err != nil {
				if isMalformed(msg.err) {
					if err := s.conn.WriteJSON(Message{Type: TypeError, Error: &ErrorBody{Message: msg.err.Error()}}); err != nil {
						return err
					}
					continue
				}
				if isClosed(msg.err) {
					s.logger.Info("client disconnected")
					return nil
				}
				return msg.err
			}
			if err := s.Handle(msg.cmd); err != nil {
				return err
			}
		case now := <-ticker.C:
			if err := s.Tick(now.Sub(start)); err != nil {
				return err
			}
		}
	}
}

func (s *Session) read(ctx context.Context, in chan<- inbound) {
	for {
		var cmd app.Command
		err := s.conn.ReadJSON(&cmd)
		select {
		case in <- inbound{cmd: cmd, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil && !isMalformed(err) {
			return
		}
	}
}

func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
