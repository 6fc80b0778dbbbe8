// Package socket accepts TCP connections and frames each byte stream
// into a stream of line events. It is the bottom service of the
// pipeline: events flow up to the login service, write/close requests
// flow back down through the Proxy handed out on accept.
package socket

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"
)

const (
	defaultQueueSize    = 1024
	defaultWriteTimeout = 5 * time.Second
)

// Config carries the few knobs the socket service exposes.
type Config struct {
	// Addr is the host:port to listen on.
	Addr string

	// QueueSize bounds the request channel shared by every Proxy.
	QueueSize int

	// WriteTimeout is the per-write deadline; a peer slower than this
	// is closed.
	WriteTimeout time.Duration
}

// Service owns every connection's writer half and the listener. The
// Run loop is the only goroutine touching the writer table; readers
// own their half of the socket and a send handle to the read channel.
type Service struct {
	cfg    Config
	events chan<- Event

	requests chan Request
	reads    chan readResult
	writers  map[ConnID]*monitored
}

// New creates a socket service emitting into events.
func New(events chan<- Event, cfg Config) *Service {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	return &Service{
		cfg:      cfg,
		events:   events,
		requests: make(chan Request, cfg.QueueSize),
		reads:    make(chan readResult),
		writers:  make(map[ConnID]*monitored),
	}
}

// Run listens on the configured address and serves until ctx is
// cancelled. It returns nil on cancellation and an error for anything
// that kills the listener.
func (s *Service) Run(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve multiplexes accepts on listener, read results and downward
// requests. Split from Run so tests can serve an ephemeral-port
// listener they created themselves.
func (s *Service) Serve(ctx context.Context, listener net.Listener) error {
	defer listener.Close()
	slog.Info("listening", "addr", listener.Addr())

	accepts := make(chan net.Conn)
	acceptErr := make(chan error, 1)
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				acceptErr <- err
				return
			}
			select {
			case accepts <- conn:
			case <-ctx.Done():
				conn.Close()
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return nil
		case err := <-acceptErr:
			if ctx.Err() != nil {
				s.shutdown()
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		case conn := <-accepts:
			s.handleConnection(conn)
		case result := <-s.reads:
			s.handleRead(result)
		case req := <-s.requests:
			s.handleRequest(req)
		}
	}
}

func (s *Service) handleConnection(conn net.Conn) {
	id := ConnID(conn.RemoteAddr().String())
	slog.Info("new connection", "id", id)

	m := monitor(conn)
	s.writers[id] = m
	go readLines(id, m, s.reads)

	s.events <- NewSocket{Proxy: NewProxy(id, s.requests)}
}

func (s *Service) handleRead(result readResult) {
	if _, ok := s.writers[result.id]; !ok {
		// Late reader output for an id we already closed.
		return
	}
	switch {
	case result.err != nil:
		slog.Info("closing connection", "id", result.id, "err", result.err)
		s.closeConnection(result.id)
	case result.eof:
		slog.Info("remote closed connection", "id", result.id)
		s.closeConnection(result.id)
	default:
		s.events <- NewMessage{ID: result.id, Line: result.line}
	}
}

func (s *Service) handleRequest(req Request) {
	switch req := req.(type) {
	case SendMessage:
		m, ok := s.writers[req.ID]
		if !ok {
			return
		}
		m.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
		if _, err := io.WriteString(m.conn, req.Payload); err != nil {
			slog.Warn("write failed, closing connection", "id", req.ID, "err", err)
			s.closeConnection(req.ID)
		}
	case CloseSocket:
		if _, ok := s.writers[req.ID]; ok {
			slog.Info("closing connection", "id", req.ID)
			s.closeConnection(req.ID)
		}
	}
}

// closeConnection drops the writer (flatlining the reader) and emits
// ClosedSocket exactly once per id.
func (s *Service) closeConnection(id ConnID) {
	m, ok := s.writers[id]
	if !ok {
		return
	}
	delete(s.writers, id)
	m.drop()
	s.events <- ClosedSocket{ID: id}
}

// shutdown drops every writer without emitting events; the process is
// exiting and upper services are being cancelled with us.
func (s *Service) shutdown() {
	for id, m := range s.writers {
		m.drop()
		delete(s.writers, id)
	}
}
