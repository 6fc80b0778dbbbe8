// Package login authenticates connections by nickname and password and
// promotes them to users. It consumes socket events, owns the
// per-connection auth state machine and the process-wide account
// registry, and emits user events to the chat layer.
package login

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avolkov/mafia/internal/locale"
	"github.com/avolkov/mafia/internal/socket"
)

const defaultQueueSize = 1024

// authSlot is the per-connection state. login is only meaningful in
// stateGotLogin, user only in stateAuthed.
type authSlot struct {
	state authState
	proxy socket.Proxy
	login string
	user  User
}

// Service is the login service. Run is its only consumer; the maps are
// never touched from outside the loop.
type Service struct {
	events   chan<- UserEvent
	socketCh chan socket.Event
	slots    map[socket.ConnID]*authSlot
	registry *Registry
	loc      locale.Table
}

// New creates a login service emitting into events.
func New(events chan<- UserEvent, loc locale.Table, queueSize int) *Service {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Service{
		events:   events,
		socketCh: make(chan socket.Event, queueSize),
		slots:    make(map[socket.ConnID]*authSlot),
		registry: NewRegistry(),
		loc:      loc,
	}
}

// SocketHandler returns the channel the socket service emits into.
func (s *Service) SocketHandler() chan<- socket.Event {
	return s.socketCh
}

// Run consumes socket events until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-s.socketCh:
			switch ev := ev.(type) {
			case socket.NewSocket:
				s.handleNewSocket(ev.Proxy)
			case socket.NewMessage:
				s.handleNewMessage(ev.ID, ev.Line)
			case socket.ClosedSocket:
				s.handleClosedSocket(ev.ID)
			default:
				panic(fmt.Sprintf("login: unexpected socket event %T", ev))
			}
		}
	}
}

func (s *Service) handleNewSocket(proxy socket.Proxy) {
	proxy.Send(s.loc.Welcome)
	s.slots[proxy.ID()] = &authSlot{state: stateInitial, proxy: proxy}
}

func (s *Service) handleNewMessage(id socket.ConnID, line string) {
	slot, ok := s.slots[id]
	if !ok {
		return
	}
	switch slot.state {
	case stateInitial:
		s.handleNickname(slot, line)
	case stateGotLogin:
		s.handlePassword(slot, line)
	case stateAuthed:
		s.events <- NewMessage{ID: id, Line: line}
	}
}

func (s *Service) handleNickname(slot *authSlot, name string) {
	if s.registry.Online(name) {
		slot.proxy.Send(fmt.Sprintf(s.loc.AlreadyOnline, name))
		return
	}
	if s.registry.Known(name) {
		slot.proxy.Send(fmt.Sprintf(s.loc.PasswordPrompt, name))
	} else {
		slot.proxy.Send(fmt.Sprintf(s.loc.CreatePrompt, name))
	}
	slot.login = name
	slot.state = stateGotLogin
}

func (s *Service) handlePassword(slot *authSlot, secret string) {
	name := slot.login
	slot.login = ""

	switch {
	case s.registry.Online(name):
		// Another connection finished logging in first.
		slot.proxy.Send(fmt.Sprintf(s.loc.AlreadyOnline, name))
		slot.state = stateInitial
	case s.registry.Known(name):
		if !s.registry.Authenticate(name, secret) {
			slot.proxy.Send(s.loc.WrongPassword)
			slot.state = stateInitial
			return
		}
		slot.proxy.Send(fmt.Sprintf(s.loc.WelcomeBack, name))
		s.authenticated(slot, name)
	default:
		if err := s.registry.Create(name, secret); err != nil {
			slog.Warn("account creation failed", "login", name, "err", err)
			slot.proxy.Send(s.loc.WrongPassword)
			slot.state = stateInitial
			return
		}
		slot.proxy.Send(fmt.Sprintf(s.loc.Created, name))
		s.authenticated(slot, name)
	}
}

func (s *Service) authenticated(slot *authSlot, name string) {
	slot.state = stateAuthed
	slot.user = User{ID: slot.proxy.ID(), Login: name, Proxy: slot.proxy}
	slog.Info("user authenticated", "id", slot.user.ID, "login", name)
	s.events <- NewUser{User: slot.user}
}

func (s *Service) handleClosedSocket(id socket.ConnID) {
	slot, ok := s.slots[id]
	if !ok {
		return
	}
	delete(s.slots, id)
	if slot.state != stateAuthed {
		return
	}
	// SetOffline panics if the account is not online, which is the
	// authenticated-implies-online invariant check.
	s.registry.SetOffline(slot.user.Login)
	slog.Info("user disconnected", "id", id, "login", slot.user.Login)
	s.events <- DropUser{ID: id}
}
