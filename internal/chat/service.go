// Package chat is the shared room between login and game. It keeps the
// participant table with its mute policy, parses lines into public,
// private, command and action messages, and re-emits commands and
// actions as game events.
package chat

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/avolkov/mafia/internal/locale"
	"github.com/avolkov/mafia/internal/login"
)

const defaultQueueSize = 1024

// participant is one connected, authenticated user together with its
// mute level.
type participant struct {
	user login.User
	mute MuteLevel
}

// Service is the chat service. The run loop is the single consumer of
// both the user event channel and the request channel.
type Service struct {
	game     chan<- GameEvent
	users    chan login.UserEvent
	requests chan Request

	participants map[login.UserID]*participant
	logins       map[string]login.UserID

	loc locale.Table
	now func() time.Time
}

// New creates a chat service emitting into game.
func New(game chan<- GameEvent, loc locale.Table, queueSize int) *Service {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Service{
		game:         game,
		users:        make(chan login.UserEvent, queueSize),
		requests:     make(chan Request, queueSize),
		participants: make(map[login.UserID]*participant),
		logins:       make(map[string]login.UserID),
		loc:          loc,
		now:          time.Now,
	}
}

// UserHandler returns the channel the login service emits into.
func (s *Service) UserHandler() chan<- login.UserEvent {
	return s.users
}

// Run consumes user events and requests until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-s.users:
			s.handleUserEvent(ev)
		case req := <-s.requests:
			s.handleRequest(req)
		}
	}
}

func (s *Service) handleUserEvent(ev login.UserEvent) {
	switch ev := ev.(type) {
	case login.NewUser:
		s.handleNewUser(ev.User)
	case login.NewMessage:
		s.handleNewMessage(ev.ID, ev.Line)
	case login.DropUser:
		s.handleDropUser(ev.ID)
	default:
		panic(fmt.Sprintf("chat: unexpected user event %T", ev))
	}
}

func (s *Service) handleRequest(req Request) {
	switch req := req.(type) {
	case SetMute:
		if p, ok := s.participants[req.ID]; ok {
			p.mute = req.Level
		}
	default:
		panic(fmt.Sprintf("chat: unexpected request %T", req))
	}
}

func (s *Service) handleNewUser(user login.User) {
	s.participants[user.ID] = &participant{
		user: user,
		mute: MuteLevel{Kind: DenyAll, Reason: s.loc.ObserverReason},
	}
	s.logins[user.Login] = user.ID
	s.broadcast(fmt.Sprintf(s.loc.ConnectedBanner, s.timestamp(), user.Login))
	s.game <- Connected{Player: Player{User: user, requests: s.requests}}
}

func (s *Service) handleDropUser(id login.UserID) {
	p, ok := s.participants[id]
	if !ok {
		return
	}
	delete(s.participants, id)
	delete(s.logins, p.user.Login)
	s.broadcast(fmt.Sprintf(s.loc.DisconnectedBanner, s.timestamp(), p.user.Login))
	s.game <- Disconnected{ID: id}
}

func (s *Service) handleNewMessage(id login.UserID, line string) {
	p, ok := s.participants[id]
	if !ok {
		return
	}
	msg := parseLine(line)
	switch msg.kind {
	case kindPublic:
		s.handlePublic(p, msg.body)
	case kindPrivate:
		s.handlePrivate(p, msg)
	case kindCommand:
		s.handleCommand(p, msg.body)
	case kindAction:
		s.game <- Action{ID: id, Text: msg.body}
	}
}

func (s *Service) handlePublic(p *participant, body string) {
	if !p.mute.allowsPublic() {
		p.user.Send(p.mute.Reason)
		return
	}
	if body == "" {
		return
	}
	s.broadcast(fmt.Sprintf(s.loc.PublicMessage, s.timestamp(), p.user.Login, body))
}

// handlePrivate validates in a fixed order: mute, non-empty body,
// non-empty recipient list, every recipient known. The first failure
// answers the sender and aborts.
func (s *Service) handlePrivate(p *participant, msg parsed) {
	if !p.mute.allowsPrivate() {
		p.user.Send(p.mute.Reason)
		return
	}
	if msg.body == "" {
		p.user.Send(s.loc.EmptyPrivate)
		return
	}
	if len(msg.recipients) == 0 {
		p.user.Send(s.loc.NoRecipients)
		return
	}
	var unknown []string
	for _, r := range msg.recipients {
		if _, ok := s.logins[r]; !ok {
			unknown = append(unknown, r)
		}
	}
	if len(unknown) > 0 {
		p.user.Send(fmt.Sprintf(s.loc.UnknownUsers, strings.Join(unknown, ", ")))
		return
	}

	// Format once with the recipients in their original order, then
	// deliver to the deduplicated set. The sender always gets exactly
	// one copy, even when listed as a recipient.
	formatted := s.formatPrivate(p.user.Login, msg.recipients, msg.body)
	targets := append([]string(nil), msg.recipients...)
	sort.Strings(targets)
	targets = slices.Compact(targets)
	for _, r := range targets {
		id := s.logins[r]
		if id == p.user.ID {
			continue
		}
		s.participants[id].user.Send(formatted)
	}
	p.user.Send(formatted)
}

func (s *Service) formatPrivate(sender string, recipients []string, body string) string {
	tagged := make([]string, len(recipients))
	for i, r := range recipients {
		tagged[i] = "[" + r + "]"
	}
	return fmt.Sprintf(s.loc.PrivateMessage, s.timestamp(), sender, strings.Join(tagged, "+"), body)
}

func (s *Service) handleCommand(p *participant, name string) {
	id := p.user.ID
	switch name {
	case "help":
		p.user.Send(s.loc.Help)
	case "quit":
		p.user.Disconnect()
	case "list":
		s.game <- CommandList{ID: id}
	case "observe":
		s.game <- CommandObserve{ID: id}
	case "play":
		s.game <- CommandPlay{ID: id}
	case "pause":
		s.game <- CommandPause{ID: id}
	case "start":
		s.game <- CommandStart{ID: id}
	default:
		p.user.Send(s.loc.UnknownCommand)
	}
}

func (s *Service) broadcast(message string) {
	for _, p := range s.participants {
		p.user.Send(message)
	}
}

func (s *Service) timestamp() string {
	return s.now().Format("15:04")
}
