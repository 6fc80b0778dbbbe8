// Package game owns the gameplay state machine: the lobby where
// players opt in, the day/night cycle driven by timer alarms, votes,
// deaths and the win condition. It consumes game events from chat and
// talks back only through the Player proxies it was handed.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/avolkov/mafia/internal/chat"
	"github.com/avolkov/mafia/internal/locale"
	"github.com/avolkov/mafia/internal/login"
	"github.com/avolkov/mafia/internal/timer"
)

const defaultQueueSize = 1024

// Config carries the gameplay knobs.
type Config struct {
	// MinPlayers is the smallest number of opted-in players a game can
	// start with.
	MinPlayers int

	// DayDuration and NightDuration bound the discussion and the
	// mafia's deliberation.
	DayDuration   time.Duration
	NightDuration time.Duration
}

// seat is one connected user as the game sees it. Everyone gets a
// seat; playing marks those who opted in with !play.
type seat struct {
	player  chat.Player
	playing bool
	alive   bool
	role    Role
	vote    login.UserID // "" = no vote this phase
}

// Service is the game service. Run is the single consumer of both the
// event channel and the alarm stream.
type Service struct {
	events chan chat.GameEvent
	alarms *timer.Alarms[Phase]
	cfg    Config
	loc    locale.Table

	seats  map[login.UserID]*seat
	logins map[string]login.UserID
	phase  Phase
	paused bool

	shuffle func(n int, swap func(i, j int))
}

// Option adjusts a Service at construction.
type Option func(*Service)

// WithShuffle replaces the role-dealing shuffle, used by tests that
// need deterministic roles.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(s *Service) {
		s.shuffle = shuffle
	}
}

// New creates a game service.
func New(loc locale.Table, cfg Config, queueSize int, opts ...Option) *Service {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if cfg.MinPlayers <= 0 {
		cfg.MinPlayers = 3
	}
	s := &Service{
		events:  make(chan chat.GameEvent, queueSize),
		alarms:  timer.New[Phase](),
		cfg:     cfg,
		loc:     loc,
		seats:   make(map[login.UserID]*seat),
		logins:  make(map[string]login.UserID),
		phase:   PhaseLobby,
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns the channel the chat service emits into.
func (s *Service) Handler() chan<- chat.GameEvent {
	return s.events
}

// Run consumes game events and phase alarms until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-s.events:
			s.handleEvent(ev)
		case phase := <-s.alarms.C():
			s.handleAlarm(phase)
		}
	}
}

func (s *Service) handleEvent(ev chat.GameEvent) {
	switch ev := ev.(type) {
	case chat.Connected:
		s.handleConnected(ev.Player)
	case chat.Disconnected:
		s.handleDisconnected(ev.ID)
	case chat.CommandList:
		s.handleList(ev.ID)
	case chat.CommandObserve:
		s.handleObserve(ev.ID)
	case chat.CommandPlay:
		s.handlePlay(ev.ID)
	case chat.CommandPause:
		s.handlePause(ev.ID)
	case chat.CommandStart:
		s.handleStart(ev.ID)
	case chat.Action:
		s.handleAction(ev.ID, ev.Text)
	default:
		panic(fmt.Sprintf("game: unexpected event %T", ev))
	}
}

func (s *Service) handleConnected(p chat.Player) {
	s.seats[p.ID()] = &seat{player: p}
	s.logins[p.Login()] = p.ID()
	p.Send(s.loc.JoinHint)
}

func (s *Service) handleDisconnected(id login.UserID) {
	st, ok := s.seats[id]
	if !ok {
		return
	}
	delete(s.seats, id)
	delete(s.logins, st.player.Login())
	s.clearVotesFor(id)
	if s.running() && st.playing && st.alive {
		// A player walking out mid-game counts as a death.
		s.checkGameEnd()
	}
}

func (s *Service) handlePlay(id login.UserID) {
	st, ok := s.seats[id]
	if !ok {
		return
	}
	if s.running() {
		// Mid-game nobody changes their own standing, dead or alive;
		// mutes move only at phase transitions.
		st.player.Send(s.loc.GameInProgress)
		return
	}
	if st.playing {
		st.player.Send(s.loc.JoinedGame)
		return
	}
	st.playing = true
	st.player.Mute(chat.MuteLevel{Kind: chat.AllowAll})
	st.player.Send(s.loc.JoinedGame)
}

func (s *Service) handleObserve(id login.UserID) {
	st, ok := s.seats[id]
	if !ok {
		return
	}
	wasAlive := s.running() && st.playing && st.alive
	st.playing = false
	st.alive = false
	st.vote = ""
	s.clearVotesFor(id)
	st.player.Mute(chat.MuteLevel{Kind: chat.DenyAll, Reason: s.loc.ObserverReason})
	st.player.Send(s.loc.LeftGame)
	if wasAlive {
		s.checkGameEnd()
	}
}

func (s *Service) handleStart(id login.UserID) {
	st, ok := s.seats[id]
	if !ok {
		return
	}
	if s.paused {
		s.resume()
		return
	}
	if s.running() {
		st.player.Send(s.loc.GameInProgress)
		return
	}

	var ids []login.UserID
	for sid, seat := range s.seats {
		if seat.playing {
			ids = append(ids, sid)
		}
	}
	if len(ids) < s.cfg.MinPlayers {
		st.player.Send(fmt.Sprintf(s.loc.NotEnoughPlayers, s.cfg.MinPlayers))
		return
	}

	// Deal one mafioso per four seats, at least one.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	s.shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	mafiosi := len(ids) / 4
	if mafiosi < 1 {
		mafiosi = 1
	}
	for i, sid := range ids {
		seat := s.seats[sid]
		seat.alive = true
		seat.vote = ""
		if i < mafiosi {
			seat.role = RoleMafia
			seat.player.Send(s.loc.RoleMafia)
		} else {
			seat.role = RoleCivilian
			seat.player.Send(s.loc.RoleCivilian)
		}
	}
	slog.Info("game started", "players", len(ids), "mafiosi", mafiosi)
	s.broadcast(s.loc.GameStarted)
	s.enterDay()
}

func (s *Service) handlePause(id login.UserID) {
	if _, ok := s.seats[id]; !ok {
		return
	}
	if !s.running() || s.paused {
		return
	}
	s.paused = true
	s.alarms.Reset()
	s.broadcast(s.loc.GamePaused)
}

func (s *Service) resume() {
	s.paused = false
	s.broadcast(s.loc.GameResumed)
	switch s.phase {
	case PhaseDay:
		s.alarms.Add(s.cfg.DayDuration, PhaseDay)
	case PhaseNight:
		s.alarms.Add(s.cfg.NightDuration, PhaseNight)
	}
}

func (s *Service) handleList(id login.UserID) {
	st, ok := s.seats[id]
	if !ok {
		return
	}

	names := make([]string, 0, len(s.logins))
	for name := range s.logins {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(s.loc.RosterHeader)
	for _, name := range names {
		seat := s.seats[s.logins[name]]
		status := s.loc.StatusObserver
		switch {
		case !seat.playing:
		case s.phase == PhaseLobby || seat.alive:
			status = s.loc.StatusAlive
		default:
			status = s.loc.StatusDead
		}
		fmt.Fprintf(&b, "  %s (%s)\n", name, status)
	}
	st.player.Send(b.String())
}

// handleAction records a vote. Days everyone alive votes to lynch;
// nights only the mafia votes for a victim.
func (s *Service) handleAction(id login.UserID, text string) {
	st, ok := s.seats[id]
	if !ok {
		return
	}
	if !s.running() || s.paused || !st.playing || !st.alive {
		st.player.Send(s.loc.NotYourVote)
		return
	}
	if s.phase == PhaseNight && st.role != RoleMafia {
		st.player.Send(s.loc.NotYourVote)
		return
	}

	target := strings.TrimSpace(text)
	tid, ok := s.logins[target]
	if !ok {
		st.player.Send(fmt.Sprintf(s.loc.UnknownVote, target))
		return
	}
	tseat := s.seats[tid]
	if !tseat.playing || !tseat.alive {
		st.player.Send(fmt.Sprintf(s.loc.UnknownVote, target))
		return
	}
	st.vote = tid
	st.player.Send(fmt.Sprintf(s.loc.VoteRecorded, target))
}

func (s *Service) handleAlarm(phase Phase) {
	if s.paused || phase != s.phase {
		return
	}
	switch phase {
	case PhaseDay:
		s.resolveDay()
	case PhaseNight:
		s.resolveNight()
	}
}

func (s *Service) resolveDay() {
	victim := s.tally(func(st *seat) bool { return st.playing && st.alive })
	if victim != "" {
		s.kill(victim)
		s.broadcast(fmt.Sprintf(s.loc.Lynched, s.seats[victim].player.Login()))
	} else {
		s.broadcast(s.loc.NoLynch)
	}
	if !s.checkGameEnd() {
		s.enterNight()
	}
}

func (s *Service) resolveNight() {
	victim := s.tally(func(st *seat) bool {
		return st.playing && st.alive && st.role == RoleMafia
	})
	if victim != "" {
		s.kill(victim)
		s.broadcast(fmt.Sprintf(s.loc.NightKill, s.seats[victim].player.Login()))
	} else {
		s.broadcast(s.loc.NoNightKill)
	}
	if !s.checkGameEnd() {
		s.enterDay()
	}
}

// tally counts votes from qualifying seats and returns the plurality
// target, or "" on no votes or a tie for first.
func (s *Service) tally(qualifies func(*seat) bool) login.UserID {
	counts := make(map[login.UserID]int)
	for _, st := range s.seats {
		if qualifies(st) && st.vote != "" {
			counts[st.vote]++
		}
	}
	var best login.UserID
	bestCount, tied := 0, false
	for tid, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount, tied = tid, n, false
		case n == bestCount:
			tied = true
		}
	}
	if tied || bestCount == 0 {
		return ""
	}
	return best
}

func (s *Service) kill(id login.UserID) {
	st := s.seats[id]
	st.alive = false
	st.vote = ""
	st.player.Mute(chat.MuteLevel{Kind: chat.DenyAll, Reason: s.loc.DeadReason})
}

func (s *Service) enterDay() {
	s.phase = PhaseDay
	s.clearVotes()
	for _, st := range s.seats {
		if st.playing && st.alive {
			st.player.Mute(chat.MuteLevel{Kind: chat.AllowAll})
		}
	}
	s.broadcast(s.loc.DayBreaks)
	s.alarms.Reset()
	s.alarms.Add(s.cfg.DayDuration, PhaseDay)
}

func (s *Service) enterNight() {
	s.phase = PhaseNight
	s.clearVotes()
	for _, st := range s.seats {
		if !st.playing || !st.alive {
			continue
		}
		if st.role == RoleMafia {
			st.player.Mute(chat.MuteLevel{Kind: chat.DenyPublicOnly, Reason: s.loc.NightMafiaReason})
		} else {
			st.player.Mute(chat.MuteLevel{Kind: chat.DenyAll, Reason: s.loc.NightReason})
		}
	}
	s.broadcast(s.loc.NightFalls)
	s.alarms.Reset()
	s.alarms.Add(s.cfg.NightDuration, PhaseNight)
}

// checkGameEnd announces a win and returns to the lobby when one side
// has it. Survivors keep their voice for the lobby chat.
func (s *Service) checkGameEnd() bool {
	if !s.running() {
		return false
	}
	var mafiosi, civilians int
	for _, st := range s.seats {
		if !st.playing || !st.alive {
			continue
		}
		if st.role == RoleMafia {
			mafiosi++
		} else {
			civilians++
		}
	}
	switch {
	case mafiosi == 0:
		s.broadcast(s.loc.TownWin)
	case mafiosi >= civilians:
		s.broadcast(s.loc.MafiaWin)
	default:
		return false
	}

	slog.Info("game over", "mafiosi", mafiosi, "civilians", civilians)
	s.phase = PhaseLobby
	s.paused = false
	s.alarms.Reset()
	for _, st := range s.seats {
		st.alive = false
		st.vote = ""
		if st.playing {
			st.player.Mute(chat.MuteLevel{Kind: chat.AllowAll})
		}
	}
	return true
}

func (s *Service) running() bool {
	return s.phase != PhaseLobby
}

func (s *Service) clearVotes() {
	for _, st := range s.seats {
		st.vote = ""
	}
}

// clearVotesFor erases every vote targeting id. Called whenever a seat
// leaves play so tally can never name a seat that is gone.
func (s *Service) clearVotesFor(id login.UserID) {
	for _, st := range s.seats {
		if st.vote == id {
			st.vote = ""
		}
	}
}

func (s *Service) broadcast(message string) {
	for _, st := range s.seats {
		st.player.Send(message)
	}
}
