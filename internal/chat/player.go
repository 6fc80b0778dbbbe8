package chat

import "github.com/avolkov/mafia/internal/login"

// Request is a side-channel command into the chat service, consumed by
// the same loop as user events.
type Request interface {
	chatRequest()
}

// SetMute replaces a participant's mute level wholesale. Unknown ids
// are ignored.
type SetMute struct {
	ID    login.UserID
	Level MuteLevel
}

func (SetMute) chatRequest() {}

// Player is the handle the game holds for a connected user: the user
// itself plus the chat request sink, so the game can mute without
// touching chat state.
type Player struct {
	User     login.User
	requests chan<- Request
}

// NewPlayer wraps a user and a chat request sink.
func NewPlayer(user login.User, requests chan<- Request) Player {
	return Player{User: user, requests: requests}
}

// ID returns the player's connection id.
func (p Player) ID() login.UserID {
	return p.User.ID
}

// Login returns the player's login name.
func (p Player) Login() string {
	return p.User.Login
}

// Send writes message to the player's connection.
func (p Player) Send(message string) {
	p.User.Send(message)
}

// Disconnect drops the player's connection.
func (p Player) Disconnect() {
	p.User.Disconnect()
}

// Mute replaces the player's mute level.
func (p Player) Mute(level MuteLevel) {
	p.requests <- SetMute{ID: p.User.ID, Level: level}
}
