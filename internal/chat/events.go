package chat

import "github.com/avolkov/mafia/internal/login"

// GameEvent is emitted by the chat service to the game layer.
type GameEvent interface {
	gameEvent()
}

// Connected hands the game a player proxy for a user that just joined
// the chat. Each Disconnected for an id is preceded by its Connected.
type Connected struct {
	Player Player
}

// Disconnected announces that the user's connection closed.
type Disconnected struct {
	ID login.UserID
}

// CommandList is the !list command.
type CommandList struct {
	ID login.UserID
}

// CommandObserve is the !observe command.
type CommandObserve struct {
	ID login.UserID
}

// CommandPlay is the !play command.
type CommandPlay struct {
	ID login.UserID
}

// CommandPause is the !pause command.
type CommandPause struct {
	ID login.UserID
}

// CommandStart is the !start command.
type CommandStart struct {
	ID login.UserID
}

// Action is an !!<text> line, forwarded verbatim; its meaning is the
// game's concern.
type Action struct {
	ID   login.UserID
	Text string
}

func (Connected) gameEvent()      {}
func (Disconnected) gameEvent()   {}
func (CommandList) gameEvent()    {}
func (CommandObserve) gameEvent() {}
func (CommandPlay) gameEvent()    {}
func (CommandPause) gameEvent()   {}
func (CommandStart) gameEvent()   {}
func (Action) gameEvent()         {}
