package login

// UserEvent is emitted by the login service to the chat layer. Per
// user the service emits exactly one NewUser, zero or more NewMessage,
// and exactly one DropUser.
type UserEvent interface {
	userEvent()
}

// NewUser announces a freshly authenticated user.
type NewUser struct {
	User User
}

// NewMessage carries one line sent by an authenticated user.
type NewMessage struct {
	ID   UserID
	Line string
}

// DropUser announces that the user's connection closed.
type DropUser struct {
	ID UserID
}

func (NewUser) userEvent()    {}
func (NewMessage) userEvent() {}
func (DropUser) userEvent()   {}
