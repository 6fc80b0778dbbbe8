package login

import "github.com/avolkov/mafia/internal/socket"

// UserID aliases the connection id; a user lives exactly as long as
// its connection.
type UserID = socket.ConnID

// User is an authenticated connection: the login name plus the socket
// proxy. It is a share-by-value handle like the proxy it wraps.
type User struct {
	ID    UserID
	Login string
	Proxy socket.Proxy
}

// Send writes message to the user's connection.
func (u User) Send(message string) {
	u.Proxy.Send(message)
}

// Disconnect asks the socket service to drop the connection.
func (u User) Disconnect() {
	u.Proxy.Close()
}
