package socket

// ConnID identifies a connection by its peer host:port address. It is
// unique while the connection is alive; a reconnecting peer shows up
// with a new ephemeral port and therefore a new id.
type ConnID string

// Event is emitted by the socket service to the layer above. Per
// connection the service emits exactly one NewSocket, zero or more
// NewMessage, and exactly one ClosedSocket; nothing follows
// ClosedSocket for the same id.
type Event interface {
	socketEvent()
}

// NewSocket announces an accepted connection and hands over its proxy.
type NewSocket struct {
	Proxy Proxy
}

// NewMessage carries one trimmed UTF-8 line read from the connection.
type NewMessage struct {
	ID   ConnID
	Line string
}

// ClosedSocket announces that the connection is gone and its writer
// discarded.
type ClosedSocket struct {
	ID ConnID
}

func (NewSocket) socketEvent()    {}
func (NewMessage) socketEvent()   {}
func (ClosedSocket) socketEvent() {}
