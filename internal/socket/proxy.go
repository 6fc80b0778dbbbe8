package socket

// Request is a downward command consumed by the socket service loop.
type Request interface {
	socketRequest()
}

// SendMessage writes Payload to the connection. Payloads are written in
// the order they were enqueued, per connection.
type SendMessage struct {
	ID      ConnID
	Payload string
}

// CloseSocket drops the writer, which flatlines the reader and makes
// the service emit ClosedSocket upstream.
type CloseSocket struct {
	ID ConnID
}

func (SendMessage) socketRequest() {}
func (CloseSocket) socketRequest() {}

// Proxy is a share-by-value handle for one connection: an id plus the
// service's request sink. It confers write/close capability and nothing
// else; the service keeps exclusive ownership of the writer.
type Proxy struct {
	id       ConnID
	requests chan<- Request
}

// NewProxy wraps a request sink for the given connection id.
func NewProxy(id ConnID, requests chan<- Request) Proxy {
	return Proxy{id: id, requests: requests}
}

// ID returns the connection id this proxy writes to.
func (p Proxy) ID() ConnID {
	return p.id
}

// Send enqueues payload for writing. A write failure closes the
// connection instead of reporting back; the caller observes it as a
// ClosedSocket event.
func (p Proxy) Send(payload string) {
	p.requests <- SendMessage{ID: p.id, Payload: payload}
}

// Close asks the service to drop the connection.
func (p Proxy) Close() {
	p.requests <- CloseSocket{ID: p.id}
}
