package socket

import (
	"net"
	"sync"
)

// monitored pairs a connection with a one-shot flatline signal. The
// service owns the writer half through this wrapper. Dropping it closes
// the conn, which unblocks the reader goroutine stuck in Read, and
// fires done so the reader can tell an intentional close from a
// transport error.
type monitored struct {
	conn net.Conn
	done chan struct{}
	once sync.Once
}

func monitor(conn net.Conn) *monitored {
	return &monitored{conn: conn, done: make(chan struct{})}
}

// drop fires the flatline and closes the underlying connection. Safe to
// call more than once.
func (m *monitored) drop() {
	m.once.Do(func() {
		close(m.done)
		m.conn.Close()
	})
}

// flatlined reports whether drop has been called.
func (m *monitored) flatlined() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}
