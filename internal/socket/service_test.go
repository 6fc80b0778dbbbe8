package socket

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startService serves on an ephemeral port and returns the event
// stream and the dial address.
func startService(t *testing.T) (chan Event, string) {
	t.Helper()
	events := make(chan Event, 64)
	s := New(events, Config{QueueSize: 64, WriteTimeout: time.Second})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- s.Serve(ctx, listener)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-serveDone:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("service did not stop")
		}
	})
	return events, listener.Addr().String()
}

func dial(t *testing.T, addr string) net.Conn {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func nextEvent(t *testing.T, events chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func expectProxy(t *testing.T, events chan Event) Proxy {
	t.Helper()
	ev := nextEvent(t, events)
	newSocket, ok := ev.(NewSocket)
	require.True(t, ok, "expected NewSocket, got %T", ev)
	return newSocket.Proxy
}

func TestService_EventOrder(t *testing.T) {
	events, addr := startService(t)
	conn := dial(t, addr)

	proxy := expectProxy(t, events)

	_, err := conn.Write([]byte("hello\nworld\n"))
	require.NoError(t, err)
	assert.Equal(t, NewMessage{ID: proxy.ID(), Line: "hello"}, nextEvent(t, events))
	assert.Equal(t, NewMessage{ID: proxy.ID(), Line: "world"}, nextEvent(t, events))

	conn.Close()
	assert.Equal(t, ClosedSocket{ID: proxy.ID()}, nextEvent(t, events))
}

func TestService_ProxySendReachesPeer(t *testing.T) {
	events, addr := startService(t)
	conn := dial(t, addr)
	proxy := expectProxy(t, events)

	proxy.Send("one ")
	proxy.Send("two\n")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 64)
	total := 0
	for total < len("one two\n") {
		n, err := conn.Read(buf[total:])
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, "one two\n", string(buf[:total]))
}

func TestService_ProxyCloseDropsPeer(t *testing.T) {
	events, addr := startService(t)
	conn := dial(t, addr)
	proxy := expectProxy(t, events)

	proxy.Close()

	assert.Equal(t, ClosedSocket{ID: proxy.ID()}, nextEvent(t, events))
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err := conn.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
}

func TestService_SendAfterCloseIgnored(t *testing.T) {
	events, addr := startService(t)
	dial(t, addr)
	proxy := expectProxy(t, events)

	proxy.Close()
	assert.Equal(t, ClosedSocket{ID: proxy.ID()}, nextEvent(t, events))

	// Neither send nor a second close may emit another event.
	proxy.Send("into the void\n")
	proxy.Close()
	select {
	case ev := <-events:
		t.Fatalf("unexpected event after close: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestService_InvalidUTF8ClosesConnection(t *testing.T) {
	events, addr := startService(t)
	conn := dial(t, addr)
	proxy := expectProxy(t, events)

	_, err := conn.Write([]byte{0xff, 0xfe, '\n'})
	require.NoError(t, err)

	assert.Equal(t, ClosedSocket{ID: proxy.ID()}, nextEvent(t, events))
}

func TestService_ZeroByteCloseIsClean(t *testing.T) {
	events, addr := startService(t)
	conn := dial(t, addr)
	proxy := expectProxy(t, events)

	conn.Close()

	assert.Equal(t, ClosedSocket{ID: proxy.ID()}, nextEvent(t, events))
}

func TestService_TwoConnectionsIndependent(t *testing.T) {
	events, addr := startService(t)
	connA := dial(t, addr)
	proxyA := expectProxy(t, events)
	connB := dial(t, addr)
	proxyB := expectProxy(t, events)
	require.NotEqual(t, proxyA.ID(), proxyB.ID())

	_, err := connA.Write([]byte("from a\n"))
	require.NoError(t, err)
	assert.Equal(t, NewMessage{ID: proxyA.ID(), Line: "from a"}, nextEvent(t, events))

	connA.Close()
	assert.Equal(t, ClosedSocket{ID: proxyA.ID()}, nextEvent(t, events))

	// B is unaffected by A's departure.
	_, err = connB.Write([]byte("from b\n"))
	require.NoError(t, err)
	assert.Equal(t, NewMessage{ID: proxyB.ID(), Line: "from b"}, nextEvent(t, events))
}
