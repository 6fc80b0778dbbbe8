package socket

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startReader runs readLines over one end of an in-memory pipe and
// returns the peer end to write into, the results channel, and a
// channel closed when the reader goroutine exits.
func startReader(t *testing.T) (net.Conn, *monitored, chan readResult, chan struct{}) {
	t.Helper()
	local, remote := net.Pipe()
	t.Cleanup(func() {
		local.Close()
		remote.Close()
	})

	m := monitor(local)
	results := make(chan readResult, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		readLines("test", m, results)
	}()
	return remote, m, results, done
}

func nextResult(t *testing.T, results chan readResult) readResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for read result")
		return readResult{}
	}
}

func write(t *testing.T, conn net.Conn, data string) {
	t.Helper()
	_, err := conn.Write([]byte(data))
	require.NoError(t, err)
}

func TestReadLines_SimpleLine(t *testing.T) {
	remote, _, results, _ := startReader(t)

	go write(t, remote, "hello\n")

	r := nextResult(t, results)
	assert.Equal(t, "hello", r.line)
	assert.NoError(t, r.err)
}

func TestReadLines_LineSpansWrites(t *testing.T) {
	remote, _, results, _ := startReader(t)

	go func() {
		write(t, remote, "hel")
		write(t, remote, "lo\nwor")
		write(t, remote, "ld\n")
	}()

	assert.Equal(t, "hello", nextResult(t, results).line)
	assert.Equal(t, "world", nextResult(t, results).line)
}

func TestReadLines_CRAndWhitespaceTrimmed(t *testing.T) {
	remote, _, results, _ := startReader(t)

	go write(t, remote, "  hey there \r\n")

	assert.Equal(t, "hey there", nextResult(t, results).line)
}

func TestReadLines_EmptyLine(t *testing.T) {
	remote, _, results, _ := startReader(t)

	go write(t, remote, "\n")

	r := nextResult(t, results)
	assert.Equal(t, "", r.line)
	assert.False(t, r.eof)
}

func TestReadLines_EOF(t *testing.T) {
	remote, _, results, _ := startReader(t)

	go func() {
		write(t, remote, "bye\n")
		remote.Close()
	}()

	assert.Equal(t, "bye", nextResult(t, results).line)
	assert.True(t, nextResult(t, results).eof)
}

func TestReadLines_TrailingPartialDiscarded(t *testing.T) {
	remote, _, results, _ := startReader(t)

	go func() {
		write(t, remote, "whole\npartial")
		remote.Close()
	}()

	assert.Equal(t, "whole", nextResult(t, results).line)
	assert.True(t, nextResult(t, results).eof)
}

func TestReadLines_InvalidUTF8(t *testing.T) {
	remote, _, results, _ := startReader(t)

	go remote.Write([]byte{'h', 'i', 0xff, 0xfe, '\n'})

	r := nextResult(t, results)
	assert.ErrorIs(t, r.err, errInvalidUTF8)
}

func TestReadLines_OversizedLine(t *testing.T) {
	remote, _, results, _ := startReader(t)

	go func() {
		chunk := make([]byte, 4096)
		for i := range chunk {
			chunk[i] = 'a'
		}
		// Feed well past maxLineLen without a delimiter; the write
		// side may block once the reader gives up, so ignore errors.
		for range 20 {
			if _, err := remote.Write(chunk); err != nil {
				return
			}
		}
	}()

	r := nextResult(t, results)
	assert.Error(t, r.err)
}

func TestReadLines_FlatlineStopsReader(t *testing.T) {
	remote, m, results, done := startReader(t)

	go write(t, remote, "before\n")
	assert.Equal(t, "before", nextResult(t, results).line)

	m.drop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not exit after flatline")
	}
	// Nothing is reported for an intentional close.
	select {
	case r := <-results:
		t.Fatalf("unexpected result after flatline: %+v", r)
	default:
	}
}

func TestScanFullLines_SplitsOnNewline(t *testing.T) {
	advance, token, err := scanFullLines([]byte("one\ntwo"), false)
	require.NoError(t, err)
	assert.Equal(t, 4, advance)
	assert.Equal(t, "one", string(token))
}

func TestScanFullLines_NoNewlineWaits(t *testing.T) {
	advance, token, err := scanFullLines([]byte("partial"), false)
	require.NoError(t, err)
	assert.Zero(t, advance)
	assert.Nil(t, token)
}

func TestScanFullLines_EOFDiscardsRemainder(t *testing.T) {
	advance, token, err := scanFullLines([]byte("partial"), true)
	require.NoError(t, err)
	assert.Equal(t, 7, advance)
	assert.Nil(t, token)
}
