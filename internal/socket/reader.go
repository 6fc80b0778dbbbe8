package socket

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// readBufSize matches the wire read granularity; lines may span
	// several fills and are buffered until the delimiter arrives.
	readBufSize = 1024

	// maxLineLen caps buffering for a single line. A peer that never
	// sends the delimiter is cut off instead of growing memory.
	maxLineLen = 64 * 1024
)

var errInvalidUTF8 = errors.New("invalid utf-8 in line")

// readResult is one outcome reported by a connection reader.
type readResult struct {
	id   ConnID
	line string
	err  error
	eof  bool
}

// scanFullLines is a bufio.SplitFunc that yields only '\n'-terminated
// lines. Trailing bytes without a delimiter are discarded together with
// the connection, matching the one-line-one-message wire contract.
func scanFullLines(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), nil, nil
	}
	return 0, nil, nil
}

// readLines frames the connection's byte stream into trimmed UTF-8
// lines and reports each on results. It returns on peer close, on the
// first transport or framing error, or when the writer is dropped (the
// flatline closes the conn under us). After a flatline nothing is
// reported; the service has already discarded the id.
func readLines(id ConnID, m *monitored, results chan<- readResult) {
	scanner := bufio.NewScanner(m.conn)
	scanner.Buffer(make([]byte, readBufSize), maxLineLen)
	scanner.Split(scanFullLines)

	for scanner.Scan() {
		if !utf8.Valid(scanner.Bytes()) {
			if !m.flatlined() {
				results <- readResult{id: id, err: errInvalidUTF8}
			}
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if m.flatlined() {
			return
		}
		results <- readResult{id: id, line: line}
	}

	if m.flatlined() {
		return
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		results <- readResult{id: id, err: err}
		return
	}
	results <- readResult{id: id, eof: true}
}
