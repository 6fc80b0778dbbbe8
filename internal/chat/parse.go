package chat

import "strings"

// messageKind classifies a line by its first bytes: '+' private,
// "!!" action, '!' command, anything else public.
type messageKind int

const (
	kindPublic messageKind = iota
	kindPrivate
	kindCommand
	kindAction
)

// parsed is one classified line. body is the public body, private
// body, command name or action text; recipients is private-only, in
// the original order with the leading '+' stripped.
type parsed struct {
	kind       messageKind
	body       string
	recipients []string
}

func parseLine(line string) parsed {
	switch {
	case strings.HasPrefix(line, "+"):
		return parsePrivate(line)
	case strings.HasPrefix(line, "!!"):
		return parsed{kind: kindAction, body: line[2:]}
	case strings.HasPrefix(line, "!"):
		return parsed{kind: kindCommand, body: line[1:]}
	default:
		return parsed{kind: kindPublic, body: line}
	}
}

// parsePrivate splits "+a +b some text" into recipient logins and the
// body. The body is the suffix of line starting at the first token
// that does not begin with '+', so interior whitespace is preserved
// verbatim. No body token means an empty body.
func parsePrivate(line string) parsed {
	var recipients []string
	i := 0
	for i < len(line) {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i == len(line) {
			break
		}
		if line[i] != '+' {
			return parsed{kind: kindPrivate, recipients: recipients, body: line[i:]}
		}
		start := i + 1
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		recipients = append(recipients, line[start:i])
	}
	return parsed{kind: kindPrivate, recipients: recipients}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
