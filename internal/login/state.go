package login

// authState is the per-connection authentication state machine.
type authState int

const (
	stateInitial  authState = iota // waiting for a nickname
	stateGotLogin                  // nickname taken, waiting for the password
	stateAuthed                    // authenticated, lines forwarded upstream
)

func (s authState) String() string {
	switch s {
	case stateInitial:
		return "INITIAL"
	case stateGotLogin:
		return "GOT_LOGIN"
	case stateAuthed:
		return "AUTHENTICATED"
	default:
		return "UNKNOWN"
	}
}
