package chat

// MuteKind is the discriminant of a MuteLevel.
type MuteKind int

const (
	// AllowAll lets the participant send public and private messages.
	AllowAll MuteKind = iota
	// DenyPublicOnly blocks public messages but allows private ones.
	DenyPublicOnly
	// DenyAll blocks everything.
	DenyAll
)

// MuteLevel is the chat permission attached to a participant. The
// reason rides along on the deny variants so the enforcement point
// answers the sender without consulting a table. Replaced wholesale by
// the game through the request channel.
type MuteLevel struct {
	Kind   MuteKind
	Reason string
}

// allowsPublic reports whether a public message may go out.
func (m MuteLevel) allowsPublic() bool {
	return m.Kind == AllowAll
}

// allowsPrivate reports whether a private message may go out.
func (m MuteLevel) allowsPrivate() bool {
	return m.Kind != DenyAll
}
