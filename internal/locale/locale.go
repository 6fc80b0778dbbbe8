// Package locale holds every user-visible string, one table per
// language. The table is picked once at startup; services format with
// the fmt verbs documented on each field.
package locale

import "fmt"

// Table is the full set of server-to-client strings for one language.
type Table struct {
	// Login prompts.
	Welcome        string
	AlreadyOnline  string // %s = login
	PasswordPrompt string // %s = login
	CreatePrompt   string // %s = login
	WelcomeBack    string // %s = login
	Created        string // %s = login
	WrongPassword  string

	// Chat formatting.
	ConnectedBanner    string // %s = HH:MM, %s = login
	DisconnectedBanner string // %s = HH:MM, %s = login
	PublicMessage      string // %s = HH:MM, %s = login, %s = body
	PrivateMessage     string // %s = HH:MM, %s = sender, %s = [r1]+[r2]..., %s = body
	EmptyPrivate       string
	NoRecipients       string
	UnknownUsers       string // %s = comma-separated logins
	UnknownCommand     string
	Help               string
	ObserverReason     string

	// Game announcements.
	JoinHint         string
	JoinedGame       string
	LeftGame         string
	GameInProgress   string
	NotEnoughPlayers string // %d = minimum
	GameStarted      string
	RoleMafia        string
	RoleCivilian     string
	DayBreaks        string
	NightFalls       string
	Lynched          string // %s = login
	NoLynch          string
	NightKill        string // %s = login
	NoNightKill      string
	MafiaWin         string
	TownWin          string
	GamePaused       string
	GameResumed      string
	NightReason      string
	NightMafiaReason string
	DeadReason       string
	VoteRecorded     string // %s = login
	UnknownVote      string // %s = login
	NotYourVote      string
	RosterHeader     string
	StatusObserver   string
	StatusAlive      string
	StatusDead       string
}

// ForName returns the table for a language code.
func ForName(name string) (Table, error) {
	switch name {
	case "", "en":
		return En(), nil
	case "ru":
		return Ru(), nil
	default:
		return Table{}, fmt.Errorf("unknown locale %q", name)
	}
}
