package game

// Phase is the coarse game state. It doubles as the alarm memo: the
// alarm that ends a phase carries the phase it ends.
type Phase int

const (
	PhaseLobby Phase = iota
	PhaseDay
	PhaseNight
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "LOBBY"
	case PhaseDay:
		return "DAY"
	case PhaseNight:
		return "NIGHT"
	default:
		return "UNKNOWN"
	}
}

// Role is a player's dealt role.
type Role int

const (
	RoleCivilian Role = iota
	RoleMafia
)

func (r Role) String() string {
	switch r {
	case RoleCivilian:
		return "CIVILIAN"
	case RoleMafia:
		return "MAFIA"
	default:
		return "UNKNOWN"
	}
}
