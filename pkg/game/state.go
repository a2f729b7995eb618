package game

type State int

const (
	StateNoGame State = iota
	StatePlaying
	// StatePaused is reserved. Nothing enters or leaves it yet.
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateNoGame:
		return "NoGame"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
