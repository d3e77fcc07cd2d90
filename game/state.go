package game

// State is the outcome of a game so far
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ended returns true for Won and Lost
func (s State) Ended() bool {
	return s == Won || s == Lost
}
