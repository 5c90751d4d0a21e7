package game

// Status is the tri-state lifecycle of a game.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusFinished Status = "finished"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusFinished:
		return true
	default:
		return false
	}
}

// Rank orders statuses along real-world progression: upcoming < live < finished.
func (s Status) Rank() int {
	switch s {
	case StatusLive:
		return 1
	case StatusFinished:
		return 2
	default:
		return 0
	}
}
