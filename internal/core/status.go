package core

// Status is the lifecycle state shared by every engine.
//
//	Idle -> Playing -> Over
//	Idle -> Playing -> Won   (tile-merge only)
//
// Won and Over are terminal; only a reset leaves them.
type Status uint8

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusWon
	StatusOver
)

// Terminal reports whether the status can only be left by a reset.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusOver
}

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}
