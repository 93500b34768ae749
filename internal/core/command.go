package core

// Direction is one of the four grid headings.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, col) unit vector of the direction.
// Rows grow downward.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// CommandKind is the semantic kind of an input command.
type CommandKind uint8

const (
	CmdMove CommandKind = iota
	CmdRotate
	CmdStart
	CmdReset
)

func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdRotate:
		return "rotate"
	case CmdStart:
		return "start"
	case CmdReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Command is the device-independent input accepted by every engine.
// Dir is only meaningful for CmdMove.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

// Move builds a move command.
func Move(d Direction) Command {
	return Command{Kind: CmdMove, Dir: d}
}

// Rotate builds a rotate command.
func Rotate() Command {
	return Command{Kind: CmdRotate}
}

// Start builds a start command.
func Start() Command {
	return Command{Kind: CmdStart}
}

// Reset builds a reset command.
func Reset() Command {
	return Command{Kind: CmdReset}
}
