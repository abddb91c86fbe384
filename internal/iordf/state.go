package iordf

// state of the parser between two tokens.
type state int

const (
	// stateIdle scans for the opening of a Description block.
	stateIdle state = iota

	// stateAwaitingType saw a block with an about attribute and waits
	// for its type marker.
	stateAwaitingType

	// stateInBlock collects fields of an accepted term until the block
	// closes.
	stateInBlock
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateAwaitingType:
		return "awaiting type"
	case stateInBlock:
		return "in block"
	default:
		return "unknown"
	}
}
