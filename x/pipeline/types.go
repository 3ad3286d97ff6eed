package pipeline

import (
	"github.com/compose-network/b64encoder/x/apperr"
)

// Direction selects which leg of each stage runs.
type Direction int

const (
	Encode Direction = iota
	Decode
)

// String returns the operation name of the direction
func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return "unknown"
	}
}

// ParseDirection parses an operation name.
func ParseDirection(op string) (Direction, error) {
	switch op {
	case "encode":
		return Encode, nil
	case "decode":
		return Decode, nil
	default:
		return 0, apperr.InvalidArgument("invalid operation: %s", op).WithContext("operation", op)
	}
}

// State is the lifecycle position of a Pipeline.
type State int

const (
	StateStart State = iota
	StateReady
	StateDone
	StateFailed
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateReady:
		return "ready"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
