package cpu

import (
	"errors"
	"fmt"
)

// Status is the result of a single interpreter step.
type Status uint8

// Step results.
const (
	StatusOK           Status = iota // step completed normally
	StatusHalt                       // intentional termination, for example a trap jump
	StatusRuntimeError               // guest program fault, see the returned error
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusHalt:
		return "halt"
	case StatusRuntimeError:
		return "runtime error"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// State is the execution state of the interpreter.
type State uint8

// Interpreter states.
const (
	Running       State = iota
	WaitingForKey       // suspended until a key release is available
	Halted              // terminal until Reset is called
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	case Halted:
		return "halted"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Runtime errors reported with StatusRuntimeError.
var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrMemoryAccess   = errors.New("invalid memory access")
	ErrUnknownOpcode  = errors.New("unknown opcode")
)
