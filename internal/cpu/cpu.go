// Package cpu implements the fetch, decode and execute engine of the virtual
// machine together with its registers, call stack and timers.
//
// The interpreter is driven by the host: Tick executes a single instruction
// and UpdateTimers decrements the delay and sound timers once per frame,
// independent of the number of ticks.
//
// A tick that is called while the interpreter waits for a key (Fx0A) polls the
// device for a released key. If none is available the tick does nothing and
// returns StatusOK; the host does not need to query the state before ticking.
package cpu

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/memory"
)

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the register that receives carry, borrow, shift and collision flags.
	FlagRegister = 0xF

	// DefaultStackSize is the default maximum call depth.
	DefaultStackSize = 64

	opcodeSize = 2
)

// Device is the display and keypad that the draw and key instructions operate on.
type Device interface {
	ClearDisplay()
	// DrawPixel toggles a pixel and returns 1 if a lit pixel was turned off.
	DrawPixel(x, y int) uint8
	KeyPressed(key uint8) bool
	// ReadAnyKey returns a released key and consumes the released key state.
	ReadAnyKey() (uint8, bool)
}

// Random is the source of the random-and instruction.
type Random interface {
	RandomByte() uint8
}

// Tracer gets called with the address and opcode of every fetched instruction
// before it is executed.
type Tracer interface {
	Trace(address, opcode uint16)
}

// CPU is the instruction interpreter. All state is owned by the instance.
type CPU struct {
	mem *memory.Memory

	v  [RegisterCount]uint8
	i  uint16 // index register
	pc uint16

	stack []uint16
	sp    int // number of used stack entries

	dt uint8 // delay timer
	st uint8 // sound timer

	quirks Quirks
	random Random
	tracer Tracer

	state      State
	waitingReg int    // destination register of a pending key wait
	haltStatus Status // status repeated while halted
	haltErr    error
	stackSize  int
}

// New returns a new interpreter operating on the given memory.
func New(mem *memory.Memory, options ...Option) *CPU {
	c := &CPU{
		mem:       mem,
		random:    newMathRandom(),
		stackSize: DefaultStackSize,
	}
	for _, option := range options {
		option(c)
	}

	c.stack = make([]uint16, c.stackSize)
	c.Reset()
	return c
}

// Reset returns the interpreter to its initial state. Memory and quirks are kept.
func (c *CPU) Reset() {
	c.v = [RegisterCount]uint8{}
	c.i = 0
	c.pc = memory.ProgramStart
	c.sp = 0
	c.dt = 0
	c.st = 0
	c.state = Running
	c.waitingReg = 0
	c.haltStatus = StatusOK
	c.haltErr = nil
}

// UpdateTimers decrements the delay and sound timers, saturating at zero.
func (c *CPU) UpdateTimers() {
	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}
}

// Tick runs a single fetch, decode and execute cycle. A runtime error status
// is always returned together with an error describing the fault. Once halted,
// every following tick returns the halting status until Reset is called.
func (c *CPU) Tick(dev Device) (Status, error) {
	switch c.state {
	case Halted:
		return c.haltStatus, c.haltErr

	case WaitingForKey:
		if key, ok := dev.ReadAnyKey(); ok {
			c.v[c.waitingReg] = key
			c.state = Running
		}
		return StatusOK, nil
	}

	address := c.pc
	if int(address) > c.mem.Size()-opcodeSize {
		return c.halt(StatusHalt, nil)
	}

	opcode := uint16(c.mem.Read(address))<<8 | uint16(c.mem.Read(address+1))
	if c.tracer != nil {
		c.tracer.Trace(address, opcode)
	}
	c.pc += opcodeSize

	status, err := c.execute(opcode, dev)
	if status == StatusOK {
		return StatusOK, nil
	}
	if err != nil {
		err = fmt.Errorf("executing opcode %04X at $%03X: %w", opcode, address, err)
	}
	return c.halt(status, err)
}

func (c *CPU) halt(status Status, err error) (Status, error) {
	c.state = Halted
	c.haltStatus = status
	c.haltErr = err
	return status, err
}

// State returns the current execution state.
func (c *CPU) State() State {
	return c.state
}

// PC returns the program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// I returns the index register.
func (c *CPU) I() uint16 {
	return c.i
}

// V returns the value of the general purpose register x.
func (c *CPU) V(x int) uint8 {
	return c.v[x&0xF]
}

// SP returns the current call depth.
func (c *CPU) SP() int {
	return c.sp
}

// Stack returns a copy of the saved return addresses, the most recent call
// last.
func (c *CPU) Stack() []uint16 {
	stack := make([]uint16, c.sp)
	copy(stack, c.stack[:c.sp])
	return stack
}

// StackSize returns the maximum call depth.
func (c *CPU) StackSize() int {
	return len(c.stack)
}

// DelayTimer returns the delay timer value.
func (c *CPU) DelayTimer() uint8 {
	return c.dt
}

// SoundTimer returns the sound timer value.
func (c *CPU) SoundTimer() uint8 {
	return c.st
}

// Quirks returns the active quirk configuration.
func (c *CPU) Quirks() Quirks {
	return c.quirks
}

// SetQuirks changes the quirk configuration. It is meant to be called by the
// host before running a program.
func (c *CPU) SetQuirks(quirks Quirks) {
	c.quirks = quirks
}

// SetTracer sets the instruction tracer, nil disables tracing.
func (c *CPU) SetTracer(tracer Tracer) {
	c.tracer = tracer
}
