// Package machine combines the interpreter, its memory and the display and
// keypad device into a machine that a host drives one frame at a time.
package machine

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/device"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// DefaultTicksPerFrame is the number of instructions executed per frame.
const DefaultTicksPerFrame = 9

// ErrNoROM is returned when reloading a machine that never had a ROM loaded.
var ErrNoROM = errors.New("no rom loaded")

// Machine is a complete virtual machine. It is not safe for concurrent use.
type Machine struct {
	logger *log.Logger

	mem *memory.Memory
	cpu *cpu.CPU
	dev *device.IODevice

	rom           []byte
	ticksPerFrame int
	frames        uint64
	haltLogged    bool
}

// New returns a new machine with empty memory. The options are passed to the
// interpreter.
func New(logger *log.Logger, options ...cpu.Option) *Machine {
	mem := memory.New()
	return &Machine{
		logger:        logger,
		mem:           mem,
		cpu:           cpu.New(mem, options...),
		dev:           device.New(),
		ticksPerFrame: DefaultTicksPerFrame,
	}
}

// SetTicksPerFrame sets the number of instructions executed per frame.
// Values less than 1 are ignored.
func (m *Machine) SetTicksPerFrame(ticks int) {
	if ticks > 0 {
		m.ticksPerFrame = ticks
	}
}

// TicksPerFrame returns the number of instructions executed per frame.
func (m *Machine) TicksPerFrame() int {
	return m.ticksPerFrame
}

// LoadROM resets the machine and loads the ROM into memory at the program origin.
func (m *Machine) LoadROM(rom []byte) error {
	m.mem.Reset()
	if err := m.mem.LoadROM(rom); err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	m.rom = make([]byte, len(rom))
	copy(m.rom, rom)
	m.Reset()

	m.logger.Debug("ROM loaded",
		log.Int("size", len(rom)),
		log.Hex("origin", uint16(memory.ProgramStart)))
	return nil
}

// Reset returns the interpreter and the device to their initial state.
// The memory content including the loaded ROM is preserved.
func (m *Machine) Reset() {
	m.cpu.Reset()
	m.dev.Reset()
	m.frames = 0
	m.haltLogged = false
}

// Reload clears the memory, loads the last ROM again and resets the machine.
// Use it to start over a program that modified its own code.
func (m *Machine) Reload() error {
	if m.rom == nil {
		return ErrNoROM
	}
	return m.LoadROM(m.rom)
}

// SetKeys sets the pressed and released key masks, bit n representing key n.
func (m *Machine) SetKeys(pressed, released uint16) {
	m.dev.SetKeys(pressed, released)
}

// SetQuirks changes the instruction quirks of the interpreter.
func (m *Machine) SetQuirks(quirks cpu.Quirks) {
	m.cpu.SetQuirks(quirks)
}

// EnableTrace logs every executed instruction at debug level.
func (m *Machine) EnableTrace() {
	m.cpu.SetTracer(&tracer{logger: m.logger})
}

// Update runs one frame: the display flags of the previous frame are reset,
// up to TicksPerFrame instructions are executed and the timers are decremented
// once. Execution stops at the first tick that does not return StatusOK. The
// timers are decremented for halted frames as well, only frames that completed
// without halting are counted.
func (m *Machine) Update() (cpu.Status, error) {
	m.dev.ResetDisplayFlags()

	status := cpu.StatusOK
	var err error
	for i := 0; i < m.ticksPerFrame && status == cpu.StatusOK; i++ {
		status, err = m.tick()
	}

	m.cpu.UpdateTimers()
	if status == cpu.StatusOK {
		m.frames++
	}
	return status, err
}

// Step executes a single instruction without touching the timers or the
// display flags.
func (m *Machine) Step() (cpu.Status, error) {
	return m.tick()
}

func (m *Machine) tick() (cpu.Status, error) {
	status, err := m.cpu.Tick(m.dev)
	if status == cpu.StatusOK || m.haltLogged {
		return status, err
	}

	m.haltLogged = true
	if err != nil {
		m.logger.Error("Machine halted",
			log.Stringer("status", status),
			log.Hex("pc", m.cpu.PC()),
			log.Int("frame", int(m.frames)),
			log.Err(err))
	} else {
		m.logger.Info("Machine halted",
			log.Stringer("status", status),
			log.Hex("pc", m.cpu.PC()),
			log.Int("frame", int(m.frames)))
	}
	return status, err
}

// Display returns a snapshot of the framebuffer and its dirty tracking.
func (m *Machine) Display() device.Update {
	return m.dev.Update()
}

// IsBeeping returns whether the sound timer is active.
func (m *Machine) IsBeeping() bool {
	return m.cpu.SoundTimer() > 0
}

// State returns the execution state of the interpreter.
func (m *Machine) State() cpu.State {
	return m.cpu.State()
}

// Frames returns the number of completed frames since the last reset.
func (m *Machine) Frames() uint64 {
	return m.frames
}

// CPU returns the interpreter of the machine.
func (m *Machine) CPU() *cpu.CPU {
	return m.cpu
}

// Device returns the display and keypad device of the machine.
func (m *Machine) Device() *device.IODevice {
	return m.dev
}

// Memory returns the memory of the machine.
func (m *Machine) Memory() *memory.Memory {
	return m.mem
}
