package app

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/machine"
)

// machineState is the part of the machine state that is written as graph.
// Memory and display are left out as they would dominate the graph.
type machineState struct {
	State  string
	Frames uint64
	CPU    *cpuState
}

type cpuState struct {
	PC         uint16
	I          uint16
	V          [cpu.RegisterCount]uint8
	Stack      []uint16
	DelayTimer uint8
	SoundTimer uint8
	Quirks     cpu.Quirks
}

func newMachineState(m *machine.Machine) *machineState {
	c := m.CPU()
	state := &cpuState{
		PC:         c.PC(),
		I:          c.I(),
		Stack:      c.Stack(),
		DelayTimer: c.DelayTimer(),
		SoundTimer: c.SoundTimer(),
		Quirks:     c.Quirks(),
	}
	for x := 0; x < cpu.RegisterCount; x++ {
		state.V[x] = c.V(x)
	}

	return &machineState{
		State:  m.State().String(),
		Frames: m.Frames(),
		CPU:    state,
	}
}

// writeMemviz writes the machine state as graphviz graph to the given file.
func writeMemviz(filename string, m *machine.Machine) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating memviz file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing memviz file: %w", err)
		}
	}()

	memviz.Map(f, newMachineState(m))
	return nil
}
