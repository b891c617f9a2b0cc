package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction represents a CHIP-8 instruction wrapper.
// It provides a bridge between the retrogolib CHIP-8 instruction definitions
// and the trace and listing output of the emulator.
type Instruction struct {
	ins *chip8.Instruction
}

// IsCall returns true if the instruction is a call instruction.
func (i Instruction) IsCall() bool {
	return i.ins == chip8.Call
}

// Name returns the instruction name.
func (i Instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return i.ins.Name
}

// IsJump returns true if the instruction is a jump instruction.
func (i Instruction) IsJump() bool {
	return i.ins == chip8.Jp
}

// IsReturn returns true if the instruction is a return instruction.
func (i Instruction) IsReturn() bool {
	return i.ins == chip8.Ret
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	if i.ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.ins.Name)
}

// IsDataReference returns true if the instruction references data (LD I, addr).
func (i Instruction) IsDataReference(opcode uint16) bool {
	if i.ins != chip8.Ld {
		return false
	}
	return opcode&0xF000 == 0xA000
}
