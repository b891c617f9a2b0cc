package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// Opcode represents a CHIP-8 instruction opcode with its matching and behavior information.
type Opcode struct {
	op chip8.Opcode
}

// Instruction returns the instruction associated with this opcode.
func (o Opcode) Instruction() Instruction {
	return Instruction{ins: o.op.Instruction}
}

// Decode looks up the opcode in the CHIP-8 opcode table.
// It returns false for words that do not encode a known instruction.
func Decode(w uint16) (Opcode, bool) {
	firstNibble := (w & 0xF000) >> 12
	opcodes := chip8.Opcodes[int(firstNibble)]
	for _, op := range opcodes {
		if op.Info.Mask&w == op.Info.Value && op.Instruction != nil {
			return Opcode{op: op}, true
		}
	}
	return Opcode{}, false
}
