package chip8

import (
	"fmt"
)

// fxOperands contains the operand layouts of the Fx instruction group,
// indexed by the low byte of the opcode. The register is argument 1.
var fxOperands = map[uint16]string{
	0x07: "V%[1]X, DT",
	0x0A: "V%[1]X, K",
	0x15: "DT, V%[1]X",
	0x18: "ST, V%[1]X",
	0x1E: "I, V%[1]X",
	0x29: "F, V%[1]X",
	0x33: "B, V%[1]X",
	0x55: "[I], V%[1]X",
	0x65: "V%[1]X, [I]",
}

// Format returns the assembly representation of the given opcode. Words that
// do not decode to a known instruction are formatted as a data word.
func Format(opcode uint16) string {
	op, ok := Decode(opcode)
	if !ok {
		return fmt.Sprintf(".word $%04X", opcode)
	}

	name := op.Instruction().Name()
	if params := operands(opcode); params != "" {
		return name + " " + params
	}
	return name
}

// TargetAddress extracts the 12-bit target address of a jump, call or index
// load instruction.
func TargetAddress(opcode uint16) (uint16, bool) {
	switch opcode >> 12 {
	case 0x1, 0x2, 0xA, 0xB:
		return opcode & 0x0FFF, true
	default:
		return 0, false
	}
}

// operands returns the operand list of an opcode. The layout only depends on
// the encoding group, the shift instructions show Vy as it is used by
// interpreters without the shift quirk.
func operands(opcode uint16) string {
	x := opcode >> 8 & 0xF
	y := opcode >> 4 & 0xF
	nnn := opcode & 0x0FFF
	kk := opcode & 0x00FF

	switch opcode >> 12 {
	case 0x1, 0x2:
		return fmt.Sprintf("$%03X", nnn)
	case 0x3, 0x4, 0x6, 0x7, 0xC:
		return fmt.Sprintf("V%X, $%02X", x, kk)
	case 0x5, 0x8, 0x9:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", nnn)
	case 0xB:
		return fmt.Sprintf("V0, $%03X", nnn)
	case 0xD:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, opcode&0xF)
	case 0xE:
		return fmt.Sprintf("V%X", x)
	case 0xF:
		if layout, ok := fxOperands[kk]; ok {
			return fmt.Sprintf(layout, x)
		}
	}
	return ""
}
