package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestOpcode_Instruction(t *testing.T) {
	opcode := Opcode{op: chip8.Opcode{Instruction: chip8.Jp}}
	instr := opcode.Instruction()

	assert.True(t, instr.IsJump())
	assert.Equal(t, chip8.Jp.Name, instr.Name())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected *chip8.Instruction
	}{
		{"clear screen", 0x00E0, chip8.Cls},
		{"return", 0x00EE, chip8.Ret},
		{"jump", 0x1234, chip8.Jp},
		{"call", 0x2456, chip8.Call},
		{"skip equal", 0x3012, chip8.Se},
		{"skip not equal", 0x4012, chip8.Sne},
		{"load byte", 0x6A02, chip8.Ld},
		{"add byte", 0x7A02, chip8.Add},
		{"or", 0x8121, chip8.Or},
		{"subn", 0x8127, chip8.Subn},
		{"load index", 0xA300, chip8.Ld},
		{"jump offset", 0xB300, chip8.Jp},
		{"random", 0xC0FF, chip8.Rnd},
		{"draw", 0xD125, chip8.Drw},
		{"skip key", 0xE19E, chip8.Skp},
		{"skip not key", 0xE1A1, chip8.Sknp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := Decode(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.expected.Name, op.Instruction().Name())
		})
	}
}

func TestDecode_Unknown(t *testing.T) {
	for _, word := range []uint16{0x8008, 0xE000, 0xF0FF} {
		_, ok := Decode(word)
		assert.False(t, ok)
	}
}

// Test with actual CHIP-8 opcode patterns
func TestOpcode_WithRealOpcodes(t *testing.T) {
	for nibble := 0; nibble < 16; nibble++ {
		opcodes := chip8.Opcodes[nibble]
		assert.NotEmpty(t, opcodes, "Expected opcodes for nibble %X", nibble)

		for _, op := range opcodes {
			opcode := Opcode{op: op}
			assert.NotNil(t, opcode.op.Instruction)

			instr := opcode.Instruction()
			assert.NotEmpty(t, instr.Name())
		}
	}
}
