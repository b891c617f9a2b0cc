// Package chip8 provides CHIP-8 instruction decoding and formatting.
//
// # Instruction Set
//
// CHIP-8 has a simple instruction set with 35 opcodes:
//   - All instructions are 2 bytes (16 bits), stored big endian
//   - Instructions use direct addressing with 12-bit addresses
//   - 16 general-purpose 8-bit registers (V0-VF)
//   - Special-purpose registers: I (16-bit), PC, SP
//
// Opcodes are looked up by their top nibble in the CHIP-8 opcode table of
// retrogolib and matched by mask and value. The package is used to produce
// instruction traces of a running program and static listings of ROM files.
//
// # Usage Example
//
//	op, ok := chip8.Decode(0xD125)
//	if ok {
//		fmt.Println(op.Instruction().Name())
//	}
//	fmt.Println(chip8.Format(0xD125)) // mnemonic followed by V1, V2, $5
//
// # Supported Operations
//
// The package supports all standard CHIP-8 operations:
//   - Flow control: JP, CALL, RET
//   - Arithmetic: ADD, SUB, SUBN, OR, AND, XOR, SHR, SHL
//   - Memory: LD (load/store operations)
//   - Graphics: CLS, DRW (draw sprites)
//   - Input: SKP, SKNP (skip on key press/release)
//   - Timers and sound operations
package chip8
