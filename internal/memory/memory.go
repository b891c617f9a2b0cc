// Package memory provides the flat addressable memory of the virtual machine.
package memory

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Font glyphs for the hex digits 0-F (5 bytes each)
//	0x050-0x1FF: Reserved interpreter area
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// Size is the total amount of addressable bytes.
	Size = 0x1000

	// ProgramStart is the memory address where programs are loaded and begin execution.
	ProgramStart = 0x200

	// FontStart is the address of the first font glyph.
	FontStart = 0x000

	// GlyphSize is the number of bytes of a single font glyph.
	GlyphSize = 5
)

var (
	// ErrROMEmpty is returned when loading a ROM without any content.
	ErrROMEmpty = errors.New("rom is empty")
	// ErrROMTooLarge is returned when a ROM does not fit into the program space.
	ErrROMTooLarge = errors.New("rom exceeds program space")
)

// font contains the glyphs of the hex digits 0-F, each 4 pixels wide and 5 rows high.
var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the byte addressable memory of the machine.
// Range checks are the responsibility of the caller.
type Memory struct {
	data [Size]byte
}

// New returns a new zeroed memory with the font glyphs installed.
func New() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset zeroes the memory and reinstalls the font glyphs.
func (m *Memory) Reset() {
	m.data = [Size]byte{}
	copy(m.data[FontStart:], font[:])
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) byte {
	return m.data[address]
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) {
	m.data[address] = value
}

// Size returns the number of addressable bytes.
func (m *Memory) Size() int {
	return Size
}

// Bytes returns the underlying memory as a slice sharing its storage.
func (m *Memory) Bytes() []byte {
	return m.data[:]
}

// MaxROMSize returns the largest ROM that fits into the program space.
func MaxROMSize() int {
	return Size - ProgramStart
}

// LoadROM copies the ROM into memory starting at the program start address.
// Memory after the end of the ROM keeps its current content.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) == 0 {
		return ErrROMEmpty
	}
	if len(rom) > MaxROMSize() {
		return fmt.Errorf("%w: size %d, maximum %d", ErrROMTooLarge, len(rom), MaxROMSize())
	}

	copy(m.data[ProgramStart:], rom)
	return nil
}

// GlyphAddress returns the address of the font glyph for the given hex digit.
func GlyphAddress(digit byte) uint16 {
	return FontStart + GlyphSize*uint16(digit)
}
