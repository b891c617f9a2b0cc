// Package disasm implements a linear disassembler for CHIP-8 ROM files.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/set"
)

// Options of the disassembler.
type Options struct {
	OffsetComments bool // print address and opcode bytes as comment after every instruction
	NoLabels       bool // keep numeric operands instead of generating labels
}

type offset struct {
	address uint16
	data    []byte
	code    string
	label   string

	blockEnd bool // unconditional jump or return that can not be skipped
}

type disasm struct {
	options Options
	offsets []offset

	branchDestinations set.Set[uint16] // set of all addresses that are jumped to or called
	dataReferences     set.Set[uint16] // set of all addresses loaded into the index register

	labels map[uint16]string
}

// Disassemble writes a listing of the ROM to the writer. The ROM is decoded
// linearly in 2 byte steps starting at the program origin; words that do not
// decode to an instruction and a trailing odd byte are written as data.
func Disassemble(rom []byte, w io.Writer, options Options) error {
	if len(rom) == 0 {
		return memory.ErrROMEmpty
	}
	if len(rom) > memory.MaxROMSize() {
		return fmt.Errorf("%w: size %d, maximum %d", memory.ErrROMTooLarge, len(rom), memory.MaxROMSize())
	}

	dis := &disasm{
		options:            options,
		branchDestinations: set.New[uint16](),
		dataReferences:     set.New[uint16](),
		labels:             map[uint16]string{},
	}

	dis.parse(rom)
	if !options.NoLabels {
		dis.processLabels(len(rom))
	}

	if err := dis.write(w); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// parse splits the ROM into offsets and records all referenced addresses.
func (dis *disasm) parse(rom []byte) {
	var skipped bool // previous instruction can skip the current one

	for i := 0; i < len(rom); i += chip8.OpcodeSize {
		address := uint16(memory.ProgramStart + i)

		if i+1 >= len(rom) {
			dis.offsets = append(dis.offsets, offset{
				address: address,
				data:    rom[i:],
				code:    fmt.Sprintf(".byte $%02X", rom[i]),
			})
			break
		}

		word := uint16(rom[i])<<8 | uint16(rom[i+1])
		offsetInfo := offset{
			address: address,
			data:    rom[i : i+2],
			code:    chip8.Format(word),
		}

		op, ok := chip8.Decode(word)
		if !ok {
			dis.offsets = append(dis.offsets, offsetInfo)
			skipped = false
			continue
		}

		ins := op.Instruction()
		offsetInfo.blockEnd = (ins.IsJump() || ins.IsReturn()) && !skipped
		skipped = ins.IsSkip()
		dis.offsets = append(dis.offsets, offsetInfo)

		target, ok := chip8.TargetAddress(word)
		if !ok {
			continue
		}
		switch {
		case ins.IsDataReference(word):
			dis.dataReferences.Add(target)
		case ins.IsJump(), ins.IsCall():
			dis.branchDestinations.Add(target)
		}
	}
}

// write outputs all offsets, prefixed by their label if one exists. Code
// following an unconditional jump or return starts a new block.
func (dis *disasm) write(w io.Writer) error {
	for i, offset := range dis.offsets {
		// blocks are separated by an empty line
		if i > 0 && (offset.label != "" || dis.offsets[i-1].blockEnd) {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if offset.label != "" {
			if _, err := fmt.Fprintf(w, "%s:\n", offset.label); err != nil {
				return err
			}
		}

		line := "  " + offset.code
		if dis.options.OffsetComments {
			line = fmt.Sprintf("%-32s; $%03X %s", line, offset.address, hexBytes(offset.data))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
