package disasm

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/set"
)

const (
	dataNaming  = "_data_%03x"
	labelNaming = "_label_%03x"
)

// processLabels generates names for all referenced addresses that are part of
// the ROM and replaces the numeric operands of the referencing instructions.
func (dis *disasm) processLabels(romSize int) {
	dis.nameAddresses(dis.branchDestinations, labelNaming, romSize)
	dis.nameAddresses(dis.dataReferences, dataNaming, romSize)

	for i := range dis.offsets {
		offset := &dis.offsets[i]
		offset.label = dis.labels[offset.address]
		offset.code = dis.replaceOperand(offset.code)
	}
}

func (dis *disasm) nameAddresses(addresses set.Set[uint16], naming string, romSize int) {
	sorted := make([]uint16, 0, len(addresses))
	for address := range addresses {
		sorted = append(sorted, address)
	}
	slices.Sort(sorted)

	for _, address := range sorted {
		if !dis.insideROM(address, romSize) {
			continue
		}
		// jump targets win over data references to the same address
		if _, ok := dis.labels[address]; ok {
			continue
		}
		dis.labels[address] = fmt.Sprintf(naming, address)
	}
}

// insideROM returns whether the address is the start of a listed offset.
// References into the middle of an instruction word are not labeled.
func (dis *disasm) insideROM(address uint16, romSize int) bool {
	if len(dis.offsets) == 0 {
		return false
	}
	start := dis.offsets[0].address
	if address < start || int(address-start) >= romSize {
		return false
	}
	return (address-start)%2 == 0
}

// replaceOperand replaces a 12 bit address operand with its label name.
func (dis *disasm) replaceOperand(code string) string {
	i := strings.LastIndex(code, "$")
	if i < 0 || len(code)-i != 4 || strings.HasPrefix(code, ".") {
		return code
	}

	address, err := strconv.ParseUint(code[i+1:], 16, 16)
	if err != nil {
		return code
	}
	name, ok := dis.labels[uint16(address)]
	if !ok {
		return code
	}
	return code[:i] + name
}
