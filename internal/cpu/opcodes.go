package cpu

import (
	"github.com/retroenv/retrochip8/internal/device"
	"github.com/retroenv/retrochip8/internal/memory"
)

// extractRegisterX extracts the X register nibble from an opcode.
func extractRegisterX(opcode uint16) int {
	return int(opcode&0x0F00) >> 8
}

// extractRegisterY extracts the Y register nibble from an opcode.
func extractRegisterY(opcode uint16) int {
	return int(opcode&0x00F0) >> 4
}

// extractNibble extracts the lowest nibble from an opcode.
func extractNibble(opcode uint16) uint8 {
	return uint8(opcode & 0x000F)
}

// extractByte extracts the immediate byte from an opcode.
func extractByte(opcode uint16) uint8 {
	return uint8(opcode & 0x00FF)
}

// extractAddress extracts the 12 bit address from an opcode.
func extractAddress(opcode uint16) uint16 {
	return opcode & 0x0FFF
}

// execute dispatches the opcode by its top nibble and for multi variant
// families by the secondary fields. The program counter already points to
// the next instruction.
func (c *CPU) execute(opcode uint16, dev Device) (Status, error) {
	x := extractRegisterX(opcode)
	y := extractRegisterY(opcode)
	kk := extractByte(opcode)
	nnn := extractAddress(opcode)

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			dev.ClearDisplay()
			return StatusOK, nil
		case 0x00EE:
			return c.opReturn()
		}
		// 0nnn machine code routine call, ignored
		return StatusOK, nil

	case 0x1:
		return c.opJump(nnn)

	case 0x2:
		return c.opCall(nnn)

	case 0x3: // 3xkk SE Vx, byte
		c.skipIf(c.v[x] == kk)

	case 0x4: // 4xkk SNE Vx, byte
		c.skipIf(c.v[x] != kk)

	case 0x5: // 5xyN SE Vx, Vy, the low nibble is ignored
		c.skipIf(c.v[x] == c.v[y])

	case 0x6: // 6xkk LD Vx, byte
		c.v[x] = kk

	case 0x7: // 7xkk ADD Vx, byte
		c.v[x] += kk

	case 0x8:
		return c.executeArithmetic(opcode, x, y)

	case 0x9: // 9xyN SNE Vx, Vy, the low nibble is ignored
		c.skipIf(c.v[x] != c.v[y])

	case 0xA: // Annn LD I, addr
		c.i = nnn

	case 0xB: // Bnnn JP V0, addr
		c.pc = uint16(c.v[0]) + nnn

	case 0xC: // Cxkk RND Vx, byte
		c.v[x] = c.random.RandomByte() & kk

	case 0xD:
		return c.opDraw(x, y, extractNibble(opcode), dev)

	case 0xE:
		switch kk {
		case 0x9E: // Ex9E SKP Vx
			c.skipIf(dev.KeyPressed(c.v[x]))
		case 0xA1: // ExA1 SKNP Vx
			c.skipIf(!dev.KeyPressed(c.v[x]))
		default:
			return StatusRuntimeError, ErrUnknownOpcode
		}

	case 0xF:
		return c.executeMisc(opcode, x)
	}

	return StatusOK, nil
}

// executeArithmetic executes the register to register family 8xyN.
func (c *CPU) executeArithmetic(opcode uint16, x, y int) (Status, error) {
	switch extractNibble(opcode) {
	case 0x0: // 8xy0 LD Vx, Vy
		c.v[x] = c.v[y]

	case 0x1: // 8xy1 OR Vx, Vy
		c.v[x] |= c.v[y]

	case 0x2: // 8xy2 AND Vx, Vy
		c.v[x] &= c.v[y]

	case 0x3: // 8xy3 XOR Vx, Vy
		c.v[x] ^= c.v[y]

	case 0x4: // 8xy4 ADD Vx, Vy, VF = carry
		sum := uint16(c.v[x]) + uint16(c.v[y])
		c.v[x] = uint8(sum)
		c.v[FlagRegister] = uint8(sum >> 8)

	case 0x5: // 8xy5 SUB Vx, Vy, VF = not borrow
		c.v[x], c.v[FlagRegister] = subtract(c.v[x], c.v[y])

	case 0x6: // 8xy6 SHR Vx {, Vy}, VF = shifted out bit
		src := c.shiftSource(x, y)
		c.v[x] = src >> 1
		c.v[FlagRegister] = src & 0x01

	case 0x7: // 8xy7 SUBN Vx, Vy, VF = not borrow
		c.v[x], c.v[FlagRegister] = subtract(c.v[y], c.v[x])

	case 0xE: // 8xyE SHL Vx {, Vy}, VF = shifted out bit
		src := c.shiftSource(x, y)
		c.v[x] = src << 1
		c.v[FlagRegister] = src >> 7

	default:
		return StatusRuntimeError, ErrUnknownOpcode
	}

	return StatusOK, nil
}

// executeMisc executes the timer, index and memory block family FxNN.
func (c *CPU) executeMisc(opcode uint16, x int) (Status, error) {
	switch extractByte(opcode) {
	case 0x07: // Fx07 LD Vx, DT
		c.v[x] = c.dt

	case 0x0A: // Fx0A LD Vx, K
		c.state = WaitingForKey
		c.waitingReg = x

	case 0x15: // Fx15 LD DT, Vx
		c.dt = c.v[x]

	case 0x18: // Fx18 LD ST, Vx
		c.st = c.v[x]

	case 0x1E: // Fx1E ADD I, Vx
		c.i += uint16(c.v[x])

	case 0x29: // Fx29 LD F, Vx
		c.i = memory.GlyphAddress(c.v[x])

	case 0x33: // Fx33 LD B, Vx
		return c.opStoreBCD(x)

	case 0x55: // Fx55 LD [I], Vx
		return c.opRegisterDump(x)

	case 0x65: // Fx65 LD Vx, [I]
		return c.opRegisterLoad(x)

	default:
		return StatusRuntimeError, ErrUnknownOpcode
	}

	return StatusOK, nil
}

// 00EE RET
func (c *CPU) opReturn() (Status, error) {
	if c.sp == 0 {
		return StatusRuntimeError, ErrStackUnderflow
	}

	c.sp--
	c.pc = c.stack[c.sp]
	return StatusOK, nil
}

// 1nnn JP addr
func (c *CPU) opJump(address uint16) (Status, error) {
	// a jump to its own address is a trap jump that halts the program
	if c.pc == address+opcodeSize {
		return StatusHalt, nil
	}

	c.pc = address
	return StatusOK, nil
}

// 2nnn CALL addr
func (c *CPU) opCall(address uint16) (Status, error) {
	if c.sp == len(c.stack) {
		return StatusRuntimeError, ErrStackOverflow
	}

	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = address
	return StatusOK, nil
}

// Dxyn DRW Vx, Vy, nibble
func (c *CPU) opDraw(x, y int, n uint8, dev Device) (Status, error) {
	if int(c.i)+int(n) > c.mem.Size() {
		return StatusRuntimeError, ErrMemoryAccess
	}

	xStart := int(c.v[x])
	yStart := int(c.v[y])
	if c.quirks.Clip {
		xStart %= device.Width
		yStart %= device.Height
	}

	var collision uint8
	for dy := 0; dy < int(n); dy++ {
		py := yStart + dy
		if c.quirks.Clip && py >= device.Height {
			break
		}

		row := c.mem.Read(c.i + uint16(dy))
		for dx := 0; dx < 8; dx++ {
			if row&(0x80>>dx) == 0 {
				continue
			}
			px := xStart + dx
			if c.quirks.Clip && px >= device.Width {
				break
			}
			collision |= dev.DrawPixel(px, py)
		}
	}

	c.v[FlagRegister] = collision
	return StatusOK, nil
}

// Fx33 LD B, Vx
func (c *CPU) opStoreBCD(x int) (Status, error) {
	if int(c.i)+2 >= c.mem.Size() {
		return StatusRuntimeError, ErrMemoryAccess
	}

	value := c.v[x]
	c.mem.Write(c.i, value/100)
	c.mem.Write(c.i+1, value/10%10)
	c.mem.Write(c.i+2, value%10)
	return StatusOK, nil
}

// Fx55 LD [I], Vx
func (c *CPU) opRegisterDump(x int) (Status, error) {
	if int(c.i)+x >= c.mem.Size() {
		return StatusRuntimeError, ErrMemoryAccess
	}

	for r := 0; r <= x; r++ {
		c.mem.Write(c.i+uint16(r), c.v[r])
	}
	c.advanceIndex(x)
	return StatusOK, nil
}

// Fx65 LD Vx, [I]
func (c *CPU) opRegisterLoad(x int) (Status, error) {
	if int(c.i)+x >= c.mem.Size() {
		return StatusRuntimeError, ErrMemoryAccess
	}

	for r := 0; r <= x; r++ {
		c.v[r] = c.mem.Read(c.i + uint16(r))
	}
	c.advanceIndex(x)
	return StatusOK, nil
}

func (c *CPU) advanceIndex(x int) {
	if !c.quirks.LoadStore {
		c.i += uint16(x) + 1
	}
}

func (c *CPU) shiftSource(x, y int) uint8 {
	if c.quirks.Shift {
		return c.v[x]
	}
	return c.v[y]
}

func (c *CPU) skipIf(condition bool) {
	if condition {
		c.pc += opcodeSize
	}
}

// subtract returns the wrapped difference and the not borrow flag.
func subtract(minuend, subtrahend uint8) (uint8, uint8) {
	var notBorrow uint8
	if minuend >= subtrahend {
		notBorrow = 1
	}
	return minuend - subtrahend, notBorrow
}
