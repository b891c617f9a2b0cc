package cpu

import "github.com/retroenv/retrochip8/internal/device"

type pixel struct {
	x, y int
}

// mockDevice records the calls of the interpreter and keeps a minimal
// framebuffer to report collisions.
type mockDevice struct {
	clearCalls int
	drawn      []pixel
	lit        map[int]bool

	pressed  uint16
	released uint16
	keyReads int
}

func newMockDevice() *mockDevice {
	return &mockDevice{
		lit: make(map[int]bool),
	}
}

func (m *mockDevice) ClearDisplay() {
	m.clearCalls++
	m.lit = make(map[int]bool)
}

func (m *mockDevice) DrawPixel(x, y int) uint8 {
	m.drawn = append(m.drawn, pixel{x: x, y: y})

	i := (y%device.Height)*device.Width + x%device.Width
	if m.lit[i] {
		delete(m.lit, i)
		return 1
	}
	m.lit[i] = true
	return 0
}

func (m *mockDevice) KeyPressed(key uint8) bool {
	return key < 16 && m.pressed&(1<<key) != 0
}

func (m *mockDevice) ReadAnyKey() (uint8, bool) {
	m.keyReads++
	for key := uint8(0); key < 16; key++ {
		if m.released&(1<<key) != 0 {
			m.released = 0
			return key, true
		}
	}
	return device.NoKey, false
}

// fixedRandom returns the same byte for every call.
type fixedRandom struct {
	value uint8
}

func (r fixedRandom) RandomByte() uint8 {
	return r.value
}

// traceRecorder records all traced instructions.
type traceRecorder struct {
	addresses []uint16
	opcodes   []uint16
}

func (r *traceRecorder) Trace(address, opcode uint16) {
	r.addresses = append(r.addresses, address)
	r.opcodes = append(r.opcodes, opcode)
}
