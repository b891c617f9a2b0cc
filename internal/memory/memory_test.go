package memory

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, Size, m.Size())
	assert.Equal(t, Size, len(m.Bytes()))
	assert.True(t, bytes.Equal(font[:], m.Bytes()[FontStart:FontStart+len(font)]))

	for i := ProgramStart; i < Size; i++ {
		if m.Read(uint16(i)) != 0 {
			t.Fatalf("expected zeroed program space at %04x", i)
		}
	}
}

func TestReadWrite(t *testing.T) {
	m := New()

	m.Write(0x300, 0xAB)
	assert.Equal(t, byte(0xAB), m.Read(0x300))
	assert.Equal(t, byte(0xAB), m.Bytes()[0x300])
}

func TestReset(t *testing.T) {
	m := New()
	m.Write(0x000, 0x12)
	m.Write(0x400, 0x34)

	m.Reset()

	assert.Equal(t, font[0], m.Read(0x000))
	assert.Equal(t, byte(0), m.Read(0x400))
}

func TestLoadROM(t *testing.T) {
	tests := []struct {
		name    string
		rom     []byte
		wantErr error
	}{
		{"single byte", []byte{0x12}, nil},
		{"program", []byte{0x00, 0xE0, 0x12, 0x02}, nil},
		{"maximum size", make([]byte, MaxROMSize()), nil},
		{"empty", nil, ErrROMEmpty},
		{"too large", make([]byte, MaxROMSize()+1), ErrROMTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			err := m.LoadROM(tt.rom)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.True(t, bytes.Equal(tt.rom, m.Bytes()[ProgramStart:ProgramStart+len(tt.rom)]))
		})
	}
}

func TestLoadROMKeepsTrailingMemory(t *testing.T) {
	m := New()
	m.Write(ProgramStart+2, 0x55)

	assert.NoError(t, m.LoadROM([]byte{0x01, 0x02}))
	assert.Equal(t, byte(0x55), m.Read(ProgramStart+2))
}

func TestGlyphAddress(t *testing.T) {
	assert.Equal(t, uint16(0), GlyphAddress(0))
	assert.Equal(t, uint16(5), GlyphAddress(1))
	assert.Equal(t, uint16(75), GlyphAddress(0xF))
}
