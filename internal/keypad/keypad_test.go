package keypad

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultMapping(t *testing.T) {
	tests := []struct {
		host rune
		key  uint8
	}{
		{'1', 0x1},
		{'4', 0xC},
		{'q', 0x4},
		{'R', 0xD},
		{'x', 0x0},
		{'z', 0xA},
		{'V', 0xF},
	}

	for _, tt := range tests {
		k := New(DefaultMapping)
		assert.True(t, k.KeyDown(tt.host))

		pressed, released := k.Read()
		assert.Equal(t, uint16(1)<<tt.key, pressed)
		assert.Equal(t, uint16(0), released)
	}
}

func TestKeyRelease(t *testing.T) {
	k := New(DefaultMapping)

	assert.True(t, k.KeyDown('w'))
	assert.True(t, k.KeyDown('e'))
	assert.True(t, k.KeyUp('w'))

	pressed, released := k.Read()
	assert.Equal(t, uint16(1<<6), pressed)
	assert.Equal(t, uint16(1<<5), released)

	// released keys are only reported once
	pressed, released = k.Read()
	assert.Equal(t, uint16(1<<6), pressed)
	assert.Equal(t, uint16(0), released)

	// pressing again cancels a pending release
	assert.True(t, k.KeyUp('e'))
	assert.True(t, k.KeyDown('e'))
	pressed, released = k.Read()
	assert.Equal(t, uint16(1<<6), pressed)
	assert.Equal(t, uint16(0), released)

	k.Reset()
	pressed, released = k.Read()
	assert.Equal(t, uint16(0), pressed)
	assert.Equal(t, uint16(0), released)
}

func TestUnmappedKey(t *testing.T) {
	k := New(DefaultMapping)
	assert.False(t, k.KeyDown('p'))
	assert.False(t, k.KeyUp('p'))

	pressed, released := k.Read()
	assert.Equal(t, uint16(0), pressed)
	assert.Equal(t, uint16(0), released)
}

func TestParseMapping(t *testing.T) {
	mapping, err := ParseMapping("x123qweasdzc4rfv")
	assert.NoError(t, err)
	assert.Equal(t, DefaultMapping, mapping)

	_, err = ParseMapping("x123")
	assert.ErrorContains(t, err, "expected 16 keys but got 4")

	_, err = ParseMapping("x123qweasdzc4rfx")
	assert.ErrorContains(t, err, "used more than once")
}
