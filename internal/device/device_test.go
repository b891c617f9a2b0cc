package device

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestIndex(t *testing.T) {
	maxX := Width - 1
	maxY := Height - 1

	assert.Equal(t, 5*Width+3, index(3, 5))

	// wrap around on all edges
	assert.Equal(t, index(0, 5), index(maxX+1, 5))
	assert.Equal(t, index(maxX, 5), index(-1, 5))
	assert.Equal(t, index(5, maxY), index(5, -1))
	assert.Equal(t, index(5, 0), index(5, maxY+1))
	assert.Equal(t, index(3, 5), index(3+255*Width, 5+7*Height))
}

func TestDrawPixel(t *testing.T) {
	d := New()
	x, y := 17, 26

	collision := d.DrawPixel(x, y)
	assert.Equal(t, uint8(0), collision)
	assert.True(t, d.Pixel(x, y))

	collision = d.DrawPixel(x, y)
	assert.Equal(t, uint8(1), collision)
	assert.False(t, d.Pixel(x, y))

	update := d.Update()
	assert.True(t, update.Updated)
	assert.False(t, update.Cleared)
	assert.True(t, update.Dirty[index(x, y)])
}

func TestDrawPixelWraps(t *testing.T) {
	d := New()

	assert.Equal(t, uint8(0), d.DrawPixel(Width+2, Height+1))
	assert.True(t, d.Pixel(2, 1))
	assert.Equal(t, uint8(1), d.DrawPixel(2, 1))
}

func TestClearDisplay(t *testing.T) {
	d := New()
	d.DrawPixel(1, 1)
	d.ResetDisplayFlags()

	d.ClearDisplay()

	update := d.Update()
	assert.True(t, update.Cleared)
	assert.True(t, update.Updated)
	for i := 0; i < PixelCount; i++ {
		if update.Pixels[i] != 0 || !update.Dirty[i] {
			t.Fatalf("cell %d not cleared and marked dirty", i)
		}
	}
}

func TestResetDisplayFlags(t *testing.T) {
	d := New()
	d.DrawPixel(4, 4)
	d.ClearDisplay()
	d.DrawPixel(4, 4)

	d.ResetDisplayFlags()

	update := d.Update()
	assert.False(t, update.Updated)
	assert.False(t, update.Cleared)
	for i := 0; i < PixelCount; i++ {
		if update.Dirty[i] {
			t.Fatalf("cell %d still dirty", i)
		}
	}
	// pixels are untouched by the flag reset
	assert.True(t, d.Pixel(4, 4))
}

func TestKeyPressed(t *testing.T) {
	d := New()
	d.SetKeys(0b1000_0000_0000_0101, 0)

	tests := []struct {
		key      uint8
		expected bool
	}{
		{0x0, true},
		{0x1, false},
		{0x2, true},
		{0xF, true},
		{0xE, false},
		{0x10, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, d.KeyPressed(tt.key))
	}

	// pure query
	pressed, _ := d.Keys()
	assert.Equal(t, uint16(0b1000_0000_0000_0101), pressed)
}

func TestReadAnyKey(t *testing.T) {
	d := New()

	key, ok := d.ReadAnyKey()
	assert.False(t, ok)
	assert.Equal(t, uint8(NoKey), key)

	d.SetKeys(0, 0x0004)
	key, ok = d.ReadAnyKey()
	assert.True(t, ok)
	assert.Equal(t, uint8(2), key)

	_, released := d.Keys()
	assert.Equal(t, uint16(0), released)
	_, ok = d.ReadAnyKey()
	assert.False(t, ok)
}

func TestReadAnyKeyClearsWholeMask(t *testing.T) {
	d := New()
	d.SetKeys(0, 0b1010_0000)

	key, ok := d.ReadAnyKey()
	assert.True(t, ok)
	assert.Equal(t, uint8(5), key)

	_, ok = d.ReadAnyKey()
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	d := New()
	d.DrawPixel(0, 0)
	d.SetKeys(0xFFFF, 0xFFFF)

	d.Reset()

	pressed, released := d.Keys()
	assert.Equal(t, uint16(0), pressed)
	assert.Equal(t, uint16(0), released)
	assert.False(t, d.Pixel(0, 0))
	update := d.Update()
	assert.False(t, update.Updated)
	assert.False(t, update.Cleared)
}
