// Package device implements the monochrome display and hex keypad that the
// interpreter drives through its draw and key instructions.
package device

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32

	// PixelCount is the number of cells of the framebuffer.
	PixelCount = Width * Height
)

// NoKey is the key value reported when no key release is available.
const NoKey = 0xFF

// KeyCount is the number of keys of the hex keypad.
const KeyCount = 16

// Update is a read-only snapshot of the display state for the host.
type Update struct {
	Pixels  []uint8 // 1 for a lit pixel, indexed y*Width+x
	Dirty   []bool  // cells changed since the last flag reset
	Updated bool    // any cell changed since the last flag reset
	Cleared bool    // the display was cleared since the last flag reset
}

// IODevice contains the framebuffer with its dirty tracking and the key state.
type IODevice struct {
	pixels [PixelCount]uint8
	dirty  [PixelCount]bool

	pressed  uint16 // bit per key that is currently held down
	released uint16 // bit per key that has just been released

	cleared bool
	updated bool
}

// New returns a new device with a blank display and no keys pressed.
func New() *IODevice {
	return &IODevice{}
}

// Reset clears the display, the key state and all display flags.
func (d *IODevice) Reset() {
	d.ClearDisplay()
	d.pressed = 0
	d.released = 0
	d.cleared = false
	d.updated = false
	d.dirty = [PixelCount]bool{}
}

// ClearDisplay turns off every pixel, marks every cell dirty and sets the cleared flag.
func (d *IODevice) ClearDisplay() {
	for i := range d.pixels {
		d.pixels[i] = 0
		d.dirty[i] = true
	}

	d.cleared = true
	d.updated = true
}

// DrawPixel toggles the pixel at the given coordinates, which wrap around the
// display edges. It returns 1 if a lit pixel was turned off, 0 otherwise.
func (d *IODevice) DrawPixel(x, y int) uint8 {
	i := index(x, y)

	color := d.pixels[i] ^ 1
	d.pixels[i] = color
	d.dirty[i] = true
	d.updated = true

	return ^color & 1
}

// KeyPressed returns whether the given key is currently held down.
func (d *IODevice) KeyPressed(key uint8) bool {
	return checkKey(d.pressed, key)
}

// ReadAnyKey returns the lowest numbered key that has been released.
// Reading a key consumes the whole released mask, not just the returned key.
func (d *IODevice) ReadAnyKey() (uint8, bool) {
	if d.released == 0 {
		return NoKey, false
	}

	for key := uint8(0); key < KeyCount; key++ {
		if checkKey(d.released, key) {
			d.released = 0
			return key, true
		}
	}
	return NoKey, false
}

// SetKeys sets the pressed and released key masks, one bit per key.
func (d *IODevice) SetKeys(pressed, released uint16) {
	d.pressed = pressed
	d.released = released
}

// Keys returns the pressed and released key masks.
func (d *IODevice) Keys() (pressed, released uint16) {
	return d.pressed, d.released
}

// ResetDisplayFlags clears the dirty grid and the cleared flag. It does nothing
// if the display has not been updated since the last call.
func (d *IODevice) ResetDisplayFlags() {
	if !d.updated {
		return
	}

	d.dirty = [PixelCount]bool{}
	d.cleared = false
	d.updated = false
}

// Update returns a snapshot of the display state. The slices share the
// storage of the device and are only valid until the next device operation.
func (d *IODevice) Update() Update {
	return Update{
		Pixels:  d.pixels[:],
		Dirty:   d.dirty[:],
		Updated: d.updated,
		Cleared: d.cleared,
	}
}

// Pixel returns whether the pixel at the given coordinates is lit.
func (d *IODevice) Pixel(x, y int) bool {
	return d.pixels[index(x, y)] == 1
}

func index(x, y int) int {
	return mod(y, Height)*Width + mod(x, Width)
}

// mod returns the non negative remainder, wrapping negative coordinates.
func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func checkKey(keys uint16, key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return keys&(1<<key) != 0
}
