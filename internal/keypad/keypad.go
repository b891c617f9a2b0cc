// Package keypad maps host keyboard keys to the 16 keys of the hex keypad and
// accumulates the pressed and released key masks between two frames.
package keypad

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/retroenv/retrochip8/internal/device"
)

// Mapping lists the host key for every keypad key, indexed by keypad key.
type Mapping [device.KeyCount]rune

// DefaultMapping maps the left block of a QWERTY keyboard to the hex keypad:
//
//	keypad     keyboard
//	1 2 3 C    1 2 3 4
//	4 5 6 D    Q W E R
//	7 8 9 E    A S D F
//	A 0 B F    Z X C V
var DefaultMapping = Mapping{
	'X', '1', '2', '3',
	'Q', 'W', 'E', 'A',
	'S', 'D', 'Z', 'C',
	'4', 'R', 'F', 'V',
}

var errInvalidMapping = errors.New("invalid key mapping")

// ParseMapping parses a mapping from a string of 16 distinct characters,
// listing the host key for keypad keys 0 to F.
func ParseMapping(s string) (Mapping, error) {
	var mapping Mapping

	if n := utf8.RuneCountInString(s); n != device.KeyCount {
		return mapping, fmt.Errorf("%w: expected %d keys but got %d", errInvalidMapping, device.KeyCount, n)
	}

	seen := map[rune]struct{}{}
	i := 0
	for _, r := range s {
		r = unicode.ToUpper(r)
		if _, ok := seen[r]; ok {
			return mapping, fmt.Errorf("%w: key '%c' used more than once", errInvalidMapping, r)
		}
		seen[r] = struct{}{}
		mapping[i] = r
		i++
	}
	return mapping, nil
}

// Keypad tracks the state of the mapped host keys.
type Keypad struct {
	keys map[rune]uint8

	pressed  uint16
	released uint16
}

// New returns a keypad using the given mapping.
func New(mapping Mapping) *Keypad {
	k := &Keypad{
		keys: make(map[rune]uint8, len(mapping)),
	}
	for key, r := range mapping {
		k.keys[unicode.ToUpper(r)] = uint8(key)
	}
	return k
}

// KeyDown marks the keypad key mapped to the host key as pressed. It returns
// false if the host key is not mapped.
func (k *Keypad) KeyDown(r rune) bool {
	key, ok := k.keys[unicode.ToUpper(r)]
	if !ok {
		return false
	}

	bit := uint16(1) << key
	k.pressed |= bit
	k.released &^= bit
	return true
}

// KeyUp marks the keypad key mapped to the host key as released. It returns
// false if the host key is not mapped.
func (k *Keypad) KeyUp(r rune) bool {
	key, ok := k.keys[unicode.ToUpper(r)]
	if !ok {
		return false
	}

	bit := uint16(1) << key
	k.pressed &^= bit
	k.released |= bit
	return true
}

// Read returns the pressed and released key masks. The released mask is
// cleared by reading it, so that every release is reported once.
func (k *Keypad) Read() (pressed, released uint16) {
	pressed, released = k.pressed, k.released
	k.released = 0
	return pressed, released
}

// Reset releases all keys without reporting them as released.
func (k *Keypad) Reset() {
	k.pressed = 0
	k.released = 0
}
