package terminal

import (
	"unicode"

	"github.com/retroenv/retrochip8/internal/keypad"
)

// keyHold synthesizes key releases. Terminals only report key presses and
// auto repeats, a key counts as released when no press was seen for a number
// of frames.
type keyHold struct {
	keypad *keypad.Keypad
	frames int

	lastSeen map[rune]int // frame number of the last press per host key
}

func newKeyHold(kp *keypad.Keypad, frames int) *keyHold {
	return &keyHold{
		keypad:   kp,
		frames:   frames,
		lastSeen: map[rune]int{},
	}
}

// press handles a key press reported at the given frame.
func (k *keyHold) press(r rune, frame int) {
	r = unicode.ToUpper(r)
	if !k.keypad.KeyDown(r) {
		return
	}
	k.lastSeen[r] = frame
}

// expire releases all keys that were not seen for the hold duration.
func (k *keyHold) expire(frame int) {
	for r, seen := range k.lastSeen {
		if frame-seen < k.frames {
			continue
		}
		k.keypad.KeyUp(r)
		delete(k.lastSeen, r)
	}
}
