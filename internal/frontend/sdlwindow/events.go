package sdlwindow

import (
	"github.com/veandco/go-sdl2/sdl"
)

type eventAction int

const (
	actionNone eventAction = iota
	actionQuit
	actionReset
)

// pollEvents processes all pending SDL events and forwards key events to the
// keypad.
func (w *Window) pollEvents() eventAction {
	action := actionNone

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return actionQuit

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				return actionQuit
			case sdl.K_F5:
				if ev.Type == sdl.KEYDOWN {
					action = actionReset
				}
				continue
			}

			r, ok := keyRune(ev.Keysym.Sym)
			if !ok {
				continue
			}
			if ev.Type == sdl.KEYDOWN {
				w.keypad.KeyDown(r)
			} else {
				w.keypad.KeyUp(r)
			}
		}
	}
	return action
}

// keyRune returns the character of a printable key. SDL key codes of
// printable keys are their ASCII values.
func keyRune(sym sdl.Keycode) (rune, bool) {
	if sym < 0x20 || sym > 0x7e {
		return 0, false
	}
	return rune(sym), true
}
