// Package sdlwindow implements a frontend that shows the display in an SDL
// window, reads the keypad from the keyboard and plays the beeper.
//
// All SDL calls are executed on the main thread, the program has to be
// started through mainthread.Run.
package sdlwindow

import (
	"context"
	"fmt"
	"image"
	"slices"

	"github.com/faiface/mainthread"
	"github.com/retroenv/retrochip8/internal/beeper"
	"github.com/retroenv/retrochip8/internal/device"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/screen"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// Options of the SDL frontend.
type Options struct {
	Title       string
	Scale       int
	Persistence int // phosphor persistence in frames, 0 disables it
	Mapping     keypad.Mapping
	Mute        bool

	Beeper *beeper.Beeper       // tone generator, no audio is generated if not set
	Sinks  []frontend.AudioSink // additional receivers of the beeper output
}

// Window is the SDL frontend.
type Window struct {
	logger  *log.Logger
	options Options

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	queue    *audioQueue

	screen *screen.Screen
	img    *image.RGBA
	keypad *keypad.Keypad
}

// New returns a new SDL frontend. The window is created when Run is called.
func New(logger *log.Logger, options Options) (*Window, error) {
	if options.Scale <= 0 {
		options.Scale = screen.DefaultScale
	}
	if options.Title == "" {
		options.Title = "retrochip8"
	}

	scr, err := screen.New(screen.DefaultPalette, options.Persistence)
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}

	return &Window{
		logger:  logger,
		options: options,
		screen:  scr,
		img:     screen.NewImage(),
		keypad:  keypad.New(options.Mapping),
	}, nil
}

// Run shows the machine until the window is closed, Escape is pressed or the
// context is canceled. After the machine halted the last frame stays visible
// until the window is closed, the runtime error of the machine is returned.
func (w *Window) Run(ctx context.Context, m *machine.Machine) error {
	defer mainthread.Call(w.close)
	if err := mainthread.CallErr(w.open); err != nil {
		return err
	}

	var audio *frontend.Audio
	if w.options.Beeper != nil {
		audio = frontend.NewAudio(w.options.Beeper, w.audioSinks()...)
	}

	ticker := frontend.NewTicker(true)
	defer ticker.Stop()

	var halted bool
	var haltErr error

	for {
		if err := ticker.Wait(ctx); err != nil {
			return err
		}

		var action eventAction
		mainthread.Call(func() {
			action = w.pollEvents()
		})

		switch action {
		case actionQuit:
			return haltErr
		case actionReset:
			w.logger.Info("Resetting machine")
			if err := m.Reload(); err != nil {
				return fmt.Errorf("reloading machine: %w", err)
			}
			w.keypad.Reset()
			w.screen.Reset()
			halted, haltErr = false, nil
		}

		if !halted {
			m.SetKeys(w.keypad.Read())
			halted, haltErr = frontend.Step(m)
			audio.Frame(m)
			if halted {
				w.logger.Info("Program halted, close the window or press F5 to restart")
			}
		}

		w.screen.Render(m.Display(), w.img)
		if err := mainthread.CallErr(w.present); err != nil {
			return err
		}
	}
}

// audioSinks returns the receivers of the beeper output: the configured sinks
// and the SDL audio queue, if one is open.
func (w *Window) audioSinks() []frontend.AudioSink {
	sinks := slices.Clone(w.options.Sinks)
	if w.queue != nil {
		sinks = append(sinks, w.queue)
	}
	return sinks
}

func (w *Window) open() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}

	var err error
	w.window, err = sdl.CreateWindow(w.options.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(device.Width*w.options.Scale), int32(device.Height*w.options.Scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	w.texture, err = w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING, device.Width, device.Height)
	if err != nil {
		return fmt.Errorf("creating texture: %w", err)
	}

	if !w.options.Mute && w.options.Beeper != nil {
		w.queue, err = openAudioQueue(w.options.Beeper.SampleRate())
		if err != nil {
			// a missing audio device is not fatal, the machine runs silent
			w.logger.Warn("Opening audio device failed", log.Err(err))
		}
	}
	return nil
}

func (w *Window) close() {
	if w.queue != nil {
		w.queue.close()
	}
	if w.texture != nil {
		_ = w.texture.Destroy()
	}
	if w.renderer != nil {
		_ = w.renderer.Destroy()
	}
	if w.window != nil {
		_ = w.window.Destroy()
	}
	sdl.Quit()
}

// present copies the rendered image to the window.
func (w *Window) present() error {
	if err := w.texture.Update(nil, w.img.Pix, w.img.Stride); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	w.renderer.Present()
	return nil
}
