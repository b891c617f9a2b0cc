package app

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/beeper"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/sdlwindow"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

func createBeeper(opts options.Program) (*beeper.Beeper, error) {
	wave, err := beeper.ParseWave(opts.Wave)
	if err != nil {
		return nil, err
	}
	return beeper.New(beeper.DefaultSampleRate, opts.Frequency, opts.Volume, wave), nil
}

func createMapping(opts options.Program) (keypad.Mapping, error) {
	if opts.Keymap == "" {
		return keypad.DefaultMapping, nil
	}
	mapping, err := keypad.ParseMapping(opts.Keymap)
	if err != nil {
		return mapping, fmt.Errorf("parsing key mapping: %w", err)
	}
	return mapping, nil
}

// createFrontend returns the frontend selected by the options. The sinks
// receive the beeper output of every frame.
func createFrontend(logger *log.Logger, opts options.Program, bep *beeper.Beeper,
	sinks []frontend.AudioSink) (frontend.Frontend, error) {

	mapping, err := createMapping(opts)
	if err != nil {
		return nil, err
	}

	switch opts.Frontend {
	case cli.FrontendHeadless:
		return headless.New(logger, headless.Options{
			Frames: opts.Frames,
			Paced:  opts.Paced,
			Audio:  frontend.NewAudio(bep, sinks...),
		}), nil

	case cli.FrontendTerminal:
		return terminal.New(logger, terminal.Options{
			Mapping: mapping,
			Audio:   frontend.NewAudio(bep, sinks...),
		}), nil

	case cli.FrontendSDL, "":
		window, err := sdlwindow.New(logger, sdlwindow.Options{
			Scale:       opts.Scale,
			Persistence: opts.Phosphor,
			Mapping:     mapping,
			Mute:        opts.Mute,
			Beeper:      bep,
			Sinks:       sinks,
		})
		if err != nil {
			return nil, fmt.Errorf("creating sdl frontend: %w", err)
		}
		return window, nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
