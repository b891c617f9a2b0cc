// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/beeper"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/screen"
)

// Supported frontends.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// maxTicksPerFrame limits the instructions per frame to a sane range,
// 1000 ticks per frame equal 60000 instructions per second.
const maxTicksPerFrame = 1000

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after rom file, please pass the rom file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if err := validateFrontend(opts.Frontend); err != nil {
		return err
	}

	if opts.Ticks < 1 || opts.Ticks > maxTicksPerFrame {
		return fmt.Errorf("invalid number of ticks per frame %d, valid range is 1-%d",
			opts.Ticks, maxTicksPerFrame)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid number of frames %d", opts.Frames)
	}
	if opts.Phosphor < 0 {
		return fmt.Errorf("invalid phosphor persistence %d", opts.Phosphor)
	}
	if opts.Volume < 0 || opts.Volume > 1 {
		return fmt.Errorf("invalid volume %g, valid range is 0-1", opts.Volume)
	}
	if opts.Frequency <= 0 {
		return fmt.Errorf("invalid beeper frequency %d", opts.Frequency)
	}

	opts.Wave = strings.ToLower(opts.Wave)
	if _, err := beeper.ParseWave(opts.Wave); err != nil {
		return err
	}

	if opts.Keymap != "" {
		if _, err := keypad.ParseMapping(opts.Keymap); err != nil {
			return err
		}
	}

	return validateOptionCombinations(*opts)
}

func validateFrontend(name string) error {
	validFrontends := []string{FrontendSDL, FrontendTerminal, FrontendHeadless}
	for _, valid := range validFrontends {
		if name == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		name, strings.Join(validFrontends, ", "))
}

// validateOptionCombinations checks for options that can not be used together.
func validateOptionCombinations(opts options.Program) error {
	if opts.Trace && !opts.Debug {
		return fmt.Errorf("option -trace requires -debug")
	}
	if opts.Debug && opts.Quiet {
		return fmt.Errorf("options -debug and -q can not be used together")
	}
	if opts.Paced && opts.Frontend != FrontendHeadless {
		return fmt.Errorf("option -paced is only supported by the headless frontend")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Wav, "wav", "", "record the beeper output to the given WAV file")
	flags.StringVar(&opts.Memviz, "memviz", "", "write a graphviz graph of the final machine state to the given file")

	flags.StringVar(&opts.Frontend, "f", FrontendSDL, "frontend to use (sdl/terminal/headless)")
	flags.IntVar(&opts.Frames, "frames", 0, "number of frames to run, 0 runs until the program halts")
	flags.IntVar(&opts.Ticks, "ticks", machine.DefaultTicksPerFrame, "instructions executed per frame")
	flags.StringVar(&opts.Keymap, "keymap", "", "16 keyboard characters mapped to the keys 0-F (default \"X123QWEASDZC4RFV\")")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly of the ROM and exit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Stats, "stats", false, "launch the statsview web server")
	flags.BoolVar(&opts.Paced, "paced", false, "pace the headless frontend at 60 frames per second")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.BoolVar(&opts.QuirkShift, "quirk-shift", false, "shift instructions shift Vx in place and ignore Vy")
	flags.BoolVar(&opts.QuirkLoadStore, "quirk-loadstore", false, "register dump and load leave I unchanged")
	flags.BoolVar(&opts.QuirkClip, "quirk-clip", false, "clip sprites at the display edge instead of wrapping")

	flags.BoolVar(&opts.Mute, "mute", false, "disable sound output")
	flags.StringVar(&opts.Wave, "wave", "triangle", "beeper wave form (triangle/square)")
	flags.IntVar(&opts.Frequency, "freq", beeper.DefaultFrequency, "beeper frequency in Hz")
	flags.Float64Var(&opts.Volume, "volume", beeper.DefaultVolume, "beeper volume between 0 and 1")
	flags.IntVar(&opts.Phosphor, "phosphor", screen.DefaultPersistence, "phosphor persistence in frames, 0 disables fading")
	flags.IntVar(&opts.Scale, "scale", screen.DefaultScale, "window pixels per display pixel")
}
