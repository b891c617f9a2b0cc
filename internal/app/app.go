// Package app provides the main application helper for the emulator.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/statsview"
	"github.com/retroenv/retrochip8/internal/wavwriter"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints the information about the ROM and the machine setup.
func PrintInfo(logger *log.Logger, opts options.Program, rom []byte) {
	if opts.Quiet || opts.Disasm {
		return
	}

	logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
		log.String("frontend", opts.Frontend),
		log.Int("ticks", opts.Ticks),
	)

	quirks := config.CreateQuirks(opts)
	if quirks != (cpu.Quirks{}) {
		logger.Info("Quirks enabled", log.String("quirks", fmt.Sprintf("%+v", quirks)))
	}
}

// Run loads the ROM given in the options and runs it with the selected
// frontend until it halts, the frontend quits or the context is canceled.
// If a disassembly is requested, the listing is written to out instead.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, out io.Writer) (rerr error) {
	rom, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading rom file: %w", err)
	}

	PrintInfo(logger, opts, rom)

	if opts.Disasm {
		if err := disasm.Disassemble(rom, out, disasm.Options{OffsetComments: true}); err != nil {
			return fmt.Errorf("disassembling rom: %w", err)
		}
		return nil
	}

	m := machine.New(logger, cpu.WithQuirks(config.CreateQuirks(opts)))
	m.SetTicksPerFrame(opts.Ticks)
	if err := m.LoadROM(rom); err != nil {
		return err
	}
	if opts.Trace {
		m.EnableTrace()
	}

	bep, err := createBeeper(opts)
	if err != nil {
		return err
	}

	var sinks []frontend.AudioSink
	if opts.Wav != "" {
		ww := wavwriter.New(opts.Wav, bep.SampleRate())
		sinks = append(sinks, ww)
		defer func() {
			if err := ww.Close(); err != nil {
				rerr = errors.Join(rerr, fmt.Errorf("writing wav file: %w", err))
				return
			}
			logger.Info("Audio recorded", log.String("file", opts.Wav), log.Int("samples", ww.Samples()))
		}()
	}

	fe, err := createFrontend(logger, opts, bep, sinks)
	if err != nil {
		return err
	}

	if opts.Stats {
		statsview.Launch(logger, statsview.DefaultAddress)
	}

	runErr := fe.Run(ctx, m)

	if opts.Memviz != "" {
		if err := writeMemviz(opts.Memviz, m); err != nil {
			return errors.Join(runErr, err)
		}
		logger.Info("Machine state graph written", log.String("file", opts.Memviz))
	}

	return runErr
}
