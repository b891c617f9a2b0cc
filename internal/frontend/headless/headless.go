// Package headless implements a frontend without display and keyboard, used
// for automated runs of ROMs, audio capture and tracing.
package headless

import (
	"context"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Options of the headless frontend.
type Options struct {
	Frames int             // number of frames to run, 0 runs until the machine halts
	Paced  bool            // run at the frame rate instead of as fast as possible
	Audio  *frontend.Audio // optional beeper output
}

// Headless runs a machine without any user interaction.
type Headless struct {
	logger  *log.Logger
	options Options
}

// New returns a new headless frontend.
func New(logger *log.Logger, options Options) *Headless {
	return &Headless{
		logger:  logger,
		options: options,
	}
}

// Run runs the machine until it halts, the configured number of frames was
// reached or the context is canceled.
func (h *Headless) Run(ctx context.Context, m *machine.Machine) error {
	ticker := frontend.NewTicker(h.options.Paced)
	defer ticker.Stop()

	for frame := 0; h.options.Frames == 0 || frame < h.options.Frames; frame++ {
		if err := ticker.Wait(ctx); err != nil {
			return err
		}

		halted, err := frontend.Step(m)
		h.options.Audio.Frame(m)
		if halted {
			return err
		}
	}

	h.logger.Info("Frame limit reached",
		log.Int("frames", h.options.Frames),
		log.Hex("pc", m.CPU().PC()),
		log.Stringer("state", m.State()))
	return nil
}
