// Package frontend contains the parts shared by all machine frontends.
package frontend

import (
	"context"
	"time"

	"github.com/retroenv/retrochip8/internal/beeper"
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/machine"
)

// FramesPerSecond is the display refresh and timer rate.
const FramesPerSecond = 60

// FrameDuration is the time between two frames.
const FrameDuration = time.Second / FramesPerSecond

// Frontend runs a machine until it halts, the user quits or the context is
// canceled.
type Frontend interface {
	Run(ctx context.Context, m *machine.Machine) error
}

// AudioSink receives the generated beeper samples of every frame.
type AudioSink interface {
	Write(samples []uint8)
}

// Audio generates the beeper samples of a frame and passes them to all sinks.
type Audio struct {
	beeper  *beeper.Beeper
	samples int
	sinks   []AudioSink
}

// NewAudio returns a new audio helper. It returns nil if no sinks are passed,
// a nil *Audio can be used and does nothing.
func NewAudio(b *beeper.Beeper, sinks ...AudioSink) *Audio {
	if len(sinks) == 0 {
		return nil
	}
	return &Audio{
		beeper:  b,
		samples: beeper.SamplesPerFrame(b.SampleRate(), FramesPerSecond),
		sinks:   sinks,
	}
}

// Frame generates the samples for the current state of the machine.
func (a *Audio) Frame(m *machine.Machine) {
	if a == nil {
		return
	}

	samples := a.beeper.Frame(m.IsBeeping(), a.samples)
	for _, sink := range a.sinks {
		sink.Write(samples)
	}
}

// Step runs a single frame of the machine. It returns true if the machine
// halted, together with the runtime error if the machine halted because of
// one.
func Step(m *machine.Machine) (bool, error) {
	status, err := m.Update()
	switch status {
	case cpu.StatusOK:
		return false, nil
	case cpu.StatusHalt:
		return true, nil
	default:
		return true, err
	}
}

// Ticker paces frames at the frame rate. It wraps a time.Ticker to allow
// frontends to run unpaced for testing and benchmarking.
type Ticker struct {
	ticker *time.Ticker
}

// NewTicker returns a new ticker, an unpaced ticker fires immediately.
func NewTicker(paced bool) *Ticker {
	t := &Ticker{}
	if paced {
		t.ticker = time.NewTicker(FrameDuration)
	}
	return t
}

// Wait blocks until the next frame is due. It returns the context error if the
// context got canceled while waiting.
func (t *Ticker) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil || t.ticker == nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ticker.C:
		return nil
	}
}

// Stop releases the resources of the ticker.
func (t *Ticker) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
	}
}
