package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/beeper"
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type countingSink struct {
	samples int
}

func (s *countingSink) Write(samples []uint8) {
	s.samples += len(samples)
}

// loop is a ROM that jumps between two addresses forever.
var loop = []byte{0x12, 0x02, 0x12, 0x00}

func newMachine(t *testing.T, rom []byte) *machine.Machine {
	t.Helper()
	m := machine.New(log.NewTestLogger(t))
	assert.NoError(t, m.LoadROM(rom))
	return m
}

func TestRunFrameLimit(t *testing.T) {
	logger := log.NewTestLogger(t)
	m := newMachine(t, loop)

	sink := &countingSink{}
	b := beeper.New(beeper.DefaultSampleRate, beeper.DefaultFrequency, beeper.DefaultVolume, beeper.Triangle)
	h := New(logger, Options{
		Frames: 10,
		Audio:  frontend.NewAudio(b, sink),
	})

	assert.NoError(t, h.Run(context.Background(), m))
	assert.Equal(t, uint64(10), m.Frames())
	assert.Equal(t, 10*beeper.SamplesPerFrame(beeper.DefaultSampleRate, frontend.FramesPerSecond), sink.samples)
}

func TestRunUntilHalt(t *testing.T) {
	m := newMachine(t, []byte{
		0x70, 0x01, // ADD V0, 1
		0x30, 0x64, // SE V0, 100
		0x12, 0x00, // JP $200
		0x12, 0x06, // JP $206
	})

	h := New(log.NewTestLogger(t), Options{})
	assert.NoError(t, h.Run(context.Background(), m))
	assert.Equal(t, cpu.Halted, m.State())
	assert.Equal(t, uint8(100), m.CPU().V(0))
}

func TestRunRuntimeError(t *testing.T) {
	m := newMachine(t, []byte{0x00, 0xEE})

	h := New(log.NewTestLogger(t), Options{Frames: 5})
	err := h.Run(context.Background(), m)
	assert.True(t, errors.Is(err, cpu.ErrStackUnderflow))
}

func TestRunCanceled(t *testing.T) {
	m := newMachine(t, loop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := New(log.NewTestLogger(t), Options{Paced: true})
	err := h.Run(ctx, m)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), m.Frames())
}
