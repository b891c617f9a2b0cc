// Package beeper generates the tone that is played while the sound timer of
// the machine is active. Samples are unsigned 8 bit mono PCM.
package beeper

import (
	"fmt"
	"strings"
)

// Silence is the sample value of the wave center line.
const Silence = 0x80

// Default tone settings.
const (
	DefaultFrequency  = 440
	DefaultSampleRate = 44100
	DefaultVolume     = 0.3
)

// Wave is the form of the generated tone.
type Wave int

// Supported wave forms.
const (
	Triangle Wave = iota
	Square
)

// ParseWave parses the name of a wave form.
func ParseWave(name string) (Wave, error) {
	switch strings.ToLower(name) {
	case "triangle":
		return Triangle, nil
	case "square":
		return Square, nil
	default:
		return 0, fmt.Errorf("unsupported wave form '%s'", name)
	}
}

// Beeper generates samples of a tone with continuous phase across frames.
type Beeper struct {
	sampleRate int
	step       float64 // phase increment per sample
	amplitude  float64
	wave       Wave

	phase float64 // position in the current period, 0 <= phase < 1
}

// New returns a beeper for the given sample rate and tone. The volume is
// clamped to the range 0 to 1.
func New(sampleRate, frequency int, volume float64, wave Wave) *Beeper {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	return &Beeper{
		sampleRate: sampleRate,
		step:       float64(frequency) / float64(sampleRate),
		amplitude:  volume * 127,
		wave:       wave,
	}
}

// SampleRate returns the sample rate of the generated samples.
func (b *Beeper) SampleRate() int {
	return b.sampleRate
}

// Frame returns the given number of samples. While not beeping the samples
// are silent and the wave restarts at the beginning of the next tone.
func (b *Beeper) Frame(beeping bool, samples int) []uint8 {
	buf := make([]uint8, samples)
	if !beeping {
		for i := range buf {
			buf[i] = Silence
		}
		b.phase = 0
		return buf
	}

	for i := range buf {
		buf[i] = uint8(Silence + b.amplitude*b.sample())
		b.phase += b.step
		if b.phase >= 1 {
			b.phase -= 1
		}
	}
	return buf
}

// sample returns the wave value at the current phase in the range -1 to 1.
func (b *Beeper) sample() float64 {
	switch b.wave {
	case Square:
		if b.phase < 0.5 {
			return 1
		}
		return -1

	default:
		switch {
		case b.phase < 0.25:
			return 4 * b.phase
		case b.phase < 0.75:
			return 2 - 4*b.phase
		default:
			return 4*b.phase - 4
		}
	}
}

// SamplesPerFrame returns the number of samples that cover one frame.
func SamplesPerFrame(sampleRate, fps int) int {
	if fps <= 0 {
		return 0
	}
	return sampleRate / fps
}
