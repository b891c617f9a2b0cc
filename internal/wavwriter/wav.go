// Package wavwriter allows writing of the beeper output to disk as a WAV file.
// Samples are buffered in memory in their entirety and written to disk when
// the writer is closed, it is therefore only suitable for shorter recordings.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth    = 8
	numChannels = 1
	pcmFormat   = 1
)

// WavWriter collects unsigned 8 bit mono samples.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New returns a writer that will create the given file on Close.
func New(filename string, sampleRate int) *WavWriter {
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
	}
}

// Write appends samples to the recording.
func (ww *WavWriter) Write(samples []uint8) {
	for _, s := range samples {
		ww.buffer = append(ww.buffer, int(s))
	}
}

// Samples returns the number of buffered samples.
func (ww *WavWriter) Samples() int {
	return len(ww.buffer)
}

// Close writes all buffered samples to the file.
func (ww *WavWriter) Close() (rerr error) {
	f, err := os.Create(ww.filename)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing wav file: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, ww.sampleRate, bitDepth, numChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  ww.sampleRate,
		},
		Data:           ww.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}
	return nil
}
