package sdlwindow

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/veandco/go-sdl2/sdl"
)

// maximum number of frames that are queued before old samples get dropped
const maxQueuedFrames = 4

// audioQueue plays the beeper samples through a queued SDL audio device.
type audioQueue struct {
	id       sdl.AudioDeviceID
	maxQueue uint32
}

func openAudioQueue(sampleRate int) (*audioQueue, error) {
	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  1024,
	}

	var actualSpec sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	q := &audioQueue{
		id:       id,
		maxQueue: uint32(maxQueuedFrames * sampleRate / frontend.FramesPerSecond),
	}
	sdl.PauseAudioDevice(id, false)
	return q, nil
}

// Write queues the samples of a frame. If playback fell behind the queue is
// cleared to keep the latency low.
func (q *audioQueue) Write(samples []uint8) {
	if sdl.GetQueuedAudioSize(q.id) > q.maxQueue {
		sdl.ClearQueuedAudio(q.id)
	}
	_ = sdl.QueueAudio(q.id, samples)
}

func (q *audioQueue) close() {
	sdl.CloseAudioDevice(q.id)
}
