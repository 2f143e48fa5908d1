// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// chunkFrames bounds the intermediate int buffer handed to the encoder.
const chunkFrames = 8192

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	return Write16(w, sampleRate, 1, samples)
}

// Write16 writes interleaved 16-bit PCM with the given channel count. The
// header sizes are patched through Seek once the data is written.
func Write16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels < 1 || len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d values, %d channels", ErrChannelCount, len(samples), channels)
	}

	enc := wav.NewEncoder(w, sampleRate, 16, channels, formatPCM)

	step := chunkFrames * channels
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, min(step, len(samples))),
		SourceBitDepth: 16,
	}

	// at least one Write, so an empty file still gets its header
	for start := 0; ; start += step {
		chunk := samples[start:min(start+step, len(samples))]

		buf.Data = buf.Data[:len(chunk)]
		for i, v := range chunk {
			buf.Data[i] = int(v)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
		if start+step >= len(samples) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}
	return nil
}
