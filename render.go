// SPDX-License-Identifier: EPL-2.0

package ftmix

import (
	"fmt"
	"io"
	"slices"

	"github.com/ik5/ftmix/audio"
	"github.com/ik5/ftmix/utils"
)

const (
	defaultBufferSize = 4096
	// maxIdleReads bounds how many empty reads a render tolerates in a row.
	maxIdleReads = 64
)

// RenderToStereo16 reads up to frames frames of stereo from src and converts
// them to interleaved 16-bit PCM. With frames <= 0 it reads until io.EOF.
//
// It returns the PCM, the sample rate of src and any read error other than
// io.EOF.
func RenderToStereo16(src audio.Source, frames, bufferSize int) ([]int16, int, error) {
	if src.Channels() != 2 {
		return nil, 0, fmt.Errorf("%w: %d channels", ErrNotStereo, src.Channels())
	}

	pcm, err := collect16(src, 2, frames, bufferSize)
	return pcm, src.SampleRate(), err
}

// RenderToMono16 is RenderToStereo16 for any channel count, averaging the
// channels of each frame into one 16-bit value.
func RenderToMono16(src audio.Source, frames, bufferSize int) ([]int16, int, error) {
	pcm, err := collect16(audio.NewMonoMixer(src), 1, frames, bufferSize)
	return pcm, src.SampleRate(), err
}

func collect16(src audio.Source, channels, frames, bufferSize int) ([]int16, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	// whole frames per read
	bufferSize = max(bufferSize-bufferSize%channels, channels)

	limit := max(frames, 0) * channels

	pcm := make([]int16, 0, max(limit, bufferSize))
	buf := make([]float32, bufferSize)
	idle := 0

	for limit == 0 || len(pcm) < limit {
		want := len(buf)
		if limit > 0 {
			want = min(want, limit-len(pcm))
		}

		n, err := src.ReadSamples(buf[:want])

		start := len(pcm)
		pcm = slices.Grow(pcm, n)[:start+n]
		utils.Float32sToInt16(pcm[start:], buf[:n])

		if err == io.EOF {
			break
		}
		if err != nil {
			return pcm, fmt.Errorf("rendering: %w", err)
		}

		if n == 0 {
			idle++
			if idle > maxIdleReads {
				return pcm, fmt.Errorf("rendering: %w", io.ErrNoProgress)
			}
			continue
		}
		idle = 0
	}

	return pcm, nil
}
