// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"
	"io"
	"slices"

	"github.com/ik5/ftmix/audio"
	"github.com/ik5/ftmix/utils"
)

// maxIdleReads bounds how many empty reads FromSource tolerates before giving up.
const maxIdleReads = 64

// FromSource drains src into a mono 16-bit Sample. Multi-channel sources are
// averaged down to one channel.
func FromSource(src audio.Source, name string) (*Sample, error) {
	mono := audio.NewMonoMixer(src)

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	buf := make([]float32, bufSize)

	var pcm []int16
	idle := 0

	for {
		n, err := mono.ReadSamples(buf)
		start := len(pcm)
		pcm = slices.Grow(pcm, n)[:start+n]
		utils.Float32sToInt16(pcm[start:], buf[:n])

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", name, err)
		}

		if n == 0 {
			idle++
			if idle > maxIdleReads {
				return nil, fmt.Errorf("reading %q: %w", name, io.ErrNoProgress)
			}
			continue
		}
		idle = 0

		if len(pcm) > MaxLength {
			return nil, fmt.Errorf("reading %q: %w", name, ErrTooLong)
		}
	}

	if len(pcm) == 0 {
		return nil, fmt.Errorf("reading %q: %w", name, ErrEmptySample)
	}

	return New16(name, src.SampleRate(), pcm), nil
}

// FromDecoder returns a Loader that decodes with d and drains the result
// through FromSource. The decoded Source is closed afterwards.
func FromDecoder(d audio.Decoder, name string) Loader {
	return LoaderFunc(func(r io.Reader) (*Sample, error) {
		src, err := d.Decode(r)
		if err != nil {
			return nil, err
		}
		defer src.Close()

		return FromSource(src, name)
	})
}
