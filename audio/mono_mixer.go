// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// minScratch is the smallest interleaved scratch buffer a MonoMixer keeps.
const minScratch = 8192

// MonoMixer downmixes a multi-channel Source to mono by averaging the
// channels of each frame. Mono sources pass straight through.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }

func (m *MonoMixer) Channels() int { return 1 }

func (m *MonoMixer) BufSize() int { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("close mono source: %w", err)
	}
	return nil
}

// ReadSamples fills dst with mono frames. It returns the number of frames
// written, which for mono equals the number of values.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		// the buffer only grows, so steady-state reads do not allocate
		m.tmp = make([]float32, max(need, minScratch))
	}
	tmp := m.tmp[:need]

	n, err := m.src.ReadSamples(tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	downmix(dst[:frames], tmp[:frames*channels], channels)

	return frames, err
}

// downmix averages each run of channels values in src into one value of dst.
func downmix(dst, src []float32, channels int) {
	switch channels {
	case 2:
		for f := range dst {
			dst[f] = (src[2*f] + src[2*f+1]) * 0.5
		}
	case 4:
		for f := range dst {
			i := f * 4
			dst[f] = (src[i] + src[i+1] + src[i+2] + src[i+3]) * 0.25
		}
	default:
		inv := 1 / float32(channels)
		for f := range dst {
			var sum float32
			for _, s := range src[f*channels : (f+1)*channels] {
				sum += s
			}
			dst[f] = sum * inv
		}
	}
}
