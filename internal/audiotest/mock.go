// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test doubles shared by the ftmix packages. It
// imports none of them, so any package's tests can use it.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio from a waveform function. It satisfies
// audio.Source.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32

	// Err, when set, is returned by the read that reaches the end instead of
	// io.EOF.
	Err    error
	closed bool
}

// NewMockSource returns a source producing totalSamples frames of waveform.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource returns a full-scale sine at frequency Hz on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }

func (m *MockSource) Channels() int { return m.channels }

func (m *MockSource) BufSize() int { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, m.end()
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	n := frames * m.channels
	if m.generated >= m.totalSamples {
		return n, m.end()
	}
	return n, nil
}

func (m *MockSource) end() error {
	if m.Err != nil {
		return m.Err
	}
	return io.EOF
}
