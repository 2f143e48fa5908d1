// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a pull-based stream of interleaved float32 PCM.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1 mono, 2 stereo, ...).
	Channels() int
	// ReadSamples fills dst with interleaved samples, nominally in [-1, 1].
	// It returns the number of float32 values written, not frames. n == 0
	// with err == io.EOF ends the stream.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the number of values a caller should ask for per read.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
