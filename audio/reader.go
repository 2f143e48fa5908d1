// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"io"
	"math"
)

// BytesPerSample is the width of one value in a Reader's output.
const BytesPerSample = 4

// Reader adapts a Source to io.Reader, producing little-endian float32 bytes.
// This is the layout audio devices such as oto expect for FormatFloat32LE.
// Only whole frames are produced.
type Reader struct {
	src Source
	buf []float32
}

func NewReader(src Source) *Reader {
	return &Reader{
		src: src,
		buf: make([]float32, max(src.BufSize(), src.Channels())),
	}
}

// Read fills p with as many whole frames as fit. A buffer too small for one
// frame returns io.ErrShortBuffer.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	channels := max(r.src.Channels(), 1)
	n := len(p) / BytesPerSample
	n -= n % channels
	if n == 0 {
		return 0, io.ErrShortBuffer
	}

	if cap(r.buf) < n {
		r.buf = make([]float32, n)
	}
	buf := r.buf[:n]

	got, err := r.src.ReadSamples(buf)
	for i, s := range buf[:got] {
		binary.LittleEndian.PutUint32(p[i*BytesPerSample:], math.Float32bits(s))
	}

	return got * BytesPerSample, err
}

// Close closes the underlying Source.
func (r *Reader) Close() error {
	return r.src.Close()
}
