// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/ftmix/audio"
	"github.com/ik5/ftmix/sample"
)

// go-mp3 always decodes to interleaved 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerValue = 2
	bytesPerFrame = channels * bytesPerValue
)

// mp3Reader is the part of gomp3.Decoder the source reads through.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec mp3Reader
	buf []byte
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerValue }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// whole frames only, so channels never swap between reads
	need := len(dst) / channels * bytesPerFrame
	if need == 0 {
		return 0, nil
	}
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	n, err := s.dec.Read(buf)
	values := n / bytesPerValue
	for i := range values {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(buf[2*i:]))) / 32768.0
	}

	if err != nil && err != io.EOF {
		return values, fmt.Errorf("decoding mp3: %w", err)
	}
	return values, err
}

// Decoder streams MP3 audio as an audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3: %w", err)
	}

	return &source{
		dec: dec,
		buf: make([]byte, 8192),
	}, nil
}

// Loader decodes a whole MP3 stream into a mono 16-bit sample.
type Loader struct{}

var _ sample.Loader = Loader{}

func (Loader) Load(r io.Reader) (*sample.Sample, error) {
	return sample.FromDecoder(Decoder{}, "mp3").Load(r)
}
