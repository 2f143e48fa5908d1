// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/ftmix/audio"
	"github.com/ik5/ftmix/sample"
)

// oggReader is the part of oggvorbis.Reader the source reads through.
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved values and returns how many it wrote.
	Read(p []float32) (int, error)
}

type source struct {
	dec     oggReader
	bufSize int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := max(s.dec.Channels(), 1)

	// whole frames only
	dst = dst[:len(dst)/ch*ch]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	return n, err
}

// Decoder streams Ogg Vorbis audio as an audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening vorbis: %w", err)
	}

	return &source{
		dec:     dec,
		bufSize: 4096 * max(dec.Channels(), 1),
	}, nil
}

// Loader decodes a whole Ogg Vorbis stream into a mono 16-bit sample.
type Loader struct{}

var _ sample.Loader = Loader{}

func (Loader) Load(r io.Reader) (*sample.Sample, error) {
	return sample.FromDecoder(Decoder{}, "vorbis").Load(r)
}
