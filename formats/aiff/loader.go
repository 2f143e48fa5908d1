// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/ftmix/sample"
)

// pcmReader is the part of aiff.Decoder the loader reads PCM through.
type pcmReader interface {
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

// Loader reads 8-bit and 16-bit AIFF files into a mono sample without loop
// points.
type Loader struct{}

var _ sample.Loader = Loader{}

func (Loader) Load(r io.Reader) (*sample.Sample, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	return decode(dec, int(dec.BitDepth))
}

func decode(dec pcmReader, depth int) (*sample.Sample, error) {
	if depth != 8 && depth != 16 {
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, depth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding aiff: %w", err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, ErrNotAiffFile
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, sample.ErrEmptySample
	}

	// AIFF PCM is signed at every depth; average the channels of each frame
	mono := func(f int) int {
		sum := 0
		for _, v := range buf.Data[f*channels : (f+1)*channels] {
			if depth == 8 {
				v = int(int8(byte(v)))
			}
			sum += v
		}
		return sum / channels
	}

	if depth == 8 {
		pcm := make([]int8, frames)
		for f := range pcm {
			pcm[f] = int8(mono(f))
		}
		return sample.New8("", buf.Format.SampleRate, pcm), nil
	}

	pcm := make([]int16, frames)
	for f := range pcm {
		pcm[f] = int16(mono(f))
	}
	return sample.New16("", buf.Format.SampleRate, pcm), nil
}
