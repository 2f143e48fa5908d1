// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/ftmix/sample"
	"github.com/ik5/ftmix/utils"
)

// formatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
const formatPCM = 1

// smpl chunk loop types.
const (
	smplLoopForward  = 0
	smplLoopPingPong = 1
)

// Loader reads 8-bit and 16-bit PCM WAV files into a mono sample. Loop points
// come from the first loop of the smpl chunk, when there is one.
type Loader struct{}

var _ sample.Loader = Loader{}

func (Loader) Load(r io.Reader) (*sample.Sample, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}
	if dec.BitDepth != 8 && dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedFormat, dec.BitDepth)
	}

	// metadata chunks may follow the PCM data, so scan them with one decoder
	// and read the PCM with a second one from the start
	dec.ReadMetadata()
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav: %w", err)
	}

	buf, err := wav.NewDecoder(rs).FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}

	channels := int(dec.NumChans)
	rate := int(dec.SampleRate)

	var s *sample.Sample
	if dec.BitDepth == 8 {
		s = sample.New8("", rate, downmix8(buf.Data, channels))
	} else {
		s = sample.New16("", rate, downmix16(buf.Data, channels))
	}

	if dec.Metadata != nil && dec.Metadata.SamplerInfo != nil {
		if loops := dec.Metadata.SamplerInfo.Loops; len(loops) > 0 && loops[0] != nil {
			setLoop(s, loops[0].Type, loops[0].Start, loops[0].End)
		}
	}
	s.Clamp()

	if s.Length() == 0 {
		return nil, sample.ErrEmptySample
	}

	return s, nil
}

// setLoop maps a smpl loop, whose end frame is inclusive, onto s.
func setLoop(s *sample.Sample, kind, start, end uint32) {
	if end < start {
		return
	}

	mode := sample.LoopForward
	if kind == smplLoopPingPong {
		mode = sample.LoopBidi
	}
	s.SetLoop(mode, int(start), int(end-start)+1)
}

// downmix8 averages interleaved unsigned 8-bit frames into signed mono.
func downmix8(data []int, channels int) []int8 {
	if channels < 1 {
		return nil
	}

	pcm := make([]int8, len(data)/channels)
	for f := range pcm {
		sum := 0
		for _, v := range data[f*channels : (f+1)*channels] {
			sum += int(utils.Uint8ToInt8(byte(v)))
		}
		pcm[f] = int8(sum / channels)
	}
	return pcm
}

func downmix16(data []int, channels int) []int16 {
	if channels < 1 {
		return nil
	}

	pcm := make([]int16, len(data)/channels)
	for f := range pcm {
		sum := 0
		for _, v := range data[f*channels : (f+1)*channels] {
			sum += v
		}
		pcm[f] = int16(sum / channels)
	}
	return pcm
}
