// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"
	"testing"

	"github.com/ik5/ftmix/sample"
)

// smplLoop is one loop record of a smpl chunk.
type smplLoop struct {
	kind, start, end uint32
}

// createWAVFile builds a PCM WAV with raw little-endian frame data and an
// optional smpl chunk after the data chunk.
func createWAVFile(sampleRate, channels, bits int, data []byte, loops ...smplLoop) []byte {
	body := new(bytes.Buffer)

	blockAlign := channels * bits / 8

	// fmt chunk
	body.WriteString("fmt ")
	binary.Write(body, binary.LittleEndian, uint32(16))
	binary.Write(body, binary.LittleEndian, uint16(formatPCM))
	binary.Write(body, binary.LittleEndian, uint16(channels))
	binary.Write(body, binary.LittleEndian, uint32(sampleRate))
	binary.Write(body, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(body, binary.LittleEndian, uint16(blockAlign))
	binary.Write(body, binary.LittleEndian, uint16(bits))

	// data chunk
	body.WriteString("data")
	binary.Write(body, binary.LittleEndian, uint32(len(data)))
	body.Write(data)
	if len(data)%2 == 1 {
		body.WriteByte(0)
	}

	if len(loops) > 0 {
		body.WriteString("smpl")
		binary.Write(body, binary.LittleEndian, uint32(36+24*len(loops)))
		body.Write(make([]byte, 8)) // manufacturer, product
		for _, v := range []uint32{0, 60, 0, 0, 0, uint32(len(loops)), 0} {
			binary.Write(body, binary.LittleEndian, v)
		}
		for i, l := range loops {
			for _, v := range []uint32{uint32(i), l.kind, l.start, l.end, 0, 0} {
				binary.Write(body, binary.LittleEndian, v)
			}
		}
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(4+body.Len()))
	out.WriteString("WAVE")
	out.Write(body.Bytes())

	return out.Bytes()
}

func pcm16(values ...int16) []byte {
	buf := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}
	return buf
}

func TestLoader_Mono16(t *testing.T) {
	t.Parallel()

	want := []int16{0, 100, -100, 32767, -32768, 7}
	file := createWAVFile(22050, 1, 16, pcm16(want...))

	s, err := Loader{}.Load(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Depth != sample.Depth16 || s.Rate != 22050 {
		t.Errorf("Load() = %d-bit at %d Hz, want 16-bit at 22050 Hz", s.Depth, s.Rate)
	}
	if !slices.Equal(s.Data16, want) {
		t.Errorf("Data16 = %v, want %v", s.Data16, want)
	}
	if s.Looping() {
		t.Errorf("Loop = %v without a smpl chunk", s.Loop)
	}
}

func TestLoader_StereoDownmix(t *testing.T) {
	t.Parallel()

	file := createWAVFile(8000, 2, 16, pcm16(100, 300, -200, -400, 32767, 32767))

	s, err := Loader{}.Load(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := []int16{200, -300, 32767}; !slices.Equal(s.Data16, want) {
		t.Errorf("Data16 = %v, want %v", s.Data16, want)
	}
}

func TestLoader_Unsigned8Bit(t *testing.T) {
	t.Parallel()

	file := createWAVFile(8363, 1, 8, []byte{128, 255, 0, 192})

	s, err := Loader{}.Load(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Depth != sample.Depth8 {
		t.Fatalf("Depth = %d, want 8", s.Depth)
	}
	if want := []int8{0, 127, -128, 64}; !slices.Equal(s.Data8, want) {
		t.Errorf("Data8 = %v, want %v", s.Data8, want)
	}
}

func TestLoader_SmplLoops(t *testing.T) {
	t.Parallel()

	data := pcm16(make([]int16, 8)...)

	tests := []struct {
		name       string
		loops      []smplLoop
		wantMode   sample.LoopMode
		wantStart  int
		wantLength int
	}{
		{"forward", []smplLoop{{smplLoopForward, 2, 5}}, sample.LoopForward, 2, 4},
		{"ping-pong", []smplLoop{{smplLoopPingPong, 0, 7}}, sample.LoopBidi, 0, 8},
		{"backward plays forward", []smplLoop{{2, 4, 4}}, sample.LoopForward, 4, 1},
		{"end past the data", []smplLoop{{smplLoopForward, 3, 100}}, sample.LoopForward, 3, 5},
		{"first loop wins", []smplLoop{{smplLoopPingPong, 1, 2}, {smplLoopForward, 0, 7}}, sample.LoopBidi, 1, 2},
		{"inverted", []smplLoop{{smplLoopForward, 6, 2}}, sample.LoopNone, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := createWAVFile(8000, 1, 16, data, tt.loops...)

			s, err := Loader{}.Load(bytes.NewReader(file))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if s.Loop != tt.wantMode || s.LoopStart != tt.wantStart || s.LoopLength != tt.wantLength {
				t.Errorf("loop = %v [%d, +%d), want %v [%d, +%d)",
					s.Loop, s.LoopStart, s.LoopLength, tt.wantMode, tt.wantStart, tt.wantLength)
			}
		})
	}
}

func TestLoader_PlainReader(t *testing.T) {
	t.Parallel()

	file := createWAVFile(8000, 1, 16, pcm16(1, 2, 3), smplLoop{smplLoopForward, 0, 2})

	// bytes.Buffer cannot seek, so the loader buffers it
	s, err := Loader{}.Load(bytes.NewBuffer(file))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Length() != 3 || s.Loop != sample.LoopForward {
		t.Errorf("Load() = %d frames, loop %v", s.Length(), s.Loop)
	}
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"not riff", []byte("This is definitely not a RIFF WAVE file"), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"24-bit", createWAVFile(8000, 1, 24, make([]byte, 12)), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Loader{}).Load(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func BenchmarkLoader_Load(b *testing.B) {
	file := createWAVFile(44100, 2, 16, pcm16(make([]int16, 44100*2)...))

	b.ReportAllocs()
	for b.Loop() {
		if _, err := (Loader{}).Load(bytes.NewReader(file)); err != nil {
			b.Fatal(err)
		}
	}
}
