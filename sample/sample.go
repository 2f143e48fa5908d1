// SPDX-License-Identifier: EPL-2.0

package sample

import "fmt"

// MaxLength is the longest sample, in frames, the mixer can address.
const MaxLength = 1 << 30

// BitDepth of the raw PCM held by a Sample.
type BitDepth uint8

const (
	Depth8  BitDepth = 8
	Depth16 BitDepth = 16
)

// LoopMode tells the mixer what to do when playback reaches the loop end.
type LoopMode uint8

const (
	LoopNone LoopMode = iota
	LoopForward
	LoopBidi
)

func (m LoopMode) String() string {
	switch m {
	case LoopNone:
		return "none"
	case LoopForward:
		return "forward"
	case LoopBidi:
		return "bidi"
	default:
		return fmt.Sprintf("LoopMode(%d)", uint8(m))
	}
}

// Sample is a block of signed linear PCM with optional loop points.
//
// Exactly one of Data8 and Data16 is used, selected by Depth. A Sample is
// shared by every voice playing it and must not be modified or released while
// a mixer may still read it.
type Sample struct {
	Name string
	// Rate is the native playback rate in Hz. A voice playing the sample at
	// pitch 1.0 advances Rate frames per second of output.
	Rate  int
	Depth BitDepth

	Data8  []int8
	Data16 []int16

	Loop       LoopMode
	LoopStart  int
	LoopLength int
}

// New8 wraps 8-bit PCM without loop points.
func New8(name string, rate int, data []int8) *Sample {
	return &Sample{Name: name, Rate: rate, Depth: Depth8, Data8: data}
}

// New16 wraps 16-bit PCM without loop points.
func New16(name string, rate int, data []int16) *Sample {
	return &Sample{Name: name, Rate: rate, Depth: Depth16, Data16: data}
}

// Length in frames.
func (s *Sample) Length() int {
	if s.Depth == Depth8 {
		return len(s.Data8)
	}
	return len(s.Data16)
}

// LoopEnd is the first frame after the loop region.
func (s *Sample) LoopEnd() int { return s.LoopStart + s.LoopLength }

func (s *Sample) Looping() bool { return s.Loop != LoopNone }

// SetLoop sets the loop mode and region. It does not validate; call Clamp or
// Validate afterwards.
func (s *Sample) SetLoop(mode LoopMode, start, length int) {
	s.Loop = mode
	s.LoopStart = start
	s.LoopLength = length
}

// Value returns frame i normalized to [-1, 1).
func (s *Sample) Value(i int) float32 {
	if s.Depth == Depth8 {
		return float32(s.Data8[i]) * (1.0 / 128.0)
	}
	return float32(s.Data16[i]) * (1.0 / 32768.0)
}

// Validate reports whether the sample satisfies the mixer's preconditions.
func (s *Sample) Validate() error {
	if s.Depth != Depth8 && s.Depth != Depth16 {
		return fmt.Errorf("%w: got %d", ErrBitDepth, s.Depth)
	}

	n := s.Length()
	if n == 0 {
		return ErrEmptySample
	}
	if n > MaxLength {
		return fmt.Errorf("%w: %d frames", ErrTooLong, n)
	}

	switch s.Loop {
	case LoopNone:
		return nil
	case LoopForward, LoopBidi:
		if s.LoopStart < 0 || s.LoopLength < 1 || s.LoopEnd() > n {
			return fmt.Errorf("%w: start %d length %d of %d frames",
				ErrLoopBounds, s.LoopStart, s.LoopLength, n)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrLoopBounds, s.Loop)
	}
}

// Clamp forces the loop region inside the sample. A loop that ends up empty
// disables looping. Loaders call Clamp before handing a sample out.
func (s *Sample) Clamp() {
	n := s.Length()

	if s.Loop != LoopForward && s.Loop != LoopBidi {
		s.Loop = LoopNone
	}

	if s.Loop == LoopNone || n == 0 {
		s.Loop = LoopNone
		s.LoopStart = 0
		s.LoopLength = 0
		return
	}

	s.LoopStart = max(s.LoopStart, 0)
	if s.LoopStart >= n {
		s.LoopStart = n - 1
	}
	s.LoopLength = min(s.LoopLength, n-s.LoopStart)

	if s.LoopLength < 1 {
		s.Loop = LoopNone
		s.LoopStart = 0
		s.LoopLength = 0
	}
}
