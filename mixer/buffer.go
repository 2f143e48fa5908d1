// SPDX-License-Identifier: EPL-2.0

package mixer

// Buffer is the interleaved stereo accumulator voices render into:
// L0 R0 L1 R1 ... Rendering adds to what is already there.
type Buffer []float32

// NewBuffer allocates a zeroed buffer of frames stereo frames.
func NewBuffer(frames int) Buffer {
	return make(Buffer, frames*2)
}

func (b Buffer) Frames() int { return len(b) / 2 }

// Frame returns the left and right values of frame i.
func (b Buffer) Frame(i int) (l, r float32) {
	return b[2*i], b[2*i+1]
}

// Clear zeroes frames [offset, offset+frames).
func (b Buffer) Clear(offset, frames int) {
	clear(b[offset*2 : (offset+frames)*2])
}

// span returns the part of b covering frames [offset, offset+frames).
func (b Buffer) span(offset, frames int) []float32 {
	return b[offset*2 : (offset+frames)*2]
}
