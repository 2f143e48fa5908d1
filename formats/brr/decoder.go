// SPDX-License-Identifier: EPL-2.0

package brr

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/ftmix/sample"
)

const (
	// BlockSize is the encoded size of one block: a header byte and eight
	// bytes of nibbles.
	BlockSize = 9
	// BlockFrames is the number of frames one block decodes to.
	BlockFrames = 16

	// DefaultRate is the SNES DSP output rate, used when Loader.Rate is 0.
	DefaultRate = 32000

	loopHeaderSize = 2
	maxShift       = 12
)

// block header bits
const (
	flagEnd  = 0x01
	flagLoop = 0x02
)

// filters holds the two prediction weights of each filter in 16.16 fixed
// point, applied to the previous and the one-before-previous output.
var filters = [4][2]int{
	{0, 0},
	{15 << 16 / 16, 0},
	{61 << 16 / 32, 15 << 16 / 16},
	{115 << 16 / 64, 13 << 16 / 16},
}

// Loader reads raw BRR files. Files with a 2-byte loop header loop forward
// from the offset it names; headerless files never loop.
type Loader struct {
	// Rate assigned to decoded samples. BRR stores none.
	Rate int
}

var _ sample.Loader = Loader{}

func (l Loader) Load(r io.Reader) (*sample.Sample, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading brr data: %w", err)
	}

	rate := l.Rate
	if rate <= 0 {
		rate = DefaultRate
	}

	return Decode(data, rate)
}

// Decode turns BRR data into a 16-bit sample. Decoding stops after the first
// block with the end flag. When the data starts with a loop header, the loop
// runs from the header offset to the end of the sample if that block also
// has the loop flag, or if no block has the end flag.
func Decode(data []byte, rate int) (*sample.Sample, error) {
	loopOffset := -1

	switch len(data) % BlockSize {
	case 0:
	case loopHeaderSize:
		loopOffset = int(binary.LittleEndian.Uint16(data))
		data = data[loopHeaderSize:]
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, len(data))
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no blocks", ErrInvalidSize)
	}

	var d decoder
	pcm := make([]int16, 0, len(data)/BlockSize*BlockFrames)
	loops := true

	for off := 0; off < len(data); off += BlockSize {
		blk := data[off : off+BlockSize]
		pcm = d.block(pcm, blk)

		if blk[0]&flagEnd != 0 {
			loops = blk[0]&flagLoop != 0
			break
		}
	}

	s := sample.New16("", rate, pcm)
	if loopOffset >= 0 && loops {
		// the header counts encoded bytes
		start := (loopOffset*BlockFrames + BlockSize/2) / BlockSize
		s.SetLoop(sample.LoopForward, start, len(pcm)-start)
	}
	s.Clamp()

	return s, nil
}

// decoder carries the two previous outputs across blocks.
type decoder struct {
	p1, p2 int
}

func (d *decoder) block(dst []int16, blk []byte) []int16 {
	h := blk[0]
	shift := min(h>>4, maxShift)
	w := filters[(h>>2)&3]

	for _, b := range blk[1:] {
		// high nibble first, both sign-extended
		dst = append(dst, d.next(int(int8(b))>>4, shift, w))
		dst = append(dst, d.next(int(int8(b<<4))>>4, shift, w))
	}
	return dst
}

func (d *decoder) next(nibble int, shift byte, w [2]int) int16 {
	s := nibble<<shift + weigh(d.p1, w[0]) - weigh(d.p2, w[1])
	s = max(min(s, 32767), -32768)

	d.p2, d.p1 = d.p1, s
	return int16(s)
}

// weigh multiplies v by a 16.16 weight, rounding half up.
func weigh(v, w int) int {
	return (v*w + 0x8000) >> 16
}
