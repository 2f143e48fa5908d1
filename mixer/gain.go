// SPDX-License-Identifier: EPL-2.0

package mixer

// gains is the running left/right gain of a voice and its per-frame ramp step.
type gains struct {
	l, r   float32
	dl, dr float32
}

// gainer writes one interpolated value into the interleaved accumulator and
// returns the gains for the next frame.
type gainer interface {
	mix(out []float32, i int, s float32, g gains) gains
}

type stereoGain struct{}

func (stereoGain) mix(out []float32, i int, s float32, g gains) gains {
	out[i] += s * g.l
	out[i+1] += s * g.r
	return g
}

// centerGain is used when both gains are equal: one multiply feeds both channels.
type centerGain struct{}

func (centerGain) mix(out []float32, i int, s float32, g gains) gains {
	v := s * g.l
	out[i] += v
	out[i+1] += v
	return g
}

type stereoRampGain struct{}

func (stereoRampGain) mix(out []float32, i int, s float32, g gains) gains {
	out[i] += s * g.l
	out[i+1] += s * g.r
	g.l += g.dl
	g.r += g.dr
	return g
}

type centerRampGain struct{}

func (centerRampGain) mix(out []float32, i int, s float32, g gains) gains {
	v := s * g.l
	out[i] += v
	out[i+1] += v
	g.l += g.dl
	g.r += g.dr
	return g
}

// rampTo starts a linear ramp from the current gains to (l, r) over frames
// output frames. frames <= 0 jumps straight to the target.
func (v *Voice) rampTo(l, r float32, frames int) {
	v.targetL, v.targetR = l, r

	if frames <= 0 || (v.gains.l == l && v.gains.r == r) {
		v.pinGain()
		return
	}

	inv := 1 / float32(frames)
	v.gains.dl = (l - v.gains.l) * inv
	v.gains.dr = (r - v.gains.r) * inv
	v.rampLeft = frames
}

// pinGain ends any ramp with the gains exactly on target.
func (v *Voice) pinGain() {
	v.gains = gains{l: v.targetL, r: v.targetR}
	v.rampLeft = 0
}
