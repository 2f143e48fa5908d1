// SPDX-License-Identifier: EPL-2.0

package mixer

import "github.com/ik5/ftmix/sample"

// renderFunc renders frames frames of v additively into out, which holds
// exactly frames interleaved stereo frames.
type renderFunc func(v *Voice, out []float32, frames int)

// Render mixes frames output frames of v into out starting at frame offset.
// out must hold at least offset+frames frames. The voice position advances by
// exactly frames output frames; a non-looping voice that runs out stops and
// contributes silence for the rest of the span.
func Render(v *Voice, out Buffer, offset, frames int) {
	if frames <= 0 || !v.active || v.routine == nil {
		return
	}

	v.routine(v, out.span(offset, frames), frames)

	if !v.active {
		return
	}
	if v.fading && v.rampLeft == 0 {
		v.Stop()
		return
	}
	// a ramp that finished during this call drops to the plain routine
	if v.key.ramp && v.rampLeft == 0 {
		v.resolve()
	}
}

type pcm interface{ ~int8 | ~int16 }

// depth is the bit-depth strategy: where the frames live and their full scale.
type depth[T pcm] interface {
	frames(s *sample.Sample) []T
	scale() float32
}

type depth8 struct{}

func (depth8) frames(s *sample.Sample) []int8 { return s.Data8 }

func (depth8) scale() float32 { return 1.0 / 128.0 }

type depth16 struct{}

func (depth16) frames(s *sample.Sample) []int16 { return s.Data16 }

func (depth16) scale() float32 { return 1.0 / 32768.0 }

// render is the single mixing loop every routine is instantiated from. Each
// pass renders a batch that ends at the next loop boundary, the end of a
// volume ramp or the end of the request, whichever comes first.
func render[T pcm, D depth[T], L looper, K kernel, G gainer](v *Voice, out []float32, frames int) {
	var (
		d  D
		lp L
		k  K
		gn G
	)

	// taps are gathered in the voice, never in a local
	w := &v.win
	data := d.frames(v.smp)
	scale := d.scale()
	before, after := k.radius()
	width := before + after + 1
	c := k.coeffs(v.tables, v.delta)

	g := v.gains
	pos := v.pos
	delta := v.delta
	i := 0

	for frames > 0 {
		limit := lp.end(v)
		if pos >= limit {
			v.pos = pos
			if !lp.cross(v) {
				break
			}
			pos = v.pos
			continue
		}

		n := min(framesUntil(pos, limit, delta), frames)
		ramping := v.rampLeft > 0
		if ramping {
			n = min(n, v.rampLeft)
		}

		lo, hi := lp.span(v)
		backward := v.direction < 0
		mirror := v.mirror

		for range n {
			base := int(pos >> FracBits)
			first := base - before

			switch {
			case first >= lo && base+after < hi && backward:
				src := mirror - first
				for t := range width {
					w[t] = float32(data[src-t])
				}
			case first >= lo && base+after < hi:
				for t := range width {
					w[t] = float32(data[first+t])
				}
			default:
				for t := range width {
					if j := lp.tap(v, first+t); j >= 0 {
						w[t] = float32(data[j])
					} else {
						w[t] = 0
					}
				}
			}

			g = gn.mix(out, i, k.interpolate(w, uint32(pos), c)*scale, g)
			i += 2
			pos += delta
		}

		frames -= n
		if ramping {
			v.rampLeft -= n
			if v.rampLeft == 0 {
				g = gains{l: v.targetL, r: v.targetR}
			}
		}
	}

	v.pos = pos
	v.gains = g
}

// routineKey is the tuple of static voice attributes that selects a routine.
type routineKey struct {
	depth  sample.BitDepth
	loop   sample.LoopMode
	interp Interpolation
	ramp   bool
	center bool
}

const numLoopModes = 3

func (k routineKey) index() int {
	i := 0
	if k.depth == sample.Depth16 {
		i = 1
	}
	i = i*numLoopModes + int(k.loop)
	i = i*int(numInterpolations) + int(k.interp)
	i = i*2 + b2i(k.ramp)
	i = i*2 + b2i(k.center)
	return i
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

const numRoutines = 2 * numLoopModes * int(numInterpolations) * 2 * 2

// routines maps every routineKey index to its instantiated render loop.
var routines [numRoutines]renderFunc

func init() {
	for _, dp := range []sample.BitDepth{sample.Depth8, sample.Depth16} {
		for lm := range sample.LoopMode(numLoopModes) {
			for q := range numInterpolations {
				for _, ramp := range []bool{false, true} {
					for _, center := range []bool{false, true} {
						k := routineKey{depth: dp, loop: lm, interp: q, ramp: ramp, center: center}
						routines[k.index()] = pickDepth(k)
					}
				}
			}
		}
	}
}

func lookupRoutine(k routineKey) renderFunc {
	if k.loop >= numLoopModes || k.interp >= numInterpolations {
		return nil
	}
	return routines[k.index()]
}

func pickDepth(k routineKey) renderFunc {
	if k.depth == sample.Depth8 {
		return pickLoop[int8, depth8](k)
	}
	return pickLoop[int16, depth16](k)
}

func pickLoop[T pcm, D depth[T]](k routineKey) renderFunc {
	switch k.loop {
	case sample.LoopForward:
		return pickKernel[T, D, forwardLoop](k)
	case sample.LoopBidi:
		return pickKernel[T, D, bidiLoop](k)
	default:
		return pickKernel[T, D, noLoop](k)
	}
}

func pickKernel[T pcm, D depth[T], L looper](k routineKey) renderFunc {
	switch k.interp {
	case InterpolationLinear:
		return pickGain[T, D, L, linearKernel](k)
	case InterpolationCubic:
		return pickGain[T, D, L, cubicKernel](k)
	case InterpolationSinc8:
		return pickGain[T, D, L, sinc8Kernel](k)
	case InterpolationSinc16:
		return pickGain[T, D, L, sinc16Kernel](k)
	default:
		return pickGain[T, D, L, nearestKernel](k)
	}
}

func pickGain[T pcm, D depth[T], L looper, K kernel](k routineKey) renderFunc {
	switch {
	case k.ramp && k.center:
		return render[T, D, L, K, centerRampGain]
	case k.ramp:
		return render[T, D, L, K, stereoRampGain]
	case k.center:
		return render[T, D, L, K, centerGain]
	default:
		return render[T, D, L, K, stereoGain]
	}
}
