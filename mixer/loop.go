// SPDX-License-Identifier: EPL-2.0

package mixer

// A voice reads its sample through a "reading space". Playing forward the
// reading space is the sample itself. A bidirectional loop travelling
// backwards reads the loop region mirrored, frame j mapping to sample frame
// loopStart+loopEnd-1-j, so the position only ever grows and a reflection is
// the same wrap as a forward loop plus a direction flip.

// looper is one loop-boundary policy.
type looper interface {
	// end is the reading-space position of the next boundary.
	end(v *Voice) Fixed
	// cross resolves a position at or past end. It returns false when the
	// voice has stopped.
	cross(v *Voice) bool
	// span is the reading-space frame range [lo, hi) that can be read
	// straight from the sample without boundary handling.
	span(v *Voice) (lo, hi int)
	// tap maps a reading-space frame outside span to a sample frame, or -1
	// for silence.
	tap(v *Voice, j int) int
}

type noLoop struct{}

func (noLoop) end(v *Voice) Fixed { return FixedFromInt(v.length) }

func (noLoop) cross(v *Voice) bool {
	v.active = false
	return false
}

func (noLoop) span(v *Voice) (int, int) { return 0, v.length }

func (noLoop) tap(v *Voice, j int) int {
	switch {
	case j < 0:
		return 0
	case j >= v.length:
		return -1
	default:
		return j
	}
}

type forwardLoop struct{}

func (forwardLoop) end(v *Voice) Fixed { return FixedFromInt(v.loopEnd) }

func (forwardLoop) cross(v *Voice) bool {
	over := v.pos - FixedFromInt(v.loopEnd)
	size := FixedFromInt(v.loopLen)
	if over >= size {
		over %= size
	}

	v.pos = FixedFromInt(v.loopStart) + over
	v.hasLooped = true

	return true
}

func (forwardLoop) span(v *Voice) (int, int) {
	if v.hasLooped {
		return v.loopStart, v.loopEnd
	}
	return 0, v.loopEnd
}

func (forwardLoop) tap(v *Voice, j int) int {
	if j >= v.loopEnd || (j < v.loopStart && v.hasLooped) {
		return v.loopStart + floorMod(j-v.loopStart, v.loopLen)
	}
	// before the first wrap the frames left of the loop are the real
	// pre-loop data
	return max(j, 0)
}

type bidiLoop struct{}

func (bidiLoop) end(v *Voice) Fixed { return FixedFromInt(v.loopEnd) }

func (bidiLoop) cross(v *Voice) bool {
	over := v.pos - FixedFromInt(v.loopEnd)
	size := FixedFromInt(v.loopLen)

	flips := 1 + over/size
	over %= size

	v.pos = FixedFromInt(v.loopStart) + over
	if flips&1 == 1 {
		v.direction = -v.direction
	}
	v.hasLooped = true

	return true
}

func (bidiLoop) span(v *Voice) (int, int) {
	if v.hasLooped {
		return v.loopStart, v.loopEnd
	}
	return 0, v.loopEnd
}

func (bidiLoop) tap(v *Voice, j int) int {
	r := max(j, 0)

	if j >= v.loopEnd || (j < v.loopStart && v.hasLooped) {
		// the loop read back and forth has period 2*loopLen
		t := floorMod(j-v.loopStart, 2*v.loopLen)
		if t >= v.loopLen {
			t = 2*v.loopLen - 1 - t
		}
		r = v.loopStart + t
	}

	if v.direction < 0 {
		return v.mirror - r
	}
	return r
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
