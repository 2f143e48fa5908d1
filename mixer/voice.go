// SPDX-License-Identifier: EPL-2.0

package mixer

import "github.com/ik5/ftmix/sample"

// Voice is one sample being played back. It is owned by the goroutine that
// renders it; use Mixer to drive voices from other goroutines.
type Voice struct {
	smp     *sample.Sample
	tables  *Tables
	interp  Interpolation
	key     routineKey
	routine renderFunc

	// loop geometry copied from smp at Start
	length    int
	loopStart int
	loopEnd   int
	loopLen   int
	mirror    int

	pos       Fixed
	delta     Fixed
	direction int8
	hasLooped bool
	active    bool

	gains            gains
	targetL, targetR float32
	rampLeft         int
	// fading voices stop once their ramp reaches zero gain
	fading bool

	win window
}

// NewVoice returns an idle voice that will interpolate with q using t.
func NewVoice(t *Tables, q Interpolation) *Voice {
	v := &Voice{}
	v.configure(t, q)
	return v
}

func (v *Voice) configure(t *Tables, q Interpolation) {
	*v = Voice{tables: t, interp: q, direction: 1}
}

// Start (re)triggers the voice on s at frame start with the given delta. The
// gain state is kept, so a ramp set up before or after Start carries on.
func (v *Voice) Start(s *sample.Sample, start int, delta Fixed) {
	v.smp = s
	v.active = false
	v.fading = false
	if s == nil || !v.tables.Ready() || s.Validate() != nil {
		v.smp = nil
		return
	}

	v.length = s.Length()
	v.loopStart, v.loopLen = 0, 0
	if s.Looping() {
		v.loopStart, v.loopLen = s.LoopStart, s.LoopLength
	}
	v.loopEnd = v.loopStart + v.loopLen
	v.mirror = v.loopStart + v.loopEnd - 1

	v.pos = FixedFromInt(max(start, 0))
	v.delta = min(delta, MaxDelta)
	v.direction = 1
	v.hasLooped = false
	v.active = true

	v.resolve()
}

// SetDelta changes the playback increment (pitch) without moving the position.
func (v *Voice) SetDelta(d Fixed) {
	v.delta = min(d, MaxDelta)
	if v.active {
		v.resolve()
	}
}

// SetGain sets the left/right target gain. With rampFrames > 0 the gains move
// linearly to the target over that many output frames.
func (v *Voice) SetGain(l, r float32, rampFrames int) {
	v.rampTo(l, r, rampFrames)
	if v.active {
		v.resolve()
	}
}

// Stop deactivates the voice and drops its sample reference.
func (v *Voice) Stop() {
	v.active = false
	v.fading = false
	v.smp = nil
	v.routine = nil
}

// fadeOut turns v into a companion voice that ramps to silence and stops.
func (v *Voice) fadeOut(frames int) {
	if !v.active {
		return
	}
	if frames <= 0 {
		v.Stop()
		return
	}

	v.rampTo(0, 0, frames)
	if v.rampLeft == 0 {
		v.Stop()
		return
	}
	v.fading = true
	v.resolve()
}

func (v *Voice) Active() bool { return v.active }

func (v *Voice) Sample() *sample.Sample { return v.smp }

// Position is the reading-space position. While a bidirectional loop plays
// backwards it counts through the mirrored loop; see SamplePosition.
func (v *Voice) Position() Fixed { return v.pos }

// SamplePosition is the position in sample frames, accounting for direction.
func (v *Voice) SamplePosition() float64 {
	if v.direction < 0 {
		return float64(v.mirror) - v.pos.Float()
	}
	return v.pos.Float()
}

func (v *Voice) Delta() Fixed { return v.delta }

// Direction is +1 playing forward and -1 while a bidirectional loop runs backwards.
func (v *Voice) Direction() int { return int(v.direction) }

func (v *Voice) HasLooped() bool { return v.hasLooped }

// Gain returns the current left and right gain.
func (v *Voice) Gain() (l, r float32) { return v.gains.l, v.gains.r }

// Ramping reports whether a volume ramp is in progress.
func (v *Voice) Ramping() bool { return v.rampLeft > 0 }

// Interpolation returns the kernel the voice renders with.
func (v *Voice) Interpolation() Interpolation { return v.interp }

// resolve picks the render routine for the voice's current attributes.
func (v *Voice) resolve() {
	if v.smp == nil {
		v.routine = nil
		return
	}

	ramp := v.rampLeft > 0
	center := v.gains.l == v.gains.r
	if ramp {
		center = center && v.targetL == v.targetR
	}

	v.key = routineKey{
		depth:  v.smp.Depth,
		loop:   v.smp.Loop,
		interp: v.interp,
		ramp:   ramp,
		center: center,
	}
	v.routine = lookupRoutine(v.key)
}
