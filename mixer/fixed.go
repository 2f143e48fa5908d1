// SPDX-License-Identifier: EPL-2.0

package mixer

import "math"

// FracBits is the number of fractional bits in a Fixed value. It is fixed
// regardless of the host word size: at 32 bits the rounding error of a delta
// is below 2^-32 frame per output frame, so a loop played for hours drifts by
// well under one frame.
const FracBits = 32

const fracMask = 1<<FracBits - 1

// Fixed is an unsigned 32.32 fixed-point frame position or increment.
type Fixed uint64

// One is a Fixed of exactly one frame.
const One Fixed = 1 << FracBits

// MaxDelta caps the per-frame increment. Higher pitches are clamped.
const MaxDelta Fixed = 1 << (FracBits + 15)

// FixedFromInt returns the whole frame i. Negative values give 0.
func FixedFromInt(i int) Fixed {
	if i <= 0 {
		return 0
	}
	return Fixed(uint64(i) << FracBits)
}

// FixedFromFloat rounds f to the nearest Fixed. Negative values and NaN give
// 0, values at or above 2^31 saturate to 2^31.
func FixedFromFloat(f float64) Fixed {
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	if f >= 1<<31 {
		return Fixed(1<<31) << FracBits
	}
	return Fixed(math.Round(f * (1 << FracBits)))
}

// Int returns the whole frame index.
func (f Fixed) Int() int { return int(f >> FracBits) }

// Frac returns the fractional part as a 0.32 fraction.
func (f Fixed) Frac() uint32 { return uint32(f & fracMask) }

// Float returns f as a float64 frame count.
func (f Fixed) Float() float64 {
	return float64(f>>FracBits) + float64(f&fracMask)*(1.0/(1<<FracBits))
}

// Delta returns the increment that plays a sample recorded at srcRate with the
// given pitch ratio into an output running at outRate.
func Delta(srcRate int, pitch float64, outRate int) Fixed {
	if srcRate <= 0 || outRate <= 0 || pitch <= 0 {
		return 0
	}

	d := FixedFromFloat(float64(srcRate) * pitch / float64(outRate))
	return min(d, MaxDelta)
}

// framesUntil returns how many output frames can be rendered from pos before
// the position reaches limit. pos must be below limit.
func framesUntil(pos, limit, delta Fixed) int {
	if delta == 0 {
		return math.MaxInt32
	}

	n := (uint64(limit-pos) + uint64(delta) - 1) / uint64(delta)
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
