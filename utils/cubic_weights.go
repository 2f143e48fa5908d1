// SPDX-License-Identifier: EPL-2.0

package utils

// CubicWeights returns the four Catmull-Rom weights for a phase x in [0, 1).
// The weights apply to the taps at t-1, t, t+1 and t+2 and always sum to 1.
func CubicWeights(x float64) [4]float64 {
	x2 := x * x
	x3 := x2 * x

	return [4]float64{
		-0.5*x3 + x2 - 0.5*x,
		1.5*x3 - 2.5*x2 + 1.0,
		-1.5*x3 + 2.0*x2 + 0.5*x,
		0.5*x3 - 0.5*x2,
	}
}
