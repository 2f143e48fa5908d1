// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Ramp16 returns n frames rising by step from step.
func Ramp16(n int, step int16) []int16 {
	data := make([]int16, n)
	for i := range data {
		data[i] = int16(i+1) * step
	}
	return data
}

// Sine16 returns n frames of a sine with the given period in frames and peak
// amplitude.
func Sine16(n int, period float64, amplitude int16) []int16 {
	data := make([]int16, n)
	for i := range data {
		data[i] = int16(math.Round(float64(amplitude) * math.Sin(2*math.Pi*float64(i)/period)))
	}
	return data
}
