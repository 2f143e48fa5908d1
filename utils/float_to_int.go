// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM, clamping values
// outside the range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Float32sToInt16 converts src into dst, which must be at least as long, and
// returns the number of values written.
func Float32sToInt16(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i, x := range src[:n] {
		dst[i] = Float32ToInt16(x)
	}
	return n
}

// Uint8ToInt8 converts offset-binary 8-bit PCM (WAV style, silence at 128)
// to signed PCM.
func Uint8ToInt8(b byte) int8 {
	return int8(int(b) - 128)
}
