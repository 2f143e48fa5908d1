// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"sync"
	"testing"

	"github.com/ik5/ftmix/sample"
)

var sharedTables = sync.OnceValues(BuildTables)

// testTables returns tables shared by every test in the package. Tests must
// not Free them.
func testTables(tb testing.TB) *Tables {
	tb.Helper()

	t, err := sharedTables()
	if err != nil {
		tb.Fatalf("BuildTables() error = %v", err)
	}
	return t
}

// newTestVoice returns a voice at unity gain playing s with delta d.
func newTestVoice(tb testing.TB, q Interpolation, s *sample.Sample, d Fixed) *Voice {
	tb.Helper()

	v := NewVoice(testTables(tb), q)
	v.SetGain(1, 1, 0)
	v.Start(s, 0, d)
	if !v.Active() {
		tb.Fatalf("voice did not start on %+v", s)
	}
	return v
}

// renderLeft renders frames frames of v into a fresh buffer and returns the
// left channel.
func renderLeft(v *Voice, frames int) []float32 {
	out := NewBuffer(frames)
	Render(v, out, 0, frames)

	left := make([]float32, frames)
	for i := range frames {
		left[i], _ = out.Frame(i)
	}
	return left
}

func ramp16(n int) []int16 {
	data := make([]int16, n)
	for i := range data {
		data[i] = int16((i + 1) * 1000)
	}
	return data
}

func dc16(n int, v int16) []int16 {
	data := make([]int16, n)
	for i := range data {
		data[i] = v
	}
	return data
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
