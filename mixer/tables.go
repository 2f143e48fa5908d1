// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"math"

	"github.com/ik5/ftmix/utils"
)

const (
	SplinePhasesBits = 13
	SplinePhases     = 1 << SplinePhasesBits
	SplineTaps       = 4

	SincPhasesBits = 13
	SincPhases     = 1 << SincPhasesBits
)

// Sinc variants. The downsampling variants low-pass harder and are picked
// when the voice delta says the sample is being played back faster.
const (
	sincNominal = iota
	sincDown1
	sincDown2
	numSincVariants
)

// Delta thresholds for the downsampling variants.
var (
	sincDown1Limit = FixedFromFloat(1.1875)
	sincDown2Limit = FixedFromFloat(1.5)
)

type sincShape struct {
	cutoff float64 // relative to the source Nyquist rate
	beta   float64 // Kaiser window shape
}

type tableSpec struct {
	splinePhases int
	sincPhases   int
	shapes       [numSincVariants]sincShape
}

var defaultTableSpec = tableSpec{
	splinePhases: SplinePhases,
	sincPhases:   SincPhases,
	shapes: [numSincVariants]sincShape{
		{cutoff: 1.0, beta: 9.6377},
		{cutoff: 0.75, beta: 8.5},
		{cutoff: 0.5, beta: 7.5},
	},
}

// Tables holds the precomputed interpolation kernels. It is built once with
// BuildTables, shared read-only by every mixer and voice, and released with
// Free after the last render.
type Tables struct {
	spline []float32
	sinc8  [numSincVariants][]float32
	sinc16 [numSincVariants][]float32
}

// BuildTables computes the cubic spline and windowed-sinc tables. A failure is
// a startup error: no mixer can be created without tables.
func BuildTables() (*Tables, error) {
	return newTables(defaultTableSpec)
}

func newTables(spec tableSpec) (*Tables, error) {
	if spec.splinePhases != SplinePhases || spec.sincPhases != SincPhases {
		return nil, fmt.Errorf("%w: phase counts %d/%d", ErrTableBuild, spec.splinePhases, spec.sincPhases)
	}

	t := &Tables{
		spline: splineTable(spec.splinePhases),
	}

	for i, shape := range spec.shapes {
		if !(shape.cutoff > 0 && shape.cutoff <= 1) || !(shape.beta >= 0) {
			return nil, fmt.Errorf("%w: sinc variant %d cutoff %v beta %v", ErrTableBuild, i, shape.cutoff, shape.beta)
		}
		t.sinc8[i] = sincTable(8, spec.sincPhases, shape)
		t.sinc16[i] = sincTable(16, spec.sincPhases, shape)
	}

	if err := t.check(); err != nil {
		return nil, err
	}

	return t, nil
}

// check rejects tables holding NaN or infinite weights.
func (t *Tables) check() error {
	all := [][]float32{t.spline}
	all = append(all, t.sinc8[:]...)
	all = append(all, t.sinc16[:]...)

	for _, tab := range all {
		for i, w := range tab {
			if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) {
				return fmt.Errorf("%w: weight %d is %v", ErrTableBuild, i, w)
			}
		}
	}

	return nil
}

// Ready reports whether the tables are built and not yet freed.
func (t *Tables) Ready() bool {
	return t != nil && t.spline != nil
}

// Free drops the table memory. Every mixer using t must be closed first.
func (t *Tables) Free() {
	if t == nil {
		return
	}
	t.spline = nil
	for i := range numSincVariants {
		t.sinc8[i] = nil
		t.sinc16[i] = nil
	}
}

// Spline returns the four weights for phase.
func (t *Tables) Spline(phase int) []float32 {
	i := phase * SplineTaps
	return t.spline[i : i+SplineTaps : i+SplineTaps]
}

// Sinc returns the whole table for a kernel width (8 or 16) and the variant
// matching delta.
func (t *Tables) Sinc(width int, delta Fixed) []float32 {
	variant := sincNominal
	switch {
	case delta > sincDown2Limit:
		variant = sincDown2
	case delta > sincDown1Limit:
		variant = sincDown1
	}

	if width == 16 {
		return t.sinc16[variant]
	}
	return t.sinc8[variant]
}

func splineTable(phases int) []float32 {
	tab := make([]float32, phases*SplineTaps)

	for i := range phases {
		w := utils.CubicWeights(float64(i) / float64(phases))
		for j := range SplineTaps {
			tab[i*SplineTaps+j] = float32(w[j])
		}
	}

	return tab
}

// sincTable lays out width taps per phase. Tap k of phase p weighs the frame
// at offset k-(width/2-1) from the base frame, evaluated at distance
// k-(width/2-1)-p/phases. Each phase is normalized to unity gain.
func sincTable(width, phases int, shape sincShape) []float32 {
	tab := make([]float32, width*phases)
	half := float64(width / 2)
	center := width/2 - 1
	w := make([]float64, width)

	for p := range phases {
		x := float64(p) / float64(phases)

		sum := 0.0
		for k := range width {
			d := float64(k-center) - x
			w[k] = shape.cutoff * sinc(shape.cutoff*d) * kaiser(d, half, shape.beta)
			sum += w[k]
		}

		for k := range width {
			tab[p*width+k] = float32(w[k] / sum)
		}
	}

	return tab
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

// kaiser evaluates the Kaiser window of half-width half at distance d.
func kaiser(d, half, beta float64) float64 {
	r := d / half
	if r <= -1 || r >= 1 {
		return 0
	}
	return besselI0(beta*math.Sqrt(1-r*r)) / besselI0(beta)
}

// besselI0 is the zeroth-order modified Bessel function of the first kind.
func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	half := x / 2

	for k := 1; k < 64; k++ {
		term *= half / float64(k)
		t2 := term * term
		sum += t2
		if t2 < sum*1e-17 {
			break
		}
	}

	return sum
}
