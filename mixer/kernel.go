// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"strings"
)

// Interpolation selects the kernel used to estimate the signal between frames.
type Interpolation uint8

const (
	InterpolationNone Interpolation = iota
	InterpolationLinear
	InterpolationCubic
	InterpolationSinc8
	InterpolationSinc16
	numInterpolations
)

var interpolationNames = [numInterpolations]string{
	"none", "linear", "cubic", "sinc8", "sinc16",
}

func (q Interpolation) String() string {
	if q < numInterpolations {
		return interpolationNames[q]
	}
	return fmt.Sprintf("Interpolation(%d)", uint8(q))
}

// Taps returns how many frames the kernel reads per output frame.
func (q Interpolation) Taps() int {
	switch q {
	case InterpolationLinear:
		return 2
	case InterpolationCubic:
		return 4
	case InterpolationSinc8:
		return 8
	case InterpolationSinc16:
		return 16
	default:
		return 1
	}
}

// ParseInterpolation accepts the names printed by String.
func ParseInterpolation(s string) (Interpolation, error) {
	for i, name := range interpolationNames {
		if strings.EqualFold(s, name) {
			return Interpolation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidConfig, s)
}

// maxTaps is the widest kernel window.
const maxTaps = 16

// window holds the raw frames a kernel reads, oldest first. window[before]
// is the base frame at the integer part of the position.
type window [maxTaps]float32

// kernel is one interpolation strategy. Implementations are zero-size so the
// render routine can be instantiated per kernel.
type kernel interface {
	// radius is the number of taps before and after the base frame.
	radius() (before, after int)
	// coeffs picks the coefficient table for a render batch.
	coeffs(t *Tables, delta Fixed) []float32
	interpolate(w *window, frac uint32, c []float32) float32
}

type nearestKernel struct{}

func (nearestKernel) radius() (int, int) { return 0, 0 }

func (nearestKernel) coeffs(*Tables, Fixed) []float32 { return nil }

func (nearestKernel) interpolate(w *window, _ uint32, _ []float32) float32 { return w[0] }

type linearKernel struct{}

func (linearKernel) radius() (int, int) { return 0, 1 }

func (linearKernel) coeffs(*Tables, Fixed) []float32 { return nil }

func (linearKernel) interpolate(w *window, frac uint32, _ []float32) float32 {
	// top 24 bits keep the fraction exact in float32
	f := float32(frac>>8) * (1.0 / (1 << 24))
	return w[0] + (w[1]-w[0])*f
}

type cubicKernel struct{}

func (cubicKernel) radius() (int, int) { return 1, 2 }

func (cubicKernel) coeffs(t *Tables, _ Fixed) []float32 { return t.spline }

func (cubicKernel) interpolate(w *window, frac uint32, c []float32) float32 {
	i := int(frac>>(32-SplinePhasesBits)) * SplineTaps
	c = c[i : i+4 : i+4]
	return w[0]*c[0] + w[1]*c[1] + w[2]*c[2] + w[3]*c[3]
}

type sinc8Kernel struct{}

func (sinc8Kernel) radius() (int, int) { return 3, 4 }

func (sinc8Kernel) coeffs(t *Tables, delta Fixed) []float32 { return t.Sinc(8, delta) }

func (sinc8Kernel) interpolate(w *window, frac uint32, c []float32) float32 {
	i := int(frac>>(32-SincPhasesBits)) * 8
	c = c[i : i+8 : i+8]
	return w[0]*c[0] + w[1]*c[1] + w[2]*c[2] + w[3]*c[3] +
		w[4]*c[4] + w[5]*c[5] + w[6]*c[6] + w[7]*c[7]
}

type sinc16Kernel struct{}

func (sinc16Kernel) radius() (int, int) { return 7, 8 }

func (sinc16Kernel) coeffs(t *Tables, delta Fixed) []float32 { return t.Sinc(16, delta) }

func (sinc16Kernel) interpolate(w *window, frac uint32, c []float32) float32 {
	i := int(frac>>(32-SincPhasesBits)) * 16
	c = c[i : i+16 : i+16]

	var s float32
	for k := range 16 {
		s += w[k] * c[k]
	}
	return s
}
