// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

const (
	DefaultSampleRate    = 48000
	DefaultChannels      = 32
	DefaultRampDuration  = 5 * time.Millisecond
	DefaultInterpolation = InterpolationCubic

	MaxChannels = 256
	// MaxRampDuration keeps a ramp shorter than any sensible tick.
	MaxRampDuration = 100 * time.Millisecond
)

// Config describes the mixer output and the attributes shared by all voices.
type Config struct {
	// SampleRate of the output in Hz.
	SampleRate int
	// Channels is the number of independently triggerable voices.
	Channels int

	Interpolation Interpolation

	// VolumeRamp enables linear gain ramps on volume, pan, trigger and stop.
	VolumeRamp   bool
	RampDuration time.Duration

	// Logger receives lifecycle events. Nothing is logged while rendering.
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		SampleRate:    DefaultSampleRate,
		Channels:      DefaultChannels,
		Interpolation: DefaultInterpolation,
		VolumeRamp:    true,
		RampDuration:  DefaultRampDuration,
	}
}

func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.Channels <= 0 || c.Channels > MaxChannels {
		return fmt.Errorf("%w: %d channels, want 1..%d", ErrInvalidConfig, c.Channels, MaxChannels)
	}
	if c.Interpolation >= numInterpolations {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Interpolation)
	}
	if c.VolumeRamp && (c.RampDuration <= 0 || c.RampDuration > MaxRampDuration) {
		return fmt.Errorf("%w: ramp duration %v", ErrInvalidConfig, c.RampDuration)
	}

	return nil
}

// RampFrames is the length of a volume ramp in output frames, or 0 when
// ramping is off.
func (c Config) RampFrames() int {
	if !c.VolumeRamp {
		return 0
	}
	return max(1, int(math.Round(float64(c.SampleRate)*c.RampDuration.Seconds())))
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
