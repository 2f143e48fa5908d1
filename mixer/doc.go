// SPDX-License-Identifier: EPL-2.0

// Package mixer is a per-voice resampling mixer in the style of a tracker
// replayer.
//
// Each Voice plays one sample.Sample at its own pitch, volume and pan,
// honoring the sample's loop mode, and renders additively into an interleaved
// stereo Buffer. Positions are 32.32 fixed point, so a voice keeps its phase
// for as long as a song lasts.
//
// # Tables
//
// Cubic and windowed-sinc interpolation read precomputed weights. Build them
// once at startup and share them between mixers:
//
//	tables, err := mixer.BuildTables()
//	if err != nil {
//	    return err
//	}
//	defer tables.Free()
//
// # Rendering a voice directly
//
//	v := mixer.NewVoice(tables, mixer.InterpolationCubic)
//	v.SetGain(1, 1, 0)
//	v.Start(smp, 0, mixer.Delta(smp.Rate, 1.0, 48000))
//
//	out := mixer.NewBuffer(1024)
//	mixer.Render(v, out, 0, 1024)
//
// # Mixer
//
// Mixer manages a set of voices for a real-time audio callback. It is an
// audio.Source producing interleaved float32 stereo:
//
//	m, err := mixer.New(mixer.DefaultConfig(), tables)
//	if err != nil {
//	    return err
//	}
//
//	m.Trigger(0, smp, 0, 1.0)
//	m.SetVolume(0, 0.8, 0.5, true)
//
//	buf := make([]float32, m.BufSize())
//	n, err := m.ReadSamples(buf)
//
// Control calls may come from any goroutine. They are staged per channel and
// picked up at the start of the next buffer, so a trigger never mixes a new
// sample with a stale position. The audio goroutine never blocks on a lock,
// never allocates and never logs.
//
// # Interpolation
//
// The kernel is a mixer-wide setting:
//   - InterpolationNone: nearest (previous) sample
//   - InterpolationLinear: 2 taps
//   - InterpolationCubic: 4-tap Catmull-Rom spline (default)
//   - InterpolationSinc8, InterpolationSinc16: Kaiser-windowed sinc, with
//     narrower prefilters selected automatically when pitching up
package mixer
