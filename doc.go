// SPDX-License-Identifier: EPL-2.0

// Package ftmix is a real-time sample mixer in the style of FastTracker II:
// per-voice resampling with selectable interpolation, forward and
// ping-pong loops, click-free volume ramps and a lock-free control path.
//
// The work happens in the subpackages:
//   - mixer: coefficient tables, voices, the render loop and the Mixer
//   - sample: the Sample type, loop modes and the loader registry
//   - audio: the streaming Source interface and helpers around it
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis, formats/brr:
//     loaders turning files into samples
//
// This package ties them together for the common cases.
//
// # Quick Start
//
//	m, err := ftmix.NewMixer(mixer.DefaultConfig())
//	if err != nil {
//	    // Handle error
//	}
//	defer m.Close()
//
//	s, err := ftmix.Load("kick.wav")
//	if err != nil {
//	    // Handle error
//	}
//
//	m.Trigger(0, s, 0, 1.0)
//
//	// one second of interleaved 16-bit stereo
//	pcm, rate, err := ftmix.RenderToStereo16(m, m.SampleRate(), 4096)
//
// NewMixer shares one set of coefficient tables across every mixer in the
// process. Callers that need to release the tables build their own with
// mixer.BuildTables and pass them to mixer.New.
//
// # Loading Samples
//
// Load picks a loader by file extension. The registry behind it knows
//
//	.wav .wave        8/16-bit PCM with smpl loop points
//	.aif .aiff        8/16-bit PCM
//	.mp3              decoded and downmixed to 16-bit mono
//	.ogg .oga         decoded and downmixed to 16-bit mono
//	.brr              SNES BRR, with the optional loop header
//
// Use NewRegistry to start from the same set and add formats of your own.
//
// # Rendering
//
// RenderToStereo16 and RenderToMono16 pull from any audio.Source, a Mixer
// included, and convert to 16-bit PCM. A Mixer never runs dry, so pass the
// number of frames to render. Other sources may be drained to io.EOF by
// passing 0.
package ftmix
