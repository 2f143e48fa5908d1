// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the rest of ftmix is built
// on.
//
//   - Source: a pull-based stream of interleaved float32 samples
//   - Decoder: builds a Source from an encoded file
//   - MonoMixer: averages a multi-channel Source down to mono
//   - Reader: turns a Source into little-endian float32 bytes for a device
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders, the MonoMixer and mixer.Mixer all implement Source, so they chain:
//
//	m, _ := mixer.New(mixer.DefaultConfig(), tables)
//	mono := audio.NewMonoMixer(m)
//
// # Device Output
//
// Reader adapts a Source to io.Reader in the byte layout of
// oto.FormatFloat32LE:
//
//	player := ctx.NewPlayer(audio.NewReader(m))
//	player.Play()
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0]. Mixed output may exceed
// that range; clipping is left to the consumer.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. It may return
// data together with io.EOF, so process n values before checking err.
package audio
