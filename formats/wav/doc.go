// SPDX-License-Identifier: EPL-2.0

// Package wav loads WAV files as mixer samples and writes rendered 16-bit
// PCM back out. Both directions go through github.com/go-audio/wav.
//
// # Loading
//
// Loader accepts 8-bit (unsigned) and 16-bit PCM in any channel count.
// Multi-channel files are averaged down to mono, and 8-bit data is converted
// to signed so it keeps its native depth:
//
//	f, _ := os.Open("snare.wav")
//	defer f.Close()
//
//	s, err := wav.Loader{}.Load(f)
//
// When the file carries a smpl chunk, its first loop becomes the sample loop.
// Loop type 1 (alternating) maps to sample.LoopBidi and every other type to
// sample.LoopForward. The smpl end frame is inclusive.
//
// # Writing
//
// Write16 writes interleaved 16-bit PCM and WriteWAV16 is its mono shorthand.
// The encoder patches the RIFF sizes after the data, so the destination must
// be an io.WriteSeeker such as *os.File:
//
//	out, _ := os.Create("render.wav")
//	defer out.Close()
//
//	err := wav.Write16(out, 48000, 2, pcm)
//
// # Errors
//
//   - ErrNotWavFile: the input has no valid RIFF/WAVE header
//   - ErrUnsupportedFormat: compressed data or a bit depth other than 8 or 16
//   - ErrChannelCount: Write16 got a partial frame
package wav
