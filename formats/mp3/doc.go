// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio.
//
// This package uses github.com/hajimehoshi/go-mp3. Decoder streams a file as
// an audio.Source, and Loader drains it into a mono 16-bit sample for the
// mixer:
//
//	f, _ := os.Open("loop.mp3")
//	defer f.Close()
//
//	s, err := mp3.Loader{}.Load(f)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0)
//   - Channels: always 2 (go-mp3 duplicates mono streams)
//   - Sample rate: that of the MP3 stream
//
// ReadSamples only returns whole stereo frames. A dst of odd length has its
// last value left untouched.
//
// # Limitations
//
//   - Decoding only
//   - MP3 carries no loop points, so loaded samples never loop
//   - Encoder delay and padding are not trimmed, which matters for loops set
//     by hand on the loaded sample
package mp3
