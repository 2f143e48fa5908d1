// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio.
//
// This package uses github.com/jfreymuth/oggvorbis. Decoder streams a file as
// an audio.Source in the file's own channel layout. Loader drains it into a
// mono 16-bit sample for the mixer, averaging the channels:
//
//	f, _ := os.Open("pad.ogg")
//	defer f.Close()
//
//	s, err := vorbis.Loader{}.Load(f)
//
// # Output Format
//
//   - Sample format: float32, nominally in [-1.0, 1.0]
//   - Channels: as encoded (1 to 8)
//   - Sample rate: as encoded
//
// ReadSamples trims dst to a whole number of frames before decoding.
//
// # Limitations
//
// Loop comments such as LOOPSTART are not interpreted; loaded samples never
// loop.
package vorbis
