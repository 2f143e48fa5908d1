// SPDX-License-Identifier: EPL-2.0

// Package aiff loads AIFF (Audio Interchange File Format) files as mixer
// samples.
//
// This package uses github.com/go-audio/aiff to parse the file. 8-bit and
// 16-bit PCM is supported in any channel count; multi-channel files are
// averaged down to mono and keep their bit depth.
//
//	f, _ := os.Open("bass.aif")
//	defer f.Close()
//
//	s, err := aiff.Loader{}.Load(f)
//
// Loop markers (INST and MARK chunks) are not read, so loaded samples never
// loop. Set a loop with (*sample.Sample).SetLoop after loading.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: 24-bit, 32-bit and other depths
//   - sample.ErrEmptySample: the file holds no sample frames
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores 8-bit data signed (WAV stores it unsigned)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
package aiff
