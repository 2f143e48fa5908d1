// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrUnsupportedFormat = errors.New("only 8-bit and 16-bit PCM WAV is supported")
	ErrChannelCount      = errors.New("sample count does not match channel count")
)
