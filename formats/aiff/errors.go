// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates PCM other than 8 or 16 bits
	ErrUnsupportedBitDepth = errors.New("only 8-bit and 16-bit AIFF is supported")
)
