// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	ErrEmptySample   = errors.New("sample has no frames")
	ErrBitDepth      = errors.New("sample bit depth must be 8 or 16")
	ErrLoopBounds    = errors.New("sample loop region out of bounds")
	ErrTooLong       = errors.New("sample is too long")
	ErrUnknownFormat = errors.New("no loader registered for format")
)
