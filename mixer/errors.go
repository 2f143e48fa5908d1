// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrTableBuild     = errors.New("interpolation tables could not be built")
	ErrTablesNotBuilt = errors.New("interpolation tables are not built")
	ErrInvalidConfig  = errors.New("invalid mixer configuration")
	ErrChannelRange   = errors.New("channel out of range")
	ErrNilSample      = errors.New("sample is nil")
	ErrInvalidSample  = errors.New("sample violates mixer preconditions")
	ErrInvalidPitch   = errors.New("pitch must be a finite non-negative ratio")
	ErrClosed         = errors.New("mixer is closed")
)
