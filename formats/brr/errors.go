// SPDX-License-Identifier: EPL-2.0

package brr

import "errors"

// ErrInvalidSize indicates a file that is neither whole 9-byte blocks nor a
// 2-byte loop header followed by whole blocks.
var ErrInvalidSize = errors.New("BRR data is not a whole number of 9-byte blocks")
