// SPDX-License-Identifier: EPL-2.0

package ftmix

import "errors"

var ErrNotStereo = errors.New("source is not stereo")
