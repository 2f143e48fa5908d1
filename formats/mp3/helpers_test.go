// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"github.com/ik5/ftmix/audio"
	"github.com/ik5/ftmix/sample"
)

// sampleFromSource runs a mock source through the same path Loader uses
// after decoding.
func sampleFromSource(src audio.Source) (*sample.Sample, error) {
	return sample.FromSource(src, "mp3")
}
