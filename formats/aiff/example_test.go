// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ik5/ftmix/formats/aiff"
	"github.com/ik5/ftmix/sample"
)

// Example shows the loader rejecting data that is not AIFF.
func Example() {
	_, err := aiff.Loader{}.Load(strings.NewReader("RIFF....WAVE"))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("not an AIFF file")
	}
	// Output: not an AIFF file
}

// Example_registry registers the loader under both AIFF extensions.
func Example_registry() {
	reg := sample.NewRegistry()
	reg.Register("aiff", aiff.Loader{})
	reg.Register(".aif", aiff.Loader{})

	fmt.Println(reg.Formats())
	// Output: [aif aiff]
}
