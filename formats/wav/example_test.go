// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/ftmix/formats/wav"
	"github.com/ik5/ftmix/internal/audiotest"
	"github.com/ik5/ftmix/sample"
)

// Example writes a short stereo clip and loads it back as a mono sample.
func Example() {
	pcm := []int16{1000, 3000, -2000, -4000, 500, 500}

	out := &audiotest.WriteSeeker{}
	if err := wav.Write16(out, 22050, 2, pcm); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	s, err := wav.Loader{}.Load(bytes.NewReader(out.Bytes()))
	if err != nil {
		fmt.Printf("Load error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", len(out.Bytes()))
	fmt.Printf("%d frames at %d Hz: %v\n", s.Length(), s.Rate, s.Data16)
	// Output:
	// Wrote 56 bytes
	// 3 frames at 22050 Hz: [2000 -3000 500]
}

// Example_registry plugs the loader into a sample registry.
func Example_registry() {
	reg := sample.NewRegistry()
	reg.Register("wav", wav.Loader{})

	_, err := reg.Load(".WAV", bytes.NewReader([]byte("not a wave file")))
	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	// Output: true
}
