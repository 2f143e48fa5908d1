// SPDX-License-Identifier: EPL-2.0

package ftmix

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/ftmix/formats/aiff"
	"github.com/ik5/ftmix/formats/brr"
	"github.com/ik5/ftmix/formats/mp3"
	"github.com/ik5/ftmix/formats/vorbis"
	"github.com/ik5/ftmix/formats/wav"
	"github.com/ik5/ftmix/mixer"
	"github.com/ik5/ftmix/sample"
)

var (
	sharedTables = sync.OnceValues(mixer.BuildTables)

	defaultRegistry = NewRegistry()
)

// Tables returns the process-wide coefficient tables, building them on the
// first call. They must not be freed.
func Tables() (*mixer.Tables, error) {
	return sharedTables()
}

// NewMixer creates a mixer over the shared coefficient tables.
func NewMixer(cfg mixer.Config) (*mixer.Mixer, error) {
	t, err := Tables()
	if err != nil {
		return nil, err
	}
	return mixer.New(cfg, t)
}

// NewRegistry returns a registry holding every bundled loader.
func NewRegistry() *sample.Registry {
	r := sample.NewRegistry()

	for _, ext := range []string{"wav", "wave"} {
		r.Register(ext, wav.Loader{})
	}
	for _, ext := range []string{"aif", "aiff"} {
		r.Register(ext, aiff.Loader{})
	}
	for _, ext := range []string{"ogg", "oga"} {
		r.Register(ext, vorbis.Loader{})
	}
	r.Register("mp3", mp3.Loader{})
	r.Register("brr", brr.Loader{})

	return r
}

// Formats lists the extensions Load understands.
func Formats() []string {
	return defaultRegistry.Formats()
}

// Load reads the sample at path, choosing the loader by extension. The
// sample is named after the file.
func Load(path string) (*sample.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sample: %w", err)
	}
	defer f.Close()

	ext := filepath.Ext(path)

	s, err := defaultRegistry.Load(ext, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), ext)

	return s, nil
}

// LoadReader reads a sample of the given format (an extension, with or
// without the dot) from r.
func LoadReader(format string, r io.Reader) (*sample.Sample, error) {
	return defaultRegistry.Load(format, r)
}
