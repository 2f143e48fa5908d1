// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Loader turns an encoded sample file into a Sample that satisfies Validate.
type Loader interface {
	Load(r io.Reader) (*Sample, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(r io.Reader) (*Sample, error)

func (f LoaderFunc) Load(r io.Reader) (*Sample, error) { return f(r) }

// Registry of loaders by format key (e.g., "wav", "brr", "ogg").
type Registry struct {
	loaders map[string]Loader

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
		mtx:     &sync.Mutex{},
	}
}

// formatKey normalizes ".WAV", "wav" and "Wav" to "wav".
func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, l Loader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.loaders[formatKey(format)] = l
}

func (r *Registry) Get(format string) (Loader, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.loaders[formatKey(format)]
	return l, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.loaders))
	for k := range r.loaders {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Load decodes r with the loader registered for format and clamps the result.
func (r *Registry) Load(format string, rd io.Reader) (*Sample, error) {
	l, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	s, err := l.Load(rd)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", formatKey(format), err)
	}
	if s == nil {
		return nil, fmt.Errorf("loading %s: %w", formatKey(format), ErrEmptySample)
	}
	s.Clamp()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", formatKey(format), err)
	}

	return s, nil
}
