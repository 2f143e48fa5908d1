// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"
)

// constLoader returns a fresh copy of its sample on every Load.
type constLoader struct {
	s Sample
}

func (l constLoader) Load(io.Reader) (*Sample, error) {
	s := l.s
	return &s, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	wav := &constLoader{}
	r.Register("wav", wav)

	for _, key := range []string{"wav", ".wav", "WAV", ".Wav"} {
		got, ok := r.Get(key)
		if !ok {
			t.Errorf("Get(%q) found nothing", key)
			continue
		}
		if got != wav {
			t.Errorf("Get(%q) returned a different loader", key)
		}
	}

	if _, ok := r.Get("flac"); ok {
		t.Error("Get(flac) returned ok=true for an unregistered format")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, f := range []string{"wav", "MP3", ".ogg", "brr"} {
		r.Register(f, constLoader{})
	}

	if got, want := r.Formats(), []string{"brr", "mp3", "ogg", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("wav", constLoader{s: Sample{Name: "first"}})
	r.Register("wav", constLoader{s: Sample{Name: "second"}})

	l, _ := r.Get("wav")
	if s, _ := l.Load(nil); s.Name != "second" {
		t.Errorf("loader after overwrite loads %q, want second", s.Name)
	}
}

func TestRegistry_Load(t *testing.T) {
	t.Parallel()

	boom := errors.New("decode failed")

	overlong := Sample{Name: "x", Depth: Depth16, Data16: make([]int16, 8), Loop: LoopForward, LoopStart: 4, LoopLength: 40}

	r := NewRegistry()
	r.Register("good", constLoader{s: overlong})
	r.Register("empty", constLoader{s: Sample{Depth: Depth16}})
	r.Register("nil", LoaderFunc(func(io.Reader) (*Sample, error) { return nil, nil }))
	r.Register("fail", LoaderFunc(func(io.Reader) (*Sample, error) { return nil, boom }))

	s, err := r.Load("GOOD", strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load(good) error = %v", err)
	}
	if s.LoopStart != 4 || s.LoopLength != 4 {
		t.Errorf("Load() did not clamp the loop: [%d, +%d)", s.LoopStart, s.LoopLength)
	}

	tests := []struct {
		format string
		want   error
	}{
		{"flac", ErrUnknownFormat},
		{"empty", ErrEmptySample},
		{"nil", ErrEmptySample},
		{"fail", boom},
	}

	for _, tt := range tests {
		if _, err := r.Load(tt.format, strings.NewReader("")); !errors.Is(err, tt.want) {
			t.Errorf("Load(%s) error = %v, want %v", tt.format, err, tt.want)
		}
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Go(func() {
			r.Register(string(rune('a'+i)), constLoader{})
			r.Get("a")
			r.Formats()
		})
	}
	wg.Wait()

	if len(r.Formats()) != 10 {
		t.Errorf("Formats() has %d entries, want 10", len(r.Formats()))
	}
}
