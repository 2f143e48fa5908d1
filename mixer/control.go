// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"sync/atomic"

	"github.com/ik5/ftmix/sample"
)

type updateFlags uint8

const (
	updStop updateFlags = 1 << iota
	updTrigger
	updPitch
	updGain
)

// update is a batch of control changes for one channel. Once published in a
// slot it is never modified; the audio goroutine applies it whole.
type update struct {
	flags updateFlags

	smp   *sample.Sample
	start int
	pitch float64

	left, right float32
	ramp        bool
}

// merge returns a new update holding u overlaid with next.
func (u *update) merge(next *update) *update {
	var m update
	if u != nil {
		m = *u
	}

	if next.flags&updStop != 0 {
		m.flags &^= updTrigger | updPitch
		m.flags |= updStop
		m.smp = nil
	}
	if next.flags&updTrigger != 0 {
		m.flags &^= updStop
		m.flags |= updTrigger
		m.smp = next.smp
		m.start = next.start
	}
	if next.flags&updPitch != 0 {
		m.flags |= updPitch
		m.pitch = next.pitch
	}
	if next.flags&updGain != 0 {
		m.flags |= updGain
		m.left, m.right = next.left, next.right
		m.ramp = next.ramp
	}

	return &m
}

// slot is the handoff point between control goroutines and the audio goroutine.
type slot struct {
	pending atomic.Pointer[update]
}

// stage publishes next, merging it with anything not yet picked up.
func (s *slot) stage(next *update) {
	for {
		old := s.pending.Load()
		if s.pending.CompareAndSwap(old, old.merge(next)) {
			return
		}
	}
}

// take removes and returns the pending update, if any.
func (s *slot) take() *update {
	if s.pending.Load() == nil {
		return nil
	}
	return s.pending.Swap(nil)
}
