// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ik5/ftmix/audio"
	"github.com/ik5/ftmix/sample"
)

// bufSize is the number of float32 values a caller is expected to pull per
// ReadSamples call: 1024 stereo frames.
const bufSize = 2048

// Mixer owns a fixed set of voices and renders them into interleaved stereo.
//
// Mix and ReadSamples belong to the audio goroutine. The control methods
// (Trigger, SetPitch, SetVolume, SetGain, Stop) may be called from any
// goroutine; their changes are staged and take effect at the start of the
// next buffer. StopAll, Reconfigure and Close wait for the audio goroutine to
// finish its current buffer.
type Mixer struct {
	mu     sync.Mutex
	cfg    Config
	tables *Tables
	log    *slog.Logger
	ramp   int

	// fixed for the lifetime of the mixer
	rate     int
	channels int

	voices []Voice
	// fades[ch] plays out the note cut from voices[ch]
	fades []Voice
	slots []slot
	pitch []float64

	active atomic.Int32
	closed atomic.Bool
}

var _ audio.Source = (*Mixer)(nil)

// New returns a silent mixer. t must stay built until the mixer is closed.
func New(cfg Config, t *Tables) (*Mixer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !t.Ready() {
		return nil, ErrTablesNotBuilt
	}

	m := &Mixer{
		cfg:      cfg,
		tables:   t,
		log:      cfg.logger(),
		ramp:     cfg.RampFrames(),
		rate:     cfg.SampleRate,
		channels: cfg.Channels,
		voices:   make([]Voice, cfg.Channels),
		fades:    make([]Voice, cfg.Channels),
		slots:    make([]slot, cfg.Channels),
		pitch:    make([]float64, cfg.Channels),
	}
	m.reset()

	m.log.Info("mixer created",
		"rate", cfg.SampleRate,
		"channels", cfg.Channels,
		"interpolation", cfg.Interpolation.String(),
		"ramp_frames", m.ramp,
	)

	return m, nil
}

// reset silences every voice and drops pending updates. m.mu must be held.
func (m *Mixer) reset() {
	for ch := range m.voices {
		m.slots[ch].pending.Store(nil)

		m.voices[ch].configure(m.tables, m.cfg.Interpolation)
		m.voices[ch].rampTo(1, 1, 0)
		m.fades[ch].configure(m.tables, m.cfg.Interpolation)
		m.pitch[ch] = 1
	}
	m.active.Store(0)
}

func (m *Mixer) SampleRate() int { return m.rate }

// Channels is the number of output channels, always 2. The voice count is
// Voices.
func (m *Mixer) Channels() int { return 2 }

func (m *Mixer) Voices() int { return m.channels }

func (m *Mixer) BufSize() int { return bufSize }

// Config returns the current configuration.
func (m *Mixer) Config() Config {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cfg
}

// ActiveVoices is the number of voices that were sounding at the end of the
// last buffer, companion fades included.
func (m *Mixer) ActiveVoices() int { return int(m.active.Load()) }

// ReadSamples fills dst with the next len(dst)/2 stereo frames. It never
// blocks: while StopAll or Reconfigure holds the mixer the buffer is silent.
func (m *Mixer) ReadSamples(dst []float32) (int, error) {
	if m.closed.Load() {
		return 0, io.EOF
	}
	if len(dst)%2 != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	clear(dst)
	m.Mix(Buffer(dst), 0, len(dst)/2)

	return len(dst), nil
}

// Mix applies staged control changes and adds frames frames of every voice
// into out starting at frame offset. It returns false, leaving out untouched,
// when the mixer is busy being reconfigured.
func (m *Mixer) Mix(out Buffer, offset, frames int) bool {
	if !m.mu.TryLock() {
		return false
	}
	defer m.mu.Unlock()

	for ch := range m.slots {
		if u := m.slots[ch].take(); u != nil {
			m.apply(ch, u)
		}
	}

	var n int32
	for ch := range m.voices {
		f := &m.fades[ch]
		Render(f, out, offset, frames)
		if f.active {
			n++
		}

		v := &m.voices[ch]
		Render(v, out, offset, frames)
		if v.active {
			n++
		}
	}
	m.active.Store(n)

	return true
}

// apply runs on the audio goroutine with m.mu held.
func (m *Mixer) apply(ch int, u *update) {
	v := &m.voices[ch]

	if u.flags&updStop != 0 {
		m.cut(ch)
	}
	if u.flags&updPitch != 0 {
		m.pitch[ch] = u.pitch
	}

	tl, tr := v.targetL, v.targetR
	if u.flags&updGain != 0 {
		tl, tr = u.left, u.right
	}

	switch {
	case u.flags&updTrigger != 0:
		m.cut(ch)
		// a new note fades in from silence
		if m.ramp > 0 {
			v.gains = gains{}
		}
		v.rampTo(tl, tr, m.ramp)
		v.Start(u.smp, u.start, m.delta(u.smp, m.pitch[ch]))
	case u.flags&updGain != 0:
		frames := 0
		if u.ramp && v.active {
			frames = m.ramp
		}
		v.SetGain(tl, tr, frames)
		fallthrough
	default:
		if u.flags&updPitch != 0 && v.active {
			v.SetDelta(m.delta(v.smp, m.pitch[ch]))
		}
	}
}

// cut stops voices[ch], handing a sounding note to its companion fade voice
// when ramping is on.
func (m *Mixer) cut(ch int) {
	v := &m.voices[ch]
	if !v.active {
		return
	}

	if m.ramp > 0 {
		f := &m.fades[ch]
		*f = *v
		f.fadeOut(m.ramp)
	}
	v.Stop()
}

func (m *Mixer) delta(s *sample.Sample, pitch float64) Fixed {
	rate := s.Rate
	if rate <= 0 {
		rate = m.rate
	}
	return Delta(rate, pitch, m.rate)
}

func (m *Mixer) slot(ch int) (*slot, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	if ch < 0 || ch >= m.channels {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelRange, ch, m.channels)
	}
	return &m.slots[ch], nil
}

func checkPitch(pitch float64) error {
	if pitch < 0 || math.IsNaN(pitch) || math.IsInf(pitch, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPitch, pitch)
	}
	return nil
}

// Trigger starts s on channel ch at frame start, played at pitch times its
// native rate. The channel keeps its current volume and pan; a note already
// sounding on ch is cut. Channels start at unity gain.
func (m *Mixer) Trigger(ch int, s *sample.Sample, start int, pitch float64) error {
	sl, err := m.slot(ch)
	if err != nil {
		return err
	}
	if s == nil {
		return ErrNilSample
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSample, err)
	}
	if err := checkPitch(pitch); err != nil {
		return err
	}

	sl.stage(&update{
		flags: updTrigger | updPitch,
		smp:   s,
		start: max(start, 0),
		pitch: pitch,
	})

	return nil
}

// SetPitch changes the playback ratio of channel ch without moving its
// position.
func (m *Mixer) SetPitch(ch int, pitch float64) error {
	sl, err := m.slot(ch)
	if err != nil {
		return err
	}
	if err := checkPitch(pitch); err != nil {
		return err
	}

	sl.stage(&update{flags: updPitch, pitch: pitch})

	return nil
}

// SetVolume sets channel ch from a volume and a pan position in [0, 1]
// (0 left, 0.5 center, 1 right) using a constant-power pan law.
func (m *Mixer) SetVolume(ch int, volume, pan float64, ramp bool) error {
	l, r := PanGains(volume, pan)
	return m.SetGain(ch, l, r, ramp)
}

// SetGain sets the left and right gain of channel ch directly. With ramp the
// gains slide to the new values over the configured ramp length.
func (m *Mixer) SetGain(ch int, left, right float32, ramp bool) error {
	sl, err := m.slot(ch)
	if err != nil {
		return err
	}

	sl.stage(&update{flags: updGain, left: left, right: right, ramp: ramp})

	return nil
}

// Stop silences channel ch, fading it out when ramping is on.
func (m *Mixer) Stop(ch int) error {
	sl, err := m.slot(ch)
	if err != nil {
		return err
	}

	sl.stage(&update{flags: updStop})

	return nil
}

// StopAll silences every voice at once and drops pending changes. When it
// returns no voice references a sample any more, so sample memory may be
// released.
func (m *Mixer) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reset()
	m.log.Debug("all voices stopped")
}

// Reconfigure clears every voice and then switches to cfg. The sample rate
// and the voice count cannot change.
func (m *Mixer) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.SampleRate != m.rate || cfg.Channels != m.channels {
		return fmt.Errorf("%w: sample rate and channel count are fixed at %d Hz, %d channels",
			ErrInvalidConfig, m.rate, m.channels)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed.Load() {
		return ErrClosed
	}

	m.cfg = cfg
	m.log = cfg.logger()
	m.ramp = cfg.RampFrames()
	m.reset()

	m.log.Info("mixer reconfigured",
		"interpolation", cfg.Interpolation.String(),
		"ramp_frames", m.ramp,
	)

	return nil
}

// Close stops every voice. Further reads return io.EOF.
func (m *Mixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed.Swap(true) {
		return nil
	}
	m.reset()
	m.log.Info("mixer closed")

	return nil
}

// PanGains maps a volume and pan position to left and right gains with the
// law L = volume*sqrt(1-pan), R = volume*sqrt(pan). Both arguments are
// clamped to [0, 1].
func PanGains(volume, pan float64) (left, right float32) {
	volume = clamp01(volume)
	pan = clamp01(pan)

	return float32(volume * math.Sqrt(1-pan)), float32(volume * math.Sqrt(pan))
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return min(max(x, 0), 1)
}
