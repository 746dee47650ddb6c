// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"

	"github.com/ik5/pindac/clock"
	"github.com/ik5/pindac/pins"
	"github.com/ik5/pindac/waveform"
)

// TickSource is the periodic interrupt driving an Engine.
//
// Configure binds tick to the interrupt at rate. Disable and Enable mask and
// unmask it; they bracket every change to state shared with tick and are
// never nested.
type TickSource interface {
	Configure(rate clock.Rate, tick func()) error
	Enable()
	Disable()
}

// ReadMode tells where waveform buffers live.
type ReadMode uint8

const (
	// RAM buffers are indexed directly.
	RAM ReadMode = iota
	// Flash buffers are read through Config.ROM.
	Flash
)

func (m ReadMode) String() string {
	switch m {
	case RAM:
		return "ram"
	case Flash:
		return "flash"
	}
	return fmt.Sprintf("ReadMode(%d)", uint8(m))
}

// Config describes the hardware an Engine drives.
type Config struct {
	Ticks TickSource

	// Low receives value bits 0..7-PinOffset in its upper bits, High the
	// rest in its lower bits.
	Low, High pins.Register
	// LowDir and HighDir are the matching data direction registers. When
	// both are set the output window is switched to output mode.
	LowDir, HighDir pins.Register
	// PinOffset is the bit of Low carrying value bit 0, clamped to [2, 6].
	PinOffset uint8

	Mode ReadMode
	// ROM reads samples in Flash mode.
	ROM waveform.Reader

	// Rate selects the tick frequency; zero means clock.Default.
	Rate clock.Rate
}

// session is the state shared between Tick and normal code.
type session struct {
	channels [MaxChannels]*waveform.Waveform
	count    uint8
	scale    MixScale
}

// Engine mixes active waveforms onto the output pins once per tick.
type Engine struct {
	ticks TickSource
	sink  *pins.Sink
	mode  ReadMode
	rom   waveform.Reader
	rate  clock.Rate
	freq  float64

	active session
}

// New configures the tick source and the output pins and returns a silent
// Engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Ticks == nil {
		return nil, ErrNoTickSource
	}
	if cfg.Low == nil || cfg.High == nil {
		return nil, ErrNoRegisters
	}

	rate := cfg.Rate
	if rate == 0 {
		rate = clock.Default
	}
	if err := clock.Check(rate); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	e := &Engine{
		ticks: cfg.Ticks,
		sink:  pins.NewSink(cfg.Low, cfg.High, cfg.PinOffset),
		mode:  cfg.Mode,
		rate:  rate,
		freq:  rate.Frequency(),
	}

	switch cfg.Mode {
	case RAM:
	case Flash:
		if cfg.ROM == nil {
			return nil, ErrNoProgramMemory
		}
		e.rom = cfg.ROM
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownReadMode, uint8(cfg.Mode))
	}

	e.ticks.Disable()
	err := e.ticks.Configure(rate, e.Tick)
	if err == nil && cfg.LowDir != nil && cfg.HighDir != nil {
		e.sink.Outputs(cfg.LowDir, cfg.HighDir)
	}
	e.ticks.Enable()

	if err != nil {
		return nil, fmt.Errorf("configuring tick source: %w", err)
	}

	return e, nil
}

// Tick mixes one sample from every active waveform onto the pins. It is
// the interrupt handler bound to the tick source and must not be called
// concurrently with itself.
func (e *Engine) Tick() {
	s := &e.active
	if s.count == 0 {
		return
	}

	var sum uint16
	if e.rom != nil {
		for _, w := range s.channels[:s.count] {
			sum += uint16(w.NextFrom(e.rom))
		}
	} else {
		for _, w := range s.channels[:s.count] {
			sum += uint16(w.Next())
		}
	}

	e.sink.Put(s.scale.Apply(sum))
}

// Play replaces the active channel set with channels.
//
// More than MaxChannels channels, or a nil or unconfigured waveform, stops
// playback and returns an error. Play with no arguments is the same as Stop.
func (e *Engine) Play(channels ...*waveform.Waveform) error {
	scale, ok := ScaleFor(len(channels))
	if !ok {
		e.Stop()
		return fmt.Errorf("%w: %d > %d", ErrTooManyChannels, len(channels), MaxChannels)
	}
	for i, w := range channels {
		if w == nil || w.Len() == 0 {
			e.Stop()
			return fmt.Errorf("%w: channel %d", ErrNilChannel, i)
		}
	}

	e.ticks.Disable()
	n := copy(e.active.channels[:], channels)
	clear(e.active.channels[n:])
	e.active.count = uint8(n)
	e.active.scale = scale
	e.ticks.Enable()

	return nil
}

// Stop silences the engine. The pins keep the last value written.
func (e *Engine) Stop() {
	e.ticks.Disable()
	e.active = session{}
	e.ticks.Enable()
}

// Active returns the number of channels currently playing.
func (e *Engine) Active() int {
	e.ticks.Disable()
	n := int(e.active.count)
	e.ticks.Enable()

	return n
}

// NewWaveform builds a waveform timed against this engine's tick rate.
func (e *Engine) NewWaveform(data []uint8, duration float64, unit waveform.Unit) (*waveform.Waveform, error) {
	w, err := waveform.New(data, duration, unit, e.freq)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return w, nil
}

// Configure replaces the buffer and timing of w and rewinds it. w may be
// playing; the swap happens with the tick masked.
func (e *Engine) Configure(w *waveform.Waveform, data []uint8, duration float64, unit waveform.Unit) error {
	if w == nil {
		return ErrNilChannel
	}

	next, err := waveform.New(data, duration, unit, e.freq)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	e.ticks.Disable()
	*w = *next
	e.ticks.Enable()

	return nil
}

// SetDuration re-times w, keeping its buffer and position so a playing
// waveform changes pitch without a click.
func (e *Engine) SetDuration(w *waveform.Waveform, duration float64, unit waveform.Unit) error {
	if w == nil {
		return ErrNilChannel
	}
	if w.Len() == 0 {
		return waveform.ErrEmptyBuffer
	}

	step, err := waveform.StepFor(w.Len(), duration, unit, e.freq)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	e.ticks.Disable()
	err = w.SetStep(step)
	e.ticks.Enable()

	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Frequency returns the tick frequency in Hz.
func (e *Engine) Frequency() float64 { return e.freq }

func (e *Engine) Rate() clock.Rate { return e.rate }
func (e *Engine) Mode() ReadMode   { return e.mode }

// Sink returns the output pin sink, mainly to read back the last value.
func (e *Engine) Sink() *pins.Sink { return e.sink }
