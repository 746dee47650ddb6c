// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

const (
	// FracBits is the width of the sub-sample remainder.
	FracBits = 9
	// One is the step that advances exactly one sample per tick.
	One = 1 << FracBits
	// FracMask keeps the remainder inside [0, One).
	FracMask = One - 1

	// MaxLength is the longest buffer a 16-bit location can index.
	MaxLength = math.MaxUint16
	// MaxStep is the largest step that still leaves room for a full
	// remainder in the 16-bit accumulator.
	MaxStep = math.MaxUint16 - FracMask
)

// Reader fetches a sample from a buffer that is not directly addressable,
// such as program memory on Harvard-architecture parts.
type Reader interface {
	Load(data []uint8, i uint16) uint8
}

// Waveform is a looping sample buffer plus its fixed-point play position.
//
// The zero value has no buffer and must be set up with Configure before use.
// Once handed to a playback engine, only the engine may call Next, NextFrom
// or SetDuration on it.
type Waveform struct {
	data      []uint8
	length    uint16
	location  uint16
	remainder uint16
	step      uint16
}

// New builds a Waveform over data, timed by duration in unit against a tick
// source running at freq Hz. The position starts at the first sample.
//
// data is referenced, not copied, and must stay valid while the waveform
// is playing.
func New(data []uint8, duration float64, unit Unit, freq float64) (*Waveform, error) {
	w := &Waveform{}
	if err := w.Configure(data, duration, unit, freq); err != nil {
		return nil, err
	}
	return w, nil
}

// Configure replaces the buffer and timing of w and rewinds it. On error w
// is left untouched.
func (w *Waveform) Configure(data []uint8, duration float64, unit Unit, freq float64) error {
	if len(data) == 0 {
		return ErrEmptyBuffer
	}
	if len(data) > MaxLength {
		return fmt.Errorf("%w: %d samples", ErrBufferTooLong, len(data))
	}

	step, err := StepFor(len(data), duration, unit, freq)
	if err != nil {
		return err
	}

	w.data = data
	w.length = uint16(len(data))
	w.step = step
	w.location = 0
	w.remainder = 0

	return nil
}

// SetDuration re-times w without touching its buffer or position.
func (w *Waveform) SetDuration(duration float64, unit Unit, freq float64) error {
	if w.length == 0 {
		return ErrEmptyBuffer
	}

	step, err := StepFor(int(w.length), duration, unit, freq)
	if err != nil {
		return err
	}
	w.step = step

	return nil
}

// SetStep installs a precomputed step, keeping buffer and position. It is
// the cheap half of SetDuration, meant for callers that compute the step
// with StepFor ahead of a critical section.
func (w *Waveform) SetStep(step uint16) error {
	if w.length == 0 {
		return ErrEmptyBuffer
	}

	step, err := checkStep(int(w.length), step)
	if err != nil {
		return err
	}
	w.step = step

	return nil
}

// StepFor computes the fixed-point step for a buffer of length samples.
func StepFor(length int, duration float64, unit Unit, freq float64) (uint16, error) {
	if unit == Native {
		return checkStep(length, One)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return 0, fmt.Errorf("%w: %v%v", ErrInvalidDuration, duration, unit)
	}
	if math.IsNaN(freq) || freq <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFrequency, freq)
	}

	cps, err := unit.cyclesPerSecond(duration)
	if err != nil {
		return 0, err
	}

	step := math.Trunc(cps * float64(length) * One / freq)
	if step > MaxStep {
		return 0, fmt.Errorf("%w: step %.0f", ErrStepOverflow, step)
	}

	return checkStep(length, uint16(step))
}

// checkStep enforces the single-wrap rule: one tick may cross the end of
// the buffer at most once and must not overflow the 16-bit location.
func checkStep(length int, step uint16) (uint16, error) {
	advance := (int(step) + FracMask) >> FracBits
	if advance > length || length-1+advance > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d samples per tick over %d", ErrStepOverflow, advance, length)
	}
	return step, nil
}

// Next returns the sample at the current location and advances one tick.
// The buffer is read directly.
func (w *Waveform) Next() uint8 {
	s := w.data[w.location]
	w.advance()
	return s
}

// NextFrom is Next for buffers that must be read through r.
func (w *Waveform) NextFrom(r Reader) uint8 {
	s := r.Load(w.data, w.location)
	w.advance()
	return s
}

func (w *Waveform) advance() {
	w.remainder += w.step
	w.location += w.remainder >> FracBits
	w.remainder &= FracMask
	if w.location >= w.length {
		w.location -= w.length
	}
}

// Rewind moves w back to the first sample.
func (w *Waveform) Rewind() {
	w.location = 0
	w.remainder = 0
}

func (w *Waveform) Data() []uint8 { return w.data }
func (w *Waveform) Len() int      { return int(w.length) }
func (w *Waveform) Step() uint16  { return w.step }

// Position returns the integer sample index and the 9-bit remainder.
func (w *Waveform) Position() (location, remainder uint16) {
	return w.location, w.remainder
}
