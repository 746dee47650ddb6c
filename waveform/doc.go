// SPDX-License-Identifier: EPL-2.0

// Package waveform holds a looping 8-bit sample buffer together with its
// fixed-point playback position.
//
// # Fixed-Point Position
//
// A Waveform plays its buffer at an arbitrary rate relative to the tick
// frequency. The position is split in two fields:
//
//   - location: the integer sample index, always in [0, Len())
//   - remainder: a 9-bit fraction in [0, 511] counting toward the next sample
//
// Every tick adds Step() to the remainder. The bits above the ninth are the
// number of whole samples to advance, the low nine bits are kept:
//
//	remainder += step
//	location  += remainder >> 9
//	remainder &= 0x1FF
//	if location >= length { location -= length }
//
// A step of 512 (One) plays one stored sample per tick, 768 plays one and a
// half, 256 plays each sample for two ticks. No division or modulo is
// involved, so Next can run inside a timer interrupt.
//
// # Configuring the Step
//
// The step is derived once, outside the tick path, from a duration and a Unit:
//
//	w, err := waveform.New(table, 440, waveform.Hertz, clock.Hz40k.Frequency())
//
// The step is trunc(sps * length * 512 / frequency), where sps is the number
// of full buffer cycles per second: the duration itself for Hertz, 1000/d for
// Milliseconds and 1e6/d for Microseconds. Native ignores the duration and
// uses a step of exactly 512.
//
// Steps are rejected with ErrStepOverflow when a single tick could advance
// past the buffer more than once, or when the remainder could no longer
// carry into 16 bits.
//
// # Re-timing
//
// SetDuration changes the step only. The buffer and the current position are
// kept, so switching notes on a playing waveform does not pop. Configure
// installs a new buffer and rewinds to the start.
package waveform
