// SPDX-License-Identifier: EPL-2.0

// Package engine plays up to five looping waveforms through an 8-bit pin DAC
// from a periodic timer interrupt.
//
// # Overview
//
// An Engine binds three collaborators:
//
//   - a TickSource that calls Engine.Tick at a fixed clock.Rate and can be
//     masked with Disable/Enable
//   - two 8-bit port registers, written through a pins.Sink
//   - optionally a waveform.Reader for sample tables kept in program memory
//
// Normal code builds waveforms, then hands them over with Play:
//
//	e, err := engine.New(engine.Config{
//	    Ticks:     timer,
//	    Low:       portD,
//	    High:      portB,
//	    PinOffset: 2,
//	    Rate:      clock.Hz20k,
//	})
//	lead, _ := e.NewWaveform(sine, 440, waveform.Hertz)
//	bass, _ := e.NewWaveform(square, 110, waveform.Hertz)
//	e.Play(lead, bass)
//
// # The Tick
//
// Each tick reads the current sample of every active waveform, advances it,
// and averages the samples without dividing:
//
//	out = (sum * multiplier) >> shift
//
// The (multiplier, shift) pair depends on the channel count only:
//
//	count  multiplier  shift  exact
//	0      0           0      n/a
//	1      1           0      yes
//	2      1           1      yes
//	3      85          8      within 1 LSB below floor(sum/3)
//	4      1           2      yes
//	5      51          8      within 1 LSB below floor(sum/5)
//
// For counts 3 and 5 the reciprocal is rounded down (85/256 < 1/3,
// 51/256 < 1/5), so the result never exceeds the true average and the error
// grows with the sum, reaching 1 LSB only near full scale. The largest
// product in the table is 1275*51 = 765*85 = 65025, so 16-bit arithmetic is
// exact.
//
// With no active channel the tick returns before touching the ports, which
// keep the last value written.
//
// # Updating the Channel Set
//
// Tick reads the channel list, the count and the mix scale as a unit. Play
// and Stop, and the re-timing helpers Configure and SetDuration, change them
// only between TickSource.Disable and TickSource.Enable. Play copies the
// waveform references into the engine, so the caller's slice may be reused
// right away. The waveforms themselves are shared: their buffers must stay
// valid until they are replaced or the engine is stopped.
//
// # Failure Policy
//
// Asking for more than MaxChannels channels, or passing an unconfigured
// waveform, stops playback entirely before the error is returned. The tick
// path itself never fails and never allocates.
package engine
