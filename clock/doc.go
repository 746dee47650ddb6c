// SPDX-License-Identifier: EPL-2.0

// Package clock describes the tick rates a playback timer can run at.
//
// A Rate is the compare-match value loaded into an 8-bit timer running in
// clear-on-match mode from a 16 MHz CPU clock through a /8 prescaler. The
// timer fires once every (Rate+1) timer counts, so the tick frequency is:
//
//	16 MHz / (8 * (Rate + 1))
//
// # Supported Rates
//
//   - Hz40k: 40 kHz, enough headroom for two channels only
//   - Hz26k: ~26.3 kHz
//   - Hz24k: ~24.1 kHz
//   - Hz20k: 20 kHz
//   - Hz16k: 16 kHz
//
// Frequency is used by setup code to compute waveform steps. The tick
// routine itself never looks at it.
package clock
