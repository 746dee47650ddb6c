// SPDX-License-Identifier: EPL-2.0

// Package pindac plays 8-bit waveforms through a resistor ladder or filtered
// PWM wired to eight digital output pins.
//
// The work is split across subpackages:
//
//   - waveform: sample tables with 9-bit fixed-point playback position
//   - engine: the per-tick mixer and the channel set shared with it
//   - pins: packing a byte across two 8-bit ports
//   - clock: the supported tick rates
//   - sim, sim/speaker: host tick sources, recording and live audition
//   - uno: the ATmega328P backend for TinyGo
//
// This package turns audio files into waveform tables ahead of playback.
//
// # Building tables
//
// Any decoded source can be resampled to the tick rate, folded to mono and
// quantized to unsigned bytes:
//
//	src, err := pindac.Open("bell.wav")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	bell, err := pindac.LoadWaveform(e, src, 1, waveform.Native)
//
// SampleTable does the same without an engine, for tables that are stored
// and reused.
//
// # Formats
//
// Open and Decode understand wav, aiff, mp3 and ogg (Vorbis) through the
// decoders in formats/. NewRegistry returns the same mapping for callers that
// want to add their own.
//
// Table building allocates and may take a while; it never runs on the tick
// path.
package pindac
