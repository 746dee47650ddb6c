// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads MP3 streams into audio sources using
// github.com/hajimehoshi/go-mp3.
//
// The decoder always produces two channels, duplicating mono streams, at the
// stream's own rate. Resample and fold to mono before building a waveform
// table:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	table, err := pindac.SampleTable(src, clock.Hz20k.Hz(), 4096)
package mp3
