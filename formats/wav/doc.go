// SPDX-License-Identifier: EPL-2.0

// Package wav reads WAV files into audio sources and writes 8-bit captures.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count and
// any rate. 8-bit data is unsigned with 128 as silence, wider data is signed;
// both come out as float32 in [-1,1]:
//
//	f, _ := os.Open("bell.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// go-audio needs to seek, so a reader that cannot is buffered in memory.
//
// # Writing
//
// WriteWAV8 stores unsigned 8-bit mono samples, the format of the bytes on
// the DAC pins, for example a sim.Recorder capture:
//
//	err := wav.WriteWAV8(f, clock.Hz20k.Hz(), rec.Samples())
package wav
