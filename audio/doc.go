// SPDX-License-Identifier: EPL-2.0

// Package audio holds the setup-time pipeline that turns decoded audio into
// material for waveform tables.
//
// # Source
//
// Every decoder and stage is a Source of interleaved float32 samples in
// [-1,1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Stages wrap a Source and are one themselves, so they chain:
//
//	r, err := audio.NewResampler(src, clock.Hz20k.Hz())
//	mono := audio.NewMonoMixer(r)
//
// # Resampling
//
// Resampler moves through the source with the same 9-bit fixed-point
// stepping the playback engine uses, and interpolates between frames with a
// Catmull-Rom spline. When downsampling, a one-pole low-pass runs on the
// source frames first.
//
// # Registry
//
// Registry maps format names to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// # End of stream
//
// ReadSamples returns io.EOF once the stream is spent, possibly together with
// the last samples.
package audio
