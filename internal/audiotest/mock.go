// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides audio sources for tests. The sources satisfy
// audio.Source structurally, so the package does not import audio.
package audiotest

import (
	"io"
	"math"
)

// Source generates frames from a function of frame index and channel.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	gen      func(frame, channel int) float32

	// Err, when set, is returned by ReadSamples instead of data.
	Err error
	// Closed counts calls to Close.
	Closed int
}

// NewSource returns a source of frames frames built by gen.
func NewSource(rate, channels, frames int, gen func(frame, channel int) float32) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, gen: gen}
}

// Silence is all zeros.
func Silence(rate, channels, frames int) *Source {
	return Constant(rate, channels, frames, 0)
}

// Constant repeats v on every channel.
func Constant(rate, channels, frames int, v float32) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

// Sine is a sine tone of freq Hz on every channel.
func Sine(rate, channels, frames int, freq float64) *Source {
	return NewSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
	})
}

// Samples replays interleaved samples, which must hold whole frames.
func Samples(rate, channels int, samples []float32) *Source {
	return NewSource(rate, channels, len(samples)/channels, func(frame, ch int) float32 {
		return samples[frame*channels+ch]
	})
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }

func (s *Source) Close() error {
	s.Closed++
	return nil
}

// Rewind starts the stream over.
func (s *Source) Rewind() { s.pos = 0 }

// ReadSamples writes whole frames and returns io.EOF with the last one.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.gen(s.pos+f, ch)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}
