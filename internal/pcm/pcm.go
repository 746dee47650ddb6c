// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to float sample sources.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

var (
	// ErrUnsupportedBitDepth indicates a depth other than 8, 16, 24 or 32
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrNoFormat indicates a decoder without channel or rate information
	ErrNoFormat = errors.New("missing PCM format")
)

// Reader is the part of the go-audio wav and aiff decoders Source needs.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM through a Reader and scales it to [-1,1].
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bias     int
	scale    float32
	buf      *goaudio.IntBuffer
	finished bool
}

// NewSource wraps dec, whose samples are depth bits wide. bias is
// subtracted first, 128 for unsigned 8-bit data and 0 otherwise.
func NewSource(dec Reader, format *goaudio.Format, depth, bias int) (*Source, error) {
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrNoFormat
	}

	switch depth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	return &Source{
		dec:    dec,
		format: format,
		bias:   bias,
		scale:  1 / float32(uint32(1)<<(depth-1)),
		buf: &goaudio.IntBuffer{
			Format:         format,
			SourceBitDepth: depth,
		},
	}, nil
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

// ReadSamples fills dst with interleaved samples. A short read from the
// decoder marks the end of the stream.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.finished {
		return 0, io.EOF
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v-s.bias) * s.scale
	}

	switch {
	case err == nil && n == len(dst):
		return n, nil
	case err == nil, errors.Is(err, io.EOF):
		s.finished = true
		return n, io.EOF
	default:
		return n, fmt.Errorf("reading PCM: %w", err)
	}
}
