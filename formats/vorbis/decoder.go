// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/pindac/audio"
)

// oggReader is the part of oggvorbis.Reader the source uses, so tests can
// substitute it.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec  oggReader
	done bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }

// ReadSamples decodes whole frames into dst. The decoder already produces
// floats in [-1,1].
func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := s.dec.Channels()
	if ch < 1 {
		return 0, audio.ErrNoChannels
	}
	dst = dst[:len(dst)-len(dst)%ch]
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	n, err := s.dec.Read(dst)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF):
		s.done = true
		return n, io.EOF
	default:
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}

	return &source{dec: dec}, nil
}
