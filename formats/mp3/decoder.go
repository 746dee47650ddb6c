// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/pindac/audio"
)

// channels is fixed: go-mp3 always emits interleaved stereo.
const channels = 2

// mp3Reader is the part of gomp3.Decoder the source uses, so tests can
// substitute it.
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec  mp3Reader
	buf  []byte
	done bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

// ReadSamples converts the decoder's 16-bit little-endian PCM.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	n, err := io.ReadFull(s.dec, buf)
	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(buf[2*i:]))) / 32768
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
}

// Decoder reads MPEG-1/2 Layer III streams as 16-bit stereo.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	return &source{dec: dec}, nil
}
