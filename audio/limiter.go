// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Limiter ends a source after a fixed number of frames.
type Limiter struct {
	src  Source
	left int
}

// NewLimiter passes through at most frames frames of src.
func NewLimiter(src Source, frames int) *Limiter {
	return &Limiter{src: src, left: max(frames, 0)}
}

func (l *Limiter) SampleRate() int { return l.src.SampleRate() }
func (l *Limiter) Channels() int   { return l.src.Channels() }

func (l *Limiter) Close() error {
	if err := l.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples reads whole frames from the source until the limit, then
// returns io.EOF.
func (l *Limiter) ReadSamples(dst []float32) (int, error) {
	ch := l.src.Channels()
	if ch < 1 {
		return 0, ErrNoChannels
	}
	if l.left == 0 {
		return 0, io.EOF
	}

	dst = dst[:min(len(dst)/ch, l.left)*ch]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := l.src.ReadSamples(dst)
	l.left -= n / ch
	if l.left == 0 && err == nil {
		err = io.EOF
	}

	return n, err
}
