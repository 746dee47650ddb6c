// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/pindac/utils"
)

// FracBits is the width of the position fraction, the same 9 bits the
// playback engine steps with.
const (
	FracBits = 9
	One      = 1 << FracBits
	FracMask = One - 1
)

// filterAlpha is the one-pole low-pass coefficient applied when downsampling.
const filterAlpha = 0.5

// Resampler converts src to another rate with Catmull-Rom interpolation.
// Its read position advances by a fixed-point step of srcRate*One/dstRate
// per output frame. Channel count is preserved.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     uint32
	frac     uint32

	// window holds frames t-1, t0, t+1 and t+2; live marks which of them
	// came from the source rather than edge padding.
	window [4][]float32
	live   [4]bool
	primed bool
	srcEOF bool

	lowPass bool
	warm    bool
	state   []float32
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	srcRate := src.SampleRate()
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, srcRate, dstRate)
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	step := (uint64(srcRate)*One + uint64(dstRate)/2) / uint64(dstRate)
	if step == 0 || step > math.MaxUint32-One {
		return nil, fmt.Errorf("%w: %d -> %d", ErrRatioTooLarge, srcRate, dstRate)
	}

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     uint32(step),
		lowPass:  srcRate > dstRate,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

// Step returns the fixed-point source advance per output frame.
func (r *Resampler) Step() uint32 { return r.step }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// next reads one frame into dst. It reports false once the source is spent.
func (r *Resampler) next(dst []float32) (bool, error) {
	if r.srcEOF {
		return false, nil
	}

	n, err := r.src.ReadSamples(dst)
	switch {
	case errors.Is(err, io.EOF):
		r.srcEOF = true
	case err != nil:
		return false, fmt.Errorf("%w", err)
	}

	// a trailing partial frame is dropped
	if n < r.channels {
		r.srcEOF = true
		return false, nil
	}

	switch {
	case !r.lowPass:
	case !r.warm:
		copy(r.state, dst)
		r.warm = true
	default:
		for c, v := range dst {
			r.state[c] = filterAlpha*v + (1-filterAlpha)*r.state[c]
			dst[c] = r.state[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	ok, err := r.next(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	r.live[1] = true

	for i := 2; i < len(r.window); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}

	r.primed = true
	return nil
}

// fill reads window slot i, padding it with slot i-1 at the end of the stream.
func (r *Resampler) fill(i int) error {
	ok, err := r.next(r.window[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[i], r.window[i-1])
	}
	r.live[i] = ok
	return nil
}

// shift drops t-1 and pulls a new t+2.
func (r *Resampler) shift() error {
	w := r.window
	r.window = [4][]float32{w[1], w[2], w[3], w[0]}
	r.live = [4]bool{r.live[1], r.live[2], r.live[3], false}

	return r.fill(3)
}

// ReadSamples writes resampled interleaved frames into dst, whose length
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written+r.channels <= len(dst) && r.live[1] {
		x := float32(r.frac) / One
		y0, y1, y2, y3 := r.window[0], r.window[1], r.window[2], r.window[3]

		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(y0[c], y1[c], y2[c], y3[c], x)
		}
		written += r.channels

		r.frac += r.step
		for advance := r.frac >> FracBits; advance > 0; advance-- {
			if err := r.shift(); err != nil {
				return written, err
			}
		}
		r.frac &= FracMask
	}

	if !r.live[1] {
		return written, io.EOF
	}
	return written, nil
}
