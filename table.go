// SPDX-License-Identifier: EPL-2.0

package pindac

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/pindac/audio"
	"github.com/ik5/pindac/engine"
	"github.com/ik5/pindac/utils"
	"github.com/ik5/pindac/waveform"
)

// DefaultBufferSize is the read chunk used when SampleTable gets a
// non-positive buffer size.
const DefaultBufferSize = 4096

// SampleTable resamples src to rate Hz, folds it to mono and quantizes it to
// unsigned 8-bit samples ready for a waveform. The table must fit in
// waveform.MaxLength samples. src is read to the end but not closed.
func SampleTable(src audio.Source, rate, bufferSize int) ([]uint8, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	r, err := audio.NewResampler(src, rate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	mono := audio.NewMonoMixer(r)

	var table []uint8
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if len(table)+n > waveform.MaxLength {
			return nil, fmt.Errorf("%w: more than %d samples at %d Hz", ErrTableTooLong, waveform.MaxLength, rate)
		}
		for _, v := range buf[:n] {
			table = append(table, utils.Float32ToUint8(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	return table, nil
}

// LoadWaveform builds a waveform for e from src, sampled at the engine's
// tick frequency so unit Native plays it back at its recorded speed.
func LoadWaveform(e *engine.Engine, src audio.Source, duration float64, unit waveform.Unit) (*waveform.Waveform, error) {
	rate := int(math.Round(e.Frequency()))

	table, err := SampleTable(src, rate, DefaultBufferSize)
	if err != nil {
		return nil, err
	}

	w, err := e.NewWaveform(table, duration, unit)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return w, nil
}

// Clip cuts src to the frames whose table at rate Hz fits in
// waveform.MaxLength samples. A source or rate SampleTable would reject is
// returned as is.
func Clip(src audio.Source, rate int) audio.Source {
	srcRate := src.SampleRate()
	if rate <= 0 || srcRate <= 0 {
		return src
	}

	step := (srcRate*audio.One + rate/2) / rate
	return audio.NewLimiter(src, (waveform.MaxLength-1)*step>>audio.FracBits)
}
